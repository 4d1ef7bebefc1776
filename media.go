package folio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	maxImageWidth   = 1600
	jpegQuality     = 80
	maxCachedImages = 256

	// New renditions a single client may request per minute.
	resizesPerMinute = 30
)

// errBadWidth is returned for a w parameter that is not a positive integer.
var errBadWidth = errors.New("folio: invalid image width")

// mediaCache serves images from the content set and memoises resized
// renditions. The content set never changes, so entries never go stale.
type mediaCache struct {
	fsys fs.FS
	dir  string

	mu      sync.Mutex
	resized map[string][]byte
}

func newMediaCache(fsys fs.FS, dir string) *mediaCache {
	return &mediaCache{fsys: fsys, dir: dir, resized: make(map[string][]byte)}
}

// open validates name and returns its path inside the content set.
func (m *mediaCache) open(name string) (string, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" || !fs.ValidPath(name) {
		return "", fs.ErrNotExist
	}
	p := path.Join(m.dir, name)
	info, err := fs.Stat(m.fsys, p)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fs.ErrNotExist
	}
	return p, nil
}

// has reports whether a rendition of name at width is memoised.
func (m *mediaCache) has(name string, width int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.resized[cacheKey(name, width)]
	return ok
}

func cacheKey(name string, width int) string {
	return name + "@" + strconv.Itoa(width)
}

// resize returns name scaled down to width as JPEG. Images narrower than
// width are re-encoded at their own size.
func (m *mediaCache) resize(name string, width int) ([]byte, error) {
	key := cacheKey(name, width)
	m.mu.Lock()
	data, ok := m.resized[key]
	m.mu.Unlock()
	if ok {
		return data, nil
	}

	p, err := m.open(name)
	if err != nil {
		return nil, err
	}
	f, err := m.fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err = scaleJPEG(f, width)
	if err != nil {
		return nil, fmt.Errorf("folio: resize %s: %w", name, err)
	}

	m.mu.Lock()
	if len(m.resized) < maxCachedImages {
		m.resized[key] = data
	}
	m.mu.Unlock()
	return data, nil
}

// scaleJPEG decodes an image, scales it to at most width pixels wide keeping
// the aspect ratio, and encodes it as JPEG.
func scaleJPEG(src io.Reader, width int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// parseWidth reads the w query parameter. Zero means "original".
func parseWidth(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	w, err := strconv.Atoi(s)
	if err != nil || w <= 0 {
		return 0, errBadWidth
	}
	if w > maxImageWidth {
		w = maxImageWidth
	}
	return w, nil
}

func (a *App) handleMedia(c echo.Context) error {
	name := c.Param("*")
	width, err := parseWidth(c.QueryParam("w"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if width == 0 {
		p, err := a.media.open(name)
		if err != nil {
			return mediaError(err)
		}
		http.ServeFileFS(c.Response(), c.Request(), a.media.fsys, p)
		return nil
	}

	if !a.media.has(name, width) && !a.resizeLimiter.Allow(c.RealIP()) {
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many image requests")
	}
	data, err := a.media.resize(name, width)
	if err != nil {
		return mediaError(err)
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func mediaError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return echo.ErrNotFound
	}
	if errors.Is(err, image.ErrFormat) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "not an image")
	}
	return err
}
