package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// A missing .env is fine; every setting has a default.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: load .env: %v\n", err)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe()
	case "list":
		tag := ""
		if len(os.Args) > 2 {
			tag = os.Args[2]
		}
		err = runList(os.Stdout, tag)
	case "show":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: folio show <slug>")
			os.Exit(1)
		}
		err = runShow(os.Stdout, os.Args[2])
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: folio new <title> [tag ...]")
			os.Exit(1)
		}
		err = runNew(os.Args[2], os.Args[3:])
	case "init":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: folio init <dir> [name]")
			os.Exit(1)
		}
		name := ""
		if len(os.Args) > 3 {
			name = os.Args[3]
		}
		err = runInit(os.Args[2], name)
	case "version":
		fmt.Printf("folio %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`folio - A portfolio and markdown blog server built with Go, Echo, and templ

Usage:
  folio <command> [arguments]

Commands:
  serve               Serve the site (content from CONTENT_DIR or the built-in set)
  list [tag]          List posts in display order
  show <slug>         Print one post's metadata and body
  new <title> [tags]  Write a post skeleton to CONTENT_DIR/posts
  init <dir> [name]   Create a starter content directory
  version             Print the folio version
  help                Show this help message

Environment:
  SITE_NAME, SITE_URL, SITE_DESCRIPTION, SITE_AUTHOR, ADDR, LOG_LEVEL, CONTENT_DIR
  are read from the environment or a .env file in the working directory.

Examples:
  folio init mysite "Ada Example"
  CONTENT_DIR=mysite folio serve
  folio new "Notes on Go generics" go notes`)
}
