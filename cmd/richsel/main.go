// Richsel lays out a Markdown document and answers selection queries
// against the layout: hit testing, range selection, text extraction and
// plumbing of links.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "richsel:", err)
		os.Exit(1)
	}
}
