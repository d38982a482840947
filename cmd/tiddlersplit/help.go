package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tiddlersplit [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split a concatenated TiddlyWiki Markdown export into one file per tiddler.")
	fmt.Fprintln(w, "With no flags, reads tiddlers.md and writes tiddlers/<title>.md.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <path>        Export to split (default: tiddlers.md)")
	fmt.Fprintln(w, "  -o, --output <dir>        Folder for tiddler files (default: tiddlers)")
	fmt.Fprintln(w, "  -d, --delimiter <s>       Literal record separator (default: \\newpage)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html                Also write <title>.html previews")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log every file written")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success    2  usage/config    3  file I/O    4  tiddler without usable title")
}
