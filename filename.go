package tiddlersplit

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// Characters that are illegal or unwise in file names on common filesystems.
	illegalFileChars = regexp.MustCompile(`[\[\]#<>:*?|^/"\\\t\r\n]`)

	// Runs of spaces left behind by replacing adjacent illegal characters.
	multipleSpaces = regexp.MustCompile(` {2,}`)
)

// SanitizeFilename turns a tiddler title into a file name without extension.
// Illegal characters become spaces, space runs collapse to one, and leading
// or trailing whitespace and dots are stripped. The function is idempotent.
func SanitizeFilename(title string) (string, error) {
	name := illegalFileChars.ReplaceAllString(title, " ")
	name = multipleSpaces.ReplaceAllString(name, " ")
	name = strings.TrimFunc(name, isStrippable)
	if name == "" {
		return "", ErrInvalidTitle
	}
	return name, nil
}

func isStrippable(r rune) bool {
	return r == '.' || unicode.IsSpace(r)
}
