package tiddlersplit

import "regexp"

// titlePattern finds a front matter title field anywhere in a record.
// Either quote style is accepted and the value ends at the first matching
// quote on the same line.
var titlePattern = regexp.MustCompile(`(?i)title:[ \t]*(?:"([^"\r\n]*)"|'([^'\r\n]*)')`)

// ExtractTitle returns the quoted value of the first title field in record.
// The key is matched case-insensitively and need not start a line.
// The value may be empty; SanitizeFilename rejects it afterwards.
func ExtractTitle(record string) (string, error) {
	m := titlePattern.FindStringSubmatchIndex(record)
	if m == nil {
		return "", ErrMissingTitle
	}
	// Groups 1 and 2 hold the double- and single-quoted alternatives.
	if m[2] >= 0 {
		return record[m[2]:m[3]], nil
	}
	return record[m[4]:m[5]], nil
}
