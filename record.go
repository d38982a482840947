package tiddlersplit

import "strings"

// SplitRecords cuts document on every literal occurrence of delimiter.
// A document with N delimiters yields N+1 records; empty records at either
// end are kept. An empty delimiter yields the whole document as one record.
func SplitRecords(document, delimiter string) []Record {
	if delimiter == "" {
		return []Record{{Index: 0, Text: document}}
	}

	parts := strings.Split(document, delimiter)
	records := make([]Record, len(parts))
	for i, p := range parts {
		records[i] = Record{Index: i, Text: p}
	}
	return records
}
