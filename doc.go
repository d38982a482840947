// Package tiddlersplit splits a concatenated TiddlyWiki Markdown export into
// one Markdown file per tiddler.
//
// # Quick Start
//
// Create a splitter and run it against the default paths:
//
//	s, err := tiddlersplit.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := s.Run(ctx)
//	if err != nil {
//	    log.Fatalf("%v (wrote %d files first)", err, len(res.Written))
//	}
//
// Run reads tiddlers.md and writes tiddlers/<title>.md for each tiddler.
//
// # Pipeline
//
// Each record goes through these stages, in document order:
//
//  1. Split: the document is cut on every literal \newpage marker
//  2. Title: the first quoted title: field is extracted (ErrMissingTitle if none)
//  3. Name: illegal file name characters are replaced, spaces collapsed,
//     outer dots and whitespace stripped (ErrInvalidTitle if nothing is left)
//  4. Write: the trimmed record is written to <name>.md, overwriting
//
// The first failing record stops the run. Files already written are kept,
// and the returned Result lists them alongside the index of the failing record.
//
// # Configuration
//
// Use functional options to customize the splitter:
//
//	s, err := tiddlersplit.New(
//	    tiddlersplit.WithInputPath("export.md"),
//	    tiddlersplit.WithOutputDir("notes"),
//	    tiddlersplit.WithHTML(true),
//	    tiddlersplit.WithLogger(hclog.Default()),
//	)
//
// WithFs accepts any afero.Fs; tests use afero.NewMemMapFs.
//
// # HTML Previews
//
// With WithHTML(true), every tiddler is also rendered to <name>.html through
// Goldmark. Front matter is shown as a small header instead of body text.
package tiddlersplit
