// Package lexcrawl enumerates the vocabulary behind a prefix-matching
// autocomplete endpoint. The endpoint exposes no bulk export, only a
// rate-limited, result-capped query lookup, so the crawler discovers
// terms by systematic prefix expansion: seed with every single-character
// prefix, fetch each, and refine prefixes whose results suggest more
// matches are hidden beyond the per-query cap.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., http/, sqlite/, crawl/).
package lexcrawl
