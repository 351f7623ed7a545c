package linkcheck

// AnchorExtractor extracts hyperlink targets from HTML.
type AnchorExtractor interface {
	// ExtractHrefs returns the raw href attribute of every anchor element in
	// document order. Values are neither trimmed nor resolved.
	ExtractHrefs(html string) ([]string, error)
}
