package mock

import "github.com/fwojciec/linkcheck"

var _ linkcheck.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor is a mock implementation of linkcheck.AnchorExtractor.
type AnchorExtractor struct {
	ExtractHrefsFn func(html string) ([]string, error)
}

func (e *AnchorExtractor) ExtractHrefs(html string) ([]string, error) {
	return e.ExtractHrefsFn(html)
}
