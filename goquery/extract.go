// Package goquery implements linkcheck.AnchorExtractor using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkcheck"
)

var _ linkcheck.AnchorExtractor = (*AnchorExtractor)(nil)

// AnchorExtractor pulls href values out of anchor elements.
type AnchorExtractor struct{}

// NewAnchorExtractor creates a new AnchorExtractor.
func NewAnchorExtractor() *AnchorExtractor {
	return &AnchorExtractor{}
}

// ExtractHrefs returns the href of every <a> element that has one, in
// document order. Values are returned exactly as written in the markup.
func (e *AnchorExtractor) ExtractHrefs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, linkcheck.Errorf(linkcheck.EINVALID, "failed to parse HTML: %v", err)
	}

	hrefs := []string{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, nil
}
