package linkcheck

// LinkResult is the verified outcome of a single discovered link.
// Status is nil when every check attempt failed at the transport level;
// HTTP error responses are recorded with their numeric code.
type LinkResult struct {
	URL    string `json:"url"`
	Status *int   `json:"status"`
	OK     bool   `json:"ok"`
}

// NewLinkResult returns a LinkResult for url with OK derived from status.
func NewLinkResult(url string, status *int) *LinkResult {
	return &LinkResult{
		URL:    url,
		Status: status,
		OK:     status != nil && *status < 400,
	}
}

// StatusCode returns a pointer to code for use as LinkResult.Status.
func StatusCode(code int) *int {
	return &code
}

// Reachable reports whether any status was obtained for the link.
func (r *LinkResult) Reachable() bool {
	return r.Status != nil
}
