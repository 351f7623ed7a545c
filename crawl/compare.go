package crawl

import "github.com/fwojciec/linkcheck"

// CompareReports describes how link health changed from before to after.
// Links are matched by URL. A link that went from ok to not ok is reported in
// Broke, the reverse in Fixed, and any other status change in Changed.
func CompareReports(before, after *linkcheck.Report) *linkcheck.ReportDiff {
	diff := &linkcheck.ReportDiff{}

	// Identical digests mean identical ordered links and statuses.
	if before.Digest != "" && before.Digest == after.Digest {
		diff.Unchanged = true
		return diff
	}

	old := make(map[string]*linkcheck.LinkResult, len(before.Links))
	for _, l := range before.Links {
		old[l.URL] = l
	}

	current := make(map[string]struct{}, len(after.Links))
	for _, l := range after.Links {
		current[l.URL] = struct{}{}

		prev, ok := old[l.URL]
		if !ok {
			diff.Added = append(diff.Added, l)
			continue
		}
		if statusEqual(prev.Status, l.Status) {
			continue
		}

		change := linkcheck.LinkChange{URL: l.URL, Before: prev.Status, After: l.Status}
		switch {
		case prev.OK && !l.OK:
			diff.Broke = append(diff.Broke, change)
		case !prev.OK && l.OK:
			diff.Fixed = append(diff.Fixed, change)
		default:
			diff.Changed = append(diff.Changed, change)
		}
	}

	for _, l := range before.Links {
		if _, ok := current[l.URL]; !ok {
			diff.Removed = append(diff.Removed, l)
		}
	}

	diff.Unchanged = len(diff.Added) == 0 &&
		len(diff.Removed) == 0 &&
		len(diff.Broke) == 0 &&
		len(diff.Fixed) == 0 &&
		len(diff.Changed) == 0
	return diff
}

func statusEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
