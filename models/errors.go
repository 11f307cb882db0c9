package models

import "fmt"

// FetchError marks an HTTP-level failure for a single piece of content.
// Traversal treats it as transient: the item is skipped, the run continues.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s, status code: %d", e.URL, e.StatusCode)
}
