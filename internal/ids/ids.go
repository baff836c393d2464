package ids

import "github.com/segmentio/ksuid"

// New returns a sortable, URL-safe identifier for a stored record.
func New() string {
	return ksuid.New().String()
}
