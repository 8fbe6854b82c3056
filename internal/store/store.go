// Package store persists fetched filing documents and a log of processing
// runs in a local SQLite database. The document cache keeps repeated runs
// from re-downloading the same filings.
package store

import (
	"time"
)

// Run statuses.
const (
	RunStatusRunning  = "running"
	RunStatusComplete = "complete"
	RunStatusFailed   = "failed"
)

// Run is one processing run for one organization page.
type Run struct {
	ID           string
	Organization string
	Form         string
	Filings      int
	Status       string
	StartedAt    time.Time
	FinishedAt   *time.Time
}

// CacheStats summarizes the document cache.
type CacheStats struct {
	Documents int
	Bytes     int64
}
