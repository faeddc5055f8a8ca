package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Snapshot holds the result of one combined fetch of the public collections.
// Each collection is fetched independently, so some slices may be populated
// even when Err is non-nil. Err aggregates the failures.
type Snapshot struct {
	Projects  []Project
	Skills    []Skill
	Education []Education
	Err       error
}

// Loader fetches all public collections exactly once and caches the result.
// Every call to Load after the first returns the cached snapshot, including
// a failed one. Use a fresh Loader to retry.
type Loader struct {
	client  *Client
	once    sync.Once
	settled atomic.Bool
	snap    Snapshot
}

// NewLoader returns a Loader backed by c.
func NewLoader(c *Client) *Loader {
	return &Loader{client: c}
}

// Settled reports whether the one-shot fetch has completed.
func (l *Loader) Settled() bool {
	return l.settled.Load()
}

// Load performs the fetch on first call and returns the cached snapshot on
// every call after that. The three collections are requested concurrently.
func (l *Loader) Load(ctx context.Context) Snapshot {
	l.once.Do(func() {
		var wg sync.WaitGroup
		var projErr, skillErr, eduErr error
		wg.Add(3)
		go func() {
			defer wg.Done()
			l.snap.Projects, projErr = l.client.Projects(ctx, nil)
		}()
		go func() {
			defer wg.Done()
			l.snap.Skills, skillErr = l.client.Skills(ctx, "")
		}()
		go func() {
			defer wg.Done()
			l.snap.Education, eduErr = l.client.Education(ctx)
		}()
		wg.Wait()
		l.snap.Err = errors.Join(projErr, skillErr, eduErr)
		l.settled.Store(true)
	})
	return l.snap
}
