// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/leads-report/dataset"
)

// Fetcher is anything that can produce the raw sheet
type Fetcher interface {
	Fetch(ctx context.Context) (*dataset.Frame, error)
}

// Snapshot is a fetched frame and the time it was read
type Snapshot struct {
	Frame     *dataset.Frame
	FetchedAt time.Time
}

// Loader caches the sheet for ttl and collapses concurrent fetches.
// A ttl of zero refetches on every Load.
type Loader struct {
	src   Fetcher
	ttl   time.Duration
	group singleflight.Group
	now   func() time.Time

	mu     sync.Mutex
	cached *Snapshot
}

func NewLoader(src Fetcher, ttl time.Duration) *Loader {
	return &Loader{src: src, ttl: ttl, now: time.Now}
}

// Load returns a private copy of the current sheet
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	if snap, ok := l.fresh(); ok {
		return snap, nil
	}

	// The fetch is shared by every waiting caller, so one caller going away
	// must not cancel it; the client timeout still bounds it
	fetchCtx := context.WithoutCancel(ctx)
	v, err, shared := l.group.Do("sheet", func() (interface{}, error) {
		frame, err := l.src.Fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		snap := &Snapshot{Frame: frame, FetchedAt: l.now()}

		l.mu.Lock()
		l.cached = snap
		l.mu.Unlock()

		rows, cols := frame.Shape()
		slog.Info("sheet loaded", "rows", rows, "columns", cols)
		return snap, nil
	})
	if err != nil {
		slog.Error("sheet load failed", "error", err, "shared", shared)
		return Snapshot{}, err
	}

	snap := v.(*Snapshot)
	return Snapshot{Frame: snap.Frame.Clone(), FetchedAt: snap.FetchedAt}, nil
}

// Invalidate drops the cached sheet so the next Load refetches
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.cached = nil
	l.mu.Unlock()
}

func (l *Loader) fresh() (Snapshot, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached == nil || l.ttl <= 0 {
		return Snapshot{}, false
	}
	if l.now().Sub(l.cached.FetchedAt) >= l.ttl {
		return Snapshot{}, false
	}
	return Snapshot{Frame: l.cached.Frame.Clone(), FetchedAt: l.cached.FetchedAt}, true
}
