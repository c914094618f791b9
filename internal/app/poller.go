package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/viewstate"
)

// maxBackoff caps the wait between refreshes while the list keeps failing.
const maxBackoff = 5 * time.Minute

// refreshTarget is the part of the list screen the refresher drives.
type refreshTarget interface {
	Refresh(ctx context.Context)
	Snapshot() viewstate.Snapshot[[]photos.Photo]
}

// StartRefresher launches a background goroutine that refreshes target every
// interval, backing off while it is failing. It returns immediately and stops
// when ctx is cancelled.
func StartRefresher(ctx context.Context, target refreshTarget, interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		return
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			target.Refresh(ctx)
			snap := target.Snapshot()
			wait := calculateBackoff(snap.ConsecutiveFailures, interval)
			if snap.ConsecutiveFailures > 0 {
				logger.Warn().
					Int("failures", snap.ConsecutiveFailures).
					Dur("next", wait).
					Msg("auto refresh failed")
			}
			timer.Reset(wait)
		}
	}()
}

// calculateBackoff returns base doubled once per consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
