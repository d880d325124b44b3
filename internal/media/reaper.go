package media

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Reap removes staged files whose mtime is older than the grace period.
// Files younger than the grace period are always spared, which is what keeps
// URLs handed to in-flight responses fetchable.
func (s *Store) Reap(now time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	cutoff := now.Add(-s.grace)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

// StartReaper runs Reap on an interval until the context is cancelled.
func (s *Store) StartReaper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				removed, err := s.Reap(now)
				if err != nil {
					s.log.Error().Err(err).Msg("staging reap failed")
					continue
				}
				if removed > 0 {
					s.log.Debug().Int("removed", removed).Msg("reaped staged media")
				}
			}
		}
	}()
}
