package theme

import (
	"context"
	"sync"
	"time"

	"esim_portal_backend/platform/config"
	"esim_portal_backend/platform/logger"
)

// Switcher tracks the active theme and re-evaluates it on an interval so a
// long-running process flips themes at the window edges without a restart.
type Switcher struct {
	start    time.Time
	end      time.Time
	interval time.Duration
	now      func() time.Time
	log      *logger.Logger

	mu      sync.RWMutex
	current ID
}

// NewSwitcher creates a switcher for the configured seasonal window.
func NewSwitcher(cfg config.ThemeConfig, log *logger.Logger) *Switcher {
	return newSwitcher(cfg, log, time.Now)
}

func newSwitcher(cfg config.ThemeConfig, log *logger.Logger, now func() time.Time) *Switcher {
	s := &Switcher{
		start:    cfg.GetThemeSeasonalStart(),
		end:      cfg.GetThemeSeasonalEnd(),
		interval: cfg.GetThemeCheckInterval(),
		now:      now,
		log:      log,
	}
	s.current = ActiveTheme(now(), s.start, s.end)
	return s
}

// Current returns the theme decided by the most recent check.
func (s *Switcher) Current() ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Check re-evaluates the active theme and logs a switch.
func (s *Switcher) Check() ID {
	next := ActiveTheme(s.now(), s.start, s.end)

	s.mu.Lock()
	prev := s.current
	s.current = next
	s.mu.Unlock()

	if prev != next {
		s.log.ThemeSwitched(string(prev), string(next))
	}
	return next
}

// Status reports the current theme and, while seasonal, the time left.
func (s *Switcher) Status() StatusResponse {
	current := s.Current()
	resp := StatusResponse{
		Theme:      current,
		IsSeasonal: current == Seasonal26,
	}
	if resp.IsSeasonal {
		resp.TimeUntilReversion = TimeUntil(s.now(), s.end)
	}
	return resp
}

// Run re-checks the theme every interval until ctx is cancelled.
func (s *Switcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("theme watcher started", "theme", string(s.Current()), "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Check()
		}
	}
}
