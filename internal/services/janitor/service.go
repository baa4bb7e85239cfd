// -----------------------------------------------------------------------
// Janitor Service - Sweeps orphaned scratch directories from the data root
// Normal requests clean up after themselves; the janitor catches what a
// crashed or killed process left behind
// -----------------------------------------------------------------------

package janitor

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/figura/internal/common"
)

// Service periodically removes stale scratch directories. Only
// directories whose name is a workspace id are touched, so foreign
// content under the data root (mounted PDFs, operator files) survives.
type Service struct {
	config  common.JanitorConfig
	dataDir string
	cron    *cron.Cron
	logger  arbor.ILogger
	mu      sync.Mutex
	running bool
}

// NewService creates a new janitor for the given data root
func NewService(config common.JanitorConfig, dataDir string, logger arbor.ILogger) *Service {
	return &Service{
		config:  config,
		dataDir: dataDir,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start schedules periodic sweeps. A disabled janitor starts as a no-op.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.config.Enabled {
		s.logger.Info().Msg("Janitor disabled")
		return nil
	}
	if s.running {
		return fmt.Errorf("janitor already running")
	}

	schedule := s.config.Schedule
	if schedule == "" {
		schedule = "*/15 * * * *" // Default: every 15 minutes
	}

	_, err := s.cron.AddFunc(schedule, func() {
		removed, err := s.SweepNow()
		if err != nil {
			s.logger.Warn().Err(err).Msg("Scratch sweep failed")
			return
		}
		if removed > 0 {
			s.logger.Info().Int("removed", removed).Msg("Removed orphaned scratch directories")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule janitor: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info().
		Str("schedule", schedule).
		Dur("max_age", s.maxAge()).
		Msg("Janitor started")

	return nil
}

// Stop halts scheduled sweeps and waits for an in-flight sweep to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false

	s.logger.Info().Msg("Janitor stopped")
}

// SweepNow removes workspace directories older than the configured max
// age and returns how many were removed. The age threshold stays well
// above the extraction timeout so an in-flight request can never qualify.
func (s *Service) SweepNow() (int, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read data root %s: %w", s.dataDir, err)
	}

	cutoff := time.Now().Add(-s.maxAge())
	removed := 0

	for _, entry := range entries {
		if !entry.IsDir() || !common.IsWorkspaceID(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		dir := filepath.Join(s.dataDir, entry.Name())
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Warn().Err(err).Str("dir", dir).Msg("Failed to remove scratch directory")
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *Service) maxAge() time.Duration {
	if s.config.MaxAge <= 0 {
		return 1 * time.Hour
	}
	return time.Duration(s.config.MaxAge)
}
