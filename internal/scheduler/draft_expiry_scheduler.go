package scheduler

import (
	"context"
	"time"

	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DraftExpiryScheduler periodically reclaims draft slots that have not been
// touched for longer than the configured TTL.
type DraftExpiryScheduler struct {
	cron      *cron.Cron
	draftRepo repository.DraftRepository
	schedule  string
	ttl       time.Duration
}

func NewDraftExpiryScheduler(draftRepo repository.DraftRepository, schedule string, ttl time.Duration) *DraftExpiryScheduler {
	return &DraftExpiryScheduler{
		cron:      cron.New(),
		draftRepo: draftRepo,
		schedule:  schedule,
		ttl:       ttl,
	}
}

func (s *DraftExpiryScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		logger.Info("Starting stale draft sweep", map[string]interface{}{
			"ttl": s.ttl.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		removed, err := s.draftRepo.SweepStale(ctx, s.ttl)
		if err != nil {
			logger.Error("Stale draft sweep failed", err, map[string]interface{}{
				"removed": removed,
			})
			return
		}

		logger.Info("Stale draft sweep completed", map[string]interface{}{
			"removed": removed,
		})
	})

	if err != nil {
		logger.Error("Failed to register draft sweep job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Draft expiry scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})

	return nil
}

func (s *DraftExpiryScheduler) Stop() {
	logger.Info("Stopping draft expiry scheduler...")
	s.cron.Stop()
}
