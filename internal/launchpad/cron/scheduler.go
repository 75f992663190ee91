package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/itsshubhpandey/LaunchPad/internal/launchpad/service"
)

// Scheduler runs the periodic background jobs: today that is warming
// the exchange token-list cache so ListTokens has a fallback when the
// exchange is down.
type Scheduler struct {
	svc *service.LaunchpadService
	c   *cron.Cron
}

func NewScheduler(svc *service.LaunchpadService) *Scheduler {
	return &Scheduler{svc: svc}
}

// Start initializes cron tasks.
func (s *Scheduler) Start() {
	s.c = cron.New(cron.WithSeconds())

	// every 10 minutes
	_, err := s.c.AddFunc("0 */10 * * * *", func() {
		refreshTokenList(s.svc)
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (token list refresh every 10m)")
	s.c.Start()
}

// Stop halts the scheduler; running jobs finish first.
func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}

func refreshTokenList(svc *service.LaunchpadService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := svc.RefreshTokens(ctx); err != nil {
		log.Printf("Token list refresh failed: %v", err)
		return
	}
	log.Println("Token list refreshed at:", time.Now().Format(time.RFC1123))
}
