package jobs

import (
	"context"
	"time"

	"pharma-place/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	SweepSchedule = "@every 5m"
	sweepTimeout  = time.Minute
)

// CartSweeper settles payments whose cart lines were not removed at checkout.
type CartSweeper interface {
	SweepPendingCleanups(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron *cron.Cron
}

// NewScheduler registers the background jobs without starting them.
func NewScheduler(sweeper CartSweeper) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(SweepSchedule, SweepOnce(sweeper)); err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.L().Info("background jobs started", zap.String("cart_sweep", SweepSchedule))
}

// Stop waits for any running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		logger.L().Warn("background jobs did not stop in time")
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// SweepOnce returns the job body run by the scheduler.
func SweepOnce(sweeper CartSweeper) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		settled, err := sweeper.SweepPendingCleanups(ctx)
		if err != nil {
			logger.L().Error("cart cleanup sweep failed", zap.Error(err))
			return
		}
		if settled > 0 {
			logger.L().Info("cart cleanup sweep settled payments", zap.Int("count", settled))
		}
	}
}
