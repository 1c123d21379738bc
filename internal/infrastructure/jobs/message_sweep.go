package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"whalebyte.core/pkg/logger"
)

// ExpiredSweeper durably clears messages whose self-destruct instant passed.
type ExpiredSweeper interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

// MessageSweepJob periodically runs the self-destruct sweep so expired
// message content does not linger in storage longer than one interval.
type MessageSweepJob struct {
	sweeper  ExpiredSweeper
	interval time.Duration
	stop     chan struct{}
}

func NewMessageSweepJob(sweeper ExpiredSweeper, interval time.Duration) *MessageSweepJob {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &MessageSweepJob{
		sweeper:  sweeper,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *MessageSweepJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting message sweep job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "message sweep job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "message sweep job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *MessageSweepJob) Stop() {
	close(j.stop)
}

func (j *MessageSweepJob) sweep(ctx context.Context) {
	count, err := j.sweeper.SweepExpired(ctx, time.Now())
	if err != nil {
		logger.Error(ctx, "message sweep failed", zap.Error(err))
		return
	}
	if count > 0 {
		logger.Info(ctx, "message sweep cleared expired messages", zap.Int("count", count))
	}
}
