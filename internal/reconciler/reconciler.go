package reconciler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type linkageRepairer interface {
	Reconcile(ctx context.Context) ([]string, error)
}

// Reconciler periodically restores the arena/booking linkage invariant:
// an occupied arena must reference an existing booking document.
type Reconciler struct {
	bookingService linkageRepairer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService linkageRepairer,
	interval time.Duration,
	logger logger.Logger,
) *Reconciler {
	return &Reconciler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reconciler) tick(ctx context.Context) {
	released, err := r.bookingService.Reconcile(ctx)
	if err != nil {
		r.logger.Error("failed to reconcile arena bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range released {
		r.logger.Info("arena released",
			logger.String("arena_id", id),
		)
	}
}
