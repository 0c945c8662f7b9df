package worker

import (
	"context"
	"log/slog"
	"time"

	"maple/config"
	"maple/internal/usecase"

	"go.uber.org/fx"
)

const defaultReconcileInterval = 5 * time.Minute

// Reconciler periodically re-settles succeeded payments that never got an
// order and expires stale earned points. It runs inside the worker binary so
// the sweep survives API restarts.
type Reconciler struct {
	interval   time.Duration
	logger     *slog.Logger
	checkoutUC usecase.CheckoutUsecase
	pointsUC   usecase.PointsUsecase

	cancel context.CancelFunc
	done   chan struct{}
}

// ReconcilerParams holds dependencies for the Reconciler
type ReconcilerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	CheckoutUC usecase.CheckoutUsecase
	PointsUC   usecase.PointsUsecase
}

// NewReconciler creates the periodic settlement sweep and registers its
// lifecycle hooks.
func NewReconciler(params ReconcilerParams) *Reconciler {
	interval := defaultReconcileInterval
	if params.Cfg.Reconcile != nil && params.Cfg.Reconcile.Interval > 0 {
		interval = params.Cfg.Reconcile.Interval
	}

	r := &Reconciler{
		interval:   interval,
		logger:     params.Logger,
		checkoutUC: params.CheckoutUC,
		pointsUC:   params.PointsUC,
		done:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runCtx, cancel := context.WithCancel(context.Background())
			r.cancel = cancel
			go r.run(runCtx)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			r.cancel()
			select {
			case <-r.done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return r
}

// run sweeps on a fixed interval until the context is cancelled.
func (r *Reconciler) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("[Worker] Reconciler started", slog.Duration("interval", r.interval))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("[Worker] Reconciler stopped")

			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

// sweep runs one reconciliation pass. Failures are logged and retried on the
// next tick rather than aborting the loop.
func (r *Reconciler) sweep(ctx context.Context) {
	settled, err := r.checkoutUC.ReconcileUnsettled(ctx)
	if err != nil {
		r.logger.Error("[Worker] Payment reconciliation failed", slog.Any("error", err))
	} else if settled > 0 {
		r.logger.Info("[Worker] Reconciled unsettled payments", slog.Int("settled", settled))
	}

	expired, err := r.pointsUC.ExpireOldPoints(ctx)
	if err != nil {
		r.logger.Error("[Worker] Points expiry failed", slog.Any("error", err))
	} else if expired > 0 {
		r.logger.Info("[Worker] Expired stale points", slog.Int("users", expired))
	}
}
