package interest

import (
	"context"
	"time"

	"lending/core"
	"lending/pkg/lending"
	"lending/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Worker interest worker
//
// settles accrued borrow interest into every pool on a fixed schedule so
// that pool totals never drift too far from the live index
type Worker struct {
	worker.BaseJob
	Config    *core.Config
	DB        *db.DB
	PoolStore core.IPoolStore
}

// New new interest worker
func New(cfg *core.Config, database *db.DB, poolStore core.IPoolStore) *Worker {
	job := Worker{
		Config:    cfg,
		DB:        database,
		PoolStore: poolStore,
	}

	l, _ := time.LoadLocation(job.Config.App.Location)
	job.Cron = cron.New(cron.WithLocation(l))
	spec := job.Config.App.AccrualInterval
	if spec == "" {
		spec = "@every 10s"
	}
	job.Cron.AddFunc(spec, job.Run)
	job.OnWork = func() error {
		return job.onWork(context.Background())
	}

	return &job
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "interest")
	ctx = logger.WithContext(ctx, log)

	pools, e := w.PoolStore.All(ctx)
	if e != nil {
		log.Errorln(e)
		return e
	}

	var g errgroup.Group
	for _, pool := range pools {
		assetID := pool.AssetID
		g.Go(func() error {
			return w.settlePool(ctx, assetID)
		})
	}

	if err := g.Wait(); err != nil {
		log.Errorln(err)
		return err
	}

	return nil
}

func (w *Worker) settlePool(ctx context.Context, assetID string) error {
	log := logger.FromContext(ctx).WithField("asset", assetID)

	return w.DB.Tx(func(tx *db.DB) error {
		// re-read inside the tx, the snapshot from All may be stale
		pool, err := w.PoolStore.Find(ctx, assetID)
		if err != nil {
			return err
		}

		now := time.Now()
		borrowed := pool.TotalBorrowed

		if err := lending.AccrueInterest(pool, now); err != nil {
			return err
		}

		if err := w.PoolStore.Update(ctx, tx, pool); err != nil {
			return err
		}

		if interest := pool.TotalBorrowed.Sub(borrowed); interest.IsPositive() {
			log.Debugln("accrued interest:", interest)
		}

		return nil
	})
}
