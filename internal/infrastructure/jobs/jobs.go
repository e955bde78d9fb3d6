// Package jobs holds the periodic background work of the API process.
package jobs

import (
	"context"
	"time"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

const jobTimeout = 30 * time.Second

type supplierCacheWarmer interface {
	RefreshSupplierCache(ctx context.Context) (int, error)
}

type statsProvider interface {
	DashboardStats(ctx context.Context) (entity.DashboardStats, error)
}

// JobRunner executes the scheduled jobs.
type JobRunner struct {
	suppliers supplierCacheWarmer
	stats     statsProvider
	logger    usecasecontract.IAppLogger
}

func NewJobRunner(suppliers supplierCacheWarmer, stats statsProvider, logger usecasecontract.IAppLogger) *JobRunner {
	return &JobRunner{suppliers: suppliers, stats: stats, logger: logger}
}

// WarmSupplierCache rewrites the cached supplier list from the store so the
// next directory request is a hit even if the previous entry expired.
func (r *JobRunner) WarmSupplierCache() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	n, err := r.suppliers.RefreshSupplierCache(ctx)
	if err != nil {
		r.logger.Errorf("cache warm-up failed: %v", err)
		return
	}
	r.logger.Debugf("cache warm-up stored %d suppliers in %s", n, time.Since(start))
}

// RecordDirectoryStats publishes the dashboard counters to prometheus.
func (r *JobRunner) RecordDirectoryStats() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	stats, err := r.stats.DashboardStats(ctx)
	if err != nil {
		r.logger.Errorf("directory stats job failed: %v", err)
		return
	}
	metrics.SetDirectoryTotals(stats)
	r.logger.Infof("directory stats: suppliers=%d users=%d banned=%d", stats.Suppliers, stats.Users, stats.BannedUsers)
}
