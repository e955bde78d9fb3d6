package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs JobRunner methods on cron schedules.
type Scheduler struct {
	cron *cron.Cron
	jobs *JobRunner
}

// NewScheduler registers both jobs. An empty schedule disables that job.
func NewScheduler(runner *JobRunner, cacheWarmSpec, statsSpec string) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		jobs: runner,
	}
	if cacheWarmSpec != "" {
		if _, err := s.cron.AddFunc(cacheWarmSpec, runner.WarmSupplierCache); err != nil {
			return nil, fmt.Errorf("invalid cache warm schedule %q: %w", cacheWarmSpec, err)
		}
	}
	if statsSpec != "" {
		if _, err := s.cron.AddFunc(statsSpec, runner.RecordDirectoryStats); err != nil {
			return nil, fmt.Errorf("invalid stats schedule %q: %w", statsSpec, err)
		}
	}
	return s, nil
}

// Start begins running jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Entries is the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
