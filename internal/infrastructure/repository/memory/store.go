// Package memory is the in-process store backing the directory when no
// database is configured. All repositories share one Store.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/seed"
)

// Latency is an artificial per-operation delay used to mimic a remote backend.
type Latency struct {
	ListSuppliers  time.Duration
	GetSupplier    time.Duration
	SaveSupplier   time.Duration
	DeleteSupplier time.Duration
	AddReview      time.Duration
	Login          time.Duration
	Users          time.Duration
	Profile        time.Duration
	Categories     time.Duration
	Settings       time.Duration
}

// DefaultLatency mirrors the delays of the hosted backend the UI was built against.
func DefaultLatency() Latency {
	return Latency{
		ListSuppliers:  150 * time.Millisecond,
		GetSupplier:    100 * time.Millisecond,
		SaveSupplier:   400 * time.Millisecond,
		DeleteSupplier: 300 * time.Millisecond,
		AddReview:      800 * time.Millisecond,
		Login:          400 * time.Millisecond,
		Users:          300 * time.Millisecond,
		Profile:        500 * time.Millisecond,
		Categories:     100 * time.Millisecond,
		Settings:       100 * time.Millisecond,
	}
}

// Store owns every in-memory collection. It is created once at startup and
// handed to the repositories.
type Store struct {
	mu         sync.RWMutex
	suppliers  []entity.Supplier
	users      []entity.User
	categories []string
	cities     entity.CityData
	settings   entity.AppSettings
	latency    Latency
}

// NewStore copies ds into a new store. A nil dataset yields an empty store
// with default settings.
func NewStore(ds *seed.Dataset, latency Latency) *Store {
	if ds == nil {
		ds = seed.Empty()
	}
	s := &Store{
		suppliers:  make([]entity.Supplier, 0, len(ds.Suppliers)),
		users:      append([]entity.User{}, ds.Users...),
		categories: append([]string{}, ds.Categories...),
		cities:     ds.Cities.Clone(),
		settings:   entity.DefaultSettings(),
		latency:    latency,
	}
	for _, sup := range ds.Suppliers {
		s.suppliers = append(s.suppliers, sup.Clone())
	}
	if ds.Settings != nil {
		s.settings = *ds.Settings
	}
	return s
}

// wait sleeps for d unless ctx ends first.
func (s *Store) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
