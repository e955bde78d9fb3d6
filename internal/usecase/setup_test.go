package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/config"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/logger"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/seed"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/validator"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

// fixture wires every use case against one seeded in-memory store.
type fixture struct {
	store      *memory.Store
	suppliers  *memory.SupplierRepository
	users      *memory.UserRepository
	categories *memory.CategoryRepository
	settings   *memory.SettingsRepository
	cities     *memory.CityRepository
	cfg        *config.Config
	jwtService usecase.JWTService
	supplierUC *usecase.SupplierUseCase
	authUC     *usecase.AuthUseCase
	userUC     *usecase.UserUsecase
	adminUC    *usecase.AdminUseCase
	locationUC *usecase.LocationUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, seed.Default())
}

func newFixtureWith(t *testing.T, ds *seed.Dataset) *fixture {
	t.Helper()
	return newFixtureOn(t, memory.NewStore(ds, memory.Latency{}))
}

func newFixtureOn(t *testing.T, store *memory.Store) *fixture {
	t.Helper()
	f := &fixture{store: store}
	f.suppliers = memory.NewSupplierRepository(f.store)
	f.users = memory.NewUserRepository(f.store)
	f.categories = memory.NewCategoryRepository(f.store)
	f.settings = memory.NewSettingsRepository(f.store)
	f.cities = memory.NewCityRepository(f.store)
	f.cfg = &config.Config{
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: time.Hour,
	}

	log := logger.NewNopLogger()
	v := validator.NewValidator()
	ids := uuidgen.NewGenerator()
	f.jwtService = jwt.NewJWTService(jwt.NewJWTManager("test-secret", f.cfg.AccessTokenExpiry, f.cfg.RefreshTokenExpiry))

	f.locationUC = usecase.NewLocationUseCase(f.cities, log)
	f.supplierUC = usecase.NewSupplierUseCase(f.suppliers, f.settings, f.locationUC, v, ids, log)
	f.authUC = usecase.NewAuthUseCase(f.users, f.settings, f.jwtService, v, ids, log, f.cfg)
	f.userUC = usecase.NewUserUsecase(f.users, log, v)
	f.adminUC = usecase.NewAdminUseCase(f.categories, f.settings, f.suppliers, f.users, log)
	return f
}

func (f *fixture) user(t *testing.T, id string) *entity.User {
	t.Helper()
	u, err := f.users.GetUserByID(context.Background(), id)
	if err != nil || u == nil {
		t.Fatalf("seed user %s missing: %v", id, err)
	}
	return u
}

func (f *fixture) setSettings(t *testing.T, s entity.AppSettings) {
	t.Helper()
	if err := f.settings.ReplaceSettings(context.Background(), s); err != nil {
		t.Fatal(err)
	}
}

// mapCache is an in-process ISupplierCache that counts lookups.
type mapCache struct {
	mu          sync.Mutex
	details     map[string]entity.Supplier
	list        []entity.Supplier
	hasList     bool
	listHits    int
	invalidated int
}

func newMapCache() *mapCache {
	return &mapCache{details: map[string]entity.Supplier{}}
}

func (c *mapCache) GetSupplier(ctx context.Context, id string) (*entity.Supplier, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.details[id]
	if !ok {
		return nil, false, nil
	}
	return &s, true, nil
}

func (c *mapCache) SetSupplier(ctx context.Context, s *entity.Supplier) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.details[s.ID] = s.Clone()
	return nil
}

func (c *mapCache) InvalidateSupplier(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.details, id)
	c.invalidated++
	return nil
}

func (c *mapCache) GetSupplierList(ctx context.Context) ([]entity.Supplier, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasList {
		return nil, false, nil
	}
	c.listHits++
	return append([]entity.Supplier(nil), c.list...), true, nil
}

func (c *mapCache) SetSupplierList(ctx context.Context, list []entity.Supplier) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append([]entity.Supplier(nil), list...)
	c.hasList = true
	return nil
}

func (c *mapCache) InvalidateSupplierLists(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = nil
	c.hasList = false
	return nil
}

// supplierUCOn builds a SupplierUseCase over repo that shares the fixture's
// settings and location data.
func (f *fixture) supplierUCOn(repo contract.ISupplierRepository, log usecasecontract.IAppLogger) *usecase.SupplierUseCase {
	return usecase.NewSupplierUseCase(repo, f.settings, f.locationUC, validator.NewValidator(), uuidgen.NewGenerator(), log)
}

// pausingRepo finishes a read and then holds the result until released,
// leaving room for a write to land before the caller continues.
type pausingRepo struct {
	contract.ISupplierRepository
	read    chan struct{}
	release chan struct{}
}

func newPausingRepo(inner contract.ISupplierRepository) *pausingRepo {
	return &pausingRepo{ISupplierRepository: inner, read: make(chan struct{}), release: make(chan struct{})}
}

func (r *pausingRepo) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	list, err := r.ISupplierRepository.ListSuppliers(ctx)
	r.read <- struct{}{}
	<-r.release
	return list, err
}

func (r *pausingRepo) GetSupplierByID(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := r.ISupplierRepository.GetSupplierByID(ctx, id)
	r.read <- struct{}{}
	<-r.release
	return s, err
}

// failingCache misses every lookup and rejects every write.
type failingCache struct{ *mapCache }

var errCacheDown = errors.New("cache down")

func (c *failingCache) SetSupplier(ctx context.Context, s *entity.Supplier) error { return errCacheDown }
func (c *failingCache) SetSupplierList(ctx context.Context, list []entity.Supplier) error {
	return errCacheDown
}

// recordingLogger keeps warnings so tests can assert on degraded paths.
type recordingLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {}
func (l *recordingLogger) Infof(format string, args ...interface{})  {}
func (l *recordingLogger) Warnf(format string, args ...interface{})  { l.Warningf(format, args...) }
func (l *recordingLogger) Warningf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...interface{}) {}
func (l *recordingLogger) Fatalf(format string, args ...interface{}) {}

func (l *recordingLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warnings...)
}
