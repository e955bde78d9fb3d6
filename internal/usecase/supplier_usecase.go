package usecase

import (
	"context"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/SuppliersEgypt/internal/usecase/contract"
)

const dateLayout = "2006-01-02"

// SupplierUseCase implements the directory and supplier CRUD operations.
type SupplierUseCase struct {
	supplierRepo  contract.ISupplierRepository
	settingsRepo  contract.ISettingsRepository
	locationUC    usecasecontract.ILocationUseCase
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	cache         contract.ISupplierCache
	now           func() time.Time

	// cacheGen is bumped on every invalidation. A cache fill only lands if the
	// generation it read the repository under is still current; fillMu makes
	// that check and the write atomic with respect to invalidate.
	cacheGen atomic.Uint64
	fillMu   sync.Mutex
}

// NewSupplierUseCase creates a new SupplierUseCase instance.
func NewSupplierUseCase(
	supplierRepo contract.ISupplierRepository,
	settingsRepo contract.ISettingsRepository,
	locationUC usecasecontract.ILocationUseCase,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *SupplierUseCase {
	return &SupplierUseCase{
		supplierRepo:  supplierRepo,
		settingsRepo:  settingsRepo,
		locationUC:    locationUC,
		validator:     validator,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		now:           time.Now,
	}
}

// check if SupplierUseCase implements the ISupplierUseCase
var _ usecasecontract.ISupplierUseCase = (*SupplierUseCase)(nil)

// SetSupplierCache enables the optional read-through cache.
func (uc *SupplierUseCase) SetSupplierCache(cache contract.ISupplierCache) {
	uc.cache = cache
}

// FetchSuppliers returns the full supplier list, from cache when possible.
func (uc *SupplierUseCase) FetchSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	if uc.cache != nil {
		start := time.Now()
		cached, found, err := uc.cache.GetSupplierList(ctx)
		elapsed := time.Since(start)
		switch {
		case err == nil && found:
			go metrics.IncListHit()
			go metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: supplier list took=%s", elapsed)
			return cached, nil
		case err == nil:
			go metrics.IncListMiss()
			go metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Debugf("cache miss: supplier list took=%s", elapsed)
		default:
			uc.logger.Warningf("cache error: supplier list err=%v took=%s", err, elapsed)
		}
	}

	gen := uc.cacheGen.Load()
	suppliers, err := uc.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list suppliers: %v", err)
		return nil, err
	}

	uc.fill(gen, "supplier list", func() error {
		return uc.cache.SetSupplierList(ctx, suppliers)
	})
	return suppliers, nil
}

// RefreshSupplierCache reloads the list from the repository and stores it,
// replacing whatever the cache held. It returns the number of suppliers
// written, zero when no cache is configured.
func (uc *SupplierUseCase) RefreshSupplierCache(ctx context.Context) (int, error) {
	if uc.cache == nil {
		return 0, nil
	}
	gen := uc.cacheGen.Load()
	suppliers, err := uc.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		return 0, err
	}
	uc.fillMu.Lock()
	defer uc.fillMu.Unlock()
	if uc.cacheGen.Load() != gen {
		// a write landed mid-read; the next directory request refills
		return 0, nil
	}
	if err := uc.cache.SetSupplierList(ctx, suppliers); err != nil {
		return 0, err
	}
	return len(suppliers), nil
}

// FetchSupplierByID returns nil, nil when no supplier has the id.
func (uc *SupplierUseCase) FetchSupplierByID(ctx context.Context, id string) (*entity.Supplier, error) {
	if uc.cache != nil {
		start := time.Now()
		cached, found, err := uc.cache.GetSupplier(ctx, id)
		elapsed := time.Since(start)
		if err == nil && found {
			go metrics.IncDetailHit()
			go metrics.AddHitDuration(elapsed.Seconds())
			return cached, nil
		}
		if err != nil {
			uc.logger.Warningf("cache error: supplier id=%s err=%v", id, err)
		} else {
			go metrics.IncDetailMiss()
			go metrics.AddMissDuration(elapsed.Seconds())
		}
	}

	gen := uc.cacheGen.Load()
	supplier, err := uc.supplierRepo.GetSupplierByID(ctx, id)
	if err != nil {
		uc.logger.Errorf("failed to get supplier %s: %v", id, err)
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}

	uc.fill(gen, "supplier id="+id, func() error {
		return uc.cache.SetSupplier(ctx, supplier)
	})
	return supplier, nil
}

// SearchSuppliers filters and orders the directory according to filter.
func (uc *SupplierUseCase) SearchSuppliers(ctx context.Context, filter entity.FilterState) ([]entity.Supplier, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	all, err := uc.FetchSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	result := SortSuppliers(FilterSuppliers(all, filter), filter.SortBy)
	go metrics.ObserveDirectoryResults(len(result))
	return result, nil
}

func validateFilter(f entity.FilterState) error {
	if !f.SortBy.Valid() {
		return apperror.Validation("sortBy", "unknown sort key "+string(f.SortBy))
	}
	if math.IsNaN(f.MinRating) || math.IsInf(f.MinRating, 0) {
		return apperror.Validation("minRating", "must be a finite number")
	}
	if math.IsNaN(f.MaxMinOrderValue) || math.IsInf(f.MaxMinOrderValue, 0) {
		return apperror.Validation("maxMinOrderValue", "must be a finite number")
	}
	return nil
}

// SuggestSuppliers powers the search box autocomplete.
func (uc *SupplierUseCase) SuggestSuppliers(ctx context.Context, query string) ([]entity.Supplier, error) {
	if query == "" {
		return []entity.Supplier{}, nil
	}
	all, err := uc.FetchSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	return Suggest(all, query), nil
}

// SaveSupplier upserts supplier by id, assigning a new id when it has none.
func (uc *SupplierUseCase) SaveSupplier(ctx context.Context, supplier *entity.Supplier, mapURL string) (*entity.Supplier, error) {
	if supplier == nil {
		return nil, apperror.Validation("supplier", "is required")
	}
	supplier.Name = strings.TrimSpace(supplier.Name)
	if supplier.Name == "" {
		return nil, apperror.Validation("name", "is required")
	}
	if mapURL != "" {
		point, err := uc.locationUC.ParseMapURL(mapURL)
		if err != nil {
			return nil, err
		}
		supplier.Location = point
	}
	if err := uc.validator.ValidateSupplier(supplier); err != nil {
		return nil, err
	}
	if err := uc.locationUC.ValidateLocation(ctx, supplier.City, supplier.Region); err != nil {
		return nil, err
	}

	op := "update"
	if supplier.ID == "" {
		supplier.ID = uc.uuidGenerator.NewUUID()
		op = "create"
	}
	normalizeSupplier(supplier)

	if err := uc.supplierRepo.UpsertSupplier(ctx, supplier); err != nil {
		uc.logger.Errorf("failed to save supplier %s: %v", supplier.ID, err)
		return nil, err
	}
	go metrics.IncSupplierMutation(op)
	uc.invalidate(ctx, supplier.ID)
	return supplier, nil
}

// ProposeSupplier lets a signed-in non-admin add a new, unverified listing
// while the settings allow it.
func (uc *SupplierUseCase) ProposeSupplier(ctx context.Context, actor *entity.User, supplier *entity.Supplier, mapURL string) (*entity.Supplier, error) {
	if actor == nil {
		return nil, apperror.AuthRejected(apperror.ReasonInvalidToken, "authentication required")
	}
	if supplier == nil {
		return nil, apperror.Validation("supplier", "is required")
	}
	if actor.Role != entity.UserRoleAdmin {
		settings, err := uc.settingsRepo.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		if !settings.AllowUserSupplierCreation {
			return nil, apperror.AuthRejected(apperror.ReasonSupplierCreationClosed, "adding suppliers is currently disabled")
		}
	}

	supplier.ID = ""
	supplier.IsVerified = false
	supplier.Rating = 0
	supplier.ReviewCount = 0
	supplier.Reviews = nil
	return uc.SaveSupplier(ctx, supplier, mapURL)
}

// DeleteSupplier removes the supplier; unknown ids are not an error.
func (uc *SupplierUseCase) DeleteSupplier(ctx context.Context, id string) error {
	if err := uc.supplierRepo.DeleteSupplier(ctx, id); err != nil {
		uc.logger.Errorf("failed to delete supplier %s: %v", id, err)
		return err
	}
	go metrics.IncSupplierMutation("delete")
	uc.invalidate(ctx, id)
	return nil
}

// SubmitReview records a review and updates the supplier's rating and count together.
func (uc *SupplierUseCase) SubmitReview(ctx context.Context, supplierID string, author *entity.User, rating int, comment string) (*entity.Supplier, error) {
	if author == nil {
		return nil, apperror.AuthRejected(apperror.ReasonInvalidToken, "authentication required")
	}
	if rating < 1 || rating > 5 {
		return nil, apperror.Validation("rating", "must be between 1 and 5")
	}

	review := entity.Review{
		ID:      uc.uuidGenerator.NewUUID(),
		User:    author.DisplayName(),
		Rating:  rating,
		Comment: strings.TrimSpace(comment),
		Date:    uc.now().UTC().Format(dateLayout),
	}
	updated, err := uc.supplierRepo.AddReview(ctx, supplierID, review)
	if err != nil {
		if !apperror.IsNotFound(err) {
			uc.logger.Errorf("failed to add review to supplier %s: %v", supplierID, err)
		}
		return nil, err
	}
	go metrics.IncSupplierMutation("review")
	uc.invalidate(ctx, supplierID)
	return updated, nil
}

// fill writes a freshly read value to the cache unless an invalidation ran
// since gen was taken, in which case the value may already be stale.
func (uc *SupplierUseCase) fill(gen uint64, what string, set func() error) {
	if uc.cache == nil {
		return
	}
	uc.fillMu.Lock()
	defer uc.fillMu.Unlock()
	if uc.cacheGen.Load() != gen {
		uc.logger.Debugf("cache fill skipped: %s invalidated during read", what)
		return
	}
	if err := set(); err != nil {
		uc.logger.Warningf("cache set failed: %s err=%v", what, err)
	}
}

func (uc *SupplierUseCase) invalidate(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	uc.fillMu.Lock()
	defer uc.fillMu.Unlock()
	uc.cacheGen.Add(1)
	if err := uc.cache.InvalidateSupplier(ctx, id); err != nil {
		uc.logger.Warningf("cache invalidate failed: supplier id=%s err=%v", id, err)
	}
	if err := uc.cache.InvalidateSupplierLists(ctx); err != nil {
		uc.logger.Warningf("cache invalidate failed: supplier lists err=%v", err)
	}
}

// normalizeSupplier replaces nil slices so clients always see arrays.
func normalizeSupplier(s *entity.Supplier) {
	if s.Tags == nil {
		s.Tags = []string{}
	}
	if s.Reviews == nil {
		s.Reviews = []entity.Review{}
	}
	if s.Gallery == nil {
		s.Gallery = []string{}
	}
	if s.SalesContacts == nil {
		s.SalesContacts = []entity.SalesContact{}
	}
	if s.SocialStats == nil {
		s.SocialStats = []entity.SocialStat{}
	}
}
