package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/apperror"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *memory.Store {
	return memory.NewStore(seed.Default(), memory.Latency{})
}

func TestSupplierRepository_UpsertReplacesOrAppends(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSupplierRepository(newStore())

	require.NoError(t, repo.UpsertSupplier(ctx, &entity.Supplier{ID: "1", Name: "renamed"}))
	require.NoError(t, repo.UpsertSupplier(ctx, &entity.Supplier{ID: "new", Name: "added"}))

	all, err := repo.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "renamed", all[0].Name)
	assert.Equal(t, "new", all[4].ID)
}

func TestSupplierRepository_GetMissingIsNil(t *testing.T) {
	repo := memory.NewSupplierRepository(newStore())
	s, err := repo.GetSupplierByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestSupplierRepository_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSupplierRepository(newStore())

	require.NoError(t, repo.DeleteSupplier(ctx, "2"))
	first, _ := repo.ListSuppliers(ctx)
	require.NoError(t, repo.DeleteSupplier(ctx, "2"))
	second, _ := repo.ListSuppliers(ctx)

	assert.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestSupplierRepository_ReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSupplierRepository(newStore())

	s, err := repo.GetSupplierByID(ctx, "1")
	require.NoError(t, err)
	s.Tags[0] = "changed"

	again, _ := repo.GetSupplierByID(ctx, "1")
	assert.NotEqual(t, "changed", again.Tags[0])
}

func TestSupplierRepository_AddReviewConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSupplierRepository(memory.NewStore(&seed.Dataset{
		Suppliers: []entity.Supplier{{ID: "s", Name: "s"}},
	}, memory.Latency{}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddReview(ctx, "s", entity.Review{Rating: 4})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	s, _ := repo.GetSupplierByID(ctx, "s")
	assert.Equal(t, 50, s.ReviewCount)
	assert.Len(t, s.Reviews, 50)
	assert.Equal(t, 4.0, s.Rating)
}

func TestSupplierRepository_AddReviewUnknown(t *testing.T) {
	repo := memory.NewSupplierRepository(newStore())
	_, err := repo.AddReview(context.Background(), "missing", entity.Review{Rating: 5})
	assert.True(t, apperror.IsNotFound(err))
}

func TestStore_LatencyHonoursCancellation(t *testing.T) {
	store := memory.NewStore(seed.Default(), memory.Latency{ListSuppliers: time.Minute})
	repo := memory.NewSupplierRepository(store)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := repo.ListSuppliers(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestUserRepository_EmailLookupIsCaseInsensitive(t *testing.T) {
	repo := memory.NewUserRepository(newStore())
	u, err := repo.GetUserByEmail(context.Background(), "ADMIN@Suppliers.EG")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)
}

func TestUserRepository_CreateRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository(newStore())

	require.NoError(t, repo.CreateUser(ctx, &entity.User{ID: "n1", Email: "dup@company.eg"}))
	err := repo.CreateUser(ctx, &entity.User{ID: "n2", Email: "DUP@company.eg"})
	assert.ErrorIs(t, err, contract.ErrEmailTaken)

	all, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestUserRepository_SetUserActive(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository(newStore())

	require.NoError(t, repo.SetUserActive(ctx, "u4", true))
	u, _ := repo.GetUserByID(ctx, "u4")
	assert.True(t, u.IsActive)

	err := repo.SetUserActive(ctx, "missing", false)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCategoryRepository_AddIsNoOpWhenPresent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCategoryRepository(newStore())

	added, err := repo.AddCategory(ctx, "كيماويات")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = repo.AddCategory(ctx, "أدوية")
	require.NoError(t, err)
	assert.True(t, added)

	require.NoError(t, repo.RemoveCategory(ctx, "إلكترونيات"))
	list, _ := repo.ListCategories(ctx)
	assert.Len(t, list, 7)
	assert.NotContains(t, list, "إلكترونيات")
	assert.Equal(t, "أدوية", list[6])
}

func TestSettingsRepository_Replace(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewSettingsRepository(newStore())

	want := entity.AppSettings{RegistrationOpen: false, MaintenanceMode: true}
	require.NoError(t, repo.ReplaceSettings(ctx, want))
	got, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCityRepository_RegisterRegion(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCityRepository(newStore())

	added, err := repo.RegisterRegion(ctx, "المنصورة", "توريل")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.RegisterRegion(ctx, "المنصورة", "توريل")
	require.NoError(t, err)
	assert.False(t, added)

	data, _ := repo.GetCityData(ctx)
	assert.Equal(t, []string{"توريل"}, data.Regions("المنصورة"))
}
