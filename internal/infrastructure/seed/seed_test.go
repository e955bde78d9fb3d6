package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ds := seed.Default()
	assert.Len(t, ds.Suppliers, 4)
	assert.Len(t, ds.Users, 4)
	assert.Len(t, ds.Categories, 7)
	assert.Len(t, ds.Cities, 9)
	require.NotNil(t, ds.Settings)
	assert.True(t, ds.Settings.RegistrationOpen)
	assert.Nil(t, ds.Suppliers[3].MinOrderValue)
}

func TestLoadFile_UsesAPIFieldNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	content := `
suppliers:
  - id: s1
    name: Factory
    city: Cairo
    rating: 4.5
    reviewCount: 10
    isVerified: true
    minOrderValue: 250
    tags: [a, b]
    socialStats:
      - platform: facebook
        followers: 1200
categories: [Textiles]
settings:
  registrationOpen: false
  maintenanceMode: false
  allowUserSupplierCreation: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	ds, err := seed.LoadFile(path)
	require.NoError(t, err)

	require.Len(t, ds.Suppliers, 1)
	s := ds.Suppliers[0]
	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, 10, s.ReviewCount)
	assert.True(t, s.IsVerified)
	require.NotNil(t, s.MinOrderValue)
	assert.Equal(t, 250.0, *s.MinOrderValue)
	assert.Equal(t, int64(1200), s.TotalFollowers())
	assert.Equal(t, []string{"Textiles"}, ds.Categories)
	assert.False(t, ds.Settings.RegistrationOpen)

	// absent sections come from the default dataset
	assert.Len(t, ds.Users, 4)
	assert.Len(t, ds.Cities, 9)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	ds, err := seed.Load("")
	require.NoError(t, err)
	assert.Len(t, ds.Suppliers, 4)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := seed.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
