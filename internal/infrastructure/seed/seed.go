// Package seed holds the bootstrap dataset loaded into an empty store.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// Dataset is everything a fresh store starts with.
type Dataset struct {
	Suppliers  []entity.Supplier   `json:"suppliers"`
	Users      []entity.User       `json:"users"`
	Categories []string            `json:"categories"`
	Cities     entity.CityData     `json:"cities"`
	Settings   *entity.AppSettings `json:"settings"`
}

// LoadFile reads a YAML dataset. Keys use the same names as the JSON API
// (minOrderValue, socialStats, ...). Sections missing from the file fall back
// to Default.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	// round-trip through JSON so the entity json tags drive field names
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert seed file: %w", err)
	}
	var ds Dataset
	if err := json.Unmarshal(asJSON, &ds); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	def := Default()
	if ds.Suppliers == nil {
		ds.Suppliers = def.Suppliers
	}
	if ds.Users == nil {
		ds.Users = def.Users
	}
	if ds.Categories == nil {
		ds.Categories = def.Categories
	}
	if ds.Cities == nil {
		ds.Cities = def.Cities
	}
	if ds.Settings == nil {
		ds.Settings = def.Settings
	}
	return &ds, nil
}

// Load returns the dataset at path, or Default when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Empty is a dataset with default settings and nothing else.
func Empty() *Dataset {
	settings := entity.DefaultSettings()
	return &Dataset{Settings: &settings}
}
