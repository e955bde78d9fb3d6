package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
)

// Generator hands out time-ordered ids so new suppliers and users sort by
// creation in Mongo indexes.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// NewUUID returns a v7 UUID, falling back to v4 if the clock source fails.
func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
