package dto

import (
	"strings"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// SupplierQuery is the directory filter as sent in the query string.
type SupplierQuery struct {
	Q            string   `form:"q"`
	City         string   `form:"city"`
	Region       string   `form:"region"`
	Category     string   `form:"category"`
	Verified     bool     `form:"verified"`
	MinRating    float64  `form:"min_rating" binding:"gte=0,lte=5"`
	MinFollowers int64    `form:"min_followers" binding:"gte=0"`
	MaxMinOrder  float64  `form:"max_min_order" binding:"gte=0"`
	Tags         []string `form:"tags"`
	Sort         string   `form:"sort"`
}

// ToFilterState converts the query. Tags may be repeated or comma separated.
func (q SupplierQuery) ToFilterState() entity.FilterState {
	var tags []string
	for _, raw := range q.Tags {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return entity.FilterState{
		SearchQuery:      q.Q,
		City:             q.City,
		Region:           q.Region,
		Category:         q.Category,
		MinRating:        q.MinRating,
		MinFollowers:     q.MinFollowers,
		VerifiedOnly:     q.Verified,
		MaxMinOrderValue: q.MaxMinOrder,
		SelectedTags:     tags,
		SortBy:           entity.SortKey(q.Sort),
	}
}

// SupplierRequest is a supplier document plus an optional Google Maps link
// to take the coordinates from.
type SupplierRequest struct {
	entity.Supplier
	MapURL string `json:"mapUrl"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

type MapParseRequest struct {
	URL string `json:"url" binding:"required"`
}
