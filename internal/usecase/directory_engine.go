package usecase

import (
	"sort"
	"strings"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
)

// MaxSuggestions caps the autocomplete list.
const MaxSuggestions = 5

// FilterSuppliers keeps the suppliers that satisfy every active dimension of f.
// The result preserves input order and never aliases the input slice.
func FilterSuppliers(all []entity.Supplier, f entity.FilterState) []entity.Supplier {
	var tagSet map[string]struct{}
	if len(f.SelectedTags) > 0 {
		tagSet = make(map[string]struct{}, len(f.SelectedTags))
		for _, t := range f.SelectedTags {
			tagSet[t] = struct{}{}
		}
	}

	out := make([]entity.Supplier, 0, len(all))
	for _, s := range all {
		if matchesFilter(s, f, tagSet) {
			out = append(out, s)
		}
	}
	return out
}

func matchesFilter(s entity.Supplier, f entity.FilterState, tagSet map[string]struct{}) bool {
	// literal, case-sensitive
	if f.SearchQuery != "" && !strings.Contains(s.Name, f.SearchQuery) && !strings.Contains(s.Description, f.SearchQuery) {
		return false
	}
	if f.City != "" && s.City != f.City {
		return false
	}
	if f.Region != "" && s.Region != f.Region {
		return false
	}
	if f.Category != "" && s.Category != f.Category {
		return false
	}
	if f.VerifiedOnly && !s.IsVerified {
		return false
	}
	if f.MinRating > 0 && s.Rating < f.MinRating {
		return false
	}
	// a supplier without a declared minimum does not qualify under a ceiling
	if f.MaxMinOrderValue > 0 && (s.MinOrderValue == nil || *s.MinOrderValue > f.MaxMinOrderValue) {
		return false
	}
	if tagSet != nil && !s.HasAnyTag(tagSet) {
		return false
	}
	if f.MinFollowers > 0 && s.TotalFollowers() < f.MinFollowers {
		return false
	}
	return true
}

// SortSuppliers returns a stably sorted copy of list. Unknown keys keep input order.
func SortSuppliers(list []entity.Supplier, sortBy entity.SortKey) []entity.Supplier {
	out := make([]entity.Supplier, len(list))
	copy(out, list)

	var less func(a, b entity.Supplier) bool
	switch sortBy {
	case entity.SortByRating:
		less = func(a, b entity.Supplier) bool { return a.Rating > b.Rating }
	case entity.SortByReviews:
		less = func(a, b entity.Supplier) bool { return a.ReviewCount > b.ReviewCount }
	case entity.SortByFounded:
		less = func(a, b entity.Supplier) bool { return a.FoundedYear < b.FoundedYear }
	case entity.SortByMinOrder:
		less = func(a, b entity.Supplier) bool { return minOrderOrZero(a) < minOrderOrZero(b) }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// missing minimums sort as 0, i.e. first
func minOrderOrZero(s entity.Supplier) float64 {
	if s.MinOrderValue == nil {
		return 0
	}
	return *s.MinOrderValue
}

// Suggest returns up to MaxSuggestions suppliers whose name or any tag contains query.
func Suggest(all []entity.Supplier, query string) []entity.Supplier {
	if query == "" {
		return []entity.Supplier{}
	}
	out := make([]entity.Supplier, 0, MaxSuggestions)
	for _, s := range all {
		if len(out) == MaxSuggestions {
			break
		}
		if strings.Contains(s.Name, query) || tagContains(s.Tags, query) {
			out = append(out, s)
		}
	}
	return out
}

func tagContains(tags []string, query string) bool {
	for _, t := range tags {
		if strings.Contains(t, query) {
			return true
		}
	}
	return false
}
