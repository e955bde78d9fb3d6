package entity

// SortKey selects the ordering of directory results.
type SortKey string

const (
	SortByRating   SortKey = "rating"
	SortByReviews  SortKey = "reviews"
	SortByFounded  SortKey = "founded"
	SortByMinOrder SortKey = "minOrder"
)

// Valid reports whether k is a known sort key. The empty key is valid and
// keeps input order.
func (k SortKey) Valid() bool {
	switch k {
	case "", SortByRating, SortByReviews, SortByFounded, SortByMinOrder:
		return true
	}
	return false
}

// FilterState is the set of search criteria picked in the directory sidebar.
// Zero values mean "not filtering on this dimension".
type FilterState struct {
	SearchQuery      string   `json:"searchQuery"`
	City             string   `json:"city"`
	Region           string   `json:"region"`
	Category         string   `json:"category"`
	MinRating        float64  `json:"minRating"`
	MinFollowers     int64    `json:"minFollowers"`
	VerifiedOnly     bool     `json:"verifiedOnly"`
	MaxMinOrderValue float64  `json:"maxMinOrderValue"`
	SelectedTags     []string `json:"selectedTags"`
	SortBy           SortKey  `json:"sortBy"`
}
