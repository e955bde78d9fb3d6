package entity

import "math"

// Platform is a social network a supplier publishes follower counts for.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformTelegram  Platform = "telegram"
	PlatformInstagram Platform = "instagram"
	PlatformWebsite   Platform = "website"
)

// SocialStat is the follower count of one social account.
type SocialStat struct {
	Platform  Platform `bson:"platform" json:"platform" validate:"required,oneof=facebook tiktok telegram instagram website"`
	Followers int64    `bson:"followers" json:"followers" validate:"gte=0"`
	URL       string   `bson:"url" json:"url"`
}

// SalesContact is a named person customers can call for orders.
type SalesContact struct {
	Name  string `bson:"name" json:"name"`
	Role  string `bson:"role" json:"role"`
	Phone string `bson:"phone" json:"phone"`
}

// GeoPoint is a map coordinate.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `bson:"lng" json:"lng" validate:"gte=-180,lte=180"`
}

// Review is a single customer rating left on a supplier page.
type Review struct {
	ID      string `bson:"id" json:"id"`
	User    string `bson:"user" json:"user"`
	Rating  int    `bson:"rating" json:"rating"`
	Comment string `bson:"comment" json:"comment"`
	Date    string `bson:"date" json:"date"`
}

// Supplier represents one directory listing (a factory or trading business).
type Supplier struct {
	ID            string         `bson:"_id" json:"id"`
	Name          string         `bson:"name" json:"name" validate:"required"`
	Description   string         `bson:"description" json:"description"`
	Category      string         `bson:"category" json:"category"`
	Tags          []string       `bson:"tags" json:"tags"`
	City          string         `bson:"city" json:"city"`
	Region        string         `bson:"region,omitempty" json:"region,omitempty"`
	Address       string         `bson:"address,omitempty" json:"address,omitempty"`
	Location      *GeoPoint      `bson:"location,omitempty" json:"location,omitempty"`
	IsVerified    bool           `bson:"is_verified" json:"isVerified"`
	Rating        float64        `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int            `bson:"review_count" json:"reviewCount" validate:"gte=0"`
	Reviews       []Review       `bson:"reviews" json:"reviews"`
	MinOrderValue *float64       `bson:"min_order_value,omitempty" json:"minOrderValue,omitempty" validate:"omitempty,gte=0"`
	FoundedYear   int            `bson:"founded_year,omitempty" json:"foundedYear,omitempty" validate:"omitempty,gte=1000,lte=9999"`
	LogoURL       string         `bson:"logo_url" json:"logoUrl"`
	CoverURL      string         `bson:"cover_url" json:"coverUrl"`
	Gallery       []string       `bson:"gallery" json:"gallery"`
	ContactPhone  string         `bson:"contact_phone" json:"contactPhone"`
	Email         *string        `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Website       string         `bson:"website,omitempty" json:"website,omitempty"`
	SalesContacts []SalesContact `bson:"sales_contacts" json:"salesContacts"`
	SocialStats   []SocialStat   `bson:"social_stats" json:"socialStats" validate:"dive"`
}

// TotalFollowers sums followers across all social accounts.
func (s Supplier) TotalFollowers() int64 {
	var total int64
	for _, st := range s.SocialStats {
		total += st.Followers
	}
	return total
}

// HasAnyTag reports whether any of the supplier's tags is in the given set.
func (s Supplier) HasAnyTag(tags map[string]struct{}) bool {
	for _, t := range s.Tags {
		if _, ok := tags[t]; ok {
			return true
		}
	}
	return false
}

// ApplyReview prepends r and folds its rating into the running mean.
// Rating and ReviewCount are only ever changed together here.
func (s *Supplier) ApplyReview(r Review) {
	total := s.Rating*float64(s.ReviewCount) + float64(r.Rating)
	s.ReviewCount++
	s.Rating = RoundRating(total / float64(s.ReviewCount))
	s.Reviews = append([]Review{r}, s.Reviews...)
}

// RoundRating rounds to one decimal place.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// Clone returns a deep copy so callers can't mutate stored slices.
func (s Supplier) Clone() Supplier {
	c := s
	c.Tags = append([]string(nil), s.Tags...)
	c.Reviews = append([]Review(nil), s.Reviews...)
	c.Gallery = append([]string(nil), s.Gallery...)
	c.SalesContacts = append([]SalesContact(nil), s.SalesContacts...)
	c.SocialStats = append([]SocialStat(nil), s.SocialStats...)
	if s.Location != nil {
		loc := *s.Location
		c.Location = &loc
	}
	if s.MinOrderValue != nil {
		v := *s.MinOrderValue
		c.MinOrderValue = &v
	}
	if s.Email != nil {
		e := *s.Email
		c.Email = &e
	}
	return c
}
