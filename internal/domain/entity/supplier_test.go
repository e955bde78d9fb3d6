package entity_test

import (
	"testing"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestApplyReview_RunningMean(t *testing.T) {
	s := entity.Supplier{ID: "1", Rating: 4.8, ReviewCount: 120, Reviews: []entity.Review{{ID: "old"}}}

	s.ApplyReview(entity.Review{ID: "new", Rating: 5})

	assert.Equal(t, 121, s.ReviewCount)
	assert.Equal(t, 4.8, s.Rating)
	assert.Equal(t, "new", s.Reviews[0].ID)
	assert.Equal(t, "old", s.Reviews[1].ID)
}

func TestApplyReview_FirstReview(t *testing.T) {
	s := entity.Supplier{ID: "1"}
	s.ApplyReview(entity.Review{Rating: 3})
	assert.Equal(t, 1, s.ReviewCount)
	assert.Equal(t, 3.0, s.Rating)
}

func TestApplyReview_Rounds(t *testing.T) {
	s := entity.Supplier{Rating: 4, ReviewCount: 2}
	s.ApplyReview(entity.Review{Rating: 5})
	// (8 + 5) / 3 = 4.333...
	assert.Equal(t, 4.3, s.Rating)
}

func TestTotalFollowers(t *testing.T) {
	s := entity.Supplier{SocialStats: []entity.SocialStat{
		{Platform: entity.PlatformFacebook, Followers: 150000},
		{Platform: entity.PlatformTelegram, Followers: 5000},
	}}
	assert.Equal(t, int64(155000), s.TotalFollowers())
	assert.Zero(t, entity.Supplier{}.TotalFollowers())
}

func TestClone_IsDeep(t *testing.T) {
	v := 5000.0
	s := entity.Supplier{Tags: []string{"a"}, MinOrderValue: &v, Location: &entity.GeoPoint{Lat: 1}}
	c := s.Clone()
	c.Tags[0] = "b"
	*c.MinOrderValue = 1
	c.Location.Lat = 2

	assert.Equal(t, "a", s.Tags[0])
	assert.Equal(t, 5000.0, *s.MinOrderValue)
	assert.Equal(t, 1.0, s.Location.Lat)
}
