package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/infrastructure/seed"
	"github.com/mikiasgoitom/SuppliersEgypt/internal/usecase"
)

func ids(list []entity.Supplier) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterSuppliers(t *testing.T) {
	all := seed.Default().Suppliers

	tests := []struct {
		name   string
		filter entity.FilterState
		want   []string
	}{
		{"no criteria keeps everything", entity.FilterState{}, []string{"1", "2", "3", "4"}},
		{"search matches name", entity.FilterState{SearchQuery: "مصنع"}, []string{"1"}},
		{"search is case sensitive", entity.FilterState{SearchQuery: "PLASTIC"}, []string{}},
		{"city", entity.FilterState{City: "دمياط"}, []string{"3"}},
		{"category", entity.FilterState{Category: "إلكترونيات"}, []string{"2"}},
		{"verified only", entity.FilterState{VerifiedOnly: true}, []string{"1", "2", "4"}},
		{"min rating", entity.FilterState{MinRating: 4.6}, []string{"1", "3"}},
		{"max min order excludes undeclared", entity.FilterState{MaxMinOrderValue: 3000}, []string{"2"}},
		{"any selected tag", entity.FilterState{SelectedTags: []string{"تصدير", "ضمان"}}, []string{"1", "2"}},
		{"min followers sums platforms", entity.FilterState{MinFollowers: 100000}, []string{"1", "2", "3"}},
		{"combined", entity.FilterState{VerifiedOnly: true, MinRating: 4.4, MinFollowers: 110000}, []string{"1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(usecase.FilterSuppliers(all, tt.filter)))
		})
	}
}

func TestFilterSuppliers_DoesNotAliasInput(t *testing.T) {
	all := seed.Default().Suppliers
	got := usecase.FilterSuppliers(all, entity.FilterState{})
	got[0].Name = "changed"
	assert.NotEqual(t, "changed", all[0].Name)
}

func TestSortSuppliers(t *testing.T) {
	all := seed.Default().Suppliers

	tests := []struct {
		sortBy entity.SortKey
		want   []string
	}{
		{"", []string{"1", "2", "3", "4"}},
		{entity.SortByRating, []string{"3", "1", "2", "4"}},
		{entity.SortByReviews, []string{"3", "1", "2", "4"}},
		{entity.SortByFounded, []string{"3", "1", "2", "4"}},
		{entity.SortByMinOrder, []string{"4", "2", "1", "3"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(usecase.SortSuppliers(all, tt.sortBy)))
		})
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(all), "input must not be reordered")
}

func TestSortSuppliers_IsStable(t *testing.T) {
	list := []entity.Supplier{
		{ID: "a", Rating: 4}, {ID: "b", Rating: 5}, {ID: "c", Rating: 4}, {ID: "d", Rating: 5},
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(usecase.SortSuppliers(list, entity.SortByRating)))
}

func TestSuggest(t *testing.T) {
	var list []entity.Supplier
	for i := 1; i <= 7; i++ {
		list = append(list, entity.Supplier{ID: fmt.Sprint(i), Name: fmt.Sprintf("مورد %d", i)})
	}
	list = append(list, entity.Supplier{ID: "tagged", Name: "شركة", Tags: []string{"جملة"}})

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(usecase.Suggest(list, "مورد")))
	assert.Equal(t, []string{"tagged"}, ids(usecase.Suggest(list, "جمل")))

	empty := usecase.Suggest(list, "")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
