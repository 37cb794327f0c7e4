package helpers

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseProductFilter_Empty(t *testing.T) {
	f := ParseProductFilter(url.Values{})

	if f.CategoryID != "" || f.SearchQuery != "" || f.Brand != "" || f.SortBy != "" {
		t.Errorf("scalar fields should be empty, got %+v", f)
	}
	if f.Categories != nil || f.Sizes != nil || f.Colors != nil {
		t.Errorf("list fields should be nil, got %+v", f)
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		t.Error("price bounds should be nil when absent")
	}
}

func TestParseProductFilter_ScalarsPassThrough(t *testing.T) {
	f := ParseProductFilter(url.Values{
		"categoryId":  {"abc123"},
		"searchQuery": {"shirt"},
		"brand":       {"DenimPro"},
		"sortBy":      {"price_asc"},
	})

	if f.CategoryID != "abc123" {
		t.Errorf("CategoryID = %q, want %q", f.CategoryID, "abc123")
	}
	if f.SearchQuery != "shirt" {
		t.Errorf("SearchQuery = %q, want %q", f.SearchQuery, "shirt")
	}
	if f.Brand != "DenimPro" {
		t.Errorf("Brand = %q, want %q", f.Brand, "DenimPro")
	}
	if f.SortBy != "price_asc" {
		t.Errorf("SortBy = %q, want %q", f.SortBy, "price_asc")
	}
}

func TestParseProductFilter_ListParams(t *testing.T) {
	testCases := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{
			name:  "scalar wraps into one-element list",
			query: url.Values{"sizes": {"M"}},
			want:  []string{"M"},
		},
		{
			name:  "repeated key",
			query: url.Values{"sizes": {"S", "M"}},
			want:  []string{"S", "M"},
		},
		{
			name:  "comma joined",
			query: url.Values{"sizes": {"S,M,L"}},
			want:  []string{"S", "M", "L"},
		},
		{
			name:  "empty value stays unset",
			query: url.Values{"sizes": {""}},
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := ParseProductFilter(tc.query)
			if !reflect.DeepEqual(f.Sizes, tc.want) {
				t.Errorf("Sizes = %v, want %v", f.Sizes, tc.want)
			}
		})
	}
}

func TestParseProductFilter_PriceBounds(t *testing.T) {
	t.Run("both valid", func(t *testing.T) {
		f := ParseProductFilter(url.Values{"minPrice": {"10"}, "maxPrice": {"99.5"}})
		if f.MinPrice == nil || *f.MinPrice != 10 {
			t.Errorf("MinPrice = %v, want 10", f.MinPrice)
		}
		if f.MaxPrice == nil || *f.MaxPrice != 99.5 {
			t.Errorf("MaxPrice = %v, want 99.5", f.MaxPrice)
		}
	})

	t.Run("malformed value degrades to absent", func(t *testing.T) {
		f := ParseProductFilter(url.Values{"minPrice": {"cheap"}, "maxPrice": {"100"}})
		if f.MinPrice != nil {
			t.Errorf("MinPrice = %v, want nil for malformed input", f.MinPrice)
		}
		if f.MaxPrice == nil || *f.MaxPrice != 100 {
			t.Errorf("MaxPrice = %v, want 100", f.MaxPrice)
		}
	})
}
