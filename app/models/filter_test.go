package models

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestCacheKey(t *testing.T) {
	testCases := []struct {
		name   string
		filter ProductFilter
		want   string
	}{
		{
			name:   "empty filter",
			filter: ProductFilter{},
			want:   "products",
		},
		{
			name: "all segments in fixed order",
			filter: ProductFilter{
				CategoryID:  "abc",
				Categories:  []string{"a", "b"},
				SearchQuery: "shirt",
				MinPrice:    floatPtr(10),
				MaxPrice:    floatPtr(50),
				Sizes:       []string{"S", "M"},
				Colors:      []string{"Black"},
				Brand:       "DenimPro",
				SortBy:      SortPriceAsc,
			},
			want: "products|cat=abc|cats=a,b|q=shirt|price=10-50|sizes=S,M|colors=Black|brand=DenimPro|sort=price_asc",
		},
		{
			name:   "single price bound is ignored",
			filter: ProductFilter{MinPrice: floatPtr(10)},
			want:   "products",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.filter.CacheKey(); got != tc.want {
				t.Errorf("CacheKey() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCacheKey_DelimiterValuesDoNotCollide(t *testing.T) {
	testCases := []struct {
		name string
		a, b ProductFilter
	}{
		{
			name: "pipe inside a value is not a segment boundary",
			a:    ProductFilter{SearchQuery: "shirt|brand=DenimPro"},
			b:    ProductFilter{SearchQuery: "shirt", Brand: "DenimPro"},
		},
		{
			name: "comma inside a value is not a list separator",
			a:    ProductFilter{Categories: []string{"a,b"}},
			b:    ProductFilter{Categories: []string{"a", "b"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.a.CacheKey() == tc.b.CacheKey() {
				t.Errorf("distinct filters share key %q", tc.a.CacheKey())
			}
		})
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	a := ProductFilter{Sizes: []string{"S"}, Brand: "DenimPro"}
	b := ProductFilter{Brand: "DenimPro", Sizes: []string{"S"}}
	if a.CacheKey() != b.CacheKey() {
		t.Errorf("equal filters produced different keys: %q vs %q", a.CacheKey(), b.CacheKey())
	}
}
