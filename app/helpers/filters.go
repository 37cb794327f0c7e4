package helpers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/stylehub/fashion-store/app/models"
)

// ParseProductFilter normalizes raw list-query parameters into a
// models.ProductFilter. Absent or malformed optional values degrade to
// "not specified"; nothing here returns an error.
func ParseProductFilter(query url.Values) models.ProductFilter {
	f := models.ProductFilter{
		CategoryID:  query.Get("categoryId"),
		SearchQuery: query.Get("searchQuery"),
		Brand:       query.Get("brand"),
		SortBy:      query.Get("sortBy"),
		Categories:  listParam(query, "categories"),
		Sizes:       listParam(query, "sizes"),
		Colors:      listParam(query, "colors"),
	}

	if v, ok := floatParam(query.Get("minPrice")); ok {
		f.MinPrice = &v
	}
	if v, ok := floatParam(query.Get("maxPrice")); ok {
		f.MaxPrice = &v
	}

	return f
}

// listParam collects a parameter that may be repeated
// (?sizes=S&sizes=M) or comma-joined (?sizes=S,M). A single scalar becomes a
// one-element list; an absent key stays nil.
func listParam(query url.Values, key string) []string {
	raw, ok := query[key]
	if !ok {
		return nil
	}
	var values []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				values = append(values, p)
			}
		}
	}
	return values
}

func floatParam(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
