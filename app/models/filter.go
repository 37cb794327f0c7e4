package models

import (
	"fmt"
	"net/url"
	"strings"
)

// Sort modes accepted on product list queries. Anything else falls back to
// SortNewest when the store query is built.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ProductFilter is the canonical, strongly-typed form of the product list
// query parameters. Zero values mean "not specified". MinPrice and MaxPrice
// are pointers so an absent bound can be told apart from a zero one; the
// price predicate only applies when both are set.
type ProductFilter struct {
	CategoryID  string
	Categories  []string
	SearchQuery string
	MinPrice    *float64
	MaxPrice    *float64
	Sizes       []string
	Colors      []string
	Brand       string
	SortBy      string
}

// CacheKey serializes the applied parts of the filter into a deterministic
// string. Two requests with the same effective filter share a cache entry.
// Values are query-escaped so the `|` and `,` delimiters cannot appear inside
// a segment; distinct filters always produce distinct keys.
func (f ProductFilter) CacheKey() string {
	var b strings.Builder
	b.WriteString("products")
	if f.CategoryID != "" {
		b.WriteString("|cat=" + url.QueryEscape(f.CategoryID))
	}
	if len(f.Categories) > 0 {
		b.WriteString("|cats=" + joinEscaped(f.Categories))
	}
	if f.SearchQuery != "" {
		b.WriteString("|q=" + url.QueryEscape(f.SearchQuery))
	}
	if f.MinPrice != nil && f.MaxPrice != nil {
		fmt.Fprintf(&b, "|price=%g-%g", *f.MinPrice, *f.MaxPrice)
	}
	if len(f.Sizes) > 0 {
		b.WriteString("|sizes=" + joinEscaped(f.Sizes))
	}
	if len(f.Colors) > 0 {
		b.WriteString("|colors=" + joinEscaped(f.Colors))
	}
	if f.Brand != "" {
		b.WriteString("|brand=" + url.QueryEscape(f.Brand))
	}
	if f.SortBy != "" {
		b.WriteString("|sort=" + url.QueryEscape(f.SortBy))
	}
	return b.String()
}

func joinEscaped(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = url.QueryEscape(v)
	}
	return strings.Join(escaped, ",")
}
