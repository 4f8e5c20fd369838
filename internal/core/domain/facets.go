package domain

import (
	"sort"
	"strings"
)

// The tags column packs several facet dimensions into one
// comma-delimited string using prefix conventions.
const (
	PatternPrefix    = "PATTERN_"
	CollectionPrefix = "COLLECTION_"
	AqcatPrefix      = "AQCAT_"

	stockItemPhrase = "Stock Item / Quick Ship"
)

// Facets is the structured form of a single product's tags string.
type Facets struct {
	PlainTags    []string
	Patterns     []string
	Collections  []string
	HasStockItem bool
}

// ParseFacets extracts structured facets from a raw tags string.
// Prefix matching is exact and case-sensitive. An empty string yields
// empty facets.
func ParseFacets(tags string) Facets {
	var f Facets
	if strings.TrimSpace(tags) == "" {
		return f
	}

	plain := make(map[string]struct{})
	patterns := make(map[string]struct{})
	collections := make(map[string]struct{})

	for _, token := range strings.Split(tags, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, stockItemPhrase) {
			f.HasStockItem = true
			continue
		}

		switch {
		case strings.HasPrefix(token, PatternPrefix):
			patterns[strings.TrimPrefix(token, PatternPrefix)] = struct{}{}
		case strings.HasPrefix(token, AqcatPrefix):
			collections[strings.TrimPrefix(token, AqcatPrefix)] = struct{}{}
		case strings.HasPrefix(token, CollectionPrefix):
			collections[strings.TrimPrefix(token, CollectionPrefix)] = struct{}{}
		default:
			plain[token] = struct{}{}
		}
	}

	f.PlainTags = sortedKeys(plain)
	f.Patterns = sortedKeys(patterns)
	f.Collections = sortedKeys(collections)
	return f
}

// FacetOptions is the set of filter values a listing can offer.
type FacetOptions struct {
	Categories    []string
	Manufacturers []string
	Patterns      []string
	Collections   []string
	Tags          []string
	HasStockItems bool
}

// CollectFacetOptions derives the facet options observed across a
// product list: category/manufacturer values plus everything the tag
// taxonomy encodes, with the stock-item flag ORed across products.
func CollectFacetOptions(ps []Product) FacetOptions {
	var o FacetOptions

	categories := make(map[string]struct{})
	manufacturers := make(map[string]struct{})
	patterns := make(map[string]struct{})
	collections := make(map[string]struct{})
	tags := make(map[string]struct{})

	for _, p := range ps {
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
		if p.Manufacturer != "" {
			manufacturers[p.Manufacturer] = struct{}{}
		}

		f := ParseFacets(p.Tags)
		addAll(patterns, f.Patterns)
		addAll(collections, f.Collections)
		addAll(tags, f.PlainTags)
		o.HasStockItems = o.HasStockItems || f.HasStockItem
	}

	o.Categories = sortedKeys(categories)
	o.Manufacturers = sortedKeys(manufacturers)
	o.Patterns = sortedKeys(patterns)
	o.Collections = sortedKeys(collections)
	o.Tags = sortedKeys(tags)
	return o
}

// Merge returns the set union of two option sets.
func (o FacetOptions) Merge(other FacetOptions) FacetOptions {
	return FacetOptions{
		Categories:    unionSorted(o.Categories, other.Categories),
		Manufacturers: unionSorted(o.Manufacturers, other.Manufacturers),
		Patterns:      unionSorted(o.Patterns, other.Patterns),
		Collections:   unionSorted(o.Collections, other.Collections),
		Tags:          unionSorted(o.Tags, other.Tags),
		HasStockItems: o.HasStockItems || other.HasStockItems,
	}
}

func addAll(set map[string]struct{}, vs []string) {
	for _, v := range vs {
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func unionSorted(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	addAll(set, a)
	addAll(set, b)
	return sortedKeys(set)
}
