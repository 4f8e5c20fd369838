// Package filterquery encodes and decodes catalog filter selections
// to and from their URL query-string representation.
//
// Multi-value dimensions travel as a single comma-joined query key
// with each value percent-encoded independently, e.g.
// ?category=Glassware,Bar%20Tools&page=2.
package filterquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/aqline/storefront/internal/core/domain"
)

const (
	keyCategory     = "category"
	keyManufacturer = "manufacturer"
	keyPattern      = "pattern"
	keyTags         = "tags"
	keySearch       = "q"
	keyPage         = "page"
)

// DefaultPageSize is the fixed page size of the listing surfaces.
const DefaultPageSize = 24

// Dimension names a toggleable facet dimension.
type Dimension string

const (
	Category     Dimension = keyCategory
	Manufacturer Dimension = keyManufacturer
	Pattern      Dimension = keyPattern
	Tag          Dimension = keyTags
)

// Selection is a decoded filter state. Dimension values are stored
// decoded and deduplicated in first-seen order; an absent dimension is
// an empty slice.
type Selection struct {
	Categories    []string
	Manufacturers []string
	Patterns      []string
	Tags          []string
	Search        string
	Page          int
}

// Decode parses a query string into a Selection.
//
// Selected patterns come from two shapes the callers produce: the
// dedicated pattern key, and PATTERN_-prefixed entries of the tags
// key. Both reconcile into one pattern set; prefixed entries do not
// additionally count as plain tag selections.
func Decode(vs url.Values) Selection {
	var s Selection
	s.Categories = decodeList(vs.Get(keyCategory))
	s.Manufacturers = decodeList(vs.Get(keyManufacturer))
	s.Patterns = decodeList(vs.Get(keyPattern))

	for _, t := range decodeList(vs.Get(keyTags)) {
		if strings.HasPrefix(t, domain.PatternPrefix) {
			s.Patterns = appendUnique(
				s.Patterns, strings.TrimPrefix(t, domain.PatternPrefix),
			)
			continue
		}
		s.Tags = appendUnique(s.Tags, t)
	}

	s.Search = strings.TrimSpace(vs.Get(keySearch))

	s.Page = 1
	if n, err := strconv.Atoi(vs.Get(keyPage)); err == nil && n > 1 {
		s.Page = n
	}
	return s
}

// Encode renders the selection back to query values. Patterns always
// re-encode under the dedicated pattern key. Page 1 is implicit and
// omitted.
func (s Selection) Encode() url.Values {
	vs := url.Values{}
	setList(vs, keyCategory, s.Categories)
	setList(vs, keyManufacturer, s.Manufacturers)
	setList(vs, keyPattern, s.Patterns)
	setList(vs, keyTags, s.Tags)
	if s.Search != "" {
		vs.Set(keySearch, s.Search)
	}
	if s.Page > 1 {
		vs.Set(keyPage, strconv.Itoa(s.Page))
	}
	return vs
}

// Toggle flips membership of a value in a dimension and resets the
// page to 1: a selected value is removed, an unselected one appended.
// Comparison normalizes both sides by trimming whitespace.
func (s Selection) Toggle(dim Dimension, value string) Selection {
	switch dim {
	case Category:
		s.Categories = toggleValue(s.Categories, value)
	case Manufacturer:
		s.Manufacturers = toggleValue(s.Manufacturers, value)
	case Pattern:
		s.Patterns = toggleValue(s.Patterns, value)
	case Tag:
		s.Tags = toggleValue(s.Tags, value)
	default:
		return s
	}
	s.Page = 1
	return s
}

// Clear drops every filter dimension but preserves an active search
// term, matching the search page's clear-all behavior. The catalog
// page has no search term, so its clear removes everything.
func (s Selection) Clear() Selection {
	return Selection{Search: s.Search, Page: 1}
}

// Query converts the selection into a catalog query with the fixed
// page size applied.
func (s Selection) Query() domain.CatalogQuery {
	return domain.CatalogQuery{
		Categories:    s.Categories,
		Manufacturers: s.Manufacturers,
		Patterns:      s.Patterns,
		Tags:          s.Tags,
		Search:        s.Search,
		Page:          s.Page,
		PageSize:      DefaultPageSize,
	}
}

func decodeList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		v, err := url.QueryUnescape(part)
		if err != nil {
			v = part
		}
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = appendUnique(out, v)
	}
	return out
}

func setList(vs url.Values, key string, values []string) {
	if len(values) == 0 {
		return
	}
	encoded := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		encoded = append(encoded, url.QueryEscape(v))
	}
	if len(encoded) != 0 {
		vs.Set(key, strings.Join(encoded, ","))
	}
}

func toggleValue(values []string, value string) []string {
	norm := strings.TrimSpace(value)

	var out []string
	removed := false
	for _, v := range values {
		if strings.TrimSpace(v) == norm {
			removed = true
			continue
		}
		out = appendUnique(out, v)
	}
	if removed {
		return out
	}
	return appendUnique(out, value)
}

func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
