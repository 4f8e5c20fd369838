package domain

type (
	// Product is the catalog projection of a single item.
	//
	// ID is a decimal string: upstream identifiers may exceed the range
	// that survives float64 JSON round trips, so they stay strings
	// everywhere except the query layer.
	Product struct {
		ID           string
		SKU          string
		Title        string
		Description  string
		Manufacturer string
		Category     string
		UOM          string
		QtyAvailable *int
		Tags         string
		Images       []ProductImage
	}

	ProductImage struct {
		Src string
	}
)

// Thumbnail returns the primary image source, empty if the product
// has no images.
func (p Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Src
}

type (
	// Venue is a customer-specific catalog view with its own pricing.
	Venue struct {
		ID       string
		Name     string
		Products []VenueProduct
	}

	// VenueProduct carries a price, which exists only in the
	// venue-scoped listing and never in the general catalog.
	VenueProduct struct {
		Product
		Price *float64
	}
)

// CatalogQuery is a normalized filter selection for a catalog listing.
// An absent dimension is an empty set, never nil-with-meaning.
type CatalogQuery struct {
	Categories    []string
	Manufacturers []string
	Patterns      []string
	Tags          []string
	Search        string
	Page          int
	PageSize      int
}

func (q CatalogQuery) HasPredicates() bool {
	return len(q.Categories) != 0 ||
		len(q.Manufacturers) != 0 ||
		len(q.Patterns) != 0 ||
		len(q.Tags) != 0 ||
		q.Search != ""
}
