package port

import (
	"context"

	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/pkg/paging"
)

// CatalogPage is one page of listing results together with its
// pagination info and the facet options offered alongside it.
type CatalogPage struct {
	Products   []domain.Product
	Pagination paging.PageInfo
	Facets     domain.FacetOptions
}

// Inbound ports, implemented by the core services.

type CatalogBrowser interface {
	// Browse lists the catalog; facet options accumulate as a set
	// union across successive queries.
	Browse(context.Context, domain.CatalogQuery) (CatalogPage, error)

	// Search lists matches for a free-text term; facet options are
	// scoped to the current term only.
	Search(context.Context, domain.CatalogQuery) (CatalogPage, error)

	// Options returns the full-catalog facet options.
	Options(context.Context) (domain.FacetOptions, error)

	FindBySKU(ctx context.Context, sku string) (domain.Product, error)

	// Lookup resolves an identifier list; an empty list means the
	// whole catalog, not an empty result.
	Lookup(ctx context.Context, ids []string) ([]domain.Product, error)
}

type ProductsIngester interface {
	Ingest(context.Context, []domain.Product) error
}

type VenueViewer interface {
	VenueProducts(ctx context.Context, venueID string) (domain.Venue, error)
}

type CartManager interface {
	ViewCart(ctx context.Context, sessionID string) (domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, item domain.CartItem) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (domain.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
	SubmitOrder(ctx context.Context, sessionID, customerEmail string) (domain.Order, error)
}

type SessionManager interface {
	Login(ctx context.Context, email string) (domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type SessionProvider interface {
	Session(ctx context.Context, sessionID string) (domain.Session, error)
}

// Outbound ports, implemented by the adapters.

type CatalogRepository interface {
	ListProducts(context.Context, domain.CatalogQuery) (items []domain.Product, total int, err error)
	ProductBySKU(ctx context.Context, sku string) (domain.Product, error)
	ProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	UpsertProducts(context.Context, []domain.Product) error
	FacetOptions(context.Context) (domain.FacetOptions, error)
}

type VenueRepository interface {
	VenueProducts(ctx context.Context, venueID string) (domain.Venue, error)
}

type OrderRepository interface {
	StoreOrder(context.Context, domain.Order) (orderID string, err error)
}

type OrdersProducer interface {
	ProduceOrder(context.Context, domain.Order) error
}

type CartRepository interface {
	Cart(ctx context.Context, sessionID string) (domain.Cart, error)
	SaveCart(context.Context, domain.Cart) error
	DeleteCart(ctx context.Context, sessionID string) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, email string) (domain.Session, error)
	Session(ctx context.Context, sessionID string) (domain.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
