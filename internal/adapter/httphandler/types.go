package httphandler

import (
	"github.com/aqline/storefront/internal/core/domain"
	"github.com/aqline/storefront/pkg/paging"
)

type (
	// Product mirrors the storefront's JSON shape. The identifier is
	// always a decimal string: upstream ids can exceed the integers
	// JSON numbers carry safely.
	Product struct {
		TrxProductID string         `json:"trx_product_id"`
		SKU          string         `json:"sku"`
		Title        string         `json:"title"`
		Description  string         `json:"description"`
		Manufacturer string         `json:"manufacturer"`
		Category     string         `json:"category"`
		UOM          string         `json:"uom"`
		QtyAvailable *int           `json:"qtyAvailable"`
		Tags         string         `json:"tags"`
		Images       []ProductImage `json:"images"`
	}

	ProductImage struct {
		Src string `json:"src"`
	}

	VenueProduct struct {
		Product
		Price *float64 `json:"price"`
	}
)

type FacetOptions struct {
	Categories    []string `json:"categories"`
	Manufacturers []string `json:"manufacturers"`
	Patterns      []string `json:"patterns"`
	Collections   []string `json:"collections"`
	Tags          []string `json:"tags"`
	HasStockItems bool     `json:"hasStockItems"`
}

type ListResponse struct {
	Success    bool            `json:"success"`
	Products   []Product       `json:"products"`
	Pagination paging.PageInfo `json:"pagination"`
	Filters    FacetOptions    `json:"filters"`
	PageWindow []paging.Entry  `json:"pageWindow"`
}

type OptionsResponse struct {
	Success bool         `json:"success"`
	Options FacetOptions `json:"options"`
}

type BulkLookupRequest struct {
	IDs []string `json:"ids"`
}

type BulkLookupResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

type VenueResponse struct {
	Success   bool           `json:"success"`
	VenueName string         `json:"venueName"`
	Products  []VenueProduct `json:"products"`
}

type CartItem struct {
	ID           string `json:"id"`
	SKU          string `json:"sku"`
	Title        string `json:"title"`
	Manufacturer string `json:"manufacturer"`
	UOM          string `json:"uom"`
	ImageSrc     string `json:"imageSrc"`
	Quantity     int    `json:"quantity"`
}

type CartResponse struct {
	Success bool       `json:"success"`
	Items   []CartItem `json:"items"`
}

type AddCartItemRequest struct {
	CartItem
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type SubmitOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func toProductPayload(p domain.Product) Product {
	out := Product{
		TrxProductID: p.ID,
		SKU:          p.SKU,
		Title:        p.Title,
		Description:  p.Description,
		Manufacturer: p.Manufacturer,
		Category:     p.Category,
		UOM:          p.UOM,
		QtyAvailable: p.QtyAvailable,
		Tags:         p.Tags,
	}
	out.Images = make([]ProductImage, len(p.Images))
	for i := range p.Images {
		out.Images[i].Src = p.Images[i].Src
	}
	return out
}

func toProductPayloads(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = toProductPayload(p)
	}
	return out
}

func toDomainProducts(payload []Product) []domain.Product {
	ps := make([]domain.Product, len(payload))
	for i, p := range payload {
		dp := domain.Product{
			ID:           p.TrxProductID,
			SKU:          p.SKU,
			Title:        p.Title,
			Description:  p.Description,
			Manufacturer: p.Manufacturer,
			Category:     p.Category,
			UOM:          p.UOM,
			QtyAvailable: p.QtyAvailable,
			Tags:         p.Tags,
		}
		dp.Images = make([]domain.ProductImage, len(p.Images))
		for j := range p.Images {
			dp.Images[j].Src = p.Images[j].Src
		}
		ps[i] = dp
	}
	return ps
}

func toFacetPayload(o domain.FacetOptions) FacetOptions {
	return FacetOptions{
		Categories:    emptyIfNil(o.Categories),
		Manufacturers: emptyIfNil(o.Manufacturers),
		Patterns:      emptyIfNil(o.Patterns),
		Collections:   emptyIfNil(o.Collections),
		Tags:          emptyIfNil(o.Tags),
		HasStockItems: o.HasStockItems,
	}
}

func toCartPayload(c domain.Cart) CartResponse {
	res := CartResponse{Success: true, Items: []CartItem{}}
	for _, it := range c.Items {
		res.Items = append(res.Items, CartItem{
			ID:           it.ProductID,
			SKU:          it.SKU,
			Title:        it.Title,
			Manufacturer: it.Manufacturer,
			UOM:          it.UOM,
			ImageSrc:     it.ImageSrc,
			Quantity:     it.Quantity,
		})
	}
	return res
}

func emptyIfNil(vs []string) []string {
	if vs == nil {
		return []string{}
	}
	return vs
}
