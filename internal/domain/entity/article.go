package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Article is a catalog item offered for sale. Prices are decimal values in
// the shop currency; minor-unit conversion happens only at the payment edge.
type Article struct {
	ID            uuid.UUID
	Title         string
	Price         decimal.Decimal
	ImageURL      string // May be empty or a relative path; only absolute URLs reach the payment gateway.
	Category      string
	Description   string
	Specification string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Category is a catalog grouping used by the filtered read path.
type Category struct {
	ID   uuid.UUID
	Name string
	Slug string
}

// ContentBlockKind distinguishes the layout slot a content block fills.
type ContentBlockKind string

const (
	ContentBlockCarousel ContentBlockKind = "carousel"
	ContentBlockBanner   ContentBlockKind = "banner"
)

// ContentBlock is an editorial block (carousel slide, banner) rendered by
// the storefront clients.
type ContentBlock struct {
	ID       uuid.UUID
	Kind     ContentBlockKind
	Title    string
	Body     string
	ImageURL string
	Position int
	Active   bool
}
