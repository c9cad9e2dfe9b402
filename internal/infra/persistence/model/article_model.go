package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArticleModel is the GORM data model for the articles table.
type ArticleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL      string          `gorm:"type:text"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	Description   string          `gorm:"type:text"`
	Specification string          `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name.
func (ArticleModel) TableName() string {
	return "articles"
}

// CategoryModel is the GORM data model for the categories table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name.
func (CategoryModel) TableName() string {
	return "categories"
}

// ContentBlockModel is the GORM data model for the content_blocks table.
// Blocks feed the storefront landing page (carousels and banners).
type ContentBlockModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind      string    `gorm:"type:varchar(32);not null;index"`
	Title     string    `gorm:"type:varchar(255)"`
	Body      string    `gorm:"type:text"`
	ImageURL  string    `gorm:"type:text"`
	Position  int       `gorm:"not null;default:0"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name.
func (ContentBlockModel) TableName() string {
	return "content_blocks"
}
