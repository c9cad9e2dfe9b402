package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListArticlesInput narrows the catalog listing.
type ListArticlesInput struct {
	CategoryID *uuid.UUID
	Search     string
}

// SaveArticleInput carries the admin-editable article fields.
type SaveArticleInput struct {
	Title         string
	Price         decimal.Decimal
	ImageURL      string
	Category      string
	Description   string
	Specification string
}

// UploadArticleImageInput carries an image upload for an article.
type UploadArticleImageInput struct {
	ArticleID   uuid.UUID
	Filename    string
	ContentType string
	Body        io.Reader
}

// CatalogUsecase is the read path of the catalog plus the admin-only
// article mutations.
type CatalogUsecase interface {
	ListArticles(ctx context.Context, input *ListArticlesInput) ([]*entity.Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListContentBlocks(ctx context.Context, kind entity.ContentBlockKind) ([]*entity.ContentBlock, error)

	CreateArticle(ctx context.Context, principal *entity.Principal, input *SaveArticleInput) (*entity.Article, error)
	UpdateArticle(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *SaveArticleInput) (*entity.Article, error)
	DeleteArticle(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
	UploadArticleImage(ctx context.Context, principal *entity.Principal, input *UploadArticleImageInput) (string, error)
}
