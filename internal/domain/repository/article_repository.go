package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrArticleNotFound is returned when an article does not exist.
var ErrArticleNotFound = errors.New("article not found")

// ArticleFilter narrows catalog listings.
type ArticleFilter struct {
	CategoryID *uuid.UUID
	Search     string
}

// ArticleRepository defines the persistence operations for catalog articles.
type ArticleRepository interface {
	// FindByID retrieves a single article by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error)

	// FindByIDs retrieves the articles that exist among the given IDs.
	// Missing IDs are simply absent from the result; no error is returned for them.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Article, error)

	// List retrieves articles matching the filter, newest first.
	List(ctx context.Context, filter ArticleFilter) ([]*entity.Article, error)

	// Create persists a new article.
	Create(ctx context.Context, article *entity.Article) error

	// Update modifies an existing article.
	Update(ctx context.Context, article *entity.Article) error

	// Delete removes an article. Ledger rows referencing it are kept.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of articles, used by the admin dashboard.
	Count(ctx context.Context) (int64, error)
}

// ContentRepository serves the storefront landing content.
type ContentRepository interface {
	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListContentBlocks returns the active content blocks of a kind, in display order.
	ListContentBlocks(ctx context.Context, kind entity.ContentBlockKind) ([]*entity.ContentBlock, error)
}
