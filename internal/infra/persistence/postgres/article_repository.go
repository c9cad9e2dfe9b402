package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new catalog article repository.
func NewArticleRepository(db *gorm.DB) repository.ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	var articleModel model.ArticleModel
	err := r.db.WithContext(ctx).Preload("Category").First(&articleModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by id")
	}

	return toArticleDomain(&articleModel), nil
}

func (r *articleRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Article, error) {
	if len(ids) == 0 {
		return []*entity.Article{}, nil
	}

	var articleModels []model.ArticleModel
	err := r.db.WithContext(ctx).Preload("Category").Find(&articleModels, "id IN ?", ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find articles by ids")
	}

	articles := make([]*entity.Article, 0, len(articleModels))
	for i := range articleModels {
		articles = append(articles, toArticleDomain(&articleModels[i]))
	}

	return articles, nil
}

func (r *articleRepository) List(ctx context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	query := r.db.WithContext(ctx).Model(&model.ArticleModel{}).Preload("Category")
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	var articleModels []model.ArticleModel
	if err := query.Order("created_at DESC").Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	articles := make([]*entity.Article, 0, len(articleModels))
	for i := range articleModels {
		articles = append(articles, toArticleDomain(&articleModels[i]))
	}

	return articles, nil
}

func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	articleModel, err := r.fromArticleDomain(ctx, article)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(articleModel).Error; err != nil {
		return errors.Wrap(err, "failed to create article")
	}

	article.ID = articleModel.ID
	article.CreatedAt = articleModel.CreatedAt
	article.UpdatedAt = articleModel.UpdatedAt

	return nil
}

func (r *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	articleModel, err := r.fromArticleDomain(ctx, article)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&model.ArticleModel{}).
		Where("id = ?", article.ID).
		Updates(map[string]any{
			"title":         articleModel.Title,
			"price":         articleModel.Price,
			"image_url":     articleModel.ImageURL,
			"category_id":   articleModel.CategoryID,
			"description":   articleModel.Description,
			"specification": articleModel.Specification,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ArticleModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ArticleModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count articles")
	}

	return count, nil
}

func toArticleDomain(m *model.ArticleModel) *entity.Article {
	category := ""
	if m.Category != nil {
		category = m.Category.Name
	}

	return &entity.Article{
		ID:            m.ID,
		Title:         m.Title,
		Price:         m.Price,
		ImageURL:      m.ImageURL,
		Category:      category,
		Description:   m.Description,
		Specification: m.Specification,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// fromArticleDomain maps the entity onto the data model, resolving the
// category name to its id. An unknown category name is stored as NULL.
func (r *articleRepository) fromArticleDomain(ctx context.Context, a *entity.Article) (*model.ArticleModel, error) {
	var categoryID *uuid.UUID
	if a.Category != "" {
		var categoryModel model.CategoryModel
		err := r.db.WithContext(ctx).First(&categoryModel, "name = ?", a.Category).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "failed to resolve article category")
		}
		if err == nil {
			categoryID = &categoryModel.ID
		}
	}

	return &model.ArticleModel{
		ID:            a.ID,
		Title:         a.Title,
		Price:         a.Price,
		ImageURL:      a.ImageURL,
		CategoryID:    categoryID,
		Description:   a.Description,
		Specification: a.Specification,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}, nil
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new storefront content repository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for i := range categoryModels {
		m := &categoryModels[i]
		categories = append(categories, &entity.Category{
			ID:   m.ID,
			Name: m.Name,
			Slug: m.Slug,
		})
	}

	return categories, nil
}

func (r *contentRepository) ListContentBlocks(ctx context.Context, kind entity.ContentBlockKind) ([]*entity.ContentBlock, error) {
	var blockModels []model.ContentBlockModel
	err := r.db.WithContext(ctx).
		Where("kind = ? AND active = ?", string(kind), true).
		Order("position ASC").
		Find(&blockModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content blocks")
	}

	blocks := make([]*entity.ContentBlock, 0, len(blockModels))
	for i := range blockModels {
		m := &blockModels[i]
		blocks = append(blocks, &entity.ContentBlock{
			ID:       m.ID,
			Kind:     entity.ContentBlockKind(m.Kind),
			Title:    m.Title,
			Body:     m.Body,
			ImageURL: m.ImageURL,
			Position: m.Position,
			Active:   m.Active,
		})
	}

	return blocks, nil
}
