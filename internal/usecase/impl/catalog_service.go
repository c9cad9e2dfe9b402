package impl

import (
	"context"
	"log/slog"
	"path"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	articleRepo repository.ArticleRepository
	contentRepo repository.ContentRepository
	storage     service.BlobStorage
	guard       *authz.Guard
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ArticleRepo repository.ArticleRepository
	ContentRepo repository.ContentRepository
	Storage     service.BlobStorage
	Guard       *authz.Guard
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		articleRepo: params.ArticleRepo,
		contentRepo: params.ContentRepo,
		storage:     params.Storage,
		guard:       params.Guard,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListArticles returns catalog articles, optionally filtered.
func (srv *catalogService) ListArticles(ctx context.Context, input *usecase.ListArticlesInput) ([]*entity.Article, error) {
	articles, err := srv.articleRepo.List(ctx, repository.ArticleFilter{
		CategoryID: input.CategoryID,
		Search:     input.Search,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list articles")
	}

	return articles, nil
}

// GetArticle returns one catalog article.
func (srv *catalogService) GetArticle(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	article, err := srv.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article")
	}

	return article, nil
}

// ListCategories returns all catalog categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.contentRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListContentBlocks returns the active editorial blocks of a kind.
func (srv *catalogService) ListContentBlocks(ctx context.Context, kind entity.ContentBlockKind) ([]*entity.ContentBlock, error) {
	blocks, err := srv.contentRepo.ListContentBlocks(ctx, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content blocks")
	}

	return blocks, nil
}

// CreateArticle adds a catalog article; platform admin only.
func (srv *catalogService) CreateArticle(ctx context.Context, principal *entity.Principal, input *usecase.SaveArticleInput) (*entity.Article, error) {
	if err := srv.authorizeManage(principal); err != nil {
		return nil, err
	}
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	article := &entity.Article{
		ID:            uuid.New(),
		Title:         input.Title,
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		Category:      input.Category,
		Description:   input.Description,
		Specification: input.Specification,
	}
	if err := srv.articleRepo.Create(ctx, article); err != nil {
		return nil, errors.Wrap(err, "failed to create article")
	}

	srv.log(ctx).Info("Article created", slog.String("articleID", article.ID.String()))

	return article, nil
}

// UpdateArticle modifies a catalog article; platform admin only. Existing
// ledger rows keep the price captured at purchase time.
func (srv *catalogService) UpdateArticle(ctx context.Context, principal *entity.Principal, id uuid.UUID, input *usecase.SaveArticleInput) (*entity.Article, error) {
	if err := srv.authorizeManage(principal); err != nil {
		return nil, err
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	article, err := srv.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article")
	}

	article.Title = input.Title
	article.Price = input.Price
	article.ImageURL = input.ImageURL
	article.Category = input.Category
	article.Description = input.Description
	article.Specification = input.Specification
	if err := srv.articleRepo.Update(ctx, article); err != nil {
		return nil, errors.Wrap(err, "failed to update article")
	}

	return article, nil
}

// DeleteArticle removes a catalog article; ledger rows referencing it stay
// and render with a placeholder from then on.
func (srv *catalogService) DeleteArticle(ctx context.Context, principal *entity.Principal, id uuid.UUID) error {
	if err := srv.authorizeManage(principal); err != nil {
		return err
	}

	if err := srv.articleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return domainerrors.ErrArticleNotFound
		}

		return errors.Wrap(err, "failed to delete article")
	}

	srv.log(ctx).Info("Article deleted", slog.String("articleID", id.String()))

	return nil
}

// UploadArticleImage stores an image blob and points the article at it.
func (srv *catalogService) UploadArticleImage(ctx context.Context, principal *entity.Principal, input *usecase.UploadArticleImageInput) (string, error) {
	if err := srv.authorizeManage(principal); err != nil {
		return "", err
	}

	article, err := srv.articleRepo.FindByID(ctx, input.ArticleID)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return "", domainerrors.ErrArticleNotFound
		}

		return "", errors.Wrap(err, "failed to find article")
	}

	key := path.Join("articles", article.ID.String(), input.Filename)
	url, err := srv.storage.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	article.ImageURL = url
	if err := srv.articleRepo.Update(ctx, article); err != nil {
		return "", errors.Wrap(err, "failed to update article image")
	}

	return url, nil
}

func (srv *catalogService) authorizeManage(principal *entity.Principal) error {
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	return srv.guard.Authorize(principal, authz.ActionManageCatalog, authz.Resource{}).Err()
}
