package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	articleRepo *mockRepo.MockArticleRepository
	contentRepo *mockRepo.MockContentRepository
	storage     *mockService.MockBlobStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	articleRepo := mockRepo.NewMockArticleRepository(t)
	contentRepo := mockRepo.NewMockContentRepository(t)
	storage := mockService.NewMockBlobStorage(t)
	service := NewCatalogService(CatalogServiceParams{
		ArticleRepo: articleRepo,
		ContentRepo: contentRepo,
		Storage:     storage,
		Guard:       authz.NewGuard(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return catalogServiceFixtures{
		service:     service,
		articleRepo: articleRepo,
		contentRepo: contentRepo,
		storage:     storage,
	}
}

func TestCatalogService_ListArticles(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	articles := []*entity.Article{{ID: uuid.New(), Title: "高山烏龍茶"}}

	fx.articleRepo.EXPECT().
		List(ctx, repository.ArticleFilter{CategoryID: &categoryID, Search: "烏龍"}).
		Return(articles, nil)

	got, err := fx.service.ListArticles(ctx, &usecase.ListArticlesInput{
		CategoryID: &categoryID,
		Search:     "烏龍",
	})
	require.NoError(t, err)
	assert.Equal(t, articles, got)
}

func TestCatalogService_GetArticle_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	articleID := uuid.New()

	fx.articleRepo.EXPECT().
		FindByID(ctx, articleID).
		Return(nil, repository.ErrArticleNotFound)

	got, err := fx.service.GetArticle(ctx, articleID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
}

func TestCatalogService_ListCategories(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	categories := []*entity.Category{{ID: uuid.New(), Name: "茶葉"}}

	fx.contentRepo.EXPECT().ListCategories(ctx).Return(categories, nil)

	got, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func TestCatalogService_CreateArticle_AdminOnly(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	got, err := fx.service.CreateArticle(ctx, &entity.Principal{ID: uuid.New(), Role: entity.RoleUser}, &usecase.SaveArticleInput{
		Title: "高山烏龍茶",
		Price: decimal.NewFromInt(450),
	})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestCatalogService_CreateArticle(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}

	fx.articleRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Article")).
		Return(nil)

	got, err := fx.service.CreateArticle(ctx, admin, &usecase.SaveArticleInput{
		Title:    "高山烏龍茶",
		Price:    decimal.RequireFromString("450.00"),
		Category: "茶葉",
	})
	require.NoError(t, err)
	assert.Equal(t, "高山烏龍茶", got.Title)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("450.00")))
}

func TestCatalogService_CreateArticle_NegativePrice(t *testing.T) {
	fx := createTestCatalogService(t)
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}

	got, err := fx.service.CreateArticle(context.Background(), admin, &usecase.SaveArticleInput{
		Title: "高山烏龍茶",
		Price: decimal.NewFromInt(-1),
	})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_DeleteArticle(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	articleID := uuid.New()

	fx.articleRepo.EXPECT().Delete(ctx, articleID).Return(nil)

	require.NoError(t, fx.service.DeleteArticle(ctx, admin, articleID))
}

func TestCatalogService_UploadArticleImage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	articleID := uuid.New()
	article := &entity.Article{ID: articleID, Title: "高山烏龍茶"}
	body := strings.NewReader("png bytes")

	fx.articleRepo.EXPECT().FindByID(ctx, articleID).Return(article, nil)
	fx.storage.EXPECT().
		Upload(ctx, "articles/"+articleID.String()+"/cover.png", "image/png", body).
		Return("https://cdn.example.com/articles/cover.png", nil)
	fx.articleRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Article")).
		Run(func(_ context.Context, updated *entity.Article) {
			assert.Equal(t, "https://cdn.example.com/articles/cover.png", updated.ImageURL)
		}).
		Return(nil)

	url, err := fx.service.UploadArticleImage(ctx, admin, &usecase.UploadArticleImageInput{
		ArticleID:   articleID,
		Filename:    "cover.png",
		ContentType: "image/png",
		Body:        body,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/articles/cover.png", url)
}

func TestCatalogService_UpdateArticle_KeepsLedgerUntouched(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}
	articleID := uuid.New()

	fx.articleRepo.EXPECT().
		FindByID(ctx, articleID).
		Return(&entity.Article{ID: articleID, Title: "高山烏龍茶", Price: decimal.NewFromInt(450)}, nil)
	fx.articleRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Article")).
		Return(nil)

	got, err := fx.service.UpdateArticle(ctx, admin, articleID, &usecase.SaveArticleInput{
		Title: "高山烏龍茶",
		Price: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(500)))
}
