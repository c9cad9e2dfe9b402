package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/authz"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	userRepo     *mockRepo.MockUserRepository
	articleRepo  *mockRepo.MockArticleRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	articleRepo := mockRepo.NewMockArticleRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	service := NewAdminService(AdminServiceParams{
		UserRepo:     userRepo,
		ArticleRepo:  articleRepo,
		PurchaseRepo: purchaseRepo,
		Guard:        authz.NewGuard(),
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return adminServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		articleRepo:  articleRepo,
		purchaseRepo: purchaseRepo,
	}
}

func TestAdminService_Dashboard(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	admin := &entity.Principal{ID: uuid.New(), Role: entity.RoleAdmin}

	price := decimal.NewFromInt(100)
	older := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	fx.userRepo.EXPECT().Count(ctx).Return(int64(12), nil)
	fx.articleRepo.EXPECT().Count(ctx).Return(int64(7), nil)
	fx.purchaseRepo.EXPECT().Count(ctx).Return(int64(3), nil)
	fx.purchaseRepo.EXPECT().ListAll(ctx).Return([]*entity.PurchaseLedgerEntry{
		{ID: uuid.New(), Quantity: 2, UnitPrice: &price, PurchaseDate: older},
		{ID: uuid.New(), Quantity: 1, UnitPrice: &price, PurchaseDate: newer},
		// Legacy row without a captured price is excluded from revenue.
		{ID: uuid.New(), Quantity: 5, PurchaseDate: newer},
	}, nil)

	output, err := fx.service.Dashboard(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(12), output.UserCount)
	assert.Equal(t, int64(7), output.ArticleCount)
	assert.Equal(t, int64(3), output.OrderCount)
	assert.True(t, output.Revenue.Equal(decimal.NewFromInt(300)))

	require.Len(t, output.RevenueByDay, 2)
	assert.True(t, output.RevenueByDay[0].Day.After(output.RevenueByDay[1].Day))
	assert.True(t, output.RevenueByDay[0].Revenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, output.RevenueByDay[1].Revenue.Equal(decimal.NewFromInt(200)))
}

func TestAdminService_Dashboard_NonAdminDenied(t *testing.T) {
	fx := createTestAdminService(t)

	output, err := fx.service.Dashboard(context.Background(), &entity.Principal{ID: uuid.New(), Role: entity.RoleUser})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}
