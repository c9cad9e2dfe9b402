package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager with GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	logger *slog.Logger
}

// TransactionParams defines the dependencies of the transaction manager.
type TransactionParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// NewTransactionManager creates a new GORM-backed transaction manager.
func NewTransactionManager(params TransactionParams) repository.TransactionManager {
	return &gormTransactionManager{
		db:     params.DB,
		logger: params.Logger,
	}
}

// Execute runs fn inside a single database transaction. Repositories obtained
// from the factory passed to fn share that transaction. A panic inside fn
// rolls back and re-panics; a returned error rolls back and is returned as-is
// so sentinel checks in the use case layer keep working.
func (m *gormTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			if err := tx.Rollback().Error; err != nil {
				m.logger.ErrorContext(ctx, "failed to rollback transaction after panic",
					slog.String("error", err.Error()),
					slog.String("panic", fmt.Sprintf("%v", r)))
			}
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{db: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			m.logger.ErrorContext(ctx, "failed to rollback transaction",
				slog.String("rollbackError", rbErr.Error()),
				slog.String("businessError", err.Error()))
		}

		// Return the business error untouched so callers can errors.Is on it.
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to one *gorm.DB, which
// is either the root connection or an open transaction.
type gormRepositoryFactory struct {
	db *gorm.DB
}

// NewRepositoryFactory creates a factory bound to the root connection, for
// non-transactional use.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{db: db}
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.db)
}

func (f *gormRepositoryFactory) AuthRepo() repository.AuthRepository {
	return NewAuthRepository(f.db)
}

func (f *gormRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(f.db)
}

func (f *gormRepositoryFactory) SessionRepo() repository.SessionRepository {
	return NewSessionRepository(f.db)
}

func (f *gormRepositoryFactory) ArticleRepo() repository.ArticleRepository {
	return NewArticleRepository(f.db)
}

func (f *gormRepositoryFactory) CartRepo() repository.CartRepository {
	return NewCartRepository(f.db)
}

func (f *gormRepositoryFactory) PurchaseRepo() repository.PurchaseRepository {
	return NewPurchaseRepository(f.db)
}

func (f *gormRepositoryFactory) CompanyRepo() repository.CompanyRepository {
	return NewCompanyRepository(f.db)
}

func (f *gormRepositoryFactory) InvitationRepo() repository.InvitationRepository {
	return NewInvitationRepository(f.db)
}
