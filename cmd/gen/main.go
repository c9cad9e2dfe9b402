package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.SessionModel{},
		model.ArticleModel{},
		model.CategoryModel{},
		model.ContentBlockModel{},
		model.CartItemModel{},
		model.PurchaseLedgerEntryModel{},
		model.CompanyPurchaseLedgerEntryModel{},
		model.CompanyModel{},
		model.CompanyMembershipModel{},
		model.CompanyInvitationModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
