package main

import (
	"padpro/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.UserProfileModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.ReceiptModel{},
		model.ReceiptItemModel{},
		model.PriceAdjustmentAlertModel{},
		model.CostcoPromotionModel{},
		model.PromotionPageModel{},
		model.OfficialSaleItemModel{},
		model.PushDeviceModel{},
		model.PushDeliveryModel{},
		model.BillingSubscriptionModel{},
		model.WarehouseModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
