package main

import (
	"maple/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.AddressModel{},
		model.ProductModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.PaymentModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.PointsEntryModel{},
		model.ReviewModel{},
		model.UserDeviceModel{},
		model.NotificationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
