package impl

import (
	"maple/internal/domain/entity"
	domainerrors "maple/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// unitPriceCents is the authoritative per-unit price of a cart selection:
// catalog price plus customization surcharges.
func unitPriceCents(product *entity.Product, customizations []entity.CustomizationSelection) int64 {
	price := product.PriceCents
	for _, c := range customizations {
		price += c.SurchargeCents
	}

	return price
}

// productMapByID indexes a product slice by ID.
func productMapByID(products []entity.Product) map[uuid.UUID]*entity.Product {
	m := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		m[products[i].ID] = &products[i]
	}

	return m
}

// priceCart recomputes line items and the subtotal for a cart from the live
// catalog. Every product must exist and be available.
func priceCart(cart *entity.Cart, products map[uuid.UUID]*entity.Product) ([]entity.OrderItem, int64, error) {
	items := make([]entity.OrderItem, 0, len(cart.Items))

	var subtotal int64

	for _, cartItem := range cart.Items {
		product, ok := products[cartItem.ProductID]
		if !ok {
			return nil, 0, errors.Wrapf(domainerrors.ErrProductNotFound, "product %s no longer exists", cartItem.ProductID)
		}
		if !product.IsAvailable {
			return nil, 0, errors.Wrapf(domainerrors.ErrProductUnavailable, "product %s is unavailable", cartItem.ProductID)
		}

		unitPrice := unitPriceCents(product, cartItem.Customizations)
		lineSubtotal := unitPrice * int64(cartItem.Quantity)

		items = append(items, entity.OrderItem{
			ProductID:      product.ID,
			ProductName:    product.Name,
			UnitPriceCents: unitPrice,
			Quantity:       cartItem.Quantity,
			SubtotalCents:  lineSubtotal,
			Customizations: cartItem.Customizations,
		})
		subtotal += lineSubtotal
	}

	return items, subtotal, nil
}
