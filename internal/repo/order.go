package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/models"
)

// PlaceOrder snapshots the user's cart into an order and clears the cart,
// all in one transaction. Either the order exists and the cart is empty, or
// neither happened.
//
// The delete at the end asserts it removed exactly the rows read at the
// start. Under concurrent PlaceOrder calls the loser's delete matches fewer
// rows than it read and the whole transaction rolls back with
// ErrCartChanged, so one cart can never yield two orders. The same guard
// keeps an overlapping add-to-cart from being swallowed by the clear.
func (r *GormRepo) PlaceOrder(ctx context.Context, userID uint) (*models.Order, error) {
	var placed models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		order := models.Order{UserID: userID, Status: models.OrderStatusPending}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		orderItems := make([]models.OrderItem, 0, len(items))
		for _, it := range items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:  order.ID,
				DesignID: it.DesignID,
				ColorID:  it.ColorID,
				Quantity: it.Quantity,
			})
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}

		res := tx.Where("user_id = ?", userID).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(items)) {
			return ErrCartChanged
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.OrderByID(ctx, placed.ID)
}

func (r *GormRepo) OrderByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.Design.Product").
		Preload("Items.Color").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) OrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.Design.Product").
		Preload("Items.Color").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// AllOrders backs the admin order list, expanded with the owning user.
func (r *GormRepo) AllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.Design.Product").
		Preload("Items.Color").
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, orderID uint, status, notes string) (*models.Order, error) {
	updates := map[string]any{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}

	res := r.DB.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.OrderByID(ctx, orderID)
}
