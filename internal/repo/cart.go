package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/models"
)

// AddToCart inserts a cart line, merging into an existing row when the user
// already carries the same (design, color) tuple. The update-then-create
// runs in one transaction so concurrent adds cannot fork duplicate rows.
func (r *GormRepo) AddToCart(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.CartItem{}).
			Where("user_id = ? AND design_id = ?", item.UserID, item.DesignID)
		res := colorScope(q, item.ColorID).
			Update("quantity", gorm.Expr("quantity + ?", item.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			q := tx.Where("user_id = ? AND design_id = ?", item.UserID, item.DesignID)
			return colorScope(q, item.ColorID).First(item).Error
		}

		return tx.Create(item).Error
	})
}

// GetCart lists a user's cart newest first, expanded with design, the
// design's product, and color.
func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.DB.WithContext(ctx).
		Preload("Design.Product").
		Preload("Color").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateCartQuantity sets a line's quantity. The predicate includes the
// owning user, so another user's item reads as not found.
func (r *GormRepo) UpdateCartQuantity(ctx context.Context, userID, itemID, quantity uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return nil, err
	}

	if err := r.DB.WithContext(ctx).Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) RemoveFromCart(ctx context.Context, userID, itemID uint) error {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// DesignExists backs add-to-cart validation.
func (r *GormRepo) DesignExists(ctx context.Context, designID uint) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Design{}).Where("id = ?", designID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
