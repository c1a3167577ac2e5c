package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	var existing models.User
	err := r.DB.WithContext(ctx).Where("phone = ?", u.Phone).First(&existing).Error
	if err == nil {
		return ErrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) UserByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user and their cart. Deletion is refused while the
// user still owns orders: order history must not vanish with the account.
func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orders int64
		if err := tx.Model(&models.Order{}).Where("user_id = ?", id).Count(&orders).Error; err != nil {
			return err
		}
		if orders > 0 {
			return ErrHasOrders
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) CreateAdmin(ctx context.Context, a *models.Admin) error {
	var existing models.Admin
	err := r.DB.WithContext(ctx).Where("email = ?", a.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *GormRepo) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *GormRepo) AdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
