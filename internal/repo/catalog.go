package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/models"
)

func sorted(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }

// CategoryTree returns every category with its subcategories, both in
// display order. This is the storefront's navigation source.
func (r *GormRepo) CategoryTree(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.DB.WithContext(ctx).
		Preload("SubCategories", sorted).
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := r.DB.WithContext(ctx).
		Preload("SubCategories", sorted).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *GormRepo) SubCategoryBySlug(ctx context.Context, slug string) (*models.SubCategory, error) {
	var sub models.SubCategory
	err := r.DB.WithContext(ctx).
		Preload("Category").
		Preload("Products.Designs", sorted).
		Where("slug = ?", slug).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *GormRepo) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("Designs", sorted).
		Preload("Colors").
		Where("slug = ?", slug).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.DB.WithContext(ctx).
		Preload("SubCategory.Category").
		Preload("Designs", sorted).
		Preload("Colors").
		Order("id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Create/Save/Delete below are shared by the admin CRUD surface. Deletes
// report not-found instead of silently matching zero rows.

func (r *GormRepo) Create(ctx context.Context, entity any) error {
	return r.DB.WithContext(ctx).Create(entity).Error
}

func (r *GormRepo) Save(ctx context.Context, entity any) error {
	return r.DB.WithContext(ctx).Save(entity).Error
}

func (r *GormRepo) DeleteByID(ctx context.Context, entity any, id uint) error {
	res := r.DB.WithContext(ctx).Delete(entity, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) FindByID(ctx context.Context, entity any, id uint) error {
	return r.DB.WithContext(ctx).First(entity, id).Error
}
