package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/models"
	"github.com/fashionbrand/storefront/internal/repo"
)

// CatalogService serves the storefront's read side of the catalog
// hierarchy: categories → subcategories → products → designs/colors.
type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) CategoryTree(ctx context.Context) ([]models.Category, error) {
	return s.Repo.CategoryTree(ctx)
}

func (s *CatalogService) CategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.Repo.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "category")
	}
	return category, nil
}

func (s *CatalogService) SubCategoryBySlug(ctx context.Context, slug string) (*models.SubCategory, error) {
	sub, err := s.Repo.SubCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "subcategory")
	}
	return sub, nil
}

func (s *CatalogService) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.Repo.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "product")
	}
	return product, nil
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s not found: %w", what, ErrNotFound)
	}
	return err
}
