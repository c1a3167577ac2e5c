package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v9"
	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/es"
	"github.com/fashionbrand/storefront/internal/models"
	"github.com/fashionbrand/storefront/internal/repo"
	"github.com/fashionbrand/storefront/internal/service/search"
	"github.com/fashionbrand/storefront/internal/util"
)

// AdminService is the back-office write side of the catalog plus dealer
// management. Product writes keep the search index in step, best-effort.
type AdminService struct {
	Repo *repo.GormRepo
	ES   *elasticsearch.Client
}

type CategoryInput struct {
	Name      string
	Slug      string
	Image     string
	SortOrder int
}

type SubCategoryInput struct {
	CategoryID uint
	Name       string
	Slug       string
	Image      string
	SortOrder  int
}

type ProductInput struct {
	SubCategoryID  uint
	Name           string
	Slug           string
	Description    string
	HasColorChoice bool
}

type DesignInput struct {
	ProductID uint
	Name      string
	Image     string
	SortOrder int
}

type ColorInput struct {
	ProductID uint
	ColorName string
	ColorHex  string
}

// slugOrDerive keeps an explicit slug and otherwise derives one from the
// display name.
func slugOrDerive(slug, name string) string {
	if slug != "" {
		return slug
	}
	return util.Slugify(name)
}

func (s *AdminService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("name is required: %w", ErrValidation)
	}
	category := models.Category{
		Name:      in.Name,
		Slug:      slugOrDerive(in.Slug, in.Name),
		Image:     in.Image,
		SortOrder: in.SortOrder,
	}
	if err := s.Repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, id uint, in CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := s.Repo.FindByID(ctx, &category, id); err != nil {
		return nil, notFoundOr(err, "category")
	}

	category.Name = in.Name
	category.Slug = slugOrDerive(in.Slug, in.Name)
	category.Image = in.Image
	category.SortOrder = in.SortOrder
	if err := s.Repo.Save(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteByID(ctx, &models.Category{}, id); err != nil {
		return notFoundOr(err, "category")
	}
	return nil
}

func (s *AdminService) CreateSubCategory(ctx context.Context, in SubCategoryInput) (*models.SubCategory, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return nil, fmt.Errorf("category and name are required: %w", ErrValidation)
	}
	sub := models.SubCategory{
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Slug:       slugOrDerive(in.Slug, in.Name),
		Image:      in.Image,
		SortOrder:  in.SortOrder,
	}
	if err := s.Repo.Create(ctx, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *AdminService) UpdateSubCategory(ctx context.Context, id uint, in SubCategoryInput) (*models.SubCategory, error) {
	var sub models.SubCategory
	if err := s.Repo.FindByID(ctx, &sub, id); err != nil {
		return nil, notFoundOr(err, "subcategory")
	}

	sub.Name = in.Name
	sub.Slug = slugOrDerive(in.Slug, in.Name)
	sub.Image = in.Image
	sub.SortOrder = in.SortOrder
	if in.CategoryID != 0 {
		sub.CategoryID = in.CategoryID
	}
	if err := s.Repo.Save(ctx, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *AdminService) DeleteSubCategory(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteByID(ctx, &models.SubCategory{}, id); err != nil {
		return notFoundOr(err, "subcategory")
	}
	return nil
}

func (s *AdminService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *AdminService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if in.Name == "" || in.SubCategoryID == 0 {
		return nil, fmt.Errorf("subcategory and name are required: %w", ErrValidation)
	}
	product := models.Product{
		SubCategoryID:  in.SubCategoryID,
		Name:           in.Name,
		Slug:           slugOrDerive(in.Slug, in.Name),
		Description:    in.Description,
		HasColorChoice: in.HasColorChoice,
	}
	if err := s.Repo.Create(ctx, &product); err != nil {
		return nil, err
	}

	search.LogIndexErr(ctx, "create", search.IndexProduct(ctx, s.ES, es.ProductIndex, &product))
	return &product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	var product models.Product
	if err := s.Repo.FindByID(ctx, &product, id); err != nil {
		return nil, notFoundOr(err, "product")
	}

	product.Name = in.Name
	product.Slug = slugOrDerive(in.Slug, in.Name)
	product.Description = in.Description
	product.HasColorChoice = in.HasColorChoice
	if in.SubCategoryID != 0 {
		product.SubCategoryID = in.SubCategoryID
	}
	if err := s.Repo.Save(ctx, &product); err != nil {
		return nil, err
	}

	search.LogIndexErr(ctx, "update", search.IndexProduct(ctx, s.ES, es.ProductIndex, &product))
	return &product, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteByID(ctx, &models.Product{}, id); err != nil {
		return notFoundOr(err, "product")
	}
	search.LogIndexErr(ctx, "delete", search.DeleteProduct(ctx, s.ES, es.ProductIndex, id))
	return nil
}

func (s *AdminService) CreateDesign(ctx context.Context, in DesignInput) (*models.Design, error) {
	if in.Name == "" || in.ProductID == 0 {
		return nil, fmt.Errorf("product and name are required: %w", ErrValidation)
	}
	design := models.Design{
		ProductID: in.ProductID,
		Name:      in.Name,
		Image:     in.Image,
		SortOrder: in.SortOrder,
	}
	if err := s.Repo.Create(ctx, &design); err != nil {
		return nil, err
	}
	return &design, nil
}

func (s *AdminService) DeleteDesign(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteByID(ctx, &models.Design{}, id); err != nil {
		return notFoundOr(err, "design")
	}
	return nil
}

func (s *AdminService) CreateColor(ctx context.Context, in ColorInput) (*models.Color, error) {
	if in.ColorName == "" || in.ProductID == 0 {
		return nil, fmt.Errorf("product and color name are required: %w", ErrValidation)
	}
	color := models.Color{
		ProductID: in.ProductID,
		ColorName: in.ColorName,
		ColorHex:  in.ColorHex,
	}
	if err := s.Repo.Create(ctx, &color); err != nil {
		return nil, err
	}
	return &color, nil
}

func (s *AdminService) DeleteColor(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteByID(ctx, &models.Color{}, id); err != nil {
		return notFoundOr(err, "color")
	}
	return nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.ListUsers(ctx)
}

// DeleteUser removes a dealer account. Accounts with order history are
// kept; the orders remain the storefront's business record.
func (s *AdminService) DeleteUser(ctx context.Context, id uint) error {
	err := s.Repo.DeleteUser(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrHasOrders):
		return fmt.Errorf("user has orders and cannot be deleted: %w", ErrHasOrders)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("user not found: %w", ErrNotFound)
	}
	return err
}
