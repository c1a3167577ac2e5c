package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/events"
	"github.com/fashionbrand/storefront/internal/logging"
	"github.com/fashionbrand/storefront/internal/models"
	"github.com/fashionbrand/storefront/internal/repo"
)

type CartService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

type AddToCartInput struct {
	DesignID uint
	ColorID  *uint
	Quantity uint
}

// Add merges into an existing (design, color) line or creates a new one.
// The design must exist; quantity defaults to 1.
func (s *CartService) Add(ctx context.Context, userID uint, in AddToCartInput) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add")

	if in.DesignID == 0 {
		return nil, fmt.Errorf("design ID is required: %w", ErrValidation)
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	exists, err := s.Repo.DesignExists(ctx, in.DesignID)
	if err != nil {
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("design not found: %w", ErrNotFound)
	}

	item := models.CartItem{
		UserID:   userID,
		DesignID: in.DesignID,
		ColorID:  in.ColorID,
		Quantity: in.Quantity,
	}
	if err := s.Repo.AddToCart(ctx, &item); err != nil {
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicCartEvents, fmt.Sprint(userID), map[string]any{
		"type":     "cart_item_added",
		"userID":   userID,
		"designID": item.DesignID,
		"quantity": item.Quantity,
	}); err != nil {
		l.Warn("event_publish_error", "error", err)
	}

	return &item, nil
}

func (s *CartService) List(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx, userID)
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.update_quantity")

	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	item, err := s.Repo.UpdateCartQuantity(ctx, userID, itemID, uint(quantity))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item not found: %w", ErrNotFound)
		}
		l.Error("update_quantity_error", "status", 500, "error", err)
		return nil, err
	}
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, userID, itemID uint) error {
	l := logging.FromContext(ctx).With("svc", "cart.remove")

	if err := s.Repo.RemoveFromCart(ctx, userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("item not found: %w", ErrNotFound)
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicCartEvents, fmt.Sprint(userID), map[string]any{
		"type":   "cart_item_removed",
		"userID": userID,
		"itemID": itemID,
	}); err != nil {
		l.Warn("event_publish_error", "error", err)
	}
	return nil
}
