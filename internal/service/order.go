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
	"github.com/fashionbrand/storefront/internal/whatsapp"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Config   *ConfigService
	Producer *events.Producer
}

// PlacedOrder is what checkout hands back to the client: the persisted
// order plus the message and deep link to continue in WhatsApp.
type PlacedOrder struct {
	Order       *models.Order `json:"order"`
	Message     string        `json:"message"`
	WhatsAppURL string        `json:"whatsapp_url"`
}

// Place converts the user's cart into an order and renders the WhatsApp
// handoff. The cart snapshot, order creation, and cart clear are one
// transactional unit in the repo; a concurrent duplicate call loses the
// transaction and surfaces as ErrConflict.
func (s *OrderService) Place(ctx context.Context, user *models.User) (*PlacedOrder, error) {
	l := logging.FromContext(ctx).With("svc", "order.place", "user_id", user.ID)

	order, err := s.Repo.PlaceOrder(ctx, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmptyCart):
			return nil, fmt.Errorf("your cart is empty: %w", ErrEmptyCart)
		case errors.Is(err, repo.ErrCartChanged):
			l.Warn("place_order_conflict", "status", 409)
			return nil, fmt.Errorf("cart changed, please retry: %w", ErrConflict)
		}
		l.Error("place_order_error", "status", 500, "error", err)
		return nil, err
	}

	number := s.Config.WhatsAppNumber(ctx)
	message := whatsapp.FormatOrderMessage(order, user)

	if err := s.Producer.PublishEvent(ctx, events.TopicOrderEvents, fmt.Sprint(user.ID), map[string]any{
		"type":    "order_created",
		"userID":  user.ID,
		"orderID": order.ID,
		"items":   len(order.Items),
	}); err != nil {
		l.Warn("event_publish_error", "error", err)
	}

	l.Info("order_placed", "order_id", order.ID, "items", len(order.Items))

	return &PlacedOrder{
		Order:       order,
		Message:     message,
		WhatsAppURL: whatsapp.BuildDeepLink(number, message),
	}, nil
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.OrdersByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]models.Order, error) {
	return s.Repo.AllOrders(ctx)
}

// UpdateStatus moves an order through the back-office workflow. The status
// must be one of the fixed enumeration.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status, notes string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("invalid status %q: %w", status, ErrValidation)
	}

	order, err := s.Repo.UpdateOrderStatus(ctx, orderID, status, notes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}
