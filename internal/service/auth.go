package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/events"
	"github.com/fashionbrand/storefront/internal/hash"
	"github.com/fashionbrand/storefront/internal/logging"
	"github.com/fashionbrand/storefront/internal/models"
	"github.com/fashionbrand/storefront/internal/repo"
)

// Session realms carried in the token's role claim.
const (
	RoleDealer = "dealer"
	RoleAdmin  = "admin"
)

// SessionTTL matches the original storefront's 7-day login cookie.
const SessionTTL = 7 * 24 * time.Hour

type AuthService struct {
	Repo     *repo.GormRepo
	Secret   []byte
	Producer *events.Producer

	// AdminCreateSecret guards the bootstrap admin-create endpoint.
	AdminCreateSecret string
}

type RegisterInput struct {
	Name      string
	Phone     string
	ShopName  string
	Address   string
	Pincode   string
	GSTNumber string
	Password  string
}

// MintToken signs a session token for one id in one realm.
func (s *AuthService) MintToken(id uint, role string, exp time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(id),
		"role": role,
		"exp":  exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if in.Name == "" || in.Phone == "" || in.ShopName == "" ||
		in.Address == "" || in.Pincode == "" || in.Password == "" {
		return nil, fmt.Errorf("all required fields must be provided: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_error", "status", 500, "error", err)
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Phone:        in.Phone,
		ShopName:     in.ShopName,
		Address:      in.Address,
		Pincode:      in.Pincode,
		PasswordHash: pwHash,
	}
	if in.GSTNumber != "" {
		user.GSTNumber = &in.GSTNumber
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrPhoneTaken) {
			return nil, fmt.Errorf("a user with this phone number already exists: %w", ErrExists)
		}
		l.Error("register_error", "status", 500, "error", err)
		return nil, err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"phone":  user.Phone,
	}); err != nil {
		l.Warn("event_publish_error", "error", err)
	}

	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, phone, password string) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if phone == "" || password == "" {
		return nil, "", fmt.Errorf("phone and password are required: %w", ErrValidation)
	}

	user, err := s.Repo.UserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCredentials
		}
		l.Error("login_error", "status", 500, "error", err)
		return nil, "", err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrCredentials
	}

	token, err := s.MintToken(user.ID, RoleDealer, time.Now().Add(SessionTTL))
	if err != nil {
		l.Error("login_error", "status", 500, "error", err)
		return nil, "", err
	}

	if err := s.Producer.PublishEvent(ctx, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
	}); err != nil {
		l.Warn("event_publish_error", "error", err)
	}

	return user, token, nil
}

func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*models.Admin, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.admin_login")

	if email == "" || password == "" {
		return nil, "", fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	admin, err := s.Repo.AdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCredentials
		}
		l.Error("admin_login_error", "status", 500, "error", err)
		return nil, "", err
	}
	if !hash.CheckPassword(admin.PasswordHash, password) {
		return nil, "", ErrCredentials
	}

	token, err := s.MintToken(admin.ID, RoleAdmin, time.Now().Add(24*time.Hour))
	if err != nil {
		l.Error("admin_login_error", "status", 500, "error", err)
		return nil, "", err
	}

	return admin, token, nil
}

// CreateAdmin bootstraps a back-office account. The shared secret stands in
// for a real invite flow, same as the original deployment.
func (s *AuthService) CreateAdmin(ctx context.Context, name, email, password, secret string) (*models.Admin, error) {
	if s.AdminCreateSecret == "" || secret != s.AdminCreateSecret {
		return nil, ErrCredentials
	}
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{Name: name, Email: email, PasswordHash: pwHash}
	if err := s.Repo.CreateAdmin(ctx, &admin); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, fmt.Errorf("admin already exists: %w", ErrExists)
		}
		return nil, err
	}
	return &admin, nil
}
