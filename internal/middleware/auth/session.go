// Package auth resolves the session cookie once per request and puts a
// typed identity on the echo context; handlers never re-derive it.
package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/models"
)

const (
	// CookieName carries the signed session token.
	CookieName = "accessToken"

	userKey  = "session.user"
	adminKey = "session.admin"
)

type Sessions struct {
	DB     *gorm.DB
	Secret []byte
}

// CreateCookie builds the HttpOnly session cookie.
func CreateCookie(value string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpireCookie overwrites the session cookie with an already-expired one.
func ExpireCookie() *http.Cookie {
	return CreateCookie("", time.Now().Add(-time.Hour))
}

func (s *Sessions) resolve(c echo.Context) (uint, string, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "please log in")
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	role, _ := claims["role"].(string)

	return uint(sub), role, nil
}

// RequireDealer authenticates storefront requests and loads the dealer row.
func (s *Sessions) RequireDealer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, role, err := s.resolve(c)
		if err != nil {
			return err
		}
		if role != "dealer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "please log in")
		}

		var user models.User
		if err := s.DB.WithContext(c.Request().Context()).First(&user, id).Error; err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "please log in")
		}

		c.Set(userKey, &user)
		return next(c)
	}
}

// RequireAdmin authenticates back-office requests and loads the admin row.
func (s *Sessions) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, role, err := s.resolve(c)
		if err != nil {
			return err
		}
		if role != "admin" {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		var admin models.Admin
		if err := s.DB.WithContext(c.Request().Context()).First(&admin, id).Error; err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}

		c.Set(adminKey, &admin)
		return next(c)
	}
}

func UserFrom(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(userKey).(*models.User)
	return user, ok
}

func AdminFrom(c echo.Context) (*models.Admin, bool) {
	admin, ok := c.Get(adminKey).(*models.Admin)
	return admin, ok
}
