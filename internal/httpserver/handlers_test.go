package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fashionbrand/storefront/internal/events"
	authmw "github.com/fashionbrand/storefront/internal/middleware/auth"
	"github.com/fashionbrand/storefront/internal/models"
	"github.com/fashionbrand/storefront/internal/repo"
	"github.com/fashionbrand/storefront/internal/service"
)

type testEnv struct {
	t  *testing.T
	e  *echo.Echo
	db *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	r := &repo.GormRepo{DB: db}
	producer := &events.Producer{}
	secret := []byte("test-secret")

	authSvc := &service.AuthService{
		Repo:              r,
		Secret:            secret,
		Producer:          producer,
		AdminCreateSecret: "bootstrap-secret",
	}
	cartSvc := &service.CartService{Repo: r, Producer: producer}
	configSvc := &service.ConfigService{Repo: r}
	orderSvc := &service.OrderService{Repo: r, Config: configSvc, Producer: producer}
	catalogSvc := &service.CatalogService{Repo: r}
	adminSvc := &service.AdminService{Repo: r}

	e := echo.New()
	Register(e, &Deps{
		Sessions:       &authmw.Sessions{DB: db, Secret: secret},
		AuthHandler:    &AuthHTTP{Svc: authSvc},
		CartHandler:    &CartHTTP{Svc: cartSvc},
		OrderHandler:   &OrderHTTP{Svc: orderSvc},
		CatalogHandler: &CatalogHTTP{Svc: catalogSvc},
		SearchHandler:  &SearchHTTP{},
		AdminHandler: &AdminHTTP{
			Auth:    authSvc,
			Svc:     adminSvc,
			Orders:  orderSvc,
			Config:  configSvc,
			Catalog: catalogSvc,
		},
	})

	return &testEnv{t: t, e: e, db: db}
}

func (v *testEnv) do(method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	v.t.Helper()

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(v.t, err)
		rd = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == authmw.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// registerDealer signs a dealer up through the API and returns its session.
func (v *testEnv) registerDealer(phone string) *http.Cookie {
	v.t.Helper()

	rec := v.do(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":      "Ravi Traders",
		"phone":     phone,
		"shop_name": "Ravi Fashion House",
		"address":   "12 Market Road",
		"pincode":   "400001",
		"password":  "Secret123",
	}, nil)
	require.Equal(v.t, http.StatusCreated, rec.Code, rec.Body.String())
	return sessionCookie(v.t, rec)
}

// adminSession bootstraps an admin account and logs it in.
func (v *testEnv) adminSession() *http.Cookie {
	v.t.Helper()

	rec := v.do(http.MethodPost, "/api/v1/admin/create", map[string]string{
		"name":     "Back Office",
		"email":    "admin@example.com",
		"password": "Secret123",
		"secret":   "bootstrap-secret",
	}, nil)
	require.Equal(v.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = v.do(http.MethodPost, "/api/v1/admin/login", map[string]string{
		"email":    "admin@example.com",
		"password": "Secret123",
	}, nil)
	require.Equal(v.t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(v.t, rec)
}

// seedCatalog creates one category chain with two designs and two colors.
func (v *testEnv) seedCatalog() (*models.Product, []models.Design, []models.Color) {
	v.t.Helper()

	cat := models.Category{Name: "Sarees", Slug: "sarees"}
	require.NoError(v.t, v.db.Create(&cat).Error)
	sub := models.SubCategory{CategoryID: cat.ID, Name: "Silk Sarees", Slug: "silk-sarees"}
	require.NoError(v.t, v.db.Create(&sub).Error)
	product := models.Product{
		SubCategoryID:  sub.ID,
		Name:           "Kanjivaram Silk",
		Slug:           "kanjivaram-silk",
		HasColorChoice: true,
	}
	require.NoError(v.t, v.db.Create(&product).Error)

	designs := []models.Design{
		{ProductID: product.ID, Name: "Peacock Border"},
		{ProductID: product.ID, Name: "Temple Border"},
	}
	for i := range designs {
		require.NoError(v.t, v.db.Create(&designs[i]).Error)
	}

	colors := []models.Color{
		{ProductID: product.ID, ColorName: "Maroon", ColorHex: "#800000"},
		{ProductID: product.ID, ColorName: "Emerald", ColorHex: "#046307"},
	}
	for i := range colors {
		require.NoError(v.t, v.db.Create(&colors[i]).Error)
	}

	return &product, designs, colors
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func uniquePhone(n int) string {
	return fmt.Sprintf("98765000%02d", n)
}
