package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hadiheib99/storefront-backend/auth"
	"github.com/hadiheib99/storefront-backend/config"
	"github.com/hadiheib99/storefront-backend/models"
)

var (
	testDB  *gorm.DB
	testCfg = &config.Config{
		JWTSecret:  "test-secret",
		Pepper:     "test-pepper",
		BcryptCost: bcrypt.MinCost,
		TokenTTL:   time.Hour,
	}
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		cfg := &config.Config{
			Env:        "test",
			DBHost:     host,
			DBPort:     getenv("POSTGRES_PORT", "5432"),
			DBTestName: getenv("POSTGRES_DB_TEST", "storefront_test"),
			DBUser:     getenv("POSTGRES_USER", "postgres"),
			DBPassword: os.Getenv("POSTGRES_PASSWORD"),
		}

		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatalf("failed to connect to test database: %v", err)
		}
		if err := db.AutoMigrate(
			&models.User{},
			&models.Product{},
			&models.Order{},
			&models.OrderProduct{},
		); err != nil {
			log.Fatalf("failed to migrate test database: %v", err)
		}
		testDB = db
	}

	os.Exit(m.Run())
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newRouter builds the full route table. Tests that only exercise input
// validation or the auth middleware never reach a store, so they run fine
// without a database.
func newRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	SetupRoutes(r, db, testCfg)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newRouter(testDB)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/1"},
		{http.MethodDelete, "/users/1"},
		{http.MethodGet, "/users/1/orders/current"},
		{http.MethodGet, "/orders"},
		{http.MethodGet, "/orders/1"},
		{http.MethodPost, "/orders"},
		{http.MethodDelete, "/orders/1"},
		{http.MethodPost, "/orders/1/products"},
		{http.MethodPost, "/products"},
		{http.MethodDelete, "/products/1"},
		{http.MethodGet, "/products/export"},
	} {
		w := doJSON(r, route.method, route.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestValidationErrors(t *testing.T) {
	r := newRouter(testDB)

	token, err := auth.IssueToken(testCfg, 1, "ada@example.com")
	require.NoError(t, err)

	for _, tc := range []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
	}{
		{"non-numeric user id", http.MethodGet, "/users/abc", token, nil},
		{"non-numeric product id", http.MethodGet, "/products/abc", "", nil},
		{"non-numeric order id", http.MethodGet, "/orders/abc", token, nil},
		{"signup missing fields", http.MethodPost, "/users", "", gin.H{"firstname": "Ada"}},
		{"authenticate missing password", http.MethodPost, "/users/authenticate", "", gin.H{"email": "a@x.com"}},
		{"order missing user_id", http.MethodPost, "/orders", token, gin.H{}},
		{"line missing quantity", http.MethodPost, "/orders/1/products", token, gin.H{"product_id": 1}},
		{"line zero quantity", http.MethodPost, "/orders/1/products", token, gin.H{"product_id": 1, "quantity": 0}},
		{"product missing price", http.MethodPost, "/products", token, gin.H{"name": "Pen"}},
	} {
		w := doJSON(r, tc.method, tc.path, tc.token, tc.body)
		require.Equal(t, http.StatusBadRequest, w.Code, tc.name)
	}
}

// Full signup → login → browse → order → delete walk against the test
// database.
func TestEndToEndScenario(t *testing.T) {
	if testDB == nil {
		t.Skip("database not configured, skipping")
	}
	r := newRouter(testDB)

	email := fmt.Sprintf("ada_%d@x.com", time.Now().UnixNano())

	// signup
	w := doJSON(r, http.MethodPost, "/users", "", gin.H{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"email":     email,
		"password":  "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var signup struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signup))
	require.NotZero(t, signup.User.ID)
	require.NotEmpty(t, signup.Token)
	require.NotContains(t, w.Body.String(), "password")

	// duplicate signup conflicts
	w = doJSON(r, http.MethodPost, "/users", "", gin.H{
		"firstname": "Ada",
		"lastname":  "Lovelace",
		"email":     email,
		"password":  "secret123",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	// authenticate
	w = doJSON(r, http.MethodPost, "/users/authenticate", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Equal(t, signup.User.ID, login.User.ID)
	require.NotEmpty(t, login.Token)

	claims, err := auth.VerifyToken(testCfg, login.Token)
	require.NoError(t, err)
	require.Equal(t, signup.User.ID, claims.UserID)
	require.Equal(t, email, claims.Email)
	token := login.Token

	// wrong credentials are a 401 either way, with identical bodies
	wrongPassword := doJSON(r, http.MethodPost, "/users/authenticate", "", gin.H{
		"email":    email,
		"password": "wrong",
	})
	unknownEmail := doJSON(r, http.MethodPost, "/users/authenticate", "", gin.H{
		"email":    "nobody_" + email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	// list users includes the new one
	w = doJSON(r, http.MethodGet, "/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), email)

	// product lifecycle with price round-trip
	w = doJSON(r, http.MethodPost, "/products", token, gin.H{
		"name":     "Notebook",
		"price":    19.99,
		"category": "stationery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	require.Equal(t, 19.99, product.Price)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, 19.99, fetched.Price)

	// open an order and add a line
	w = doJSON(r, http.MethodPost, "/orders", token, gin.H{"user_id": signup.User.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, models.OrderStatusActive, order.Status)

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/orders/%d/products", order.ID), token, gin.H{
		"product_id": product.ID,
		"quantity":   3,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var lineResp struct {
		OrderProduct models.OrderProduct `json:"order_product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lineResp))
	require.Equal(t, order.ID, lineResp.OrderProduct.OrderID)
	require.Equal(t, product.ID, lineResp.OrderProduct.ProductID)
	require.Equal(t, 3, lineResp.OrderProduct.Quantity)

	// current order is the one just created
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/users/%d/orders/current", signup.User.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var current struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))
	require.Equal(t, order.ID, current.Order.ID)

	// clean up the product, then the user (orders cascade)
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/orders/%d", order.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/users/%d", signup.User.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// the deleted user is gone; the token still verifies (no revocation)
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/users/%d", signup.User.ID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
