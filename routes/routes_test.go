package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elegante-tailoring/storefront-api/storage"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := store.New(storage.OpenMemory())
	r := gin.New()
	SetupRoutes(r, s)
	return r, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBrowseProducts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/products?search=shirt", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count    int `json:"count"`
		Products []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Shirt", resp.Products[0].Category)
}

func TestProductDetailRecordsView(t *testing.T) {
	r, s := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/products/3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"3"}, s.RecentlyViewed())

	w = doJSON(t, r, http.MethodGet, "/products/4?record_view=false", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"3"}, s.RecentlyViewed())

	w = doJSON(t, r, http.MethodGet, "/products/none", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartLifecycleOverHTTP(t *testing.T) {
	r, s := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart",
		`{"productId":"1","size":"2m","colorName":"Sky Blue"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same line again merges
	w = doJSON(t, r, http.MethodPost, "/cart",
		`{"productId":"1","size":"2m","colorName":"Sky Blue"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, s.Cart(), 1)
	assert.Equal(t, 2, s.CartCount())

	// Unknown product rejected at the facade
	w = doJSON(t, r, http.MethodPost, "/cart",
		`{"productId":"999","size":"2m","colorName":"Sky Blue"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown color rejected at the facade
	w = doJSON(t, r, http.MethodPost, "/cart",
		`{"productId":"1","size":"2m","colorName":"Chartreuse"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Absolute quantity update
	w = doJSON(t, r, http.MethodPut, "/cart",
		`{"productId":"1","size":"2m","colorName":"Sky Blue","quantity":5}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, s.CartCount())

	// Zero quantity removes the line
	w = doJSON(t, r, http.MethodPut, "/cart",
		`{"productId":"1","size":"2m","colorName":"Sky Blue","quantity":0}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, s.Cart())
}

func TestCheckoutOverHTTP(t *testing.T) {
	r, s := newTestRouter(t)

	// Empty cart is rejected
	body := `{"shippingInfo":{"firstName":"Asha","lastName":"Verma","email":"asha@example.com",
		"phone":"123","address":"12 Tailor Lane","city":"Mumbai","zipCode":"400001","country":"India"},
		"paymentMethod":"card"}`
	w := doJSON(t, r, http.MethodPost, "/checkout", body, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	doJSON(t, r, http.MethodPost, "/cart", `{"productId":"1","size":"2m","colorName":"Sky Blue"}`, nil)
	w = doJSON(t, r, http.MethodPost, "/checkout", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.OrderID)
	assert.Empty(t, s.Cart(), "checkout drains the cart")

	w = doJSON(t, r, http.MethodGet, "/orders/"+resp.OrderID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/orders?email=ASHA@example.com", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Orders []json.RawMessage `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Orders, 1)
}

func TestWishlistOverHTTP(t *testing.T) {
	r, s := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/wishlist/5", "", nil)
	doJSON(t, r, http.MethodPost, "/wishlist/5", "", nil)
	assert.Equal(t, []string{"5"}, s.Wishlist())

	w := doJSON(t, r, http.MethodGet, "/wishlist/5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inWishlist":true`)

	doJSON(t, r, http.MethodDelete, "/wishlist/5", "", nil)
	assert.Empty(t, s.Wishlist())
}

func TestAdminRoutesRequireAPIKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "topsecret")
	r, s := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/admin/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/dashboard", "", map[string]string{"X-API-KEY": "topsecret"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Advance an order through the admin surface
	doJSON(t, r, http.MethodPost, "/cart", `{"productId":"1","size":"2m","colorName":"Sky Blue"}`, nil)
	checkout := `{"shippingInfo":{"firstName":"A","lastName":"B","email":"a@b.com","phone":"1",
		"address":"x","city":"y","zipCode":"z","country":"IN"},"paymentMethod":"cod"}`
	resp := doJSON(t, r, http.MethodPost, "/checkout", checkout, nil)
	require.Equal(t, http.StatusCreated, resp.Code)
	var created struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPost, "/admin/orders/"+created.OrderID+"/advance", "",
		map[string]string{"X-API-KEY": "topsecret"})
	require.Equal(t, http.StatusOK, w.Code)
	order, ok := s.OrderByID(created.OrderID)
	require.True(t, ok)
	assert.Equal(t, "processing", string(order.Status))
}
