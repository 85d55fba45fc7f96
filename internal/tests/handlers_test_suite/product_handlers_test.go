package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/smartstock/stock-ledger/internal/http/handlers"
	"github.com/smartstock/stock-ledger/internal/models"
)

func TestCreateAndGetProduct(t *testing.T) {
	srv := newTestServer(t)

	created := srv.createProduct(t, "Phone", "PH-1")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Phone", created.Name)

	w := srv.doAnonymous(http.MethodGet, "/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decode[models.Product](t, w)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "PH-1", fetched.SKU)
}

func TestCreateProductValidation(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, "/products", handler.ProductRequest{Name: "", SKU: ""})
	require.Equal(t, http.StatusBadRequest, w.Code)

	errs := decode[[]handler.ValidationError](t, w)
	assert.Len(t, errs, 2)
}

func TestUpdateProductKeepsSKU(t *testing.T) {
	srv := newTestServer(t)
	created := srv.createProduct(t, "Phone", "PH-1")

	w := srv.do(http.MethodPut, "/products/"+created.ID, handler.ProductRequest{
		Name: "Phone Pro",
		SKU:  "HACKED",
		Tags: []string{"premium"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode[models.Product](t, w)
	assert.Equal(t, "Phone Pro", updated.Name)
	assert.Equal(t, "PH-1", updated.SKU)
	assert.Equal(t, []string{"premium"}, updated.Tags)
}

func TestDeleteProduct(t *testing.T) {
	srv := newTestServer(t)
	created := srv.createProduct(t, "Phone", "PH-1")

	w := srv.do(http.MethodDelete, "/products/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = srv.doAnonymous(http.MethodGet, "/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doAnonymous(http.MethodPost, "/products", handler.ProductRequest{Name: "Phone", SKU: "PH-1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.doAnonymous(http.MethodPost, "/inventory", handler.InventoryRequest{ProductID: "x", Quantity: 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCategoryLifecycle(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(http.MethodPost, "/categories", handler.CategoryRequest{Name: "Electronics", Icon: "smartphone"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Category](t, w)

	w = srv.doAnonymous(http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	all := decode[[]models.Category](t, w)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)

	w = srv.do(http.MethodDelete, "/categories/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestRegisterAndLoginNewUser(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doAnonymous(http.MethodPost, "/register", handler.UserLogin{Username: "clerk", Password: "pw12345"})
	require.Equal(t, http.StatusCreated, w.Code)
	registered := decode[handler.RegisterResult](t, w)
	assert.NotEmpty(t, registered.Token)

	// Duplicate registration is refused.
	w = srv.doAnonymous(http.MethodPost, "/register", handler.UserLogin{Username: "clerk", Password: "other"})
	assert.Equal(t, http.StatusConflict, w.Code)

	token := generateToken(t, srv.router, "clerk", "pw12345")
	assert.NotEmpty(t, token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	w := srv.doAnonymous(http.MethodPost, "/login", handler.UserLogin{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.doAnonymous(http.MethodPost, "/login", handler.UserLogin{Username: "nobody", Password: "secret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
