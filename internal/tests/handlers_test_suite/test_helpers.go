package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/stretchr/testify/require"

	"github.com/smartstock/stock-ledger/internal/catalog"
	api "github.com/smartstock/stock-ledger/internal/http"
	handler "github.com/smartstock/stock-ledger/internal/http/handlers"
	"github.com/smartstock/stock-ledger/internal/http/rate_limiter"
	"github.com/smartstock/stock-ledger/internal/ledger"
	"github.com/smartstock/stock-ledger/internal/models"
	"github.com/smartstock/stock-ledger/internal/repo"
)

type testServer struct {
	router http.Handler
	store  *repo.MemoryStore
	token  string
}

// newTestServer wires fresh in-memory storage behind the real router and
// logs in as admin. Every test starts from an empty dataset.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := repo.NewMemoryStore()
	state := ledger.NewState()
	require.NoError(t, state.Load(store.Inventory()))
	engine := ledger.NewEngine(store, state)
	catProv := catalog.NewProvider()
	require.NoError(t, catProv.Load(store.Products(), store.Categories()))

	handler.SetStore(store)
	handler.SetEngine(engine)
	handler.SetState(state)
	handler.SetViews(ledger.NewViews(state, catProv))
	handler.SetCatalog(catProv)
	handler.SetCache(nil)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = store.Users().CreateUser(models.User{Username: "admin", PasswordHash: string(hash), Role: "admin"})
	require.NoError(t, err)

	router := api.NewRouter(rate_limiter.NewRegistry(rate.Limit(1000), 1000))

	srv := &testServer{router: router, store: store}
	srv.token = generateToken(t, router, "admin", "secret")
	return srv
}

func generateToken(t *testing.T, r http.Handler, username, password string) string {
	t.Helper()
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp handler.LoginResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Token
}

// do issues an authenticated request against the test router.
func (s *testServer) do(method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		out, _ := json.Marshal(payload)
		body = bytes.NewReader(out)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// doAnonymous issues a request without credentials.
func (s *testServer) doAnonymous(method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		out, _ := json.Marshal(payload)
		body = bytes.NewReader(out)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out), "body: %s", w.Body.String())
	return out
}

func (s *testServer) createProduct(t *testing.T, name, sku string) models.Product {
	t.Helper()
	w := s.do(http.MethodPost, "/products", handler.ProductRequest{Name: name, SKU: sku})
	require.Equal(t, http.StatusCreated, w.Code, "create product: %s", w.Body.String())
	return decode[models.Product](t, w)
}

func (s *testServer) createInventory(t *testing.T, productID string, quantity, minQuantity int) models.Inventory {
	t.Helper()
	w := s.do(http.MethodPost, "/inventory", handler.InventoryRequest{
		ProductID:   productID,
		Quantity:    quantity,
		MinQuantity: minQuantity,
	})
	require.Equal(t, http.StatusCreated, w.Code, "create inventory: %s", w.Body.String())
	return decode[models.Inventory](t, w)
}

func (s *testServer) stockPath(productID, op string) string {
	return fmt.Sprintf("/products/%s/%s", productID, op)
}
