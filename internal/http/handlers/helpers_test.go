package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/grocery-tracker/grocery-tracker/internal/auth"
	api "github.com/grocery-tracker/grocery-tracker/internal/http"
	handler "github.com/grocery-tracker/grocery-tracker/internal/http/handlers"
	"github.com/grocery-tracker/grocery-tracker/internal/http/ratelimit"
	"github.com/grocery-tracker/grocery-tracker/internal/repo"
)

var (
	router      http.Handler
	token       string
	otherToken  string
	productRepo *repo.InMemoryProductRepository
	saleRepo    *repo.InMemorySaleRepository
)

func init() {
	// The bucket is shared by every test hitting the credential endpoints.
	ratelimit.SetLimits(1000, 1000)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	saleRepo = repo.NewInMemorySaleRepository(productRepo)
	handler.SetSaleRepo(saleRepo)

	statsRepo := repo.NewInMemoryStatsRepository()
	statsRepo.SetRepositories(productRepo, saleRepo)
	handler.SetStatsRepo(statsRepo)

	guard, err := auth.NewGuard(auth.Config{Secret: []byte("test-secret")}, userRepo, nil)
	if err != nil {
		panic(fmt.Sprintf("error constructing guard: %v", err))
	}
	handler.SetGuard(guard)

	router = api.NewRouter(guard)

	token = registerUser("shopkeeper", "secret123")
	otherToken = registerUser("intruder", "secret456")
}

func registerUser(username, password string) string {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		panic(fmt.Sprintf("registering %s failed: %v", username, err))
	}
	return resp.Token
}

func clearAll() {
	productRepo.Clear()
	saleRepo.Clear()
}

func authRequest(method, url string, payload any, tok string) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		jsonBody, _ := json.Marshal(payload)
		body = bytes.NewReader(jsonBody)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createProduct(p handler.ProductRequest, tok string) *httptest.ResponseRecorder {
	return authRequest(http.MethodPost, "/products", p, tok)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func sampleProduct(name, sku string) handler.ProductRequest {
	return handler.ProductRequest{
		Name:     name,
		SKU:      sku,
		Category: "Fruits",
		Supplier: "Fresh Farms",
		Price:    floatPtr(50),
		Cost:     floatPtr(30),
		Quantity: intPtr(25),
	}
}
