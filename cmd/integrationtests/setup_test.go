package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	auth "stakex/internal/authService"
	bidding "stakex/internal/biddingService"
	product "stakex/internal/productService"
	"stakex/internal/repository"
	"stakex/internal/server"
	user "stakex/internal/userService"
)

// SetupTestRouter wires the full API against the in-memory repository.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	tokens := auth.NewTokenManager("integration-test-secret", time.Hour)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	svcs := server.Services{
		Auth:          auth.NewAuthService(repo, tokens, hasher),
		Products:      product.NewProductService(repo, nil),
		Bidding:       bidding.NewBiddingService(repo, nil),
		Users:         user.NewUserService(repo),
		MaxImageBytes: 1 << 20,
	}
	return server.SetupRouter(svcs)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
// An empty token leaves the request unauthenticated.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseEnvelope unmarshals the standard response envelope.
func ParseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// DataObject returns the envelope's data field as an object.
func DataObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	resp := ParseEnvelope(t, w)
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "expected object data, got: %s", w.Body.String())
	return data
}

// RegisterUser creates an account through the API and returns its id and token.
func RegisterUser(t *testing.T, router *gin.Engine, name, email string) (userID, token string) {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "password123",
		"age":      30,
		"address":  "1 Test Street",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := DataObject(t, w)
	u := data["user"].(map[string]any)
	return u["id"].(string), data["token"].(string)
}

// CreateProduct lists a product through the API and returns its id.
func CreateProduct(t *testing.T, router *gin.Engine, token string, body map[string]any) string {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodPost, "/api/posts", token, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return DataObject(t, w)["productId"].(string)
}

func marketItemBody() map[string]any {
	return map[string]any{
		"name":         "Gibson Les Paul",
		"description":  "1997, sunburst finish",
		"imageUrl":     "https://img.example.com/lespaul.jpg",
		"price":        100.0,
		"isMarketItem": true,
		"initialBid":   20.0,
		"onMarket":     true,
	}
}
