package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/toolshare/toolshare-server/internal/api"
	"github.com/toolshare/toolshare-server/internal/models"
	"github.com/toolshare/toolshare-server/internal/repository"
	"github.com/toolshare/toolshare-server/internal/service"
	"github.com/toolshare/toolshare-server/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret-key"

// TestContext holds all dependencies for tests
type TestContext struct {
	Router     *gin.Engine
	Repository repository.Repository
	Service    service.Service
	JWTSecret  []byte
}

// SetupTestContext wires a full router over a fresh in-memory store.
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	repo := repository.NewStoreRepository(storage.NewMemoryStore())
	svc := service.NewDefaultService(repo, nil, testJWTSecret)
	handler := api.NewHandler(svc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(testJWTSecret))
		c.Next()
	})
	handler.SetupRoutes(router)

	return &TestContext{
		Router:     router,
		Repository: repo,
		Service:    svc,
		JWTSecret:  []byte(testJWTSecret),
	}
}

// CreateUser inserts a user directly and returns it with a valid token.
func (tc *TestContext) CreateUser(t *testing.T, id, name, email string) (*models.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("testpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:        id,
		Email:     email,
		Name:      name,
		Password:  string(hashedPassword),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, tc.Repository.CreateUser(context.Background(), user))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	tokenString, err := token.SignedString(tc.JWTSecret)
	require.NoError(t, err)

	return user, tokenString
}

// PerformRequest executes an HTTP request against the router
func PerformRequest(r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer

	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// AuthHeaders returns headers with Authorization token
func AuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
}
