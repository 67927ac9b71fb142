package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bhagatankit05/Restuarant-App/configs"
	"github.com/bhagatankit05/Restuarant-App/entity"
	"github.com/bhagatankit05/Restuarant-App/routes"
	"github.com/bhagatankit05/Restuarant-App/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	token  string
	user   *entity.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.MenuItem{}, &entity.Order{}, &entity.OrderItem{},
	))

	cfg := &configs.Config{JWTSecret: testSecret, JWTTTL: time.Hour}
	router := gin.New()
	routes.RegisterRoutes(router, db, cfg)

	user := &entity.User{Email: "diner@example.com", Password: "x", Name: "Diner"}
	require.NoError(t, db.Create(user).Error)
	token, err := utils.GenerateToken(user.ID, user.Email, testSecret, time.Hour)
	require.NoError(t, err)

	return &testEnv{router: router, db: db, token: token, user: user}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.OK)
	return envelope.Data
}

func (e *testEnv) seedSoup(t *testing.T) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		Name:        "Soup",
		Description: "Tomato basil",
		Price:       6.99,
		Category:    entity.CategorySoups,
		IsAvailable: true,
	}
	require.NoError(t, e.db.Create(item).Error)
	return item
}

func TestCreateOrderEndpoint(t *testing.T) {
	env := newTestEnv(t)
	soup := env.seedSoup(t)

	w := env.request(t, http.MethodPost, "/orders", gin.H{
		"items": []gin.H{{"menuItemId": soup.ID, "quantity": 2}},
	}, true)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	assert.Equal(t, "pending", data["status"])
	assert.InDelta(t, 13.98, data["totalAmount"].(float64), 1e-9)

	items := data["items"].([]any)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, "Soup", line["menuItem"].(map[string]any)["name"])
}

func TestCreateOrderEndpoint_EmptyItems(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/orders", gin.H{"items": []gin.H{}}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "order items are required")
}

func TestOrdersRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/orders", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.request(t, http.MethodPost, "/orders", gin.H{"items": []gin.H{}}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMenuIsPublic(t *testing.T) {
	env := newTestEnv(t)
	env.seedSoup(t)

	w := env.request(t, http.MethodGet, "/menu", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Len(t, data["items"].([]any), 1)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)
	soup := env.seedSoup(t)

	w := env.request(t, http.MethodPost, "/orders", gin.H{
		"items": []gin.H{{"menuItemId": soup.ID, "quantity": 1}},
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decodeData(t, w)["id"].(string)

	w = env.request(t, http.MethodPut, "/orders/"+orderID+"/status",
		gin.H{"status": "burnt"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPut, "/orders/"+orderID+"/status",
		gin.H{"status": "confirmed"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", decodeData(t, w)["status"])
}

func TestRemoveLastItemDeletesOrder(t *testing.T) {
	env := newTestEnv(t)
	soup := env.seedSoup(t)

	w := env.request(t, http.MethodPost, "/orders", gin.H{
		"items": []gin.H{{"menuItemId": soup.ID, "quantity": 2}},
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	orderID := data["id"].(string)
	itemID := data["items"].([]any)[0].(map[string]any)["id"].(string)

	w = env.request(t, http.MethodDelete, "/orders/"+orderID+"/items/"+itemID, nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no items remaining")

	w = env.request(t, http.MethodGet, "/orders/"+orderID, nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodPost, "/auth/register", gin.H{
		"email":    "New@Example.com",
		"password": "secret123",
		"name":     "New Diner",
	}, false)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "new@example.com", decodeData(t, w)["email"])

	// duplicate registration
	w = env.request(t, http.MethodPost, "/auth/register", gin.H{
		"email":    "new@example.com",
		"password": "secret123",
		"name":     "New Diner",
	}, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "new@example.com",
		"password": "secret123",
	}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		OK    bool   `json:"ok"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new@example.com")

	w = env.request(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "new@example.com",
		"password": "wrong-password",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
