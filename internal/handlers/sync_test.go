package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"syncloud/internal/database"
	"syncloud/internal/engine"
	"syncloud/internal/models"
	"syncloud/internal/registry"
	"syncloud/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	eng := engine.New(engine.Config{DB: db, Registry: registry.New()})
	return server.NewRouter(eng, zap.NewNop()), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPushEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Firm{ID: "f1", Owner: "9999", Name: "shop"}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/sync/push", map[string]any{
		"table": "categories",
		"owner": "9999",
		"records": []map[string]any{
			{"id": "c1", "firmId": "f1", "name": "Drinks", "updatedAt": "2025-01-01T00:00:00Z"},
			{"id": "c2", "firmId": "f1", "name": "Snacks", "updatedAt": "2025-01-01T00:00:00Z"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "categories", body["table"])
	assert.EqualValues(t, 2, body["created"])
	assert.EqualValues(t, 0, body["failed"])
}

func TestPushEndpointPartial(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Firm{ID: "f1", Owner: "9999", Name: "shop"}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/sync/push", map[string]any{
		"table": "categories",
		"owner": "9999",
		"records": []map[string]any{
			{"id": "c1", "firmId": "f1", "name": "ok"},
			{"firmId": "f1", "name": "no id"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "partial", body["status"])
	assert.EqualValues(t, 1, body["created"])
	assert.EqualValues(t, 1, body["failed"])
	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
}

func TestPushEndpointErrors(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Firm{ID: "f1", Owner: "1111", Name: "shop"}).Error)

	t.Run("unknown table", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/sync/push", map[string]any{
			"table":   "customers",
			"owner":   "1111",
			"records": []map[string]any{{"id": "x", "firmId": "f1"}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/sync/push", map[string]any{
			"table":   "categories",
			"owner":   "2222",
			"records": []map[string]any{{"id": "x", "firmId": "f1"}},
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/sync/push", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPullEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Firm{ID: "f1", Owner: "9999", Name: "shop"}).Error)
	require.NoError(t, db.Create(&models.Category{ID: "c1", FirmID: "f1", Name: "Drinks"}).Error)

	w := doJSON(t, r, http.MethodGet, "/api/sync/pull?table=categories&owner=9999&firmId=f1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "categories", body["table"])
	assert.EqualValues(t, 1, body["count"])
	records, ok := body["records"].([]any)
	require.True(t, ok)
	require.Len(t, records, 1)
	first, ok := records[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "c1", first["id"])
	assert.Equal(t, "Drinks", first["name"])
}

func TestToggleEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Firm{ID: "f1", Owner: "9999", Name: "shop", SyncEnabled: true}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/sync/toggle", map[string]any{"firmId": "f1", "owner": "9999"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["syncEnabled"])

	w = doJSON(t, r, http.MethodPost, "/api/sync/toggle", map[string]any{"firmId": "ghost", "owner": "9999"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteFirmEndpoint(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Firm{ID: "f1", Owner: "9999", Name: "shop"}).Error)
	require.NoError(t, db.Create(&models.Category{ID: "c1", FirmID: "f1", Name: "Drinks"}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/sync/firms/delete", map[string]any{"firmId": "f1", "owner": "9999"})
	require.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.Category{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestShareEndpoints(t *testing.T) {
	r, db := newTestServer(t)
	require.NoError(t, db.Create(&models.Firm{ID: "f1", Owner: "1111", Name: "shop"}).Error)

	w := doJSON(t, r, http.MethodPost, "/api/sync/firms/share", map[string]any{
		"firmId": "f1", "owner": "1111", "sharedWith": "2222", "role": "staff",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/sync/pull?table=firms&owner=2222", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = doJSON(t, r, http.MethodPost, "/api/sync/firms/revoke", map[string]any{
		"firmId": "f1", "owner": "1111", "sharedWith": "2222",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/sync/pull?table=firms&owner=2222", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["count"])
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
