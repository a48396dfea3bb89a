package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"personalfinance/internal/ledger"
	"personalfinance/internal/logger"
	"personalfinance/internal/models"
	"personalfinance/internal/server"
	"personalfinance/internal/services"
	"personalfinance/internal/store"
	"personalfinance/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&models.KVEntry{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// newRouter loads the ledger persisted in db and builds the HTTP stack on it.
func newRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	auditService := services.NewAuditService(db, "api")
	ledgerService, err := services.NewLedgerService(context.Background(), store.New(store.NewGormKV(db), nil), ledger.New(), auditService)
	if err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	return server.NewRouter(ledgerService, auditService, time.UTC)
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	return &testApp{DB: db, Router: newRouter(t, db)}
}

// restart simulates a process restart: a fresh ledger service reloads
// everything from the database.
func (app *testApp) restart(t *testing.T) {
	t.Helper()
	app.Router = newRouter(t, app.DB)
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// walletBalance fetches a wallet and returns its balance.
func (app *testApp) walletBalance(t *testing.T, id string) float64 {
	t.Helper()
	rec := app.request("GET", "/api/v1/wallets/"+id, "")
	if rec.Code != 200 {
		t.Fatalf("get wallet %s failed: %d %s", id, rec.Code, rec.Body.String())
	}
	wallet := parseJSON(t, rec)["wallet"].(map[string]interface{})
	return wallet["balance"].(float64)
}

// goal fetches a saving goal with its progress.
func (app *testApp) goal(t *testing.T, id string) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/goals/"+id, "")
	if rec.Code != 200 {
		t.Fatalf("get goal %s failed: %d %s", id, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["goal"].(map[string]interface{})
}

// errorCode extracts error.code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in body: %s", rec.Body.String())
	}
	return errObj["code"].(string)
}
