package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fjmerc/wifi-dashboard/internal/config"
	"github.com/fjmerc/wifi-dashboard/internal/database"
)

// Credentials used by SetupTestConfig
const (
	TestUsername = "operator"
	TestPassword = "correct-horse"
)

// SetupTestDB creates an in-memory SQLite database with the login_attempts schema.
// The database is automatically closed when the test completes
func SetupTestDB(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// IMPORTANT: Force single connection for in-memory databases
	// Each connection in the pool gets its own separate :memory: database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(database.SchemaSQLite); err != nil {
		db.Close()
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// SetupTestConfig returns a configuration with known credentials and rate limiting disabled
func SetupTestConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Defaults()
	cfg.Username = TestUsername
	cfg.Password = TestPassword
	cfg.SecretKey = "test-secret"
	cfg.DBPath = ":memory:"
	cfg.RateLimitPerMinute = 0

	return cfg
}

// InsertAttempt writes a row the way the external WiFi login process does.
// Returns the assigned id.
func InsertAttempt(t testing.TB, db *sqlx.DB, row AttemptRow) int64 {
	t.Helper()

	res, err := db.NamedExec(`
		INSERT INTO login_attempts (timestamp, username, password, a, response_status, response_message)
		VALUES (:timestamp, :username, :password, :a, :response_status, :response_message)`, row)
	if err != nil {
		t.Fatalf("failed to insert attempt: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read inserted id: %v", err)
	}
	return id
}

// InsertAttempts inserts every row in order
func InsertAttempts(t testing.TB, db *sqlx.DB, rows ...AttemptRow) {
	t.Helper()

	for _, row := range rows {
		InsertAttempt(t, db, row)
	}
}

// NewAuthenticatedRequest builds a GET request carrying the test Basic credentials
func NewAuthenticatedRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.SetBasicAuth(TestUsername, TestPassword)
	return req
}

// AssertStatusCode checks that the HTTP response status code matches expected
func AssertStatusCode(t *testing.T, rr *httptest.ResponseRecorder, wantStatus int) {
	t.Helper()

	if rr.Code != wantStatus {
		t.Errorf("status code = %d, want %d\nBody: %s", rr.Code, wantStatus, rr.Body.String())
	}
}

// AssertNotContains fails the test if haystack contains needle
func AssertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Errorf("expected %q to not contain %q", haystack, needle)
	}
}
