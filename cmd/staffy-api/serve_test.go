//go:build integration
// +build integration

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v1 "github.com/Kartikpatidar0006/Staffy/internal/api/rest/v1"
	"github.com/Kartikpatidar0006/Staffy/internal/infrastructure/persistence"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDatabase_RepeatedStartups(t *testing.T) {
	log = testutil.SetupTestLogger(t)
	settings := config.DatabaseSettings{Type: config.SqliteDbType, DSN: t.TempDir() + "/staffy.db"}

	for i := 0; i < 2; i++ {
		db, err := openDatabase(settings)
		require.NoError(t, err)
		require.NoError(t, persistence.CloseDB(db))
	}
}

func TestServe_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log = testutil.SetupTestLogger(t)

	db, err := openDatabase(config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = persistence.CloseDB(db) })

	services, err := initializeServices(db, log)
	require.NoError(t, err)

	router := v1.NewRouter(config.CORSSettings{Origins: []string{"*"}}, log, services, persistence.NewProbe(db))

	send := func(method, url, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := send(http.MethodPost, "/api/employees", `{"employee_id":"EMP001","full_name":"Ada Lovelace","email":"ada@example.com","department":"Engineering"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(http.MethodPost, "/api/employees", `{"employee_id":"EMP001","full_name":"Ada Again","email":"ada2@example.com","department":"Engineering"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = send(http.MethodPost, "/api/attendance", `{"employee_id":"EMP001","date":"2025-03-14","status":"Present"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = send(http.MethodPost, "/api/attendance", `{"employee_id":"EMP001","date":"2025-03-14","status":"Absent"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(http.MethodGet, "/api/employees/EMP001", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_absent":1`)
	assert.Contains(t, w.Body.String(), `"total_present":0`)

	w = send(http.MethodDelete, "/api/employees/EMP001", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = send(http.MethodGet, "/api/attendance/date/2025-03-14", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = send(http.MethodGet, "/health/deep", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
