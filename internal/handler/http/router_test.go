package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cliniquenova/timeclock-backend-go/internal/config"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cliniquenova/timeclock-backend-go/internal/repository/sqlite"
	attendanceService "github.com/cliniquenova/timeclock-backend-go/internal/service/attendance"
	authService "github.com/cliniquenova/timeclock-backend-go/internal/service/auth"
	backupService "github.com/cliniquenova/timeclock-backend-go/internal/service/backup"
	employeeService "github.com/cliniquenova/timeclock-backend-go/internal/service/employee"
	reportService "github.com/cliniquenova/timeclock-backend-go/internal/service/report"
	settingsService "github.com/cliniquenova/timeclock-backend-go/internal/service/settings"
	userService "github.com/cliniquenova/timeclock-backend-go/internal/service/user"
	"github.com/cliniquenova/timeclock-backend-go/internal/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db := testfixtures.NewTestDB(t)

	userRepo := sqlite.NewUserRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	punchRepo := sqlite.NewPunchRepository(db)
	latenessRepo := sqlite.NewLatenessRepository(db)
	absenceRepo := sqlite.NewAbsenceRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	userSvc := userService.NewUserService(userRepo)
	require.NoError(t, userSvc.EnsureSeedAdmin(context.Background(), "admin", "admin-secret", "Admin", "System"))

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:3000"

	return NewRouter(
		cfg,
		jwtSvc,
		NewAuthHandler(authService.NewAuthService(userRepo, jwtSvc)),
		NewUserHandler(userSvc),
		NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
		NewAttendanceHandler(attendanceService.NewAttendanceService(db, punchRepo, latenessRepo, absenceRepo, employeeRepo, settingsRepo)),
		NewSettingsHandler(settingsService.NewSettingsService(settingsRepo)),
		NewBackupHandler(backupService.NewBackupService(db, userRepo, employeeRepo, punchRepo, latenessRepo, absenceRepo, settingsRepo)),
		NewReportHandler(reportService.NewReportService(punchRepo)),
	)
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)
	return envelope.Data.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	token := loginAs(t, router, "admin", "admin-secret")
	assert.NotEmpty(t, token)
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/users/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRouteForbiddenForUserRole(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAs(t, router, "admin", "admin-secret")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/users/", adminToken, map[string]string{
		"username":   "clara",
		"password":   "clara-secret",
		"last_name":  "Petit",
		"first_name": "Clara",
		"role":       "user",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	userToken := loginAs(t, router, "clara", "clara-secret")
	rec = doJSON(t, router, http.MethodGet, "/api/v1/users/", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestManagerRouteAllowsAdmin(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAs(t, router, "admin", "admin-secret")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/employees/", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestEmployeeCRUDOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAs(t, router, "admin", "admin-secret")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/employees/", adminToken, map[string]any{
		"last_name":  "Durand",
		"first_name": "Alice",
		"department": "Reception",
		"shift":      "day",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			ID        int    `json:"id"`
			EntryTime string `json:"entry_time"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "08:00", envelope.Data.EntryTime)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-in", adminToken, map[string]int{
		"employee_id": envelope.Data.ID,
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/attendance/clock-in", adminToken, map[string]int{
		"employee_id": envelope.Data.ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSnapshotExportEndpoint(t *testing.T) {
	router := newTestRouter(t)
	adminToken := loginAs(t, router, "admin", "admin-secret")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/backup/export", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	var snapshot struct {
		Users []json.RawMessage `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Len(t, snapshot.Users, 1)
}
