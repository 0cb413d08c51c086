package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hr-records/internal/auth"
	"hr-records/internal/config"
	"hr-records/internal/middleware"
	"hr-records/internal/shared/apperror"
	"hr-records/internal/shared/testdb"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "registry-test-secret"

type testApp struct {
	t      *testing.T
	router *gin.Engine
	redis  redismock.ClientMock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	db := testdb.Open(t, Models()...)
	rdb, rmock := redismock.NewClientMock()

	cfg := config.Config{
		JWTSecret:       testSecret,
		SessionTTL:      time.Hour,
		LoginRateLimit:  100,
		LoginBurst:      100,
		ExportRateLimit: 100,
		ExportBurst:     100,
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	require.NoError(t, registerModules(router, cfg, db, rdb, nil))

	users := auth.NewService(auth.NewRepository(db), nil, auth.Config{Secret: testSecret})
	for _, u := range []auth.CreateUserRequest{
		{Username: "hr", Password: "hr-password", Role: "HR"},
		{Username: "viewer", Password: "viewer-password", Role: "VIEWER"},
	} {
		_, err := users.CreateUser(context.Background(), u)
		require.NoError(t, err)
	}

	t.Cleanup(func() {
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
	return &testApp{t: t, router: router, redis: rmock}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func formRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// login returns the session cookie issued for username.
func (a *testApp) login(username, password string) *http.Cookie {
	a.t.Helper()
	w := a.do(formRequest(http.MethodPost, "/login", url.Values{"username": {username}, "password": {password}}))
	require.Equal(a.t, http.StatusSeeOther, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	a.t.Fatalf("no session cookie for %s", username)
	return nil
}

// authed attaches the session and expects the revocation lookup it triggers.
func (a *testApp) authed(req *http.Request, session *http.Cookie) *http.Request {
	a.t.Helper()
	var claims auth.SessionClaims
	_, err := jwt.ParseWithClaims(session.Value, &claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(a.t, err)

	a.redis.ExpectExists(auth.RevokedSessionKey(claims.ID)).SetVal(0)
	req.AddCookie(session)
	return req
}

func TestRoutes_PublicAndGate(t *testing.T) {
	a := newTestApp(t)

	w := a.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(httptest.NewRequest(http.MethodGet, "/employees?q=x", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Femployees%3Fq%3Dx", w.Header().Get("Location"))

	w = a.do(formRequest(http.MethodPost, "/login", url.Values{"username": {"hr"}, "password": {"wrong"}}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestRoutes_ViewerIsReadOnly(t *testing.T) {
	a := newTestApp(t)
	session := a.login("viewer", "viewer-password")

	w := a.do(a.authed(httptest.NewRequest(http.MethodGet, "/employees", nil), session))
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(a.authed(formRequest(http.MethodPost, "/employees/new", url.Values{"last_name": {"Иванов"}}), session))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoutes_CreateAndExport(t *testing.T) {
	a := newTestApp(t)
	session := a.login("hr", "hr-password")

	w := a.do(a.authed(formRequest(http.MethodPost, "/employees/new", url.Values{
		"last_name":    {"Иванов"},
		"first_name":   {"Иван"},
		"position":     {"Инженер"},
		"hire_date":    {"2020-03-15"},
		"email":        {"ivanov@example.com"},
		"phone_number": {"+79000000000"},
	}), session))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/employees", w.Header().Get("Location"))

	w = a.do(a.authed(formRequest(http.MethodPost, "/vacations/new?employee_id=EMP-000001", url.Values{
		"type_vacation": {"Ежегодный"},
		"start_date":    {"2024-07-01"},
		"end_date":      {"2024-07-14"},
	}), session))
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = a.do(a.authed(httptest.NewRequest(http.MethodGet, "/employees/EMP-000001", nil), session))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ежегодный")

	w = a.do(a.authed(httptest.NewRequest(http.MethodGet, "/vacations?q="+url.QueryEscape("иванов"), nil), session))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"search_query":"Иванов"`)

	w = a.do(a.authed(httptest.NewRequest(http.MethodGet, "/export-json?employee_id=EMP-000001", nil), session))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"start_date": "01/07/2024"`)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".json")

	w = a.do(a.authed(httptest.NewRequest(http.MethodGet, "/employees/EMP-000001/export-pdf", nil), session))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))

	w = a.do(a.authed(httptest.NewRequest(http.MethodGet, "/employees/EMP-404", nil), session))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
