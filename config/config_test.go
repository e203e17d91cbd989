package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://127.0.0.1:5432/test?sslmode=disable")
	os.Setenv("SECRET_KEY", "test-secret")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "test-secret", conf.SecretKey)
}

func TestNewDefaultsMaxDBConns(t *testing.T) {
	os.Unsetenv("DB_MAX_CONNS")
	conf := New()

	assert.Equal(t, 10, conf.MaxDBConns)
}

func TestErrorStatus(t *testing.T) {

	ErrorStatus("error it borked", http.StatusBadRequest, httptest.NewRecorder(), errors.New("bad request"))
	assert.True(t, true)
}

func TestErrorStatusBody(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("failed to do the thing", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"success": false, "message": "failed to do the thing, bad request"}`, rr.Body.String())
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(1))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(2))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(0))
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000"}, splitOrigins(""))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, splitOrigins("https://a.example, https://b.example"))
}
