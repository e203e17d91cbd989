package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nyayconnect/nyayconnect-api/config"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func newTestRouter() {
	a.Config = config.Config{SecretKey: "test-secret"}
	a.Router = a.New()
}

func TestUnknownRoute(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestApp_ProfileUnauthorized(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/api/user/profile", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestApp_ProfileInvalidToken(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/api/user/profile", nil)
	req.Header.Add("Authorization", "Bearer asdfasdf")
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)

	if !strings.Contains(response.Body.String(), "Token is invalid or has expired!") {
		t.Errorf("Expected invalid token message. Got '%s'", response.Body.String())
	}
}

func TestApp_BookAppointmentUnauthorized(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("POST", "/api/appointments", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestApp_ChatRoomsUnauthorized(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/api/chat/rooms", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestApp_WebSocketMissingToken(t *testing.T) {
	newTestRouter()
	req, _ := http.NewRequest("GET", "/ws/chat", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}
