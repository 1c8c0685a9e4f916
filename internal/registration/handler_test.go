package registration

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(sender *fakeSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(sender, nil), nil)
	router.POST("/registrations", handler.Create)
	return router
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/registrations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRegistration(t *testing.T) {
	sender := &fakeSender{}
	router := newRouter(sender)

	w := post(router, `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"location": "london",
		"event_type": "meetgreet"
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "submitted")
	require.Len(t, sender.confirmationCalls, 1)
	assert.Equal(t, "jane@example.com", sender.confirmationCalls[0].Email)
}

func TestCreateRegistration_ValidationErrors(t *testing.T) {
	sender := &fakeSender{}
	router := newRouter(sender)

	w := post(router, `{"name": "J", "email": "nope", "location": "", "event_type": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Valid email is required")
	assert.Contains(t, w.Body.String(), "Please select a location")
	assert.Empty(t, sender.confirmationCalls)
}

func TestCreateRegistration_DeliveryFailure(t *testing.T) {
	sender := &fakeSender{confirmationErr: assert.AnError}
	router := newRouter(sender)

	w := post(router, `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"location": "manchester",
		"event_type": "dinner"
	}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "couldn't process your registration")
}

func TestCreateRegistration_InvalidJSON(t *testing.T) {
	sender := &fakeSender{}
	router := newRouter(sender)

	w := post(router, `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
