package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"citycast.app/internal/mocks"
	"citycast.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		err              error
		expectedStatus   int
		expectedCategory string
		expectedMessage  string
	}{
		{
			name:             "no input",
			err:              errors.NewNoInputError("empty"),
			expectedStatus:   http.StatusBadRequest,
			expectedCategory: "no_input",
			expectedMessage:  "Please enter a city name",
		},
		{
			name:             "input too short",
			err:              errors.NewInputTooShortError("short"),
			expectedStatus:   http.StatusBadRequest,
			expectedCategory: "input_too_short",
			expectedMessage:  "City name is too short",
		},
		{
			name:             "validation keeps its message",
			err:              errors.NewValidationError("lat and lon must be provided together"),
			expectedStatus:   http.StatusBadRequest,
			expectedCategory: "failure",
			expectedMessage:  "lat and lon must be provided together",
		},
		{
			name:             "not found",
			err:              fmt.Errorf("geocode: %w", errors.NewNotFoundError("city \"Atlantis\" not found")),
			expectedStatus:   http.StatusNotFound,
			expectedCategory: "not_found",
			expectedMessage:  "City not found",
		},
		{
			name:             "transport",
			err:              errors.NewTransportError("upstream returned 503", 503, nil),
			expectedStatus:   http.StatusBadGateway,
			expectedCategory: "failure",
			expectedMessage:  "Failed to fetch weather data",
		},
		{
			name:             "response validation",
			err:              errors.NewResponseValidationError("list[0].main", "missing field", nil),
			expectedStatus:   http.StatusBadGateway,
			expectedCategory: "failure",
			expectedMessage:  "Failed to fetch weather data",
		},
		{
			name:             "unknown",
			err:              fmt.Errorf("boom"),
			expectedStatus:   http.StatusInternalServerError,
			expectedCategory: "failure",
			expectedMessage:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &HTTPServerAdapter{logger: mocks.NewLogger(t)}
			router := gin.New()
			router.GET("/test", func(c *gin.Context) { server.handleError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedCategory, response.Category)
			assert.Equal(t, tt.expectedMessage, response.Error)
		})
	}
}
