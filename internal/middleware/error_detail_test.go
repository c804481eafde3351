package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
)

func TestErrorDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, expose := range []bool{true, false} {
		router := gin.New()
		router.Use(ErrorDetail(expose))
		router.GET("/boom", func(c *gin.Context) {
			apierrors.InternalError(c, "Failed to get todos", errors.New("connection refused"))
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Failed to get todos", body["message"])
		if expose {
			assert.Equal(t, "connection refused", body["error"])
		} else {
			assert.NotContains(t, body, "error")
		}
	}
}
