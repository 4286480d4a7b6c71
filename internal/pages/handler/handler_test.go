package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"callcenter-webhooks/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Pages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(observability.NewLogger())

	tests := []struct {
		name         string
		handle       gin.HandlerFunc
		wantContains string
	}{
		{name: "home", handle: h.HandleHome, wantContains: "مركز الاتصال الذكي"},
		{name: "test", handle: h.HandleTest, wantContains: "الخادم يعمل بنجاح"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			tt.handle(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.wantContains)
		})
	}
}
