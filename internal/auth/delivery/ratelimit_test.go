package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSignInLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewSignInLimiter(1, 3)
	defer limiter.Stop()

	r := gin.New()
	r.POST("/api/signin", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/signin", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "attempt %d within burst should pass", i+1)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/signin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestSignInLimiter_TracksClientsSeparately(t *testing.T) {
	limiter := NewSignInLimiter(1, 1)
	defer limiter.Stop()

	assert.True(t, limiter.allow("10.0.0.1"))
	assert.False(t, limiter.allow("10.0.0.1"))

	// A different client keeps its own bucket.
	assert.True(t, limiter.allow("10.0.0.2"))
}
