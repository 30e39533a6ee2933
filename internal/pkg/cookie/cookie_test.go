//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"solar-dispatch/internal/pkg/config"
	"solar-dispatch/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issued(t *testing.T, cfg config.CookieConfig) *http.Cookie {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cookie.SetAccessToken(c, cfg, "tok", time.Hour)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSetAccessToken(t *testing.T) {
	t.Run("lax by default", func(t *testing.T) {
		ck := issued(t, config.CookieConfig{Secure: true, SameSite: "bogus"})
		assert.Equal(t, "tok", ck.Value)
		assert.True(t, ck.HttpOnly)
		assert.True(t, ck.Secure)
		assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
		assert.Equal(t, 3600, ck.MaxAge)
	})

	t.Run("none forces secure", func(t *testing.T) {
		ck := issued(t, config.CookieConfig{Secure: false, SameSite: "None"})
		assert.True(t, ck.Secure)
		assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
	})
}

func TestClearAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cookie.ClearAccessToken(c, config.CookieConfig{SameSite: "Strict"})

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "abc"})

	assert.Equal(t, "abc", cookie.GetAccessToken(c))
}
