// Package cookie manages the HttpOnly access token cookie the web client
// uses instead of an Authorization header.
package cookie

import (
	"net/http"
	"time"

	"solar-dispatch/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	ck := accessCookie(cfg, token)
	ck.MaxAge = int(expiry.Seconds())
	ck.Expires = time.Now().Add(expiry)
	http.SetCookie(c.Writer, ck)
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	ck := accessCookie(cfg, "")
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)
	http.SetCookie(c.Writer, ck)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func accessCookie(cfg config.CookieConfig, value string) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	// browsers drop SameSite=None cookies that are not Secure
	secure := cfg.Secure || sameSite == http.SameSiteNoneMode
	return &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	}
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
