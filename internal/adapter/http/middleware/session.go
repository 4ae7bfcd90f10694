// Package middleware holds the gin middlewares shared by every route.
package middleware

import (
	"net/http"
	"strings"

	"gashub/internal/domain/entities"
	"gashub/internal/usecase/interfaces"
	"gashub/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const userIDKey = "session.user_id"

var errInvalidSession = pkg.NewDomainErrorSimple("INVALID_SESSION", "Invalid or expired session token", http.StatusUnauthorized)

// Session resolves the caller's user id from an "Authorization: Bearer" ID token.
// Requests without the header run as the anonymous user; a token that fails
// verification is rejected. A nil verifier makes every request anonymous.
func Session(verifier interfaces.IIdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || verifier == nil {
			c.Set(userIDKey, entities.AnonymousUserID)
			c.Next()
			return
		}

		uid, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil || uid == "" {
			log.WithError(err).WithField("path", c.FullPath()).Info("[http][session] rejected token")
			c.AbortWithStatusJSON(errInvalidSession.HTTPStatus, errInvalidSession.ToHTTPError())
			return
		}
		c.Set(userIDKey, uid)
		c.Next()
	}
}

// UserID returns the id set by Session, or the anonymous id.
func UserID(c *gin.Context) string {
	if v := c.GetString(userIDKey); v != "" {
		return v
	}
	return entities.AnonymousUserID
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
