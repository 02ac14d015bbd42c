package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lernexhq/lernex/internal/auth"
	"github.com/lernexhq/lernex/internal/domain/learner"
)

// Small interfaces so tests can fake the collaborators easily.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*auth.Claims, error)
}

type LearnerResolver interface {
	GetByID(ctx context.Context, id string) (learner.Learner, error)
}

// AuthMiddleware is the session guard: it turns a bearer token into the
// authenticated principal for the rest of the request. Pure read path,
// safe to run concurrently per request.
type AuthMiddleware struct {
	jwt      TokenVerifier
	learners LearnerResolver
}

func NewAuthMiddleware(jwt TokenVerifier, learners LearnerResolver) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, learners: learners}
}

const ctxLearnerKey = "auth.learner"

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Missing credentials")
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if raw == "" {
			abortUnauthorized(c, "Missing credentials")
			return
		}

		// Signature/expiry/malformed failures all collapse into one
		// message so callers cannot probe which check tripped.
		claims, err := m.jwt.VerifyAccessToken(raw)
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		if claims.Subject == "" {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		// The subject must still exist; a token can outlive its learner.
		l, err := m.learners.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			abortUnauthorized(c, "Could not validate credentials")
			return
		}

		c.Set(ctxLearnerKey, l)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": message,
		},
	})
}

// LearnerFromContext returns the principal stashed by RequireAuth.
func LearnerFromContext(c *gin.Context) (learner.Learner, bool) {
	v, ok := c.Get(ctxLearnerKey)
	if !ok {
		return learner.Learner{}, false
	}
	l, ok := v.(learner.Learner)
	return l, ok
}
