package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"qkart/internal/domain"
	authsvc "qkart/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type contextKey string

const userCtxKey contextKey = "qkart-user"

// rejection is the typed outcome of a failed credential check.
type rejection struct {
	status  int
	message string
}

// authenticate is an explicit capability check: it returns either the
// authenticated user or a rejection describing why the request cannot
// proceed. The gin middleware is a thin wrapper over it.
func authenticate(ctx context.Context, svc AuthService, header string) (*domain.User, *rejection) {
	parts := strings.Fields(header)
	if len(parts) < 2 || parts[0] != "Bearer" {
		return nil, &rejection{status: http.StatusUnauthorized, message: "Protected route, Oauth2 Bearer token not found"}
	}

	u, err := svc.Authenticate(ctx, parts[1])
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrUserVanished):
			return nil, &rejection{status: http.StatusBadRequest, message: "Bad token or user no longer exists"}
		case errors.Is(err, authsvc.ErrInvalidToken):
			return nil, &rejection{status: http.StatusBadRequest, message: "Bad or expired token"}
		default:
			return nil, &rejection{status: http.StatusInternalServerError, message: genericErrorMessage}
		}
	}
	return u, nil
}

func requireAuth(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, rej := authenticate(c.Request.Context(), svc, c.GetHeader("Authorization"))
		if rej != nil {
			c.AbortWithStatusJSON(rej.status, gin.H{"success": false, "message": rej.message})
			return
		}
		c.Set(string(userCtxKey), u)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(string(userCtxKey))
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
