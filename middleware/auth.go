package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelops-backend/access"
	"hotelops-backend/services"
	"hotelops-backend/utils"
)

const ctxClaims = "claims"

// TokenValidator is the part of the token service the middleware needs.
type TokenValidator interface {
	Validate(token string) (*services.Claims, error)
	IsRevoked(ctx context.Context, jti string) bool
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// Authenticate requires a valid, unrevoked bearer token. Websocket upgrades
// may pass it as ?token= since browsers cannot set headers on them.
func Authenticate(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok && c.IsWebsocket() {
			token = c.Query("token")
		}
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		if tokens.IsRevoked(c.Request.Context(), claims.ID) {
			utils.JSONError(c, http.StatusUnauthorized, "token revoked")
			c.Abort()
			return
		}

		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims set by Authenticate, or nil.
func ClaimsFrom(c *gin.Context) *services.Claims {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*services.Claims)
	return claims
}

// GateState describes the request to the route gate.
func GateState(c *gin.Context) access.GateState {
	claims := ClaimsFrom(c)
	if claims == nil {
		return access.GateState{}
	}
	return access.GateState{IsAuthenticated: true, Role: claims.Role}
}

// RequireRoles runs the route gate on the request. A login redirect becomes
// 401 and an unauthorized redirect becomes 403. Pass an access.Allow list so
// super_admin is always included.
func RequireRoles(gate access.Gate, allowed []access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := gate.Decide(GateState(c), allowed)
		switch d.Outcome {
		case access.OutcomeRender:
			c.Next()
		case access.OutcomeRedirectLogin:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "error": "not authenticated", "redirect": d.Redirect,
			})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false, "error": "insufficient permissions", "redirect": d.Redirect,
			})
		}
	}
}
