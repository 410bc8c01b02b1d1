package middleware

import (
	"fmt"
	"os"
	"strings"

	autherrors "github.com/gabrieldacena/emprega-sapezal/internal/auth/errors"
	"github.com/gabrieldacena/emprega-sapezal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const TokenCookieName = "token"

// extractToken reads the session token, cookie first, then the
// Authorization header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		return token
	}
	return ""
}

func parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) bool {
	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return false
	}
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	nome, _ := claims["nome"].(string)

	c.Set("user_id", userID)
	c.Set("role", role)
	c.Set("email", email)
	c.Set("nome", nome)
	return true
}

// Authenticate rejects the request when no valid session token is present.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			e := autherrors.ErrTokenMissing
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			e := autherrors.ErrInvalidToken
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		if !setIdentity(c, claims) {
			e := autherrors.ErrInvalidToken
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// OptionalAuth resolves the identity when a valid token is present but never
// rejects the request. Public routes may branch on the presence of "user_id".
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		if claims, err := parseClaims(tokenString); err == nil {
			setIdentity(c, claims)
		}

		c.Next()
	}
}

// RequireRoles gates a route on the authenticated role. Must run after
// Authenticate.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")
		if userRole == "" {
			e := autherrors.ErrTokenMissing
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		e := autherrors.ErrForbidden
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		c.Abort()
	}
}
