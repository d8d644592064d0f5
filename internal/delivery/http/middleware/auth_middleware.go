package middleware

import (
	"fmt"
	"go-profile-backend/internal/domain"
	"go-profile-backend/pkg/apperror"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires an HS256 bearer token signed with secret.
// The subject becomes KeyUserID and the "auth" claim KeyUserRole.
// Rejections are rendered as 401 by ErrorHandler.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			c.Error(apperror.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.Error(apperror.Unauthorized("Invalid token"))
			c.Abort()
			return
		}

		sub, _ := claims.GetSubject()
		role, _ := claims["auth"].(string)

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserRole), role)

		c.Next()
	}
}
