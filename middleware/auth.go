// auth.go - Bearer token authentication middleware
//
// A bearer token is an HS256 JWT carrying the user id and the id of its
// access_tokens row. The signature proves the token was issued by us; the row
// lookup makes revocation work: logout deletes the row, and the same token is
// rejected from then on even though its signature still verifies.

package middleware

import (
	"net/http"
	"strings"

	"product-catalog/config"
	"product-catalog/database"
	"product-catalog/models"
	"product-catalog/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthenticated(c)
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		cfg := config.Load()
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			unauthenticated(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthenticated(c)
			return
		}
		userID, uok := claims["user_id"].(float64) // JWT numbers decode as float64
		tokenID, tok := claims["token_id"].(float64)
		if !uok || !tok {
			unauthenticated(c)
			return
		}

		// Revocation check: the access token row must still exist.
		var access models.AccessToken
		if err := database.DB.First(&access, uint(tokenID)).Error; err != nil || access.UserID != uint(userID) {
			unauthenticated(c)
			return
		}

		c.Set("user_id", uint(userID))
		c.Set("token_id", uint(tokenID))
		c.Next()
	}
}

// unauthenticated aborts with the generic 401 envelope. No detail on why the
// token was rejected leaks to the client.
func unauthenticated(c *gin.Context) {
	response.Error(c, "Unauthenticated", nil, http.StatusUnauthorized)
	c.Abort()
}
