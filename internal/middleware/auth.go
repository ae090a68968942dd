package middleware

import (
	"net/http"
	"strings"

	"grosirku-be/internal/seller"

	"github.com/gin-gonic/gin"
)

const (
	// SellerKey is the gin context key holding the authenticated
	// seller's claims.
	SellerKey = "seller_claims"

	bearerPrefix = "Bearer "
)

// SellerAuth rejects requests without a valid seller token.
func SellerAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": "missing or malformed authorization header"})
			return
		}

		claims, err := seller.ParseJWT(jwtSecret, strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(SellerKey, claims)
		c.Next()
	}
}

// SellerFrom returns the claims stored by SellerAuth, nil outside an
// authenticated admin request.
func SellerFrom(c *gin.Context) *seller.CustomClaims {
	if v, ok := c.Get(SellerKey); ok {
		if claims, ok := v.(*seller.CustomClaims); ok {
			return claims
		}
	}
	return nil
}
