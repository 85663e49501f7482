package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"quizmaster-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

func ValidateJWT(tokenString, secret string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func GenerateJWT(userID, secret string) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// resolveUserID extracts the caller identity from the X-User-ID header set
// by the gateway, or from a Bearer token when the request comes in directly.
func resolveUserID(c *gin.Context, secret string) (string, error) {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id, nil
	}

	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return "", nil
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims, err := ValidateJWT(tokenString, secret)
	if err != nil {
		return "", err
	}

	userID := claims.UserID
	// Tokens minted by older gateways carry ObjectID("...") wrapped IDs.
	if strings.HasPrefix(userID, "ObjectID(\"") && strings.HasSuffix(userID, "\")") {
		userID = userID[10 : len(userID)-2]
	}
	return userID, nil
}

// RequireUser rejects requests without a resolvable identity and stores the
// user ID on the gin context for handlers downstream.
func RequireUser(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveUserID(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserLookup is the slice of the user store the admin check needs.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// RequireAdmin gates mutating catalog and settings routes. It runs after
// RequireUser and checks the stored role.
func RequireAdmin(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil || user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user ID set by RequireUser, or "".
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
