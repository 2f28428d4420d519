package middleware

import (
	"Shelved/internal/config"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const currentUserKey = "currentUserID"

type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(configuration *config.Configuration) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(configuration.Auth.JWTSecret)}
}

// RequireAuth validates the bearer token and stores the caller's user id in
// the request locals.
func (a *AuthMiddleware) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authorization header",
		})
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	if tokenString == authHeader || tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid authorization format",
		})
	}

	claims, err := a.validateToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid or expired token",
		})
	}
	if claims.UserID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "token has no user",
		})
	}

	c.Locals(currentUserKey, claims.UserID)
	return c.Next()
}

func (a *AuthMiddleware) validateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// SignToken issues a token for the given user id. Used by tests and local
// tooling; production callers hold tokens minted by the identity provider.
func (a *AuthMiddleware) SignToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})
	return token.SignedString(a.secret)
}

// CurrentUserID returns the authenticated user id, or "" on unauthenticated
// routes.
func CurrentUserID(c *fiber.Ctx) string {
	value := c.Locals(currentUserKey)
	if value == nil {
		return ""
	}
	userID, ok := value.(string)
	if !ok {
		return ""
	}
	return userID
}
