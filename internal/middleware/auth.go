package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mkhadiri/mentorhub/config"
	"github.com/mkhadiri/mentorhub/internal/model"
	"github.com/mkhadiri/mentorhub/internal/policy"
	"github.com/mkhadiri/mentorhub/internal/repository"
	"github.com/rs/zerolog/log"
)

const actorKey = "actor"

// Auth validates the bearer token, loads the user and stores a typed
// policy.Actor in the request context. The role string from storage is parsed
// exactly once here; an unrecognized value aborts the request instead of
// flowing into the policy layer.
func Auth(cfg *config.Config, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromToken(c.GetHeader("Authorization"), cfg.JWT.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		role, err := model.ParseRole(string(user.Role))
		if err != nil {
			log.Warn().Uint("userID", user.ID).Str("role", string(user.Role)).Msg("User has unrecognized role")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set(actorKey, policy.Actor{ID: user.ID, Role: role, Verified: user.IsVerified})
		c.Next()
	}
}

// CurrentActor returns the actor stored by Auth.
func CurrentActor(c *gin.Context) (policy.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return policy.Actor{}, false
	}
	actor, ok := v.(policy.Actor)
	return actor, ok
}

func userIDFromToken(header, secret string) (uint, error) {
	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == "" {
		return 0, errors.New("missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid user id in token")
	}
	return uint(userIDFloat), nil
}
