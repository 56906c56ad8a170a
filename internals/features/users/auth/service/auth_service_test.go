package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorku_backend/internals/configs"
	"tutorku_backend/internals/constants"
	userModel "tutorku_backend/internals/features/users/auth/model"
)

func TestGenerateAccessToken_Claims(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	user := &userModel.UserModel{
		ID:        uuid.New(),
		FirstName: "Budi",
		LastName:  "Santoso",
		Role:      constants.RoleTutor,
	}

	signed, err := GenerateAccessToken(user)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["id"])
	assert.Equal(t, "Budi Santoso", claims["user_name"])
	assert.Equal(t, constants.RoleTutor, claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 24*time.Hour, time.Duration(exp-iat)*time.Second, float64(2*time.Second))
}

func TestGenerateAccessToken_MissingSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	_, err := GenerateAccessToken(&userModel.UserModel{ID: uuid.New()})
	assert.Error(t, err)
}
