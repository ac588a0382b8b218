package auth_test

import (
	"testing"
	"time"

	"foodapp-api/auth"
	"foodapp-api/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:      3,
		Email:   "steve@slooze.xyz",
		Role:    models.RoleManager,
		Country: models.CountryAmerica,
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	token, err := m.Generate(testUser())
	require.NoError(t, err)

	id, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), id.UserID)
	assert.Equal(t, "steve@slooze.xyz", id.Email)
	assert.Equal(t, models.RoleManager, id.Role)
	assert.Equal(t, models.CountryAmerica, id.Country)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	t.Run("malformed", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		token, err := other.Generate(testUser())
		require.NoError(t, err)

		_, err = m.Parse(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := auth.NewTokenManager("secret", -time.Minute)
		token, err := expired.Generate(testUser())
		require.NoError(t, err)

		_, err = m.Parse(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := auth.Claims{
			UserID:  1,
			Role:    models.RoleAdmin,
			Country: models.CountryIndia,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = m.Parse(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		u := testUser()
		u.Role = models.UserRole("OWNER")
		token, err := m.Generate(u)
		require.NoError(t, err)

		_, err = m.Parse(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
