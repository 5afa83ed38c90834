package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/garage/internal/domain"
)

const testSecret = "test-secret-key"

// TestTokenService_GenerateToken тестирует выдачу токена сеанса
func TestTokenService_GenerateToken(t *testing.T) {
	ts := NewTokenService(testSecret, 12*time.Hour)

	token, err := ts.GenerateToken("admin")
	require.NoError(t, err)
	require.NotNil(t, token)

	assert.NotEmpty(t, token.AccessToken)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), token.ExpiresAt, time.Minute)
}

// TestTokenService_ValidateToken тестирует валидацию токена
func TestTokenService_ValidateToken(t *testing.T) {
	ts := NewTokenService(testSecret, 12*time.Hour)

	token, err := ts.GenerateToken("admin")
	require.NoError(t, err)

	claims, err := ts.ValidateToken(token.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Username)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "smartpark-garage", claims.Issuer)
}

// TestTokenService_ValidateToken_Expired тестирует просроченный токен
func TestTokenService_ValidateToken_Expired(t *testing.T) {
	ts := NewTokenService(testSecret, -time.Minute)

	token, err := ts.GenerateToken("admin")
	require.NoError(t, err)

	_, err = ts.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

// TestTokenService_ValidateToken_WrongSecret тестирует чужой ключ подписи
func TestTokenService_ValidateToken_WrongSecret(t *testing.T) {
	ts := NewTokenService(testSecret, 12*time.Hour)
	other := NewTokenService("another-secret", 12*time.Hour)

	token, err := ts.GenerateToken("admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// TestTokenService_ValidateToken_Garbage тестирует мусорный токен
func TestTokenService_ValidateToken_Garbage(t *testing.T) {
	ts := NewTokenService(testSecret, 12*time.Hour)

	_, err := ts.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

// TestTokenService_UniqueSessionIDs проверяет уникальность идентификаторов сеансов
func TestTokenService_UniqueSessionIDs(t *testing.T) {
	ts := NewTokenService(testSecret, 12*time.Hour)

	first, err := ts.GenerateToken("admin")
	require.NoError(t, err)
	second, err := ts.GenerateToken("admin")
	require.NoError(t, err)

	firstClaims, err := ts.ValidateToken(first.AccessToken)
	require.NoError(t, err)
	secondClaims, err := ts.ValidateToken(second.AccessToken)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
