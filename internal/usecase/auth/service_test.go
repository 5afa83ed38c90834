package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/jwt"
	"github.com/smartpark/garage/internal/pkg/logger"
)

func newTestService() *Service {
	tokenService := jwt.NewTokenService("test-secret-key", 12*time.Hour)
	// Без искусственной задержки в тестах
	return NewService(tokenService, 0, logger.NewNoop())
}

// TestService_Login тестирует шлюз входа
func TestService_Login(t *testing.T) {
	tests := []struct {
		name        string
		req         LoginRequest
		expectedErr error
	}{
		{
			name: "успешный вход",
			req:  LoginRequest{Username: "admin", Password: "secret1"},
		},
		{
			name: "любое имя с достаточным паролем",
			req:  LoginRequest{Username: "кто угодно", Password: "123456"},
		},
		{
			name:        "короткий пароль",
			req:         LoginRequest{Username: "admin", Password: "12345"},
			expectedErr: domain.ErrInvalidCredentials,
		},
		{
			name:        "пустое имя",
			req:         LoginRequest{Username: "", Password: "123456"},
			expectedErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestService()

			resp, err := svc.Login(ctx, &tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Username, resp.Username)
			assert.NotEmpty(t, resp.AccessToken)
			assert.NotEmpty(t, resp.ExpiresAt)
		})
	}
}

// TestService_Login_TokenCarriesUsername проверяет, что имя
// пользователя попадает в claims токена
func TestService_Login_TokenCarriesUsername(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.Login(ctx, &LoginRequest{Username: "mechanic", Password: "secret1"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "mechanic", claims.Username)
}

// TestService_Login_Delay проверяет искусственную задержку ответа
func TestService_Login_Delay(t *testing.T) {
	ctx := context.Background()
	tokenService := jwt.NewTokenService("test-secret-key", 12*time.Hour)
	svc := NewService(tokenService, 50*time.Millisecond, logger.NewNoop())

	start := time.Now()
	_, err := svc.Login(ctx, &LoginRequest{Username: "admin", Password: "secret1"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

// TestService_Login_DelayAppliesToFailures проверяет, что задержка
// действует и на отказ во входе
func TestService_Login_DelayAppliesToFailures(t *testing.T) {
	ctx := context.Background()
	tokenService := jwt.NewTokenService("test-secret-key", 12*time.Hour)
	svc := NewService(tokenService, 50*time.Millisecond, logger.NewNoop())

	start := time.Now()
	_, err := svc.Login(ctx, &LoginRequest{Username: "admin", Password: "short"})
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}
