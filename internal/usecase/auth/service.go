package auth

import (
	"context"
	"time"

	"github.com/smartpark/garage/internal/domain"
	"github.com/smartpark/garage/internal/pkg/jwt"
	"github.com/smartpark/garage/internal/pkg/logger"
)

// LoginRequest - запрос на вход
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse - ответ на вход
type LoginResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// Service - шлюз входа. Это НЕ механизм безопасности:
// принимаются любые учетные данные с непустым именем и паролем
// не короче шести символов, ничего нигде не хранится.
// Шлюз ограждает только навигацию; имя пользователя попадает
// в счета как "received by"
type Service struct {
	tokenService *jwt.TokenService
	loginDelay   time.Duration
	logger       logger.Logger
}

// NewService создает новый экземпляр AuthService
// loginDelay - искусственная задержка ответа на вход (UX исходной
// системы); задержка всегда завершается, отмены нет
func NewService(tokenService *jwt.TokenService, loginDelay time.Duration, logger logger.Logger) *Service {
	return &Service{
		tokenService: tokenService,
		loginDelay:   loginDelay,
		logger:       logger,
	}
}

// Login проверяет учетные данные и выдает токен сеанса
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	s.logger.Info("Login attempt", map[string]interface{}{
		"username": req.Username,
	})

	// Фиксированная задержка для обратной связи в форме входа
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}

	if !domain.ValidCredentials(req.Username, req.Password) {
		s.logger.Warn("Login failed: invalid credentials", map[string]interface{}{
			"username": req.Username,
		})
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(req.Username)
	if err != nil {
		s.logger.Error("Failed to generate session token", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User logged in successfully", map[string]interface{}{
		"username": req.Username,
	})

	return &LoginResponse{
		Username:    req.Username,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// Logout завершает сеанс. Сеансы без состояния: сервер ничего
// не хранит, клиент просто выбрасывает токен
func (s *Service) Logout(ctx context.Context, username string) {
	s.logger.Info("User logged out", map[string]interface{}{
		"username": username,
	})
}

// ValidateToken валидирует токен сеанса и возвращает claims
func (s *Service) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return s.tokenService.ValidateToken(tokenString)
}
