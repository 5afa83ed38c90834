package domain

// MinPasswordLength - минимальная длина пароля для входа
const MinPasswordLength = 6

// User - пользователь сеанса (приемщик платежей)
// Учетные данные нигде не хранятся: логин это шлюз навигации,
// а не механизм безопасности. Имя пользователя попадает
// в счета как "received by"
type User struct {
	Username string `json:"username"`
	Password string `json:"-"` // Никогда не возвращаем в JSON
}

// ValidCredentials проверяет правило допуска: непустое имя
// и пароль длиной не меньше шести символов
func ValidCredentials(username, password string) bool {
	return username != "" && len(password) >= MinPasswordLength
}
