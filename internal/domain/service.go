package domain

// Service - услуга гаража с фиксированной ценой
// Цена хранится в минимальных единицах валюты (Rwf без дробной части)
type Service struct {
	ServiceCode  string `json:"service_code"`  // Уникальный код услуги (SVC001, ...)
	ServiceName  string `json:"service_name"`
	ServicePrice int64  `json:"service_price"` // Неотрицательная цена
}

// DefaultServices - шесть стартовых услуг, загружаются при запуске
var DefaultServices = []Service{
	{ServiceCode: "SVC001", ServiceName: "Engine repair", ServicePrice: 150000},
	{ServiceCode: "SVC002", ServiceName: "Transmission repair", ServicePrice: 80000},
	{ServiceCode: "SVC003", ServiceName: "Oil Change", ServicePrice: 60000},
	{ServiceCode: "SVC004", ServiceName: "Chain replacement", ServicePrice: 40000},
	{ServiceCode: "SVC005", ServiceName: "Disc replacement", ServicePrice: 400000},
	{ServiceCode: "SVC006", ServiceName: "Wheel alignment", ServicePrice: 5000},
}

// Validate проверяет корректность данных услуги
func (s *Service) Validate() error {
	if s.ServiceCode == "" || s.ServiceName == "" {
		return ErrInvalidServiceData
	}
	if s.ServicePrice < 0 {
		return ErrInvalidServiceData
	}
	return nil
}
