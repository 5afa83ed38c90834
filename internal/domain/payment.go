package domain

// Payment - оплата по одной записи об обслуживании
// Номер платежа имеет формат PAY + 4 цифры (PAY0001)
// На одну запись допускается не более одного платежа; удаление записи
// не каскадируется - платеж остается с "висячей" ссылкой
type Payment struct {
	PaymentNumber string `json:"payment_number"` // Уникальный номер платежа
	AmountPaid    int64  `json:"amount_paid"`    // Неотрицательная сумма
	PaymentDate   string `json:"payment_date"`   // Дата оплаты (YYYY-MM-DD)
	RecordNumber  string `json:"record_number"`  // Ссылка на ServiceRecord
}

// Validate проверяет корректность данных платежа
func (p *Payment) Validate() error {
	if p.PaymentNumber == "" || p.RecordNumber == "" {
		return ErrInvalidPaymentData
	}
	if p.AmountPaid < 0 {
		return ErrInvalidPaymentData
	}
	if !ValidDate(p.PaymentDate) {
		return ErrInvalidPaymentData
	}
	return nil
}

// PaymentDetails - результат трехшагового соединения
// payment -> record -> {service, car}
// Если любой шаг не находит сущность, результат отсутствует целиком
type PaymentDetails struct {
	Payment *Payment       `json:"payment"`
	Record  *ServiceRecord `json:"record"`
	Service *Service       `json:"service"`
	Car     *Car           `json:"car"`
}
