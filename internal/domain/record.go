package domain

import "time"

// DateLayout - формат календарных дат во всех сущностях
// Дневные отчеты сравнивают даты строго по равенству строк
const DateLayout = "2006-01-02"

// ValidDate проверяет, что строка является корректной датой формата YYYY-MM-DD
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// ServiceRecord - событие обслуживания: связывает один автомобиль
// с одной услугой на одну дату
// Номер записи имеет формат REC + 4 цифры (REC0001)
type ServiceRecord struct {
	RecordNumber string `json:"record_number"` // Уникальный номер записи
	ServiceDate  string `json:"service_date"`  // Дата обслуживания (YYYY-MM-DD)
	PlateNumber  string `json:"plate_number"`  // Ссылка на Car
	ServiceCode  string `json:"service_code"`  // Ссылка на Service
}

// Validate проверяет корректность данных записи об обслуживании
func (r *ServiceRecord) Validate() error {
	if r.RecordNumber == "" || r.PlateNumber == "" || r.ServiceCode == "" {
		return ErrInvalidRecordData
	}
	if !ValidDate(r.ServiceDate) {
		return ErrInvalidRecordData
	}
	return nil
}
