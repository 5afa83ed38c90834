package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidDate тестирует проверку формата даты
func TestValidDate(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{"корректная дата", "2024-01-15", true},
		{"високосный год", "2024-02-29", true},
		{"несуществующий день", "2023-02-29", false},
		{"неверный формат", "15-01-2024", false},
		{"дата со временем", "2024-01-15T10:00:00Z", false},
		{"пустая строка", "", false},
		{"мусор", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidDate(tt.date))
		})
	}
}

// TestServiceRecord_Validate тестирует валидацию записи об обслуживании
func TestServiceRecord_Validate(t *testing.T) {
	valid := ServiceRecord{
		RecordNumber: "REC0001",
		ServiceDate:  "2024-01-15",
		PlateNumber:  "RAB123A",
		ServiceCode:  "SVC003",
	}

	tests := []struct {
		name    string
		mutate  func(r *ServiceRecord)
		wantErr bool
	}{
		{"валидная запись", func(r *ServiceRecord) {}, false},
		{"пустой номер записи", func(r *ServiceRecord) { r.RecordNumber = "" }, true},
		{"пустой номер автомобиля", func(r *ServiceRecord) { r.PlateNumber = "" }, true},
		{"пустой код услуги", func(r *ServiceRecord) { r.ServiceCode = "" }, true},
		{"некорректная дата", func(r *ServiceRecord) { r.ServiceDate = "15/01/2024" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid
			tt.mutate(&record)

			err := record.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRecordData)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
