package domain

import (
	"strings"
	"time"
)

// MinManufacturingYear - минимально допустимый год выпуска
const MinManufacturingYear = 1990

// Car - зарегистрированный автомобиль клиента
// Регистрируется до создания записей об обслуживании, ссылающихся на него
type Car struct {
	PlateNumber       string `json:"plate_number"` // Номер автомобиля (уникальный)
	Type              string `json:"type"`
	Model             string `json:"model"`
	ManufacturingYear int    `json:"manufacturing_year"`
	DriverPhone       string `json:"driver_phone"`
	MechanicName      string `json:"mechanic_name"`
}

// NormalizePlateNumber нормализует номер автомобиля (убирает пробелы, приводит к верхнему регистру)
func NormalizePlateNumber(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(plate, " ", ""))
}

// Validate проверяет корректность данных автомобиля
func (c *Car) Validate() error {
	if c.PlateNumber == "" {
		return ErrInvalidPlateNumber
	}
	// Нормализуем номер
	c.PlateNumber = NormalizePlateNumber(c.PlateNumber)

	if c.Model == "" {
		return ErrInvalidCarData
	}
	if c.ManufacturingYear < MinManufacturingYear || c.ManufacturingYear > time.Now().Year() {
		return ErrInvalidCarData
	}
	return nil
}
