package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNext тестирует генерацию порядковых номеров
func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		count    int
		expected string
	}{
		{"первая запись", RecordPrefix, 0, "REC0001"},
		{"первый платеж", PaymentPrefix, 0, "PAY0001"},
		{"девятая запись", RecordPrefix, 8, "REC0009"},
		{"переход через десяток", RecordPrefix, 9, "REC0010"},
		{"четыре цифры заполнены", PaymentPrefix, 9998, "PAY9999"},
		{"выход за четыре цифры", RecordPrefix, 9999, "REC10000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Next(tt.prefix, tt.count))
		})
	}
}

// TestNext_ReusesNumberAfterShrink проверяет, что номер выводится
// из размера коллекции: после удаления единственной записи
// следующая снова получает первый номер
func TestNext_ReusesNumberAfterShrink(t *testing.T) {
	first := Next(RecordPrefix, 0)
	assert.Equal(t, "REC0001", first)

	// Коллекция выросла до одной записи, затем запись удалили
	second := Next(RecordPrefix, 0)
	assert.Equal(t, first, second)
}
