package sequence

import "fmt"

const (
	// RecordPrefix - префикс номеров записей об обслуживании
	RecordPrefix = "REC"
	// PaymentPrefix - префикс номеров платежей
	PaymentPrefix = "PAY"
)

// Next генерирует следующий номер: префикс + (count+1) с дополнением
// нулями до четырех цифр. Номер выводится из текущего размера коллекции,
// а не из монотонного счетчика: после удаления REC0001 новая запись
// снова получит REC0001. Поведение сохранено намеренно ради паритета
// с исходной системой.
func Next(prefix string, count int) string {
	return fmt.Sprintf("%s%04d", prefix, count+1)
}
