package pdf

import (
	"context"
	"io"
)

// InvoiceData - все поля печатного счета. Структура детерминированно
// выводится из деталей платежа; рендеры не обращаются к хранилищу
type InvoiceData struct {
	GarageName    string
	GarageAddress string

	InvoiceNumber string // Совпадает с номером платежа
	PaymentDate   string

	PlateNumber string
	CarModel    string
	DriverPhone string

	ServiceName string
	ServiceCode string

	RecordNumber string
	ServiceDate  string

	AmountPaid string // Отформатированная сумма с валютой
	ReceivedBy string
}

// ReceiptData - данные сокращенной квитанции
// Квитанция строится из тех же деталей платежа, что и счет
type ReceiptData struct {
	InvoiceData
}

// Provider рендерит печатные формы счета и квитанции
type Provider interface {
	GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error)
	GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error)
}
