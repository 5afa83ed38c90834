package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFProvider рендерит счета и квитанции через maroto
type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

// GenerateInvoice рендерит полный счет: шапка гаража, реквизиты
// платежа, автомобиля, услуги и записи, сумма и принявший платеж
func (p *PDFProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Шапка гаража
	m.AddRow(12,
		text.NewCol(12, data.GarageName, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Car Repair Invoice", props.Text{
			Size:  12,
			Align: align.Center,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, data.GarageAddress, props.Text{
			Size:  9,
			Align: align.Center,
		}),
	)

	// Реквизиты счета
	m.AddRow(20,
		col.New(6).Add(
			text.New("Invoice number: "+data.InvoiceNumber, props.Text{Top: 0}),
			text.New("Date: "+data.PaymentDate, props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New("Record: "+data.RecordNumber, props.Text{Top: 0}),
			text.New("Service date: "+data.ServiceDate, props.Text{Top: 5}),
		),
	)

	// Автомобиль и услуга
	m.AddRow(30,
		col.New(6).Add(
			text.New("Car Details", props.Text{Style: fontstyle.Bold}),
			text.New(data.PlateNumber+" - "+data.CarModel, props.Text{Top: 5}),
			text.New("Driver: "+data.DriverPhone, props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Service Provided", props.Text{Style: fontstyle.Bold}),
			text.New(data.ServiceName, props.Text{Top: 5}),
			text.New("Code: "+data.ServiceCode, props.Text{Top: 10}),
		),
	)

	// Сумма
	m.AddRow(15,
		text.NewCol(6, "Amount Paid", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Top:   5,
		}),
		text.NewCol(6, data.AmountPaid, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Right,
			Top:   5,
		}),
	)

	// Принявший платеж
	m.AddRow(15,
		text.NewCol(12, "Payment received by: "+data.ReceivedBy+" (Chief Mechanic)", props.Text{
			Size:  10,
			Align: align.Center,
			Top:   5,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
