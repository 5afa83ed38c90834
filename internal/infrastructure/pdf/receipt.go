package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateReceipt рендерит компактную квитанцию об оплате
func (p *PDFProvider) GenerateReceipt(ctx context.Context, data ReceiptData) (io.Reader, error) {
	cfg := config.NewBuilder().Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, data.GarageName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, "Payment Receipt", props.Text{
			Size:  11,
			Align: align.Center,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, data.GarageAddress, props.Text{
			Size:  8,
			Align: align.Center,
		}),
	)

	m.AddRow(4, line.NewCol(12))

	m.AddRow(8,
		col.New(6).Add(text.New("Receipt number", props.Text{Style: fontstyle.Bold})),
		col.New(6).Add(text.New(data.InvoiceNumber, props.Text{Align: align.Right})),
	)
	m.AddRow(8,
		col.New(6).Add(text.New("Date", props.Text{Style: fontstyle.Bold})),
		col.New(6).Add(text.New(data.PaymentDate, props.Text{Align: align.Right})),
	)
	m.AddRow(8,
		col.New(6).Add(text.New("Car", props.Text{Style: fontstyle.Bold})),
		col.New(6).Add(text.New(data.PlateNumber, props.Text{Align: align.Right})),
	)
	m.AddRow(8,
		col.New(6).Add(text.New("Service", props.Text{Style: fontstyle.Bold})),
		col.New(6).Add(text.New(data.ServiceName, props.Text{Align: align.Right})),
	)

	m.AddRow(4, line.NewCol(12))

	m.AddRow(10,
		col.New(6).Add(text.New("Amount Paid", props.Text{
			Size:  12,
			Style: fontstyle.Bold,
		})),
		col.New(6).Add(text.New(data.AmountPaid, props.Text{
			Size:  12,
			Style: fontstyle.Bold,
			Align: align.Right,
		})),
	)

	m.AddRow(8,
		text.NewCol(12, "Received by: "+data.ReceivedBy, props.Text{
			Size:  9,
			Align: align.Center,
			Top:   3,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
