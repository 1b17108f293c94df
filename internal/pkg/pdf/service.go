// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt renders a printable receipt for an order. Amounts are
// formatted from the order's authoritative totals; nothing is recomputed.
func (s *Service) GenerateReceipt(order *commerce.Order) (*bytes.Buffer, error) {
	data := receiptData{
		StoreName:     s.config.App.Name,
		ReceiptNumber: fmt.Sprintf("RCP-%d", order.DisplayID),
		ReceiptDate:   time.Now().UTC().Format("January 2, 2006"),
		OrderDate:     order.CreatedAt.Format("January 2, 2006"),
		OrderNumber:   fmt.Sprintf("#%d", order.DisplayID),
		Email:         order.Email,
		Status:        order.Status,
		Currency:      strings.ToUpper(order.CurrencyCode),
		Subtotal:      order.Subtotal.Format(),
		Shipping:      order.ShippingTotal.Format(),
		Tax:           order.TaxTotal.Format(),
		Total:         order.Total.Format(),
	}

	for _, item := range order.Items {
		line := receiptLine{
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Format(),
			Total:     item.Total.Format(),
		}
		if item.Variant != nil {
			line.VariantTitle = item.Variant.Title
			line.SKU = item.Variant.SKU
		}
		data.Items = append(data.Items, line)
	}

	htmlContent, err := renderReceiptHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func renderReceiptHTML(data receiptData) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// receiptData represents the data passed to the receipt template
type receiptData struct {
	StoreName     string
	ReceiptNumber string
	ReceiptDate   string
	OrderDate     string
	OrderNumber   string
	Email         string
	Status        string
	Currency      string
	Items         []receiptLine
	Subtotal      string
	Shipping      string
	Tax           string
	Total         string
}

type receiptLine struct {
	Title        string
	VariantTitle string
	SKU          string
	Quantity     int
	UnitPrice    string
	Total        string
}

// Receipt HTML template
var receiptTemplate = template.Must(template.New("receipt").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .price-col,
        .items-table .total-col {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 100px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333 !important;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div>
            <h1>{{.StoreName}}</h1>
            <p>{{.Email}}</p>
        </div>
        <div style="text-align: right;">
            <div class="receipt-title">RECEIPT</div>
            <p><strong>Receipt #:</strong> {{.ReceiptNumber}}</p>
            <p><strong>Receipt Date:</strong> {{.ReceiptDate}}</p>
            <p><strong>Order:</strong> {{.OrderNumber}} ({{.OrderDate}})</p>
            <p><strong>Status:</strong> {{.Status}}</p>
        </div>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th>SKU</th>
                <th class="qty-col">Qty</th>
                <th class="price-col">Price</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Items}}
            <tr>
                <td>
                    <strong>{{.Title}}</strong>
                    {{if .VariantTitle}}<br><small>{{.VariantTitle}}</small>{{end}}
                </td>
                <td>{{.SKU}}</td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">{{.UnitPrice}}</td>
                <td class="total-col">{{.Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Subtotal:</td>
                <td class="amount">{{.Subtotal}} {{.Currency}}</td>
            </tr>
            <tr>
                <td class="label">Shipping:</td>
                <td class="amount">{{.Shipping}} {{.Currency}}</td>
            </tr>
            <tr>
                <td class="label">Tax:</td>
                <td class="amount">{{.Tax}} {{.Currency}}</td>
            </tr>
            <tr class="total-row">
                <td class="label">Total:</td>
                <td class="amount">{{.Total}} {{.Currency}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Thank you for your order!</p>
    </div>
</body>
</html>
`))
