// Package voucher renders a printable PDF confirmation for a booking.
package voucher

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"tourism/internal/domains/booking/model"
	"tourism/shared/constant"
	"tourism/shared/timezone"
)

const (
	qrImageName = "reference-qr"
	qrPixels    = 256
	qrSizeMM    = 40
	lineHeight  = 8
)

var pngOptions = gofpdf.ImageOptions{ImageType: "PNG"}

// FileName is the attachment name used for a booking's voucher.
func FileName(reference string) string {
	return fmt.Sprintf("voucher-%s.pdf", reference)
}

func optional(value *string) string {
	if value == nil {
		return "-"
	}

	return *value
}

func period(item model.Item) string {
	if item.StartDate == nil {
		return "-"
	}

	start := timezone.Format(*item.StartDate, constant.DateOnlyFormat)
	if item.EndDate == nil {
		return start
	}

	return start + " - " + timezone.Format(*item.EndDate, constant.DateOnlyFormat)
}

// Render builds the voucher: reference, customer, items, totals and a QR code of the reference.
func Render(aggregate model.Aggregate) ([]byte, error) {
	booking := aggregate.Booking

	qrPNG, err := qrcode.Encode(booking.BookingReference, qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reference qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking "+booking.BookingReference, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Booking Voucher")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, lineHeight, "Reference: "+booking.BookingReference)
	pdf.Ln(lineHeight)
	pdf.Cell(0, lineHeight, "Status: "+booking.Status)
	pdf.Ln(lineHeight)
	pdf.Cell(0, lineHeight, "Issued: "+timezone.Format(booking.CreatedAt, constant.DateOnlyFormat))
	pdf.Ln(lineHeight * 2)

	pdf.RegisterImageOptionsReader(qrImageName, pngOptions, bytes.NewReader(qrPNG))
	pdf.ImageOptions(qrImageName, 150, 20, qrSizeMM, qrSizeMM, false, pngOptions, 0, "")

	customer := aggregate.Customer

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, lineHeight, "Guest")
	pdf.Ln(lineHeight)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, lineHeight, customer.FullName)
	pdf.Ln(lineHeight)
	pdf.Cell(0, lineHeight, customer.Email+" / "+customer.Phone)
	pdf.Ln(lineHeight * 2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(80, lineHeight, "Service", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, lineHeight, "Period", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, lineHeight, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, lineHeight, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)

	for _, item := range aggregate.Items {
		name := item.ServiceType
		if item.ServiceName != nil {
			name = *item.ServiceName
		}

		pdf.CellFormat(80, lineHeight, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, lineHeight, period(item), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, lineHeight, fmt.Sprint(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, lineHeight, item.TotalPrice.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(lineHeight / 2)

	totals := []struct {
		label string
		value string
	}{
		{"Subtotal", booking.TotalAmount.StringFixed(2)},
		{"Tax", booking.TaxAmount.StringFixed(2)},
		{"Discount", booking.DiscountAmount.StringFixed(2)},
		{"Total due", booking.FinalAmount.StringFixed(2)},
	}

	for _, total := range totals {
		pdf.CellFormat(145, lineHeight, total.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, lineHeight, total.value, "", 1, "R", false, 0, "")
	}

	if booking.SpecialRequests != nil {
		pdf.Ln(lineHeight)
		pdf.MultiCell(0, lineHeight, "Special requests: "+optional(booking.SpecialRequests), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render voucher: %w", err)
	}

	return buf.Bytes(), nil
}
