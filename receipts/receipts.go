package receipts

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"savoria/inquiries"
	"savoria/notify"
	"savoria/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// PrintReceipt handles GET /api/inquiries/:refId/receipt and renders the
// booking receipt as a downloadable PDF with a QR code pointing back at
// the proposal page.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	refID := ps.ByName("refId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := inquiries.LookupBooking(ctx, refID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	qrPNG, err := qrcode.Encode(notify.ProposalURL(refID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Reference: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Client: %s", booking.ClientName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Event Date: %s", booking.EventDetails.EventDate))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Guests: %d", booking.EventDetails.Pax))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", booking.BookingStatus))
	pdf.Ln(8)

	if selected := booking.EventDetails.SelectedPackage; selected != nil {
		pdf.Cell(0, 10, fmt.Sprintf("Package: %s (%d / head)", selected.Name, selected.PricePerHead.Int()))
		pdf.Ln(8)
	}
	for _, addOn := range booking.EventDetails.AddOns {
		pdf.Cell(0, 10, fmt.Sprintf("  Add-on: %s - %d", addOn.Name, addOn.Price.Int()))
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %d", booking.Billing.TotalCost))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Paid: %d", booking.Billing.AmountPaid))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Balance: %d", booking.Billing.RemainingBalance))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+refID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
