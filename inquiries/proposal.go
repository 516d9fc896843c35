package inquiries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"savoria/db"
	"savoria/models"
	"savoria/notify"
	"savoria/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// The proposal token is the booking reference id. There is no separate
// token collection and no expiry; anyone holding the link can open the
// proposal. TODO: replace with an HMAC-signed expiring token once the
// frontend link format can change.

// ProposalView is the denormalized payload the customer proposal page
// renders from.
type ProposalView struct {
	RefID           string                  `json:"refId"`
	ClientName      string                  `json:"clientName"`
	Email           string                  `json:"email"`
	EventDate       string                  `json:"eventDate"`
	StartTime       string                  `json:"startTime,omitempty"`
	EndTime         string                  `json:"endTime,omitempty"`
	Venue           string                  `json:"venue,omitempty"`
	EventType       string                  `json:"eventType,omitempty"`
	Pax             int                     `json:"pax"`
	Packages        []models.PackageOption  `json:"packages"`
	SelectedPackage *models.SelectedPackage `json:"selectedPackage,omitempty"`
	AddOns          []models.AddOnSelection `json:"addOns,omitempty"`
	BookingStatus   string                  `json:"bookingStatus"`
	Notes           string                  `json:"notes,omitempty"`
}

// VerifyProposal handles GET /api/proposals/verify/:token.
func VerifyProposal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	token := ps.ByName("token")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := getBookingByRefID(ctx, token)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Invalid proposal link")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	packages, err := listPackageOptions(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	view := ProposalView{
		RefID:           booking.BookingID,
		ClientName:      booking.ClientName,
		Email:           booking.Email,
		EventDate:       booking.EventDetails.EventDate,
		StartTime:       booking.EventDetails.StartTime,
		EndTime:         booking.EventDetails.EndTime,
		Venue:           booking.EventDetails.Venue,
		EventType:       booking.EventDetails.EventType,
		Pax:             booking.EventDetails.Pax,
		Packages:        packages,
		SelectedPackage: booking.EventDetails.SelectedPackage,
		AddOns:          booking.EventDetails.AddOns,
		BookingStatus:   booking.BookingStatus,
		Notes:           booking.Notes,
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"proposal": view,
	})
}

func listPackageOptions(ctx context.Context) ([]models.PackageOption, error) {
	cur, err := db.PackagesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	packages := []models.PackageOption{}
	if err := cur.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// ConfirmSelectionInput is the client submission payload.
type ConfirmSelectionInput struct {
	Token           string                  `json:"token"`
	SelectedPackage *models.SelectedPackage `json:"selectedPackage"`
	SelectedAddOns  []models.AddOnSelection `json:"selectedAddOns"`
	ClientNotes     string                  `json:"clientNotes"`
	Payment         models.PaymentDetails   `json:"paymentDetails"`
}

// ValidateSelection checks the submission before anything is persisted;
// a non-nil error means the booking record was not touched.
func ValidateSelection(input ConfirmSelectionInput) error {
	if input.Token == "" {
		return errors.New("missing token")
	}
	if input.SelectedPackage == nil || input.SelectedPackage.Name == "" {
		return errors.New("a package must be selected")
	}
	if input.Payment.Amount.Int() <= 0 {
		return errors.New("payment amount is required")
	}
	if input.Payment.AccountName == "" {
		return errors.New("account name is required")
	}
	if input.Payment.RefNumber == "" {
		return errors.New("payment reference number is required")
	}
	if len(input.Payment.AccountNumber) != 11 || !utils.IsDigits(input.Payment.AccountNumber) {
		return errors.New("account number must be exactly 11 digits")
	}
	return nil
}

// ConfirmProposal handles POST /api/proposals/confirm. On
// success the submitted selection and payment proof are persisted and the
// booking moves to Verifying.
func ConfirmProposal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input ConfirmSelectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := ValidateSelection(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := getBookingByRefID(ctx, input.Token)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Invalid proposal link")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !IsEditable(booking.BookingStatus) {
		utils.RespondWithError(w, http.StatusConflict, "Booking is no longer editable")
		return
	}

	// Normalize add-ons to the persisted shape, order preserved.
	addOns := make([]models.AddOnSelection, 0, len(input.SelectedAddOns))
	for _, a := range input.SelectedAddOns {
		addOns = append(addOns, models.AddOnSelection{
			ID:       a.ID,
			Name:     a.Name,
			Price:    a.Price,
			Category: a.Category,
		})
	}

	totals := ComputeTotals(input.SelectedPackage.PricePerHead.Int(), booking.EventDetails.Pax, addOns)

	payment := input.Payment
	payment.TotalEventCost = totals.GrandTotal
	payment.SubmittedAt = time.Now().Unix()

	updated, err := updateBookingFields(ctx, booking.BookingID, bson.M{
		"eventDetails.selectedPackage": input.SelectedPackage,
		"eventDetails.addOns":          addOns,
		"notes":                        input.ClientNotes,
		"payment":                      payment,
		"bookingStatus":                string(StatusVerifying),
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	notifyStatusChange(updated.BookingID, updated.BookingStatus)
	notify.Emit(notify.Event{
		Type:  notify.PaymentSubmitted,
		RefID: updated.BookingID,
		Email: updated.Email,
		Name:  updated.ClientName,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Selection received; payment is being verified",
	})
}
