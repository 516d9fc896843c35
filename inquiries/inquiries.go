package inquiries

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"savoria/notify"
	"savoria/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateInquiry handles POST /api/inquiries.
func CreateInquiry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input CreateBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	// The legacy flow accepted empty inquiries and defaulted every field;
	// name and email are now required so a booking can always be tied to
	// a client record.
	if input.Name == "" || input.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	refID, err := createBookingRecord(ctx, input)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	notify.Emit(notify.Event{
		Type:  notify.BookingCreated,
		RefID: refID,
		Email: input.Email,
		Name:  input.Name,
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"refId":   refID,
		"message": "Inquiry received",
	})
}

// GetInquiry handles GET /api/inquiries/:refId.
func GetInquiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	refID := ps.ByName("refId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := getBookingByRefID(ctx, refID)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"booking": booking,
	})
}

// ListInquiries handles GET /api/inquiries (admin back-office list).
func ListInquiries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	summaries, err := listBookingSummaries(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"bookings": summaries,
	})
}

// UpdateInquiryStatus handles PUT /api/inquiries/:refId/status. The
// submitted spelling is persisted verbatim as long as it belongs to a
// recognized alias set.
func UpdateInquiryStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	refID := ps.ByName("refId")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	canonical, ok := NormalizeStatus(body.Status)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unrecognized status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := updateBookingFields(ctx, refID, bson.M{"bookingStatus": body.Status})
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	notifyStatusChange(refID, updated.BookingStatus)
	if canonical == StatusReserved {
		notify.Emit(notify.Event{
			Type:  notify.BookingReserved,
			RefID: refID,
			Email: updated.Email,
			Name:  updated.ClientName,
		})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Status updated",
	})
}

// SendProposal handles POST /api/inquiries/:refId/send-proposal. It moves
// the booking to "Proposal Sent" and emails the client the tokenized
// proposal link.
func SendProposal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	refID := ps.ByName("refId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := updateBookingFields(ctx, refID, bson.M{"bookingStatus": "Proposal Sent"})
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	notifyStatusChange(refID, updated.BookingStatus)
	notify.Emit(notify.Event{
		Type:  notify.ProposalSent,
		RefID: refID,
		Email: updated.Email,
		Name:  updated.ClientName,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Proposal sent",
	})
}

// DeleteInquiry handles DELETE /api/inquiries/:refId (admin only).
func DeleteInquiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	refID := ps.ByName("refId")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := dbDeleteBooking(ctx, refID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Booking deleted",
	})
}
