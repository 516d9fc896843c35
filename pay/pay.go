package pay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"savoria/db"
	"savoria/globals"
	"savoria/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Thin pass-through to the external payment processor. No capture happens
// here; the webhook only records the gateway reference on the booking.

type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"paymentUrl"`
	RefID     string `json:"refId"`
	Amount    int    `json:"amount"`
}

func newCheckoutSession(refID string, amount int) CheckoutSession {
	base := os.Getenv("GATEWAY_CHECKOUT_URL")
	if base == "" {
		base = "http://localhost:5173/checkout"
	}
	id := uuid.New().String()
	return CheckoutSession{
		SessionID: id,
		URL:       base + "/" + id,
		RefID:     refID,
		Amount:    amount,
	}
}

// CreateCheckoutSession handles POST /api/pay/session.
func CreateCheckoutSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		RefID  string `json:"refId"`
		Amount int    `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.RefID == "" || body.Amount < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingId": body.RefID}).Err()
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	session := newCheckoutSession(body.RefID, body.Amount)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    session,
	})
}

// SignPayload computes the hex HMAC-SHA256 signature the gateway is
// expected to send in X-Signature.
func SignPayload(body []byte) string {
	h := hmac.New(sha256.New, globals.HmacSecret)
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature compares a received signature against the payload in
// constant time.
func VerifySignature(body []byte, signature string) bool {
	expected := SignPayload(body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Webhook handles POST /api/pay/webhook. An invalid signature is
// rejected before the payload is even parsed.
func Webhook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unreadable body")
		return
	}
	if !VerifySignature(body, r.Header.Get("X-Signature")) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var event struct {
		RefID      string `json:"refId"`
		GatewayRef string `json:"gatewayRef"`
	}
	if err := json.Unmarshal(body, &event); err != nil || event.RefID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err = db.BookingsCollection.UpdateOne(ctx,
		bson.M{"bookingId": event.RefID},
		bson.M{"$set": bson.M{"payment.gatewayRef": event.GatewayRef}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
