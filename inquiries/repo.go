package inquiries

import (
	"context"
	"time"

	"savoria/db"
	"savoria/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateBookingInput carries the inquiry-form payload.
type CreateBookingInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
	EventDate    string `json:"eventDate"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Guests       int    `json:"guests"`
	Venue        string `json:"venue"`
	EventType    string `json:"eventType"`
	ServiceStyle string `json:"serviceStyle"`
	Notes        string `json:"notes"`
}

// createBookingRecord resolves or creates the client record for the
// submitted email (first exact match wins, no case normalization) and
// inserts the new booking. Both writes run inside one transaction so a
// half-created pair can never be observed.
func createBookingRecord(ctx context.Context, input CreateBookingInput) (string, error) {
	bookingID, err := NextBookingID(ctx)
	if err != nil {
		return "", err
	}

	session, err := db.Client.StartSession()
	if err != nil {
		return "", err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var client models.Client
		ferr := db.ClientsCollection.FindOne(sc, bson.M{"email": input.Email}).Decode(&client)
		if ferr == mongo.ErrNoDocuments {
			clientID, cerr := NextClientID(sc)
			if cerr != nil {
				return nil, cerr
			}
			client = models.Client{
				ClientID:  clientID,
				Name:      input.Name,
				Email:     input.Email,
				Contact:   input.Contact,
				CreatedAt: time.Now(),
			}
			if _, cerr := db.ClientsCollection.InsertOne(sc, client); cerr != nil {
				return nil, cerr
			}
		} else if ferr != nil {
			return nil, ferr
		}

		booking := models.Booking{
			BookingID:     bookingID,
			ClientRefID:   client.ClientID,
			ClientName:    input.Name,
			Email:         input.Email,
			Contact:       input.Contact,
			BookingStatus: string(StatusPending),
			EventDetails: models.EventDetails{
				EventDate:    input.EventDate,
				StartTime:    input.StartTime,
				EndTime:      input.EndTime,
				Pax:          input.Guests,
				Venue:        input.Venue,
				EventType:    input.EventType,
				ServiceStyle: input.ServiceStyle,
			},
			Notes:     input.Notes,
			CreatedAt: time.Now(),
		}
		if _, berr := db.BookingsCollection.InsertOne(sc, booking); berr != nil {
			return nil, berr
		}
		return nil, nil
	})
	if err != nil {
		return "", err
	}
	return bookingID, nil
}

// LookupBooking fetches a booking by its reference id for other packages.
func LookupBooking(ctx context.Context, refID string) (*models.Booking, error) {
	return getBookingByRefID(ctx, refID)
}

func getBookingByRefID(ctx context.Context, refID string) (*models.Booking, error) {
	var booking models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"bookingId": refID}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func listBookingSummaries(ctx context.Context) ([]models.BookingSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := db.BookingsCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	summaries := []models.BookingSummary{}
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			continue
		}
		summaries = append(summaries, models.BookingSummary{
			BookingID:     b.BookingID,
			ClientName:    b.ClientName,
			EventDate:     b.EventDetails.EventDate,
			EventType:     b.EventDetails.EventType,
			Pax:           b.EventDetails.Pax,
			BookingStatus: b.BookingStatus,
			TotalCost:     b.Billing.TotalCost,
			CreatedAt:     b.CreatedAt,
		})
	}
	return summaries, cur.Err()
}

func dbDeleteBooking(ctx context.Context, refID string) (int64, error) {
	res, err := db.BookingsCollection.DeleteOne(ctx, bson.M{"bookingId": refID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// updateBookingFields applies a $set to a booking and returns the updated
// record, or mongo.ErrNoDocuments when the refId is unknown.
func updateBookingFields(ctx context.Context, refID string, set bson.M) (*models.Booking, error) {
	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"bookingId": refID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
