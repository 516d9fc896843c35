package inquiries

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"savoria/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reference-id sequences are allocated from a counter document bumped
// with an atomic $inc, so two concurrent creates can never mint the same
// id. The counter is seeded once from the highest id already present in
// the collection, which keeps continuity with records created before the
// counter existed (BK-017 is followed by BK-018).

const (
	bookingSeq = "bookingId"
	clientSeq  = "clientId"
)

type counterDoc struct {
	Name string `bson:"_id"`
	Seq  int    `bson:"seq"`
}

// FormatRefID renders a sequence number as a display id, e.g. ("BK", 7)
// -> "BK-007".
func FormatRefID(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// ParseRefSeq extracts the numeric suffix of a display id. Returns 0 for
// anything that does not look like <prefix>-<digits>.
func ParseRefSeq(id string) int {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func seedCounter(ctx context.Context, name string, coll *mongo.Collection, field string) error {
	err := db.CountersCollection.FindOne(ctx, bson.M{"_id": name}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	max := 0
	opts := options.FindOne().SetSort(bson.D{{Key: field, Value: -1}})
	var doc bson.M
	if ferr := coll.FindOne(ctx, bson.M{}, opts).Decode(&doc); ferr == nil {
		if id, ok := doc[field].(string); ok {
			max = ParseRefSeq(id)
		}
	} else if ferr != mongo.ErrNoDocuments {
		return ferr
	}

	_, err = db.CountersCollection.InsertOne(ctx, counterDoc{Name: name, Seq: max})
	if mongo.IsDuplicateKeyError(err) {
		// Another creator seeded it first; the $inc below is still safe.
		return nil
	}
	return err
}

func nextSequence(ctx context.Context, name string, coll *mongo.Collection, field string) (int, error) {
	if err := seedCounter(ctx, name, coll, field); err != nil {
		return 0, err
	}

	res := db.CountersCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true),
	)
	var c counterDoc
	if err := res.Decode(&c); err != nil {
		return 0, err
	}
	return c.Seq, nil
}

// NextBookingID allocates the next BK-### reference id.
func NextBookingID(ctx context.Context) (string, error) {
	n, err := nextSequence(ctx, bookingSeq, db.BookingsCollection, "bookingId")
	if err != nil {
		return "", err
	}
	return FormatRefID("BK", n), nil
}

// NextClientID allocates the next CL-### client id.
func NextClientID(ctx context.Context) (string, error) {
	n, err := nextSequence(ctx, clientSeq, db.ClientsCollection, "clientId")
	if err != nil {
		return "", err
	}
	return FormatRefID("CL", n), nil
}
