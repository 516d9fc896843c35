package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	BookingsCollection  *mongo.Collection
	ClientsCollection   *mongo.Collection
	PackagesCollection  *mongo.Collection
	AddonsCollection    *mongo.Collection
	InventoryCollection *mongo.Collection
	UserCollection      *mongo.Collection
	CountersCollection  *mongo.Collection
	Client              *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("cateringdb")
	BookingsCollection = database.Collection("bookings")
	ClientsCollection = database.Collection("clients")
	PackagesCollection = database.Collection("packages")
	AddonsCollection = database.Collection("addons")
	InventoryCollection = database.Collection("inventory")
	UserCollection = database.Collection("users")
	CountersCollection = database.Collection("counters")
}
