package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is the persisted record for one client's event engagement.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	ClientRefID   string             `bson:"clientRefId" json:"clientRefId"`
	ClientName    string             `bson:"clientName" json:"clientName"`
	Email         string             `bson:"email" json:"email"`
	Contact       string             `bson:"contact,omitempty" json:"contact,omitempty"`
	BookingStatus string             `bson:"bookingStatus" json:"bookingStatus"`
	EventDetails  EventDetails       `bson:"eventDetails" json:"eventDetails"`
	Billing       Billing            `bson:"billing" json:"billing"`
	Payment       *PaymentDetails    `bson:"payment,omitempty" json:"payment,omitempty"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type EventDetails struct {
	EventDate       string           `bson:"eventDate" json:"eventDate"`
	StartTime       string           `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime         string           `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Pax             int              `bson:"pax" json:"pax"`
	Venue           string           `bson:"venue,omitempty" json:"venue,omitempty"`
	EventType       string           `bson:"eventType,omitempty" json:"eventType,omitempty"`
	ServiceStyle    string           `bson:"serviceStyle,omitempty" json:"serviceStyle,omitempty"`
	SelectedPackage *SelectedPackage `bson:"selectedPackage,omitempty" json:"selectedPackage,omitempty"`
	AddOns          []AddOnSelection `bson:"addOns,omitempty" json:"addOns,omitempty"`
}

type SelectedPackage struct {
	PackageID    string  `bson:"packageId,omitempty" json:"packageId,omitempty"`
	Name         string  `bson:"name" json:"name"`
	PricePerHead FlexInt `bson:"pricePerHead" json:"pricePerHead"`
}

// AddOnSelection is the normalized shape copied into the booking record
// at submission time.
type AddOnSelection struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    FlexInt `bson:"price" json:"price"`
	Category string  `bson:"category,omitempty" json:"category,omitempty"`
}

// Billing is maintained by admin-side actions, not recomputed on read.
type Billing struct {
	TotalCost        int    `bson:"totalCost" json:"totalCost"`
	AmountPaid       int    `bson:"amountPaid" json:"amountPaid"`
	RemainingBalance int    `bson:"remainingBalance" json:"remainingBalance"`
	PaymentStatus    string `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
}

// PaymentDetails is the payment-proof subrecord submitted by the client.
type PaymentDetails struct {
	Amount         FlexInt `bson:"amount" json:"amount"`
	TotalEventCost int     `bson:"totalEventCost" json:"totalEventCost"`
	AccountName    string  `bson:"accountName" json:"accountName"`
	AccountNumber  string  `bson:"accountNumber" json:"accountNumber"`
	RefNumber      string  `bson:"refNumber" json:"refNumber"`
	GatewayRef     string  `bson:"gatewayRef,omitempty" json:"gatewayRef,omitempty"`
	SubmittedAt    int64   `bson:"submittedAt" json:"submittedAt"`
}

type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ClientID  string             `bson:"clientId" json:"clientId"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Contact   string             `bson:"contact,omitempty" json:"contact,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PackageOption is a static catalog entry, never mutated by the booking
// workflow.
type PackageOption struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PackageID    string             `bson:"packageId" json:"packageId"`
	Name         string             `bson:"name" json:"name"`
	PricePerHead FlexInt            `bson:"pricePerHead" json:"pricePerHead"`
	Inclusions   []string           `bson:"inclusions" json:"inclusions"`
	EventType    string             `bson:"eventType,omitempty" json:"eventType,omitempty"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	MinPax       int                `bson:"minPax,omitempty" json:"minPax,omitempty"`
	MaxPax       int                `bson:"maxPax,omitempty" json:"maxPax,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type AddOnItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AddonID     string             `bson:"addonId" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       FlexInt            `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type InventoryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ItemID    string             `bson:"itemId" json:"itemId"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Unit      string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// User is a back-office staff account.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID        string             `bson:"userid" json:"userid"`
	Username      string             `bson:"username" json:"username"`
	Email         string             `bson:"email" json:"email"`
	PasswordHash  string             `bson:"password_hash" json:"-"`
	Role          []string           `bson:"role" json:"role"`
	RefreshToken  string             `bson:"refresh_token,omitempty" json:"-"`
	RefreshExpiry time.Time          `bson:"refresh_expiry,omitempty" json:"-"`
	LastLogin     time.Time          `bson:"last_login,omitempty" json:"-"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// BookingSummary is the admin list projection.
type BookingSummary struct {
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	ClientName    string    `bson:"clientName" json:"clientName"`
	EventDate     string    `bson:"eventDate" json:"eventDate"`
	EventType     string    `bson:"eventType,omitempty" json:"eventType,omitempty"`
	Pax           int       `bson:"pax" json:"pax"`
	BookingStatus string    `bson:"bookingStatus" json:"bookingStatus"`
	TotalCost     int       `bson:"totalCost" json:"totalCost"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
