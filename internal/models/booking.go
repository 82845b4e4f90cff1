package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

// bookingTransitions is the lifecycle state machine. Rejected and completed
// are terminal; there is no path back to pending.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusApproved, BookingStatusRejected},
	BookingStatusApproved:  {BookingStatusCompleted},
	BookingStatusRejected:  {},
	BookingStatusCompleted: {},
}

func (s BookingStatus) IsValid() bool {
	_, exists := bookingTransitions[s]
	return exists
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s.IsValid() && len(bookingTransitions[s]) == 0
}

func (s BookingStatus) String() string {
	return string(s)
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// GeoPoint is a geocoded delivery address, resolved best-effort when a
// maps provider is configured.
type GeoPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Booking is a renter's request to rent a car over a date range. Status starts
// at pending and only moves along bookingTransitions; the record keeps no
// audit trail beyond the original creation timestamp.
type Booking struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CarID            primitive.ObjectID `json:"car_id" bson:"car_id" validate:"required"`
	UserID           primitive.ObjectID `json:"user_id" bson:"user_id" validate:"required"`
	UserName         string             `json:"user_name" bson:"user_name" validate:"required"`
	Phone            string             `json:"phone" bson:"phone" validate:"required"`
	StartDate        time.Time          `json:"start_date" bson:"start_date" validate:"required"`
	EndDate          time.Time          `json:"end_date" bson:"end_date" validate:"required"`
	Option           ExtraOption        `json:"option" bson:"option"`
	Days             int                `json:"days" bson:"days"`
	TotalPrice       float64            `json:"total_price" bson:"total_price"`
	Status           BookingStatus      `json:"status" bson:"status" default:"pending"`
	Address          string             `json:"address,omitempty" bson:"address,omitempty"`
	Collateral       string             `json:"collateral,omitempty" bson:"collateral,omitempty"`
	DeliveryLocation *GeoPoint          `json:"delivery_location,omitempty" bson:"delivery_location,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}
