package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

// Car is a rentable vehicle in the fleet. Bookings reference cars by id only;
// deleting a car leaves its bookings untouched.
type Car struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	PricePerDay  float64            `json:"price_per_day" bson:"price_per_day" validate:"gte=0"`
	Seats        int                `json:"seats" bson:"seats" validate:"required,min=1"`
	Transmission Transmission       `json:"transmission" bson:"transmission" validate:"required"`
	Brand        string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	FuelType     string             `json:"fuel_type,omitempty" bson:"fuel_type,omitempty"`
	Mileage      int                `json:"mileage,omitempty" bson:"mileage,omitempty"`
	Features     []string           `json:"features,omitempty" bson:"features,omitempty"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	Thumbnail    string             `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Available    bool               `json:"available" bson:"available" default:"true"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
