package domain

import (
	"encoding/json"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleTourist   Role = "tourist"
	RoleTourGuide Role = "tourGuide"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,max=100"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Password string             `bson:"password,omitempty" json:"password,omitempty"`
	Role     Role               `bson:"role,omitempty" json:"role,omitempty" validate:"omitempty,oneof=tourist tourGuide admin"`
}

func (user *User) Validate() error {
	validate := validator.New()
	return validate.Struct(user)
}

func (user *User) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(user)
}

// ProfileUpdate carries the self-service profile patch. A nil field was
// absent from the request body and must stay untouched in the stored
// document.
type ProfileUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Image   *string `json:"image"`
	NewPass *string `json:"newpass"`
}

type Spot struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"tourists_spot_name,omitempty" json:"tourists_spot_name,omitempty"`
	Country       string             `bson:"country_name,omitempty" json:"country_name,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Description   string             `bson:"short_description,omitempty" json:"short_description,omitempty"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	AverageCost   string             `bson:"average_cost,omitempty" json:"average_cost,omitempty"`
	Seasonality   string             `bson:"seasonality,omitempty" json:"seasonality,omitempty"`
	TravelTime    string             `bson:"travel_time,omitempty" json:"travel_time,omitempty"`
	TotalVisitors string             `bson:"totalVisitorsPerYear,omitempty" json:"totalVisitorsPerYear,omitempty"`
	UserEmail     string             `bson:"user_email,omitempty" json:"user_email,omitempty"`
	UserName      string             `bson:"user_name,omitempty" json:"user_name,omitempty"`
	WishEmail     []string           `bson:"wish_email" json:"wish_email"`
	Wishlist      int                `bson:"wishlist" json:"wishlist"`
}

func (spot *Spot) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(spot)
}

// WishUpdate is the wishlist toggle payload: wish 1 adds WishEmail to the
// spot's wishlist set, wish 0 removes it.
type WishUpdate struct {
	Wish      int    `json:"wish"`
	WishEmail string `json:"wish_email"`
}

type Story struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title string             `bson:"title,omitempty" json:"title,omitempty"`
	Text  string             `bson:"text,omitempty" json:"text,omitempty"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
	Date  string             `bson:"date,omitempty" json:"date,omitempty"`
}

type BookingStatus string

const (
	BookingPending  BookingStatus = "Pending"
	BookingAccepted BookingStatus = "Accepted"
	BookingRejected BookingStatus = "Rejected"
)

type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	GuideEmail string             `bson:"guide_email,omitempty" json:"guide_email,omitempty"`
	TourName   string             `bson:"tour_name,omitempty" json:"tour_name,omitempty"`
	Date       string             `bson:"date,omitempty" json:"date,omitempty"`
	Price      string             `bson:"price,omitempty" json:"price,omitempty"`
	Status     BookingStatus      `bson:"status" json:"status"`
}

func (booking *Booking) FromJSON(reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(booking)
}

type GuideRequest struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}

type Claims struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
