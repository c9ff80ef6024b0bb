package domain

import "time"

type Booking struct {
	ID          string         `json:"id"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	PhoneNumber string         `json:"phoneNumber"`
	Email       string         `json:"email"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	IsRepeat    *bool          `json:"isRepeat"`
	PaymentInfo map[string]any `json:"paymentInfo"`
	ArenaID     string         `json:"arenaId"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type CreateBookingInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Date        string
	Time        string
	IsRepeat    *bool
	PaymentInfo map[string]any
	ArenaID     string
}
