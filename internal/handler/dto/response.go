package dto

import (
	"time"

	"github.com/ptrvv/ArenaBooker/internal/domain"
)

type ArenaResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Location    string            `json:"location"`
	Address     string            `json:"address"`
	IsPublic    bool              `json:"isPublic"`
	Description string            `json:"description"`
	Capacity    int               `json:"capacity"`
	Sport       string            `json:"sport"`
	Image       string            `json:"image"`
	Rate        float64           `json:"rate"`
	Rating      float64           `json:"rating"`
	IsBooked    map[string]string `json:"isBooked"`
}

type BookingResponse struct {
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
	CreatedAt   string         `json:"createdAt"`
}

type ArenaIDResponse struct {
	ArenaID string `json:"arenaId"`
}

type CreateResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ScratchItemResponse struct {
	ID   string `json:"id"`
	Key1 string `json:"key1"`
	Key2 string `json:"key2"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func ToArenaResponse(a *domain.Arena) ArenaResponse {
	// an available arena serializes isBooked as {}, matching stored form
	isBooked := map[string]string{}
	if a.IsBooked != nil {
		isBooked = map[string]string{
			"firstName": a.IsBooked.FirstName,
			"lastName":  a.IsBooked.LastName,
			"bookingId": a.IsBooked.BookingID,
		}
	}

	return ArenaResponse{
		ID:          a.ID,
		Name:        a.Name,
		Location:    a.Location,
		Address:     a.Address,
		IsPublic:    a.IsPublic,
		Description: a.Description,
		Capacity:    a.Capacity,
		Sport:       a.Sport,
		Image:       a.Image,
		Rate:        a.Rate,
		Rating:      a.Rating,
		IsBooked:    isBooked,
	}
}

func ToArenaResponses(arenas []*domain.Arena) []ArenaResponse {
	res := make([]ArenaResponse, 0, len(arenas))
	for _, a := range arenas {
		res = append(res, ToArenaResponse(a))
	}
	return res
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	paymentInfo := b.PaymentInfo
	if paymentInfo == nil {
		paymentInfo = map[string]any{}
	}

	return BookingResponse{
		ID:          b.ID,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		PhoneNumber: b.PhoneNumber,
		Email:       b.Email,
		Date:        b.Date,
		Time:        b.Time,
		IsRepeat:    b.IsRepeat,
		PaymentInfo: paymentInfo,
		ArenaID:     b.ArenaID,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	res := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, ToBookingResponse(b))
	}
	return res
}

func ToScratchItemResponse(item domain.ScratchItem) ScratchItemResponse {
	return ScratchItemResponse{ID: item.ID, Key1: item.Key1, Key2: item.Key2}
}

func ToScratchItemResponses(items []domain.ScratchItem) []ScratchItemResponse {
	res := make([]ScratchItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, ToScratchItemResponse(item))
	}
	return res
}
