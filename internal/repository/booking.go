package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/store"
)

const collectionBookings = "bookings"

type BookingRepository struct {
	store store.TxStore
}

func NewBookingRepository(s store.TxStore) *BookingRepository {
	return &BookingRepository{store: s}
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	docs, err := r.store.Filter(ctx, collectionBookings)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookingsFromDocs(docs)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	doc, err := r.store.Get(ctx, collectionBookings, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return bookingFromDoc(doc)
}

func (r *BookingRepository) ListByUser(ctx context.Context, firstName, lastName string) ([]*domain.Booking, error) {
	docs, err := r.store.Filter(ctx, collectionBookings,
		store.Predicate{Field: "firstName", Value: firstName},
		store.Predicate{Field: "lastName", Value: lastName},
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrBookingNotFound
	}
	return bookingsFromDocs(docs)
}

// CreateForArena is the reservation sequence: read the arena, check that it
// is unbooked, store the booking, mark the arena. It runs in one store
// transaction with the arena document locked, so two concurrent requests
// for the same arena cannot both pass the availability check; the loser
// fails with ErrArenaNotAvailable and writes nothing.
//
// On success exactly two documents are written: the new booking and the
// arena's isBooked marker. The booked arena is returned for notification.
func (r *BookingRepository) CreateForArena(ctx context.Context, b *domain.Booking) (*domain.Arena, error) {
	var arena *domain.Arena

	err := r.store.InTx(ctx, func(tx store.DocumentStore) error {
		doc, err := tx.Get(ctx, collectionArenas, b.ArenaID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.ErrArenaNotFound
			}
			return fmt.Errorf("get arena: %w", err)
		}

		a, err := arenaFromDoc(doc)
		if err != nil {
			return err
		}
		if !a.Available() {
			return domain.ErrArenaNotAvailable
		}

		id, err := tx.Create(ctx, collectionBookings, bookingData(b))
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		b.ID = id

		a.IsBooked = &domain.BookedBy{
			FirstName: b.FirstName,
			LastName:  b.LastName,
			BookingID: id,
		}
		patch := map[string]any{"isBooked": map[string]any{
			"firstName": b.FirstName,
			"lastName":  b.LastName,
			"bookingId": id,
		}}
		if err = tx.MergeSet(ctx, collectionArenas, a.ID, patch); err != nil {
			return fmt.Errorf("mark arena booked: %w", err)
		}

		arena = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	return arena, nil
}

func bookingData(b *domain.Booking) map[string]any {
	paymentInfo := b.PaymentInfo
	if paymentInfo == nil {
		paymentInfo = map[string]any{}
	}

	var isRepeat any
	if b.IsRepeat != nil {
		isRepeat = *b.IsRepeat
	}

	return map[string]any{
		"firstName":   b.FirstName,
		"lastName":    b.LastName,
		"phoneNumber": b.PhoneNumber,
		"email":       b.Email,
		"date":        b.Date,
		"time":        b.Time,
		"isRepeat":    isRepeat,
		"paymentInfo": paymentInfo,
		"arenaId":     b.ArenaID,
		"createdAt":   b.CreatedAt,
	}
}

func bookingFromDoc(doc store.Document) (*domain.Booking, error) {
	raw, err := json.Marshal(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", doc.ID, err)
	}

	var b domain.Booking
	if err = json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", doc.ID, err)
	}
	b.ID = doc.ID

	return &b, nil
}

func bookingsFromDocs(docs []store.Document) ([]*domain.Booking, error) {
	res := make([]*domain.Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := bookingFromDoc(doc)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, nil
}
