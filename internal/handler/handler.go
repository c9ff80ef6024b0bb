package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type ArenaSvc interface {
	Create(ctx context.Context, input domain.CreateArenaInput) (*domain.Arena, error)
	List(ctx context.Context) ([]*domain.Arena, error)
	GetByID(ctx context.Context, id string) (*domain.Arena, error)
	ListByLocation(ctx context.Context, location string) ([]*domain.Arena, error)
	ListBookedBy(ctx context.Context, firstName, lastName string) ([]*domain.Arena, error)
	GetIDByName(ctx context.Context, name string) (string, error)
	ListAvailable(ctx context.Context) ([]*domain.Arena, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, firstName, lastName string) ([]*domain.Booking, error)
}

type ScratchSvc interface {
	List(ctx context.Context) ([]domain.ScratchItem, error)
	Search(ctx context.Context, key1 string) ([]domain.ScratchItem, error)
	Get(ctx context.Context, id string) (domain.ScratchItem, error)
	Add(ctx context.Context, key1, key2 string) (string, error)
	Set(ctx context.Context, id, key1, key2 string) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	arenaService   ArenaSvc
	bookingService BookingSvc
	scratchService ScratchSvc
}

func NewHandler(arenaService ArenaSvc, bookingService BookingSvc, scratchService ScratchSvc) *Handler {
	return &Handler{
		arenaService:   arenaService,
		bookingService: bookingService,
		scratchService: scratchService,
	}
}

// Stable machine-readable error codes, additive next to the human message.
const (
	codeValidation = "validation_error"
	codeNotFound   = "not_found"
	codeConflict   = "conflict"
	codeTimeout    = "timeout"
	codeStore      = "store_error"
)

// errMessages carries the endpoint's documented response messages into the
// shared translation below.
type errMessages struct {
	notFound   string
	badRequest string
	fail       string
}

// handleError is the single point translating domain errors to HTTP.
func (h *Handler) handleError(c *ginext.Context, err error, msgs errMessages) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: msgs.badRequest,
			Error:   err.Error(),
			Code:    codeValidation,
		})

	case errors.Is(err, domain.ErrArenaNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Message: msgs.notFound,
			Error:   err.Error(),
			Code:    codeNotFound,
		})

	case errors.Is(err, domain.ErrArenaNotAvailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Message: "The specified arena is not available right now",
			Error:   err.Error(),
			Code:    codeConflict,
		})

	case errors.Is(err, domain.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{
			Message: "Request timed out",
			Error:   err.Error(),
			Code:    codeTimeout,
		})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: msgs.fail,
			Error:   err.Error(),
			Code:    codeStore,
		})
	}
}
