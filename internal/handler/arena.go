package handler

import (
	"net/http"

	"github.com/ptrvv/ArenaBooker/internal/domain"
	"github.com/ptrvv/ArenaBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListArenas(c *ginext.Context) {
	arenas, err := h.arenaService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, errMessages{fail: "Failed to fetch arenas"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArenaResponses(arenas))
}

func (h *Handler) GetArenaByID(c *ginext.Context) {
	arena, err := h.arenaService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, errMessages{
			notFound: "No arenas found for this id",
			fail:     "Failed to fetch arena by id",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToArenaResponse(arena))
}

func (h *Handler) ListArenasByLocation(c *ginext.Context) {
	arenas, err := h.arenaService.ListByLocation(c.Request.Context(), c.Param("location"))
	if err != nil {
		h.handleError(c, err, errMessages{
			notFound: "No arenas found for this location",
			fail:     "Failed to fetch arena by location",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToArenaResponses(arenas))
}

func (h *Handler) ListArenasBookedBy(c *ginext.Context) {
	arenas, err := h.arenaService.ListBookedBy(c.Request.Context(), c.Param("firstName"), c.Param("lastName"))
	if err != nil {
		h.handleError(c, err, errMessages{
			notFound: "No arenas booked by this user",
			fail:     "Failed to fetch arenas booked by user",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToArenaResponses(arenas))
}

func (h *Handler) GetArenaIDByName(c *ginext.Context) {
	id, err := h.arenaService.GetIDByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.handleError(c, err, errMessages{
			notFound: "No arena found with this name",
			fail:     "Failed to fetch arena ID by name",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ArenaIDResponse{ArenaID: id})
}

func (h *Handler) ListAvailableArenas(c *ginext.Context) {
	arenas, err := h.arenaService.ListAvailable(c.Request.Context())
	if err != nil {
		h.handleError(c, err, errMessages{
			notFound: "No unbooked arenas found",
			fail:     "Failed to fetch unbooked arenas",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToArenaResponses(arenas))
}

func (h *Handler) CreateArena(c *ginext.Context) {
	var req dto.CreateArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Name, location, address, and isPublic are required",
			Error:   err.Error(),
			Code:    codeValidation,
		})
		return
	}

	input := domain.CreateArenaInput{
		Name:        req.Name,
		Location:    req.Location,
		Address:     req.Address,
		IsPublic:    req.IsPublic,
		Description: req.Description,
		Capacity:    req.Capacity,
		Sport:       req.Sport,
		Image:       req.Image,
		Rate:        req.Rate,
		Rating:      req.Rating,
	}

	arena, err := h.arenaService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err, errMessages{
			badRequest: "Name, location, address, and isPublic are required",
			fail:       "Failed to add arena",
		})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateResponse{
		Message: "Arena added successfully",
		ID:      arena.ID,
	})
}
