package handler

import (
	"net/http"

	"github.com/ptrvv/ArenaBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListScratchItems(c *ginext.Context) {
	items, err := h.scratchService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, errMessages{fail: "Failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToScratchItemResponses(items))
}

func (h *Handler) SearchScratchItems(c *ginext.Context) {
	items, err := h.scratchService.Search(c.Request.Context(), c.Query("searchVal"))
	if err != nil {
		h.handleError(c, err, errMessages{fail: "Failed to search items"})
		return
	}

	c.JSON(http.StatusOK, dto.ToScratchItemResponses(items))
}

func (h *Handler) AddScratchItem(c *ginext.Context) {
	var req dto.ScratchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid item payload",
			Error:   err.Error(),
			Code:    codeValidation,
		})
		return
	}

	id, err := h.scratchService.Add(c.Request.Context(), req.Key1, req.Key2)
	if err != nil {
		h.handleError(c, err, errMessages{fail: "Failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateResponse{
		Message: "Item added successfully",
		ID:      id,
	})
}

func (h *Handler) GetScratchItem(c *ginext.Context) {
	item, err := h.scratchService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, errMessages{
			notFound: "No item found for this id",
			fail:     "Failed to fetch item",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToScratchItemResponse(item))
}

func (h *Handler) SetScratchItem(c *ginext.Context) {
	var req dto.ScratchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid item payload",
			Error:   err.Error(),
			Code:    codeValidation,
		})
		return
	}

	if err := h.scratchService.Set(c.Request.Context(), c.Param("id"), req.Key1, req.Key2); err != nil {
		h.handleError(c, err, errMessages{fail: "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item updated successfully"})
}

func (h *Handler) DeleteScratchItem(c *ginext.Context) {
	if err := h.scratchService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, errMessages{fail: "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Item deleted successfully"})
}
