package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/contract-registry/internal/model"
)

type supplierRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"tax_id"`
	Notes string `json:"notes"`
}

type eventTitleRequest struct {
	Title     string `json:"title" binding:"required"`
	City      string `json:"city"`
	State     string `json:"state"`
	DateStart string `json:"date_start"`
	DateEnd   string `json:"date_end"`
}

func (h *Handler) createSupplier(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, err := h.references.CreateSupplier(c.Request.Context(), actor, model.Supplier{
		Name:  req.Name,
		TaxID: req.TaxID,
		Notes: req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

func (h *Handler) listSuppliers(c *gin.Context) {
	suppliers, err := h.references.ListSuppliers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *Handler) updateSupplier(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.references.UpdateSupplier(c.Request.Context(), actor, model.Supplier{
		ID:    id,
		Name:  req.Name,
		TaxID: req.TaxID,
		Notes: req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteSupplier(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.references.DeleteSupplier(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) createEventTitle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req eventTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.references.CreateEventTitle(c.Request.Context(), actor, model.EventTitle{
		Title:     req.Title,
		City:      req.City,
		State:     req.State,
		DateStart: req.DateStart,
		DateEnd:   req.DateEnd,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, title)
}

func (h *Handler) listEventTitles(c *gin.Context) {
	titles, err := h.references.ListEventTitles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, titles)
}

func (h *Handler) updateEventTitle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req eventTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.references.UpdateEventTitle(c.Request.Context(), actor, model.EventTitle{
		ID:        id,
		Title:     req.Title,
		City:      req.City,
		State:     req.State,
		DateStart: req.DateStart,
		DateEnd:   req.DateEnd,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteEventTitle(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.references.DeleteEventTitle(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
