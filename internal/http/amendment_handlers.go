package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nurpe/contract-registry/internal/model"
	"github.com/nurpe/contract-registry/internal/service"
)

type amendmentRequest struct {
	ParentID         int64           `json:"parent_id"`
	ParentKind       string          `json:"parent_kind"`
	AmendmentType    string          `json:"amendment_type"`
	Description      string          `json:"description"`
	Value            decimal.Decimal `json:"value"`
	NewValidityEnd   string          `json:"new_validity_end"`
	RegistrationDate string          `json:"registration_date"`
}

func (r amendmentRequest) toInput() service.AmendmentInput {
	return service.AmendmentInput{
		ParentID:         r.ParentID,
		ParentKind:       model.ContractKind(r.ParentKind),
		AmendmentType:    r.AmendmentType,
		Description:      r.Description,
		Value:            r.Value,
		NewValidityEnd:   r.NewValidityEnd,
		RegistrationDate: r.RegistrationDate,
	}
}

func (h *Handler) addAmendment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req amendmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amendment, err := h.amendments.Add(c.Request.Context(), actor, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, amendment)
}

func (h *Handler) getAmendment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	amendment, err := h.amendments.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, amendment)
}

func (h *Handler) listAmendments(c *gin.Context) {
	amendments, err := h.amendments.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, amendments)
}

func (h *Handler) listAmendmentsByParent(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	amendments, err := h.amendments.ListByParent(c.Request.Context(), id, kind)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, amendments)
}

func (h *Handler) updateAmendment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req amendmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.amendments.Update(c.Request.Context(), actor, id, req.toInput()); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteAmendment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.amendments.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
