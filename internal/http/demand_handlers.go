package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/contract-registry/internal/model"
)

type demandRequest struct {
	EntryDate     string `json:"entry_date"`
	Requester     string `json:"requester"`
	ProtocolDate  string `json:"protocol_date"`
	LetterRef     string `json:"letter_ref"`
	ProcessNumber string `json:"process_number"`
	Status        string `json:"status"`
}

func (r demandRequest) toModel(code int64) model.Demand {
	return model.Demand{
		Code:          code,
		EntryDate:     r.EntryDate,
		Requester:     r.Requester,
		ProtocolDate:  r.ProtocolDate,
		LetterRef:     r.LetterRef,
		ProcessNumber: r.ProcessNumber,
		Status:        model.DemandStatus(r.Status),
	}
}

func (h *Handler) createDemand(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req demandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	demand, err := h.demands.Create(c.Request.Context(), actor, req.toModel(0))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, demand)
}

func (h *Handler) getDemand(c *gin.Context) {
	code, ok := parseID(c, "code")
	if !ok {
		return
	}
	demand, err := h.demands.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, demand)
}

func (h *Handler) listDemands(c *gin.Context) {
	demands, err := h.demands.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, demands)
}

func (h *Handler) updateDemand(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	code, ok := parseID(c, "code")
	if !ok {
		return
	}
	var req demandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.demands.Update(c.Request.Context(), actor, req.toModel(code)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteDemand(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	code, ok := parseID(c, "code")
	if !ok {
		return
	}

	if err := h.demands.Delete(c.Request.Context(), actor, code); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
