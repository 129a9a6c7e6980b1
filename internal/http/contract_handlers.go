package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nurpe/contract-registry/internal/model"
)

type costingRequest struct {
	Institution string `json:"institution"`
	Instrument  string `json:"instrument"`
	Subproject  string `json:"subproject"`
	TA          string `json:"ta"`
	PTA         string `json:"pta"`
	Action      string `json:"action"`
	Result      string `json:"result"`
	Goal        string `json:"goal"`
}

func (r costingRequest) toModel() model.CostingAttributes {
	return model.CostingAttributes{
		Institution: r.Institution,
		Instrument:  r.Instrument,
		Subproject:  r.Subproject,
		TA:          r.TA,
		PTA:         r.PTA,
		Action:      r.Action,
		Result:      r.Result,
		Goal:        r.Goal,
	}
}

type agreementLetterRequest struct {
	DemandCode           int64           `json:"demand_code"`
	Costing              costingRequest  `json:"costing"`
	ContractNumber       string          `json:"contract_number"`
	ValidityStart        string          `json:"validity_start"`
	ValidityEnd          string          `json:"validity_end"`
	SecondaryInstitution string          `json:"secondary_institution"`
	TaxID                string          `json:"tax_id"`
	ProjectTitle         string          `json:"project_title"`
	Objective            string          `json:"objective"`
	EstimatedValue       decimal.Decimal `json:"estimated_value"`
	TotalValue           decimal.Decimal `json:"total_value"`
	Notes                string          `json:"notes"`
}

func (r agreementLetterRequest) toModel(id int64) model.AgreementLetter {
	return model.AgreementLetter{
		ID:                   id,
		DemandCode:           r.DemandCode,
		Costing:              r.Costing.toModel(),
		ContractNumber:       r.ContractNumber,
		ValidityStart:        r.ValidityStart,
		ValidityEnd:          r.ValidityEnd,
		SecondaryInstitution: r.SecondaryInstitution,
		TaxID:                r.TaxID,
		ProjectTitle:         r.ProjectTitle,
		Objective:            r.Objective,
		EstimatedValue:       r.EstimatedValue,
		TotalValue:           r.TotalValue,
		Notes:                r.Notes,
	}
}

type productOrServiceRequest struct {
	DemandCode     int64           `json:"demand_code"`
	Supplier       string          `json:"supplier"`
	Modality       string          `json:"modality"`
	Objective      string          `json:"objective"`
	ValidityStart  string          `json:"validity_start"`
	ValidityEnd    string          `json:"validity_end"`
	Notes          string          `json:"notes"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Costing        costingRequest  `json:"costing"`
}

func (r productOrServiceRequest) toModel(id int64) model.ProductOrService {
	return model.ProductOrService{
		ID:             id,
		DemandCode:     r.DemandCode,
		Supplier:       r.Supplier,
		Modality:       r.Modality,
		Objective:      r.Objective,
		ValidityStart:  r.ValidityStart,
		ValidityEnd:    r.ValidityEnd,
		Notes:          r.Notes,
		EstimatedValue: r.EstimatedValue,
		TotalValue:     r.TotalValue,
		Costing:        r.Costing.toModel(),
	}
}

type eventRequest struct {
	DemandCode     int64           `json:"demand_code"`
	Costing        costingRequest  `json:"costing"`
	EventTitle     string          `json:"event_title"`
	Supplier       string          `json:"supplier"`
	Notes          string          `json:"notes"`
	EstimatedValue decimal.Decimal `json:"estimated_value"`
	TotalValue     decimal.Decimal `json:"total_value"`
}

func (r eventRequest) toModel(id int64) model.Event {
	return model.Event{
		ID:             id,
		DemandCode:     r.DemandCode,
		Costing:        r.Costing.toModel(),
		EventTitle:     r.EventTitle,
		Supplier:       r.Supplier,
		Notes:          r.Notes,
		EstimatedValue: r.EstimatedValue,
		TotalValue:     r.TotalValue,
	}
}

func (h *Handler) createAgreementLetter(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req agreementLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := h.contracts.CreateAgreementLetter(c.Request.Context(), actor, req.toModel(0))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *Handler) getAgreementLetter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	contract, err := h.contracts.GetAgreementLetter(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) listAgreementLetters(c *gin.Context) {
	contracts, err := h.contracts.ListAgreementLetters(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) updateAgreementLetter(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req agreementLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contracts.UpdateAgreementLetter(c.Request.Context(), actor, req.toModel(id)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteAgreementLetter(c *gin.Context) {
	h.deleteContract(c, model.KindAgreementLetter)
}

func (h *Handler) createProductOrService(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req productOrServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := h.contracts.CreateProductOrService(c.Request.Context(), actor, req.toModel(0))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *Handler) getProductOrService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	contract, err := h.contracts.GetProductOrService(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) listProductsOrServices(c *gin.Context) {
	contracts, err := h.contracts.ListProductsOrServices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) updateProductOrService(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req productOrServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contracts.UpdateProductOrService(c.Request.Context(), actor, req.toModel(id)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteProductOrService(c *gin.Context) {
	h.deleteContract(c, model.KindProductOrService)
}

func (h *Handler) createEvent(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contract, err := h.contracts.CreateEvent(c.Request.Context(), actor, req.toModel(0))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *Handler) getEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	contract, err := h.contracts.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) listEvents(c *gin.Context) {
	contracts, err := h.contracts.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) updateEvent(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contracts.UpdateEvent(c.Request.Context(), actor, req.toModel(id)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) deleteEvent(c *gin.Context) {
	h.deleteContract(c, model.KindEvent)
}

func (h *Handler) deleteContract(c *gin.Context, kind model.ContractKind) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.contracts.Delete(c.Request.Context(), actor, id, kind); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
