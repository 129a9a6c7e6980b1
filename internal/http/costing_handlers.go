package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) costingInstitutions(c *gin.Context) {
	values, err := h.costing.Institutions(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (h *Handler) costingProjects(c *gin.Context) {
	values, err := h.costing.Projects(c.Request.Context(), c.Query("institution"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (h *Handler) costingTAs(c *gin.Context) {
	values, err := h.costing.TAs(c.Request.Context(), c.Query("institution"), c.Query("project"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (h *Handler) costingResults(c *gin.Context) {
	values, err := h.costing.Results(c.Request.Context(), c.Query("institution"), c.Query("project"), c.Query("ta"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (h *Handler) costingSubprojects(c *gin.Context) {
	values, err := h.costing.Subprojects(c.Request.Context(), c.Query("institution"), c.Query("project"), c.Query("ta"), c.Query("result"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (h *Handler) costingEntries(c *gin.Context) {
	filters := map[string]string{
		"institution":  c.Query("institution"),
		"project_code": c.Query("project"),
		"ta":           c.Query("ta"),
		"result":       c.Query("result"),
		"subproject":   c.Query("subproject"),
	}
	entries, err := h.costing.Filter(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
