package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/contract-registry/internal/model"
)

func (h *Handler) exportDossierXLSX(c *gin.Context) {
	dossier, ok := h.loadDossier(c)
	if !ok {
		return
	}

	content, err := h.excel.Generate(*dossier)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := buildExportName(dossier, "xlsx")
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

func (h *Handler) exportDossierPDF(c *gin.Context) {
	dossier, ok := h.loadDossier(c)
	if !ok {
		return
	}

	content, err := h.pdf.Generate(*dossier)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := buildExportName(dossier, "pdf")
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/pdf", content)
}

func (h *Handler) loadDossier(c *gin.Context) (*model.Dossier, bool) {
	kind, ok := parseKind(c)
	if !ok {
		return nil, false
	}
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}

	dossier, err := h.contracts.Dossier(c.Request.Context(), id, kind)
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	return dossier, true
}

func buildExportName(dossier *model.Dossier, extension string) string {
	title := sanitizeFileName(dossier.Contract.Title)
	if title == "" {
		title = fmt.Sprintf("%d", dossier.Contract.ID)
	}
	return fmt.Sprintf("contract-%s-%s.%s", dossier.Contract.Kind, title, extension)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
