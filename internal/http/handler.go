package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/contract-registry/internal/http/middleware"
	"github.com/nurpe/contract-registry/internal/model"
	"github.com/nurpe/contract-registry/internal/repository"
	"github.com/nurpe/contract-registry/internal/service"
)

// ExcelGenerator renders a contract dossier as an XLSX workbook.
type ExcelGenerator interface {
	Generate(dossier model.Dossier) ([]byte, error)
}

// PDFGenerator renders a contract dossier as a PDF statement.
type PDFGenerator interface {
	Generate(dossier model.Dossier) ([]byte, error)
}

type Handler struct {
	auth       *service.AuthService
	demands    *service.DemandService
	contracts  *service.ContractService
	amendments *service.AmendmentService
	references *service.ReferenceService
	costing    *service.CostingService
	audit      *repository.AuditRepository
	excel      ExcelGenerator
	pdf        PDFGenerator
	log        zerolog.Logger
}

func NewHandler(
	auth *service.AuthService,
	demands *service.DemandService,
	contracts *service.ContractService,
	amendments *service.AmendmentService,
	references *service.ReferenceService,
	costing *service.CostingService,
	audit *repository.AuditRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		auth:       auth,
		demands:    demands,
		contracts:  contracts,
		amendments: amendments,
		references: references,
		costing:    costing,
		audit:      audit,
		excel:      excel,
		pdf:        pdf,
		log:        log,
	}
}

func NewRouter(h *Handler, authMiddleware gin.HandlerFunc, environment string, allowedOrigins []string, log zerolog.Logger) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog(log))

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/auth/login", h.login)

	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/demands", h.listDemands)
	protected.POST("/demands", h.createDemand)
	protected.GET("/demands/:code", h.getDemand)
	protected.PUT("/demands/:code", h.updateDemand)
	protected.DELETE("/demands/:code", h.deleteDemand)

	protected.GET("/agreement-letters", h.listAgreementLetters)
	protected.POST("/agreement-letters", h.createAgreementLetter)
	protected.GET("/agreement-letters/:id", h.getAgreementLetter)
	protected.PUT("/agreement-letters/:id", h.updateAgreementLetter)
	protected.DELETE("/agreement-letters/:id", h.deleteAgreementLetter)

	protected.GET("/product-services", h.listProductsOrServices)
	protected.POST("/product-services", h.createProductOrService)
	protected.GET("/product-services/:id", h.getProductOrService)
	protected.PUT("/product-services/:id", h.updateProductOrService)
	protected.DELETE("/product-services/:id", h.deleteProductOrService)

	protected.GET("/events", h.listEvents)
	protected.POST("/events", h.createEvent)
	protected.GET("/events/:id", h.getEvent)
	protected.PUT("/events/:id", h.updateEvent)
	protected.DELETE("/events/:id", h.deleteEvent)

	protected.GET("/amendments", h.listAmendments)
	protected.POST("/amendments", h.addAmendment)
	protected.GET("/amendments/:id", h.getAmendment)
	protected.PUT("/amendments/:id", h.updateAmendment)
	protected.DELETE("/amendments/:id", h.deleteAmendment)

	protected.GET("/contracts/:kind/:id/amendments", h.listAmendmentsByParent)
	protected.GET("/contracts/:kind/:id/export/xlsx", h.exportDossierXLSX)
	protected.GET("/contracts/:kind/:id/export/pdf", h.exportDossierPDF)

	protected.GET("/suppliers", h.listSuppliers)
	protected.POST("/suppliers", h.createSupplier)
	protected.PUT("/suppliers/:id", h.updateSupplier)
	protected.DELETE("/suppliers/:id", h.deleteSupplier)

	protected.GET("/event-titles", h.listEventTitles)
	protected.POST("/event-titles", h.createEventTitle)
	protected.PUT("/event-titles/:id", h.updateEventTitle)
	protected.DELETE("/event-titles/:id", h.deleteEventTitle)

	protected.GET("/costing/institutions", h.costingInstitutions)
	protected.GET("/costing/projects", h.costingProjects)
	protected.GET("/costing/tas", h.costingTAs)
	protected.GET("/costing/results", h.costingResults)
	protected.GET("/costing/subprojects", h.costingSubprojects)
	protected.GET("/costing/entries", h.costingEntries)

	protected.GET("/audit", h.listAudit)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAmendmentOrder):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrParentNotFound), errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func actorFrom(c *gin.Context) (string, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return "", false
	}
	return principal.Username, true
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(param)), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

func parseKind(c *gin.Context) (model.ContractKind, bool) {
	kind := model.ContractKind(strings.TrimSpace(c.Param("kind")))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract kind"})
		return "", false
	}
	return kind, true
}
