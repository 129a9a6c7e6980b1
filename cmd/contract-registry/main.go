package main

import (
	"fmt"
	"os"
	"time"

	"github.com/nurpe/contract-registry/internal/auth"
	"github.com/nurpe/contract-registry/internal/config"
	"github.com/nurpe/contract-registry/internal/db"
	"github.com/nurpe/contract-registry/internal/excel"
	httphandler "github.com/nurpe/contract-registry/internal/http"
	"github.com/nurpe/contract-registry/internal/http/middleware"
	"github.com/nurpe/contract-registry/internal/logger"
	"github.com/nurpe/contract-registry/internal/pdf"
	"github.com/nurpe/contract-registry/internal/repository"
	"github.com/nurpe/contract-registry/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	tokenTTL, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid JWT_TOKEN_TTL")
	}

	amendmentRepo := repository.NewAmendmentRepository(database)
	contractRepo := repository.NewContractRepository(database)
	demandRepo := repository.NewDemandRepository(database)
	referenceRepo := repository.NewReferenceRepository(database)
	costingRepo := repository.NewCostingRepository(database)
	auditRepo := repository.NewAuditRepository(database)
	userRepo := repository.NewUserRepository(database)

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, tokenTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	authService := service.NewAuthService(userRepo, issuer, auditRepo, log)
	amendmentService := service.NewAmendmentService(amendmentRepo, contractRepo, auditRepo, log)
	contractService := service.NewContractService(contractRepo, amendmentRepo, referenceRepo, demandRepo, auditRepo, log)
	demandService := service.NewDemandService(demandRepo, auditRepo, log)
	referenceService := service.NewReferenceService(referenceRepo, auditRepo, log)
	costingService := service.NewCostingService(costingRepo)

	excelGenerator := excel.NewGenerator()
	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}

	handler := httphandler.NewHandler(
		authService,
		demandService,
		contractService,
		amendmentService,
		referenceService,
		costingService,
		auditRepo,
		excelGenerator,
		pdfGenerator,
		log,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contract registry")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
