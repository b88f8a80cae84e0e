package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medicopilot/api/internal/config"
	"github.com/medicopilot/api/internal/domain/analysis"
	"github.com/medicopilot/api/internal/domain/doctor"
	"github.com/medicopilot/api/internal/domain/documents"
	"github.com/medicopilot/api/internal/domain/education"
	"github.com/medicopilot/api/internal/domain/encounter"
	"github.com/medicopilot/api/internal/domain/imaging"
	"github.com/medicopilot/api/internal/domain/patient"
	"github.com/medicopilot/api/internal/platform/auth"
	"github.com/medicopilot/api/internal/platform/db"
	"github.com/medicopilot/api/internal/platform/llm"
	"github.com/medicopilot/api/internal/platform/middleware"
)

// patientSourceAdapter adapts the patient repository to the
// encounter.PatientSource interface, avoiding circular imports between the
// encounter and patient packages. A missing patient maps to the encounter
// sentinel; lookup failures pass through so they surface as service errors.
type patientSourceAdapter struct {
	repo patient.Repository
}

func (a *patientSourceAdapter) Get(ctx context.Context, id uuid.UUID) (*encounter.PatientInfo, error) {
	p, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return nil, encounter.ErrPatientNotFound
		}
		return nil, err
	}
	return &encounter.PatientInfo{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Gender:    p.Gender,
		Allergies: p.Allergies,
	}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "medicopilot-server",
		Short: "MediCoPilot clinical API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// LLM client, shared by analysis, imaging and content generation.
	// Without a key the AI endpoints answer with their not-configured error.
	var llmClient llm.Client
	if cfg.AIEnabled() {
		llmClient = llm.NewHTTPClient(cfg.GroqBaseURL, cfg.GroqAPIKey)
		logger.Info().Str("base_url", cfg.GroqBaseURL).Msg("llm client configured")
	} else {
		logger.Warn().Msg("GROQ_API_KEY not set; AI endpoints are disabled")
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiryMinutes)

	api := e.Group("/api")
	protected := api.Group("", auth.Middleware(tokens))

	// Doctor domain
	docRepo := doctor.NewRepo(pool)
	docSvc := doctor.NewService(docRepo, tokens)
	docHandler := doctor.NewHandler(docSvc)
	docHandler.RegisterPublicRoutes(api)
	docHandler.RegisterProtectedRoutes(protected)

	// Patient domain
	patRepo := patient.NewRepo(pool)
	patSvc := patient.NewService(patRepo)
	patHandler := patient.NewHandler(patSvc)
	patHandler.RegisterRoutes(protected)

	// Encounter domain
	encRepo := encounter.NewRepo(pool)
	encSvc := encounter.NewService(encRepo, &patientSourceAdapter{repo: patRepo}, logger)
	encHandler := encounter.NewHandler(encSvc)
	encHandler.RegisterRoutes(protected)

	// Education and summary domain; its generator runs after each saved visit
	eduRepo := education.NewRepo(pool)
	eduSvc := education.NewService(eduRepo)
	eduHandler := education.NewHandler(eduSvc)
	eduHandler.RegisterRoutes(protected)
	if llmClient != nil {
		encSvc.SetContentGenerator(education.NewGenerator(eduRepo, llmClient, cfg.LLMEducationModel, logger))
	}

	// Diagnostic analysis domain
	anSvc := analysis.NewService(llmClient, cfg.LLMTextModel, logger)
	anHandler := analysis.NewHandler(anSvc)
	anHandler.RegisterRoutes(protected)

	// Imaging domain
	imgSvc := imaging.NewService(llmClient, cfg.LLMVisionModel, logger)
	imgHandler := imaging.NewHandler(imgSvc)
	imgHandler.RegisterRoutes(protected)

	// Documents domain
	documentRepo := documents.NewRepo(pool)
	documentSvc := documents.NewService(documentRepo)
	documentHandler := documents.NewHandler(documentSvc)
	documentHandler.RegisterRoutes(protected)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
