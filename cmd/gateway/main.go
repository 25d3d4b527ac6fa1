package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	api "github.com/koreksi-id/koreksi/internal/api/http"
	auth "github.com/koreksi-id/koreksi/internal/auth/middleware"
	"github.com/koreksi-id/koreksi/internal/config"
	"github.com/koreksi-id/koreksi/internal/db"
	"github.com/koreksi-id/koreksi/internal/essay"
	"github.com/koreksi-id/koreksi/internal/export"
	"github.com/koreksi-id/koreksi/internal/grading"
	"github.com/koreksi-id/koreksi/internal/ocr"
	"github.com/koreksi-id/koreksi/internal/rbac"
	"github.com/koreksi-id/koreksi/internal/storage"
	"github.com/koreksi-id/koreksi/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	resultStore := store.NewSQLStore(dbh, cfg.DBDriver)

	// --- Recognition engine ---
	engine := ocr.NewTesseractEngine()
	engine.Lang = cfg.TesseractLang
	engine.Timeout = time.Duration(cfg.OCRTimeoutSeconds) * time.Second
	ocrSvc := ocr.NewService(engine)

	// --- Essay analyzer (oracle only when enabled and credentialed) ---
	var analyzerOpts []essay.Option
	if cfg.AIConfigured() {
		analyzerOpts = append(analyzerOpts, essay.WithOracle(essay.NewHuggingFaceClient(cfg.HFModelURL, cfg.HFAPIKey)))
		log.Printf("AI-assisted essay scoring enabled")
	}
	analyzer := essay.NewAnalyzer(analyzerOpts...)
	gradeSvc := grading.NewService(analyzer, resultStore)

	// --- Optional upload archive ---
	var archive storage.Archive
	if cfg.ArchiveUploads {
		fsArchive, err := storage.NewFSArchive(cfg.ArchiveBase)
		if err != nil {
			log.Fatalf("upload archive: %v", err)
		}
		archive = fsArchive
	}

	// --- Optional spreadsheet export ---
	var sink api.RowSink
	if cfg.SheetsSpreadsheetID != "" && cfg.SheetsCredentialsFile != "" {
		creds, err := os.ReadFile(cfg.SheetsCredentialsFile)
		if err != nil {
			log.Fatalf("sheets credentials: %v", err)
		}
		exporter, err := export.NewSheetsExporter(ctx, creds, cfg.SheetsSpreadsheetID, cfg.SheetsRange)
		if err != nil {
			log.Fatalf("sheets exporter: %v", err)
		}
		sink = exporter
	}

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret, map[string]auth.User{
		cfg.AdminUser: {PassHash: cfg.AdminPassHash, Role: auth.RoleAdmin},
	})

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("sheet:extract")).
			Post("/sheets/extract", api.ExtractAnswersHandler(ocrSvc, archive))

		pr.With(rbac.Require("essay:analyze")).
			Post("/essays/analyze", api.AnalyzeEssayHandler(analyzer))

		pr.With(rbac.Require("grade:create")).
			Post("/grades", api.CreateGradeHandler(gradeSvc))

		pr.With(rbac.RequireAny("results:view", "results:view-own")).
			Get("/results", api.ListResultsHandler(resultStore))
		pr.With(rbac.RequireAny("results:view", "results:view-own")).
			Get("/results/{resultID}", api.GetResultHandler(resultStore))

		pr.With(rbac.Require("export:run")).
			Post("/export/sheets", api.ExportResultsHandler(resultStore, sink))
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("koreksi gateway listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
