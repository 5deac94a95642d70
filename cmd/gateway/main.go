package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/openminds/readiness-assessments/internal/api/http"
	"github.com/openminds/readiness-assessments/internal/assessment"
	auth "github.com/openminds/readiness-assessments/internal/auth/middleware"
	"github.com/openminds/readiness-assessments/internal/catalog"
	"github.com/openminds/readiness-assessments/internal/config"
	"github.com/openminds/readiness-assessments/internal/db"
	"github.com/openminds/readiness-assessments/internal/rbac"
	"github.com/openminds/readiness-assessments/internal/storage"
	syncx "github.com/openminds/readiness-assessments/internal/sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Catalogs (fatal on any validation error) ---
	reg, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		log.Fatalf("catalog load failed: %v", err)
	}

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := assessment.NewSQLStore(dbh, cfg.DBDriver)
	events := syncx.NewEventRepo(dbh, cfg.SiteID)

	blobs, err := storage.NewFSStore(cfg.ArchiveBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret, cfg.AdminUser, cfg.AdminPassHash, cfg.EnableDevLogin)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Protected API (JWT → subject/role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("submission:create")).
			Post("/hooks/submissions/{tool}", api.SubmitHandler(reg, store, blobs, events))

		pr.With(rbac.Require("tools:list")).
			Get("/tools", api.ListToolsHandler(reg))
		pr.With(rbac.RequireAny("submission:list-own", "submission:list-all")).
			Get("/tools/{tool}/submissions", api.ListSubmissionsHandler(reg, store))
		pr.With(rbac.RequireAny("report:view-own", "report:view-all")).
			Get("/tools/{tool}/submissions/{submissionID}/report", api.GetReportHandler(reg, store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s, tools=%d)", cfg.HTTPAddr, cfg.DBDriver, len(reg.Tools()))
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
