package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/edupro/edupro-lms/internal/api/http"
	auth "github.com/edupro/edupro-lms/internal/auth/middleware"
	"github.com/edupro/edupro-lms/internal/catalog"
	"github.com/edupro/edupro-lms/internal/config"
	"github.com/edupro/edupro-lms/internal/db"
	"github.com/edupro/edupro-lms/internal/event"
	"github.com/edupro/edupro-lms/internal/lms"
	"github.com/edupro/edupro-lms/internal/rbac"
	"github.com/edupro/edupro-lms/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Storage backend ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bus := event.NewBus()

	var store storage.Store
	switch cfg.StorageDriver {
	case "sqlite", "postgres":
		dbh, err := db.Open(ctx, db.Driver(cfg.StorageDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = storage.NewSQLStore(dbh)
		bus.Subscribe(event.NewLogRepo(dbh).Handler())
	case "fs":
		fs, err := storage.NewFSStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("fs store: %v", err)
		}
		store = fs
	default:
		log.Fatalf("unsupported storage driver: %s", cfg.StorageDriver)
	}

	// --- Course catalog (read-only collaborator) ---
	cat, err := catalog.LoadFile(cfg.CoursesPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	// --- Core services ---
	dir := lms.NewDirectory(store, bus)
	certs := lms.NewCertificateRegistry(dir, cat, cfg.CertIssuer)
	progress := lms.NewProgressService(dir, cat, certs, bus, cfg.PassScore)

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public surface
	r.Post("/auth/register", api.RegisterHandler(authSvc, dir))
	r.Post("/auth/login", api.LoginHandler(authSvc, dir, cfg.AdminUser, cfg.AdminPassHash))
	r.Get("/courses", api.ListCoursesHandler(cat))
	r.Get("/courses/{courseID}", api.GetCourseHandler(cat))
	r.Get("/certificates/verify", api.VerifyCertificateHandler(certs))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Post("/auth/logout", api.LogoutHandler(dir))
		pr.Get("/auth/me", api.MeHandler(dir))

		pr.With(rbac.Require("course:enroll")).
			Post("/courses/{courseID}/enroll", api.EnrollHandler(dir, progress, cat))
		pr.With(rbac.Require("progress:view-own")).
			Get("/courses/{courseID}/progress", api.GetProgressHandler(dir, progress))
		pr.With(rbac.Require("progress:view-own")).
			Get("/progress/enrolled", api.EnrolledCoursesHandler(dir, progress))
		pr.With(rbac.Require("progress:write-own")).
			Post("/courses/{courseID}/lessons/{lessonID}/visit", api.VisitLessonHandler(dir, progress))
		pr.With(rbac.Require("progress:write-own")).
			Post("/courses/{courseID}/lessons/{lessonID}/complete", api.CompleteLessonHandler(dir, progress))
		pr.With(rbac.Require("progress:write-own")).
			Post("/courses/{courseID}/quiz", api.SaveQuizScoreHandler(dir, progress))

		pr.With(rbac.Require("cert:list-own")).
			Get("/certificates", api.ListCertificatesHandler(dir, certs))

		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dir, progress))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (storage=%s, courses=%d)", cfg.HTTPAddr, cfg.StorageDriver, len(cat.List()))
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
