package http

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pruthviraj0106/adultplatform/internal/config"
	"github.com/pruthviraj0106/adultplatform/internal/media"
	"github.com/pruthviraj0106/adultplatform/internal/repository"
)

type Server struct {
	cfg   config.Config
	store *repository.Store
	media *media.Store
	redis *redis.Client
	log   zerolog.Logger
}

func NewServer(cfg config.Config, store *repository.Store, mediaStore *media.Store, redisClient *redis.Client, logger zerolog.Logger) *Server {
	return &Server{
		cfg:   cfg,
		store: store,
		media: mediaStore,
		redis: redisClient,
		log:   logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(s.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/test", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"message": "Server is working", "success": true})
	})

	loginLimit := httprate.LimitByIP(10, time.Minute)
	r.With(loginLimit).Post("/login", s.handleLogin)
	r.With(loginLimit).Post("/adminLogin", s.handleAdminLogin)
	r.Post("/register", s.handleRegister)
	r.Post("/create-admin", s.handleCreateAdmin)

	r.Get("/", s.handleRoot)
	r.With(s.requireSession).Get("/dashboard", s.handleDashboard)
	r.With(s.requireSession).Get("/logout", s.handleLogout)
	r.Get("/checkauth", s.handleCheckAuth)

	r.Get("/collections", s.handleListCollections)
	r.Get("/collections/{id}/posts", s.handleCollectionPosts)
	r.With(s.requireSession, s.requireAdmin).Post("/collections", s.handleCreateCollection)
	r.With(s.requireSession, s.requireAdmin).Delete("/collections/{id}", s.handleDeleteCollection)

	r.Get("/posts", s.handleListPosts)
	r.Get("/posts/{id}", s.handleGetPost)
	r.With(s.requireSession, s.requireAdmin).Post("/posts", s.handleCreatePost)
	r.With(s.requireSession, s.requireAdmin).Delete("/posts/{id}", s.handleDeletePost)

	r.Get("/images/{id}", s.handlePostImage)
	r.Get("/videos/{id}", s.handlePostVideo)
	r.With(s.requireSession, s.requireAdmin).Post("/upload/image", s.handleUploadImage)
	r.With(s.requireSession, s.requireAdmin).Post("/upload/video", s.handleUploadVideo)

	r.Get("/subscriptionplans", s.handleSubscriptionPlans)

	r.Handle("/uploads/*", http.StripPrefix("/uploads", s.media.FileServer()))

	return r
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func decodeJSON(r *http.Request, out interface{}) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"message": message, "success": false})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("elapsed", time.Since(start)).
				Msg("request")
		})
	}
}
