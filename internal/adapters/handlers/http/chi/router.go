package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/authn"
	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/comment"
	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/like"
	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/user"
	"github.com/NomanKhan13/focusTube/internal/adapters/handlers/http/chi/v1/video"
	"github.com/NomanKhan13/focusTube/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi
func NewRouter(
	logger *slog.Logger,
	authProvider port.AuthProvider,
	userHandler *user.HandlerV1,
	videoHandler *video.HandlerV1,
	commentHandler *comment.HandlerV1,
	likeHandler *like.HandlerV1,
	env string,
) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute)) //large uploads come through here

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	requireAuth := authn.Required(authProvider, logger)
	optionalAuth := authn.Optional(authProvider)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", userHandler.Routes(requireAuth, videoHandler.OwnerRoutes(optionalAuth)))
		r.Mount("/videos", videoHandler.Routes(
			requireAuth,
			optionalAuth,
			commentHandler.VideoRoutes(requireAuth),
			likeHandler.VideoRoutes(requireAuth),
		))
		r.Mount("/comments", commentHandler.Routes(requireAuth))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
