package handlers

import (
	"encoding/json"
	"net/http"

	"MovieBase/internal/config"
	"MovieBase/internal/middleware"
	"MovieBase/internal/service"
	"MovieBase/internal/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	movieService *service.MovieService,
	tokens *token.Manager,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	movieHandler := NewMovieHandler(movieService, logger)

	// Открытые маршруты: чтение и работа с учёткой
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/password", userHandler.ChangePassword)
	r.Get("/api/users", userHandler.List)
	r.Get("/api/movies", movieHandler.List)
	r.Get("/api/movies/{id}", movieHandler.GetByID)

	// Мутации фильмов проходят через guard
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireAuth(tokens))
		gr.Post("/api/movies", movieHandler.Create)
		gr.Patch("/api/movies/{id}", movieHandler.Update)
		gr.Delete("/api/movies/{id}", movieHandler.Delete)
	})

	return &Handler{Router: r}
}

// writeJSON сериализует успешный ответ.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отдаёт единый формат ошибки: текст плюс стабильный код вида.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, map[string]string{"error": msg, "code": code})
}
