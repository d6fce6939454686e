package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"MovieBase/internal/filter"
	"MovieBase/internal/middleware"
	"MovieBase/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MovieHandler обрабатывает чтение и мутации фильмов.
type MovieHandler struct {
	MovieService *service.MovieService
	Logger       *zap.SugaredLogger
}

// NewMovieHandler создаёт хендлер фильмов
func NewMovieHandler(movieService *service.MovieService, logger *zap.SugaredLogger) *MovieHandler {
	return &MovieHandler{MovieService: movieService, Logger: logger}
}

type createMovieRequest struct {
	MovieName    string  `json:"movie_name"`
	Description  string  `json:"description"`
	DirectorName string  `json:"director_name"`
	ReleaseDate  *string `json:"release_date,omitempty"`
}

type updateMovieRequest struct {
	MovieName    *string `json:"movie_name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DirectorName *string `json:"director_name,omitempty"`
	ReleaseDate  *string `json:"release_date,omitempty"`
}

// parseReleaseDate принимает RFC3339 либо просто дату YYYY-MM-DD.
func parseReleaseDate(s string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List — выборка с поиском, фильтрами, сортировкой и пагинацией.
// Все параметры запроса необязательны; без них отдаётся всё.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	q := filter.MovieQuery{}
	params := r.URL.Query()

	if s := params.Get("search"); s != "" {
		q.Search = &s
	}

	mf := filter.MovieFilter{}
	hasMovieFilter := false
	if v := params.Get("movie_name"); v != "" {
		mf.MovieName = &v
		hasMovieFilter = true
	}
	if v := params.Get("created_by_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "created_by_id must be an integer")
			return
		}
		mf.CreatedByID = &id
		hasMovieFilter = true
	}
	if hasMovieFilter {
		q.Movie = &mf
	}

	uf := filter.UserFilter{}
	hasUserFilter := false
	if v := params.Get("user_username"); v != "" {
		uf.Username = &v
		hasUserFilter = true
	}
	if v := params.Get("user_email"); v != "" {
		uf.Email = &v
		hasUserFilter = true
	}
	if hasUserFilter {
		q.User = &uf
	}

	if v := params.Get("order_by"); v != "" {
		order := filter.Asc
		if params.Get("order") == string(filter.Desc) {
			order = filter.Desc
		}
		q.OrderBy = &filter.OrderBy{Field: v, Order: order}
	}

	if v := params.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "skip must be a non-negative integer")
			return
		}
		q.Skip = &n
	}
	if v := params.Get("take"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "take must be a non-negative integer")
			return
		}
		q.Take = &n
	}

	movies, err := h.MovieService.List(r.Context(), q)
	if err != nil {
		h.Logger.Errorw("ListMovies: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

// GetByID — прямой lookup без guard-а.
func (h *MovieHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "id must be an integer")
		return
	}

	movie, err := h.MovieService.GetByID(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("GetMovie: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	if movie == nil {
		writeError(w, http.StatusNotFound, "not_found", "movie not found")
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// Create сохраняет новый фильм от имени аутентифицированного пользователя.
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "unauthorized")
		return
	}

	var req createMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateMovie: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}
	if req.MovieName == "" || req.Description == "" || req.DirectorName == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "movie_name, description and director_name are required")
		return
	}

	in := service.CreateMovieInput{
		MovieName:    req.MovieName,
		Description:  req.Description,
		DirectorName: req.DirectorName,
	}
	if req.ReleaseDate != nil {
		released, err := parseReleaseDate(*req.ReleaseDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "release_date must be RFC3339 or YYYY-MM-DD")
			return
		}
		in.ReleaseDate = released
	}

	movie, err := h.MovieService.Create(r.Context(), in, claims.UserID)
	if err != nil {
		h.Logger.Errorw("CreateMovie: service error", "user_id", claims.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, movie)
}

// Update — частичное обновление: меняются только присланные поля.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "id must be an integer")
		return
	}

	var req updateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateMovie: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request")
		return
	}

	in := service.UpdateMovieInput{
		MovieName:    req.MovieName,
		Description:  req.Description,
		DirectorName: req.DirectorName,
	}
	if req.ReleaseDate != nil {
		released, err := parseReleaseDate(*req.ReleaseDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "release_date must be RFC3339 or YYYY-MM-DD")
			return
		}
		in.ReleaseDate = released
	}

	movie, err := h.MovieService.Update(r.Context(), id, in, claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "movie not found")
			return
		}
		h.Logger.Errorw("UpdateMovie: service error", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, movie)
}

// Delete удаляет фильм навсегда.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "id must be an integer")
		return
	}

	if err := h.MovieService.Delete(r.Context(), id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			writeError(w, http.StatusNotFound, "not_found", "movie not found")
		case errors.Is(err, service.ErrNotOwner):
			writeError(w, http.StatusForbidden, "forbidden", "caller is not the owner")
		default:
			h.Logger.Errorw("DeleteMovie: service error", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "internal", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": fmt.Sprintf("movie with id %d deleted", id)})
}
