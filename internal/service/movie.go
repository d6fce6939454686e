package service

import (
	"context"
	"errors"
	"time"

	"MovieBase/internal/filter"
	"MovieBase/internal/model"
	"MovieBase/internal/repo"

	"gorm.io/gorm"
)

var (
	// ErrMovieNotFound — фильм с таким id отсутствует.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrNotOwner — операция запрещена: вызывающий не владелец записи.
	ErrNotOwner = errors.New("caller is not the owner")
)

// MoviePolicy — явные флаги унаследованного поведения авторизации.
// Оба значения по умолчанию повторяют исходную систему; выключение
// флага включает проверку владельца.
type MoviePolicy struct {
	// ReassignOwnerOnUpdate: любой аутентифицированный вызов update
	// переписывает владельца записи на себя.
	ReassignOwnerOnUpdate bool
	// SkipOwnerCheckOnDelete: удалять может любой аутентифицированный
	// вызывающий, не только владелец.
	SkipOwnerCheckOnDelete bool
}

// DefaultMoviePolicy — поведение исходной системы.
func DefaultMoviePolicy() MoviePolicy {
	return MoviePolicy{
		ReassignOwnerOnUpdate:  true,
		SkipOwnerCheckOnDelete: true,
	}
}

// CreateMovieInput — поля новой записи. Все обязательны, кроме даты релиза.
type CreateMovieInput struct {
	MovieName    string
	Description  string
	DirectorName string
	ReleaseDate  *time.Time
}

// UpdateMovieInput — частичное обновление: nil-поле не меняется.
type UpdateMovieInput struct {
	MovieName    *string
	Description  *string
	DirectorName *string
	ReleaseDate  *time.Time
}

// MovieService инкапсулирует жизненный цикл фильма.
// Мутации предполагают, что guard уже отработал и callerID валиден.
type MovieService struct {
	repo   repo.MovieRepository
	policy MoviePolicy
}

func NewMovieService(r repo.MovieRepository, policy MoviePolicy) *MovieService {
	return &MovieService{repo: r, policy: policy}
}

// Create сохраняет фильм, владельцем становится вызывающий.
func (s *MovieService) Create(ctx context.Context, in CreateMovieInput, callerID int64) (*model.Movie, error) {
	movie := &model.Movie{
		MovieName:    in.MovieName,
		Description:  in.Description,
		DirectorName: in.DirectorName,
		ReleaseDate:  in.ReleaseDate,
		CreatedByID:  &callerID,
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Update применяет только заданные поля. При включённом
// ReassignOwnerOnUpdate запись дополнительно переписывается на вызывающего,
// каким бы ни был прежний владелец.
func (s *MovieService) Update(ctx context.Context, id int64, in UpdateMovieInput, callerID int64) (*model.Movie, error) {
	updates := map[string]any{}
	if in.MovieName != nil {
		updates["movie_name"] = *in.MovieName
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.DirectorName != nil {
		updates["director_name"] = *in.DirectorName
	}
	if in.ReleaseDate != nil {
		updates["release_date"] = *in.ReleaseDate
	}
	if s.policy.ReassignOwnerOnUpdate {
		updates["created_by_id"] = callerID
	}

	// пустое обновление не трогает запись, но отличает "нет такой" от no-op
	if len(updates) == 0 {
		movie, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMovieNotFound
			}
			return nil, err
		}
		return movie, nil
	}

	movie, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

// Delete удаляет запись навсегда. С выключенным SkipOwnerCheckOnDelete
// сначала сверяется владелец.
func (s *MovieService) Delete(ctx context.Context, id int64, callerID int64) error {
	if !s.policy.SkipOwnerCheckOnDelete {
		movie, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMovieNotFound
			}
			return err
		}
		if movie.CreatedByID == nil || *movie.CreatedByID != callerID {
			return ErrNotOwner
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	return nil
}

// List делегирует выборку композеру фильтров и репозиторию.
func (s *MovieService) List(ctx context.Context, q filter.MovieQuery) ([]model.Movie, error) {
	return s.repo.List(ctx, q)
}

// GetByID возвращает (nil, nil) для отсутствующей записи: прямой lookup
// без guard-а, "нет фильма" — не ошибка.
func (s *MovieService) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return movie, nil
}
