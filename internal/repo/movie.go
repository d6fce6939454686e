package repo

import (
	"context"

	"MovieBase/internal/filter"
	"MovieBase/internal/model"

	"gorm.io/gorm"
)

// MovieRepository — контракт доступа к фильмам.
type MovieRepository interface {
	// List выполняет выборку по спецификации фильтра, вместе с владельцем.
	List(ctx context.Context, q filter.MovieQuery) ([]model.Movie, error)

	// GetByID возвращает фильм или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Movie, error)

	// Create сохраняет новый фильм, id проставляется базой.
	Create(ctx context.Context, movie *model.Movie) error

	// Update применяет частичное обновление и возвращает свежую запись.
	// Отсутствие записи -> gorm.ErrRecordNotFound.
	Update(ctx context.Context, id int64, updates map[string]any) (*model.Movie, error)

	// Delete удаляет запись навсегда (без soft-delete).
	Delete(ctx context.Context, id int64) error
}

type movieRepo struct {
	db *gorm.DB
}

// NewMovieRepository создаёт реализацию репозитория для Movie.
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepo{db: db}
}

func (r *movieRepo) List(ctx context.Context, q filter.MovieQuery) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Preload("CreatedBy").
		Scopes(q.Scopes()...).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	// нулевой/отрицательный id трактуем как "нет записи", а не как
	// случайную выборку без ограничения
	if id <= 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var m model.Movie
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *movieRepo) Create(ctx context.Context, movie *model.Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		return translateConflict(err)
	}
	return nil
}

func (r *movieRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.Movie, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Movie{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *movieRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Movie{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
