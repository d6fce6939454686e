package repo

import (
	"context"

	"MovieBase/internal/model"

	"gorm.io/gorm"
)

// UserRepository — контракт доступа к пользователям для слоя сервиса.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя. Занятый email -> ErrConflict.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail ищет по email (точное совпадение, с учётом регистра).
	// Отсутствие записи -> gorm.ErrRecordNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]model.User, error)

	// UpdatePassword перезаписывает дайджест пароля пользователя.
	UpdatePassword(ctx context.Context, userID int64, digest string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translateConflict(err)
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, userID int64, digest string) error {
	tx := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("password", digest)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
