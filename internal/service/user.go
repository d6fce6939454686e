package service

import (
	"context"
	"errors"

	"MovieBase/internal/model"
	"MovieBase/internal/repo"
	"MovieBase/internal/token"

	"gorm.io/gorm"
)

var (
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("user already exists")
	// ErrUserNotFound — пользователь с таким email не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword — пароль не совпал с дайджестом.
	ErrInvalidPassword = errors.New("invalid password")
)

// UserService инкапсулирует регистрацию, вход и смену пароля.
type UserService struct {
	repo   repo.UserRepository
	tokens *token.Manager
}

func NewUserService(r repo.UserRepository, tm *token.Manager) *UserService {
	return &UserService{repo: r, tokens: tm}
}

// Register создаёт пользователя и сразу выдаёт ему access-токен.
// Гонка между проверкой email и вставкой не оборачивается транзакцией:
// её ловит ограничение уникальности в базе (repo.ErrConflict).
func (s *UserService) Register(ctx context.Context, username, email, password string) (string, error) {
	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	digest, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Username: username,
		Email:    email,
		Password: digest,
	})
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Login проверяет пароль и выдаёт токен.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if !CheckPassword(password, user.Password) {
		return "", ErrInvalidPassword
	}

	return s.tokens.Issue(user.ID)
}

// ChangePassword проверяет текущий пароль и перезаписывает дайджест.
func (s *UserService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !CheckPassword(currentPassword, user.Password) {
		return ErrInvalidPassword
	}

	digest, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, user.ID, digest)
}

// ListUsers отдаёт всех пользователей (без дайджестов — их прячет модель).
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}
