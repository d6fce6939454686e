package repo

import (
	"context"
	"testing"

	"MovieBase/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	u, err := r.CreateUser(ctx, &model.User{Username: "john", Email: "john@example.com", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)

	// поиск по email — найдено
	got, err := r.GetUserByEmail(ctx, "john@example.com")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// уникальный email — вторая вставка должна дать ошибку
	_, err = r.CreateUser(ctx, &model.User{Username: "john2", Email: "john@example.com", Password: "x"})
	assert.Error(t, err)

	// email сравнивается с учётом регистра
	got, err = r.GetUserByEmail(ctx, "John@example.com")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	// поиск несуществующего — ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByEmail(ctx, "doesnotexist@example.com")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestUserRepository_ListUsers(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	_, err := r.CreateUser(ctx, &model.User{Username: "a", Email: "a@example.com", Password: "h"})
	assert.NoError(t, err)
	_, err = r.CreateUser(ctx, &model.User{Username: "b", Email: "b@example.com", Password: "h"})
	assert.NoError(t, err)

	users, err := r.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u, err := r.CreateUser(ctx, &model.User{Username: "kate", Email: "kate@example.com", Password: "old"})
	assert.NoError(t, err)

	assert.NoError(t, r.UpdatePassword(ctx, u.ID, "new"))

	got, err := r.GetUserByEmail(ctx, "kate@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "new", got.Password)

	// несуществующий пользователь
	err = r.UpdatePassword(ctx, 9999, "x")
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
