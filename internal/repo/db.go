package repo

import (
	"errors"

	"MovieBase/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ErrConflict — нарушение ограничения уникальности (например, занятый email).
var ErrConflict = errors.New("unique constraint violated")

// InitDB открывает Postgres и прогоняет миграции моделей.
// TranslateError нужен, чтобы конфликт уникальности различался как
// gorm.ErrDuplicatedKey, а не тонул в тексте ошибки драйвера.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Movie{}); err != nil {
		return nil, err
	}
	return db, nil
}

// translateConflict маппит дубликат ключа в доменную ошибку конфликта.
func translateConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
