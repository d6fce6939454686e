package model

// User — зарегистрированный пользователь сервиса.
// Password хранит только bcrypt-дайджест и никогда не отдаётся наружу.
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Связи
	Movies []Movie `gorm:"foreignKey:CreatedByID" json:"movies,omitempty"`
}
