package model

import "time"

// Movie — серверная модель фильма.
type Movie struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	MovieName    string     `gorm:"not null" json:"movie_name"`
	Description  string     `gorm:"not null" json:"description"`
	DirectorName string     `gorm:"not null" json:"director_name"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`

	CreatedByID *int64 `gorm:"index" json:"created_by_id,omitempty"` // ссылка на users.id, может отсутствовать
	CreatedBy   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"created_by,omitempty"`
}
