package models

import "time"

const (
	RoleDriver    = "driver"
	RolePassenger = "passenger"
)

type User struct {
	ID           uint      `gorm:"column:user_id;primaryKey" json:"user_id" example:"1"`
	FullName     string    `gorm:"size:100;not null" json:"full_name" example:"Thabo Mokoena"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email" example:"thabo@taxi.com"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Role         string    `gorm:"type:text;not null;check:role IN ('driver','passenger')" json:"role" example:"driver"`
	LanguagePref string    `gorm:"size:50;not null;default:en" json:"language_pref" example:"en"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserUpdate is the change set for a partial profile update. Only non-nil
// fields are written; the updatable column set is fixed here.
type UserUpdate struct {
	FullName     *string `json:"full_name"`
	Email        *string `json:"email"`
	LanguagePref *string `json:"language_pref"`
}

// Empty reports whether the change set carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.FullName == nil && u.Email == nil && u.LanguagePref == nil
}

// UserStats are per-user translation aggregates, computed on read.
type UserStats struct {
	TotalTranslations int64      `json:"total_translations" example:"42"`
	LanguagesUsed     int64      `json:"languages_used" example:"3"`
	LastTranslation   *time.Time `json:"last_translation"`
}
