package models

import "time"

const (
	PermissionBasic      = "basic"
	PermissionAdmin      = "admin"
	PermissionSuperadmin = "superadmin"
)

type Administrator struct {
	ID               uint      `gorm:"column:admin_id;primaryKey" json:"admin_id"`
	Username         string    `gorm:"size:50;uniqueIndex;not null" json:"username" example:"ops"`
	Email            string    `gorm:"size:100;not null" json:"email" example:"ops@taxi.com"`
	PasswordHash     string    `gorm:"size:255;not null" json:"-"`
	PermissionsLevel string    `gorm:"type:text;not null;default:basic;check:permissions_level IN ('basic','admin','superadmin')" json:"permissions_level" example:"admin"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Administrator) TableName() string {
	return "administrators"
}
