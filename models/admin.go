package models

import "time"

type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

func (r AdminRole) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// CanManageAdmins gates creation and role changes of Admin records.
func (r AdminRole) CanManageAdmins() bool {
	return r == RoleSuperAdmin
}

type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	Role         AdminRole `gorm:"type:VARCHAR(20);default:'admin'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
