package entity

import (
	"time"
)

const (
	RoleBuyer   = "buyer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	Username    string `json:"username,omitempty" firestore:"username,omitempty"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address     string `json:"address,omitempty" firestore:"address,omitempty"`
	Role        string `json:"role" firestore:"role"`
	Status      string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// CanManageCatalog reports whether the user may create, update or delete
// products and categories.
func (u *User) CanManageCatalog() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
