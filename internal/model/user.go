package model

import "github.com/google/uuid"

// Role is the permission level of a user.
type Role string

// Roles.
const (
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// User is a registered operator. Username is the unique, case-sensitive key.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Role         Role      `json:"role"`
}

var roleLevels = map[Role]int{
	RoleManager:  2,
	RoleEmployee: 1,
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role Role) bool {
	_, ok := roleLevels[role]
	return ok
}

// RoleAtLeast checks if role meets or exceeds the minimum required role.
func RoleAtLeast(role, minimum Role) bool {
	have, ok := roleLevels[role]
	if !ok {
		return false
	}
	want, ok := roleLevels[minimum]
	if !ok {
		return false
	}
	return have >= want
}
