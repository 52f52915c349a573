package domain

import "strings"

// Coarse RBAC roles carried in access tokens. Leave approval authority is
// resolved from the directory and never from these.
const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

func NormalizeRole(role string) string {
	switch r := strings.ToUpper(strings.TrimSpace(role)); r {
	case RoleAdmin, RoleHR:
		return r
	default:
		return RoleEmployee
	}
}
