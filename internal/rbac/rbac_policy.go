package rbac

import "go-leave/internal/domain"

// roleParents lists inherited roles: HR can do everything EMPLOYEE can.
var roleParents = [][2]string{
	{domain.RoleHR, domain.RoleEmployee},
}

// DefaultPolicies are always loaded; rows in role_permissions are added on top.
// Approval endpoints are open to every employee because the leave service
// resolves manager authority from the directory.
var DefaultPolicies = []RolePermissionRow{
	{Role: domain.RoleAdmin, Resource: "*", Action: "*"},

	{Role: domain.RoleEmployee, Resource: "leave_request", Action: "read"},
	{Role: domain.RoleEmployee, Resource: "leave_request", Action: "create"},
	{Role: domain.RoleEmployee, Resource: "leave_request", Action: "approve"},
	{Role: domain.RoleEmployee, Resource: "leave_balance", Action: "read"},
	{Role: domain.RoleEmployee, Resource: "leave_type", Action: "read"},
	{Role: domain.RoleEmployee, Resource: "holiday", Action: "read"},
	{Role: domain.RoleEmployee, Resource: "department", Action: "read"},
	{Role: domain.RoleEmployee, Resource: "title", Action: "read"},
	{Role: domain.RoleEmployee, Resource: "employee", Action: "read"},

	{Role: domain.RoleHR, Resource: "leave_request", Action: "read_all"},
	{Role: domain.RoleHR, Resource: "leave_request", Action: "delete"},
	{Role: domain.RoleHR, Resource: "leave_balance", Action: "read_all"},
	{Role: domain.RoleHR, Resource: "leave_balance", Action: "manage"},
	{Role: domain.RoleHR, Resource: "leave_type", Action: "manage"},
	{Role: domain.RoleHR, Resource: "holiday", Action: "manage"},
	{Role: domain.RoleHR, Resource: "employee", Action: "*"},
	{Role: domain.RoleHR, Resource: "department", Action: "*"},
	{Role: domain.RoleHR, Resource: "title", Action: "*"},
}
