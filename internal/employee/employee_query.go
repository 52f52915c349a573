package employee

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// ListEmployeesQuery is the filter and ordering accepted by GET /employees.
type ListEmployeesQuery struct {
	Search       string `form:"q"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
	Active       *bool  `form:"active"`
	SortBy       string `form:"sort_by" binding:"omitempty,oneof=name email employee_number id"`
	SortDir      string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
}

// Apply filters and orders list in place and returns the kept prefix.
// Matching is case-folded so "İ" and "i̇" compare equal.
func (q ListEmployeesQuery) Apply(list []EmployeeResponse) []EmployeeResponse {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))

	kept := list[:0]
	for _, e := range list {
		if q.DepartmentID != "" && e.DepartmentID != q.DepartmentID {
			continue
		}
		if q.Active != nil && e.IsActive != *q.Active {
			continue
		}
		if needle != "" &&
			!strings.Contains(fold.String(e.FullName), needle) &&
			!strings.Contains(fold.String(e.Email), needle) &&
			!strings.Contains(fold.String(e.EmployeeNumber), needle) {
			continue
		}
		kept = append(kept, e)
	}

	key := func(e EmployeeResponse) string {
		switch q.SortBy {
		case "email":
			return fold.String(e.Email)
		case "employee_number":
			return e.EmployeeNumber
		case "id":
			return e.ID
		default:
			return fold.String(e.FullName)
		}
	}
	desc := q.SortDir == "desc"
	sort.SliceStable(kept, func(i, j int) bool {
		if desc {
			return key(kept[i]) > key(kept[j])
		}
		return key(kept[i]) < key(kept[j])
	})

	return kept
}
