package leavetype

type CreateLeaveTypeRequest struct {
	Code               string `json:"code" binding:"required,max=30"`
	Name               string `json:"name" binding:"required,max=100"`
	Description        string `json:"description"`
	MaxDaysPerYear     int    `json:"max_days_per_year" binding:"min=0,max=366"`
	RequiresApproval   *bool  `json:"requires_approval"`
	IsPaid             bool   `json:"is_paid"`
	RequiresBalance    bool   `json:"requires_balance"`
	DeductsFromBalance bool   `json:"deducts_from_balance"`
}

type UpdateLeaveTypeRequest struct {
	Name               string `json:"name" binding:"required,max=100"`
	Description        string `json:"description"`
	MaxDaysPerYear     int    `json:"max_days_per_year" binding:"min=0,max=366"`
	RequiresApproval   bool   `json:"requires_approval"`
	IsPaid             bool   `json:"is_paid"`
	RequiresBalance    bool   `json:"requires_balance"`
	DeductsFromBalance bool   `json:"deducts_from_balance"`
	IsActive           *bool  `json:"is_active"`
}

type LeaveTypeResponse struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	MaxDaysPerYear     int    `json:"max_days_per_year"`
	RequiresApproval   bool   `json:"requires_approval"`
	IsPaid             bool   `json:"is_paid"`
	RequiresBalance    bool   `json:"requires_balance"`
	DeductsFromBalance bool   `json:"deducts_from_balance"`
	IsActive           bool   `json:"is_active"`
}
