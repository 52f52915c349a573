package department

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Code        *string `json:"code" binding:"omitempty,max=50"`
	Description string  `json:"description"`
	ManagerID   *string `json:"manager_id" binding:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Code        *string `json:"code" binding:"omitempty,max=50"`
	Description string  `json:"description"`
	ManagerID   *string `json:"manager_id" binding:"omitempty,uuid"`
	IsActive    *bool   `json:"is_active"`
}

type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        *string `json:"code,omitempty"`
	Description string  `json:"description"`
	ManagerID   *string `json:"manager_id,omitempty"`
	IsActive    bool    `json:"is_active"`
	IsSystem    bool    `json:"is_system"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
