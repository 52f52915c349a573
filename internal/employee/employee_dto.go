package employee

type CreateEmployeeRequest struct {
	FirstName       string  `json:"first_name" binding:"required,max=100"`
	LastName        string  `json:"last_name" binding:"required,max=100"`
	Email           string  `json:"email" binding:"required,email"`
	EmployeeNumber  string  `json:"employee_number" binding:"omitempty,max=50"`
	Phone           string  `json:"phone" binding:"omitempty,max=50"`
	DepartmentID    *string `json:"department_id" binding:"omitempty,uuid"`
	TitleID         *string `json:"title_id" binding:"omitempty,uuid"`
	ManagerID       *string `json:"manager_id" binding:"omitempty,uuid"`
	WorksOnSaturday bool    `json:"works_on_saturday"`
	Role            string  `json:"role" binding:"omitempty,oneof=ADMIN HR EMPLOYEE"`
	Password        string  `json:"password" binding:"omitempty,min=8"`
}

type UpdateEmployeeRequest struct {
	FirstName       string  `json:"first_name" binding:"required,max=100"`
	LastName        string  `json:"last_name" binding:"required,max=100"`
	Email           string  `json:"email" binding:"required,email"`
	EmployeeNumber  string  `json:"employee_number" binding:"omitempty,max=50"`
	Phone           string  `json:"phone" binding:"omitempty,max=50"`
	DepartmentID    *string `json:"department_id" binding:"omitempty,uuid"`
	TitleID         *string `json:"title_id" binding:"omitempty,uuid"`
	ManagerID       *string `json:"manager_id" binding:"omitempty,uuid"`
	WorksOnSaturday bool    `json:"works_on_saturday"`
	IsActive        *bool   `json:"is_active"`
	Role            string  `json:"role" binding:"omitempty,oneof=ADMIN HR EMPLOYEE"`
	Password        string  `json:"password" binding:"omitempty,min=8"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeTitleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID              string                      `json:"id"`
	FirstName       string                      `json:"first_name"`
	LastName        string                      `json:"last_name"`
	FullName        string                      `json:"full_name"`
	Email           string                      `json:"email"`
	EmployeeNumber  string                      `json:"employee_number"`
	Phone           string                      `json:"phone,omitempty"`
	DepartmentID    string                      `json:"department_id,omitempty"`
	TitleID         string                      `json:"title_id,omitempty"`
	ManagerID       string                      `json:"manager_id,omitempty"`
	WorksOnSaturday bool                        `json:"works_on_saturday"`
	IsActive        bool                        `json:"is_active"`
	IsSystemAdmin   bool                        `json:"is_system_admin"`
	Role            string                      `json:"role"`
	Department      *EmployeeDepartmentResponse `json:"department,omitempty"`
	Title           *EmployeeTitleResponse      `json:"title,omitempty"`
}
