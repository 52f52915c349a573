package leave

type CreateLeaveRequest struct {
	EmployeeID  string `json:"employee_id" binding:"omitempty,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason      string `json:"reason" binding:"max=1000"`
}

type UpdateLeaveStatusRequest struct {
	Status   string `json:"status" binding:"required,oneof=APPROVED_BY_DEPARTMENT_MANAGER REJECTED_BY_DEPARTMENT_MANAGER APPROVED_BY_HR_MANAGER REJECTED_BY_HR_MANAGER"`
	Comments string `json:"comments" binding:"max=500"`
	// IsHRManager selects the approval stage the caller acts in.
	IsHRManager bool `json:"is_hr_manager"`
}

type LeaveResponse struct {
	ID                            string  `json:"id"`
	EmployeeID                    string  `json:"employee_id"`
	EmployeeName                  string  `json:"employee_name,omitempty"`
	LeaveTypeID                   string  `json:"leave_type_id"`
	LeaveTypeCode                 string  `json:"leave_type_code,omitempty"`
	LeaveTypeName                 string  `json:"leave_type_name,omitempty"`
	StartDate                     string  `json:"start_date"`
	EndDate                       string  `json:"end_date"`
	TotalDays                     int     `json:"total_days"`
	Reason                        string  `json:"reason"`
	Status                        string  `json:"status"`
	DepartmentManagerID           *string `json:"department_manager_id,omitempty"`
	HRManagerID                   *string `json:"hr_manager_id,omitempty"`
	DepartmentManagerApprovalDate *string `json:"department_manager_approval_date,omitempty"`
	HRManagerApprovalDate         *string `json:"hr_manager_approval_date,omitempty"`
	DepartmentManagerComments     *string `json:"department_manager_comments,omitempty"`
	HRManagerComments             *string `json:"hr_manager_comments,omitempty"`
	CreatedAt                     string  `json:"created_at"`
}
