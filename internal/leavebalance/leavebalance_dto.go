package leavebalance

type CreateLeaveBalanceRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	Year        int    `json:"year" binding:"required,min=1900,max=2100"`
	TotalDays   int    `json:"total_days" binding:"min=0,max=366"`
}

type UpdateLeaveBalanceRequest struct {
	TotalDays int `json:"total_days" binding:"min=0,max=366"`
}

type BalanceResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeCode string `json:"leave_type_code,omitempty"`
	LeaveTypeName string `json:"leave_type_name,omitempty"`
	Year          int    `json:"year"`
	TotalDays     int    `json:"total_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}
