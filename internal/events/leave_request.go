package events

import "time"

const LeaveRequestTopic = "leave.requests.v1"

const (
	LeaveRequestCreated       = "leave_request.created"
	LeaveRequestStatusChanged = "leave_request.status_changed"
)

type LeaveRequestCreatedEvent struct {
	EventType           string    `json:"event_type"`
	RequestID           string    `json:"request_id,omitempty"`
	LeaveRequestID      string    `json:"leave_request_id"`
	EmployeeID          string    `json:"employee_id"`
	LeaveTypeID         string    `json:"leave_type_id"`
	StartDate           string    `json:"start_date"`
	EndDate             string    `json:"end_date"`
	TotalDays           int       `json:"total_days"`
	DepartmentManagerID string    `json:"department_manager_id"`
	OccurredAt          time.Time `json:"occurred_at"`
}

type LeaveRequestStatusChangedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	EmployeeID     string    `json:"employee_id"`
	FromStatus     string    `json:"from_status"`
	ToStatus       string    `json:"to_status"`
	ActorID        string    `json:"actor_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
