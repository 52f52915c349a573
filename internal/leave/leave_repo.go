package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*LeaveRequestView, error)
	FindAll(ctx context.Context) ([]LeaveRequestView, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequestView, error)
	FindByStatus(ctx context.Context, status string) ([]LeaveRequestView, error)
	FindPendingByDepartment(ctx context.Context, departmentID uuid.UUID) ([]LeaveRequestView, error)
	HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error)
	LockEmployee(ctx context.Context, employeeID uuid.UUID) error
	TransitionStatus(ctx context.Context, id uuid.UUID, from []string, updates map[string]any) (int64, error)
	DeleteUnlessStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) session(ctx context.Context) *gorm.DB {
	s := r.db.WithContext(ctx)
	if r.tx != nil {
		s.Statement.ConnPool = r.tx
	}
	return s
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.session(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	var l LeaveRequest
	if err := r.session(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) views(ctx context.Context) *gorm.DB {
	return r.session(ctx).
		Table("leave_requests").
		Select(`leave_requests.*, leave_types.code AS leave_type_code, leave_types.name AS leave_type_name,
			employees.first_name || ' ' || employees.last_name AS employee_name`).
		Joins("JOIN leave_types ON leave_types.id = leave_requests.leave_type_id").
		Joins("JOIN employees ON employees.id = leave_requests.employee_id")
}

func (r *repository) FindViewByID(ctx context.Context, id uuid.UUID) (*LeaveRequestView, error) {
	var v LeaveRequestView
	if err := r.views(ctx).Where("leave_requests.id = ?", id).Take(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequestView, error) {
	var rows []LeaveRequestView
	err := r.views(ctx).
		Order("leave_requests.created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]LeaveRequestView, error) {
	var rows []LeaveRequestView
	err := r.views(ctx).
		Where("leave_requests.employee_id = ?", employeeID).
		Order("leave_requests.start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]LeaveRequestView, error) {
	var rows []LeaveRequestView
	err := r.views(ctx).
		Where("leave_requests.status = ?", status).
		Order("leave_requests.created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindPendingByDepartment(ctx context.Context, departmentID uuid.UUID) ([]LeaveRequestView, error) {
	var rows []LeaveRequestView
	err := r.views(ctx).
		Where("employees.department_id = ?", departmentID).
		Where("leave_requests.status = ?", StatusPending).
		Order("leave_requests.created_at ASC").
		Find(&rows).Error
	return rows, err
}

// HasOverlappingPeriod matches any request of the employee whose inclusive
// date range intersects [startDate, endDate] and that still counts as
// active.
func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeID uuid.UUID, startDate, endDate time.Time, excludeID *uuid.UUID) (bool, error) {
	db := r.session(ctx).
		Model(&LeaveRequest{}).
		Where("employee_id = ?", employeeID).
		Where("status NOT IN ?", inactive).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate)

	if excludeID != nil {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

// LockEmployee takes a row lock on the employee so concurrent creates for
// the same person serialize on the overlap and balance checks.
func (r *repository) LockEmployee(ctx context.Context, employeeID uuid.UUID) error {
	var row struct{ ID uuid.UUID }
	return r.session(ctx).
		Table("employees").
		Select("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", employeeID).
		Take(&row).Error
}

// TransitionStatus applies updates only while the row is still in one of
// the from states and returns the number of rows changed. Zero means another
// writer got there first.
func (r *repository) TransitionStatus(ctx context.Context, id uuid.UUID, from []string, updates map[string]any) (int64, error) {
	res := r.session(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteUnlessStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	res := r.session(ctx).
		Where("status <> ?", status).
		Delete(&LeaveRequest{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
