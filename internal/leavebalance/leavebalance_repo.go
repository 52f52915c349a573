package leavebalance

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leavebalance_repo.go -destination=mock/leavebalance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *LeaveBalance) error
	CreateMissing(ctx context.Context, balances []LeaveBalance) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveBalance, error)
	FindByKey(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error)
	ListByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) ([]BalanceView, error)
	ListByYear(ctx context.Context, year int) ([]BalanceView, error)
	SetTotal(ctx context.Context, id uuid.UUID, totalDays int) (bool, error)
	DeleteUnused(ctx context.Context, id uuid.UUID) (bool, error)
	Increment(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int) (bool, error)
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

func (r *repository) Create(ctx context.Context, b *LeaveBalance) error {
	return r.session(ctx).Create(b).Error
}

// CreateMissing inserts the rows whose (employee, leave type, year) key is
// still free and reports how many were written.
func (r *repository) CreateMissing(ctx context.Context, balances []LeaveBalance) (int64, error) {
	if len(balances) == 0 {
		return 0, nil
	}
	res := r.session(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type_id"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(&balances)
	return res.RowsAffected, res.Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveBalance, error) {
	var b LeaveBalance
	if err := r.session(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindByKey(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.session(ctx).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) views(ctx context.Context) *gorm.DB {
	return r.session(ctx).
		Table("leave_balances").
		Select(`leave_balances.*, leave_types.code AS leave_type_code, leave_types.name AS leave_type_name,
			employees.first_name || ' ' || employees.last_name AS employee_name`).
		Joins("JOIN leave_types ON leave_types.id = leave_balances.leave_type_id").
		Joins("JOIN employees ON employees.id = leave_balances.employee_id")
}

func (r *repository) ListByEmployeeYear(ctx context.Context, employeeID uuid.UUID, year int) ([]BalanceView, error) {
	var rows []BalanceView
	err := r.views(ctx).
		Where("leave_balances.employee_id = ? AND leave_balances.year = ?", employeeID, year).
		Order("leave_types.code ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByYear(ctx context.Context, year int) ([]BalanceView, error) {
	var rows []BalanceView
	err := r.views(ctx).
		Where("leave_balances.year = ?", year).
		Order("employees.last_name ASC, employees.first_name ASC, leave_types.code ASC").
		Find(&rows).Error
	return rows, err
}

// SetTotal writes total_days only, and only while it still covers
// used_days. used_days is never part of the statement, so a concurrent
// Increment cannot be overwritten. It reports false when no row matched.
func (r *repository) SetTotal(ctx context.Context, id uuid.UUID, totalDays int) (bool, error) {
	res := r.session(ctx).
		Model(&LeaveBalance{}).
		Where("id = ? AND used_days <= ?", id, totalDays).
		UpdateColumns(map[string]any{
			"total_days": totalDays,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteUnused removes the row only if nothing has been booked against it.
func (r *repository) DeleteUnused(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.session(ctx).
		Where("id = ? AND used_days = 0", id).
		Delete(&LeaveBalance{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Increment adds days to used_days in a single statement. It reports false
// when no row exists for the key; it never creates one.
func (r *repository) Increment(ctx context.Context, employeeID, leaveTypeID uuid.UUID, year, days int) (bool, error) {
	res := r.session(ctx).
		Model(&LeaveBalance{}).
		Where("employee_id = ? AND leave_type_id = ? AND year = ?", employeeID, leaveTypeID, year).
		UpdateColumns(map[string]any{
			"used_days":  gorm.Expr("used_days + ?", days),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
