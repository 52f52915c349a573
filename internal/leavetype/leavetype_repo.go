package leavetype

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_repo.go -destination=mock/leavetype_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lt *LeaveType) error
	FindAll(ctx context.Context) ([]LeaveType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*LeaveType, error)
	FindByCode(ctx context.Context, code string) (*LeaveType, error)
	ListActiveRequiringBalance(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
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

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	return r.session(ctx).Create(lt).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.session(ctx).Order("code ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*LeaveType, error) {
	var lt LeaveType
	err := r.session(ctx).First(&lt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*LeaveType, error) {
	var lt LeaveType
	err := r.session(ctx).First(&lt, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &lt, nil
}

func (r *repository) ListActiveRequiringBalance(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.session(ctx).
		Where("is_active = ? AND requires_balance = ?", true, true).
		Order("code ASC").
		Find(&types).Error
	return types, err
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	return r.session(ctx).Save(lt).Error
}
