package department

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActiveMembers(ctx context.Context, id uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) session(ctx context.Context) *gorm.DB {
	s := r.db.WithContext(ctx)
	if r.tx != nil {
		s.Statement.ConnPool = r.tx
	}
	return s
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.session(ctx).Create(dept).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.session(ctx).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	var dept Department
	if err := r.session(ctx).First(&dept, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) FindByName(ctx context.Context, name string) (*Department, error) {
	var dept Department
	if err := r.session(ctx).First(&dept, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.session(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.session(ctx).Delete(&Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountActiveMembers(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.session(ctx).
		Table("employees").
		Where("department_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count, err
}
