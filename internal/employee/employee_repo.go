package employee

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Deactivate(ctx context.Context, id uuid.UUID) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.session(ctx).Omit("Department", "Title").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.session(ctx).
		Preload("Department").
		Preload("Title").
		Order("first_name ASC, last_name ASC").
		Find(&empls).Error
	return empls, err
}

// FindOptions lists active employees with only the columns a picker needs.
func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.session(ctx).
		Select("id", "first_name", "last_name", "email", "employee_number", "department_id", "title_id", "is_active", "role").
		Where("is_active = ?", true).
		Order("first_name ASC, last_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	var empl Employee
	err := r.session(ctx).
		Preload("Department").
		Preload("Title").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.session(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&empl).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.session(ctx).Omit("Department", "Title").Save(empl).Error
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := r.session(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
