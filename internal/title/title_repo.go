package title

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=title_repo.go -destination=mock/title_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Title) error
	FindAll(ctx context.Context) ([]Title, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Title, error)
	Update(ctx context.Context, t *Title) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAssigned(ctx context.Context, id uuid.UUID) (int64, error)
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

func (r *repository) Create(ctx context.Context, t *Title) error {
	return r.session(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Title, error) {
	var titles []Title
	err := r.session(ctx).Order("name ASC").Find(&titles).Error
	return titles, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Title, error) {
	var t Title
	if err := r.session(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Title) error {
	return r.session(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.session(ctx).Delete(&Title{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountAssigned(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.session(ctx).
		Table("employees").
		Where("title_id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count, err
}
