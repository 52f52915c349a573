package holiday

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *Holiday) error
	CreateBatch(ctx context.Context, holidays []Holiday) error
	FindAllActive(ctx context.Context) ([]Holiday, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Holiday, error)
	FindActiveByYear(ctx context.Context, year int) ([]Holiday, error)
	CountActiveByYear(ctx context.Context, year int) (int64, error)
	FindActiveInRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	Update(ctx context.Context, h *Holiday) error
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

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.session(ctx).Create(h).Error
}

// CreateBatch skips rows that collide on (date, name).
func (r *repository) CreateBatch(ctx context.Context, holidays []Holiday) error {
	if len(holidays) == 0 {
		return nil
	}
	return r.session(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(&holidays).Error
}

func (r *repository) FindAllActive(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := r.session(ctx).
		Where("is_active = ?", true).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Holiday, error) {
	var h Holiday
	if err := r.session(ctx).First(&h, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repository) FindActiveByYear(ctx context.Context, year int) ([]Holiday, error) {
	var holidays []Holiday
	err := r.session(ctx).
		Where("is_active = ? AND year = ?", true, year).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) CountActiveByYear(ctx context.Context, year int) (int64, error) {
	var count int64
	err := r.session(ctx).
		Model(&Holiday{}).
		Where("is_active = ? AND year = ?", true, year).
		Count(&count).Error
	return count, err
}

func (r *repository) FindActiveInRange(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	var holidays []Holiday
	err := r.session(ctx).
		Where("is_active = ?", true).
		Where("date BETWEEN ? AND ?", start.Format(time.DateOnly), end.Format(time.DateOnly)).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) Update(ctx context.Context, h *Holiday) error {
	return r.session(ctx).Save(h).Error
}
