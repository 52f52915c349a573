package approval

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock
type Directory interface {
	FindPerson(ctx context.Context, id uuid.UUID) (*Person, error)
	FindUnit(ctx context.Context, id uuid.UUID) (*Unit, error)
	ListUnitMembers(ctx context.Context, unitID uuid.UUID) ([]Person, error)
	ListActiveUnits(ctx context.Context) ([]Unit, error)
}

type personRow struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	DepartmentID    *uuid.UUID
	TitleName       *string
	WorksOnSaturday bool
	IsActive        bool
	IsSystemAdmin   bool
}

func (r personRow) toPerson() Person {
	p := Person{
		ID:              r.ID,
		FullName:        strings.TrimSpace(r.FirstName + " " + r.LastName),
		DepartmentID:    r.DepartmentID,
		WorksOnSaturday: r.WorksOnSaturday,
		IsActive:        r.IsActive,
		IsSystemAdmin:   r.IsSystemAdmin,
	}
	if r.TitleName != nil {
		p.Title = *r.TitleName
	}
	return p
}

type unitRow struct {
	ID        uuid.UUID
	Name      string
	ManagerID *uuid.UUID
	IsActive  bool
}

func (r unitRow) toUnit() Unit {
	return Unit{ID: r.ID, Name: r.Name, ManagerID: r.ManagerID, IsActive: r.IsActive}
}

const personColumns = `employees.id, employees.first_name, employees.last_name,
	employees.department_id, titles.name AS title_name, employees.works_on_saturday,
	employees.is_active, employees.is_system_admin`

type directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) Directory {
	return &directory{db: db}
}

func (r *directory) people(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("employees").
		Select(personColumns).
		Joins("LEFT JOIN titles ON titles.id = employees.title_id AND titles.deleted_at IS NULL")
}

func (r *directory) FindPerson(ctx context.Context, id uuid.UUID) (*Person, error) {
	var row personRow
	if err := r.people(ctx).Where("employees.id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	p := row.toPerson()
	return &p, nil
}

func (r *directory) FindUnit(ctx context.Context, id uuid.UUID) (*Unit, error) {
	var row unitRow
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("id, name, manager_id, is_active").
		Where("id = ? AND deleted_at IS NULL", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	u := row.toUnit()
	return &u, nil
}

// ListUnitMembers returns active, non-system employees of the unit.
func (r *directory) ListUnitMembers(ctx context.Context, unitID uuid.UUID) ([]Person, error) {
	var rows []personRow
	err := r.people(ctx).
		Where("employees.department_id = ?", unitID).
		Where("employees.is_active = ? AND employees.is_system_admin = ?", true, false).
		Order("employees.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	people := make([]Person, len(rows))
	for i, row := range rows {
		people[i] = row.toPerson()
	}
	return people, nil
}

func (r *directory) ListActiveUnits(ctx context.Context) ([]Unit, error) {
	var rows []unitRow
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("id, name, manager_id, is_active").
		Where("is_active = ? AND deleted_at IS NULL", true).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	units := make([]Unit, len(rows))
	for i, row := range rows {
		units[i] = row.toUnit()
	}
	return units, nil
}
