package approval

import (
	"context"
	"errors"

	approvalerrors "go-leave/internal/approval/errors"
	"go-leave/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	FindPerson(ctx context.Context, id uuid.UUID) (Person, error)
	DepartmentManagerFor(ctx context.Context, employee Person) (Person, error)
	HRManager(ctx context.Context) (Person, error)
	AuthorityOf(ctx context.Context, actor Person) (Authority, error)
	IsManagerClass(person Person) bool
}

type resolver struct {
	dir    Directory
	policy Policy
	logger *zap.Logger
}

func NewResolver(dir Directory, policy Policy, logger ...*zap.Logger) Resolver {
	l := zap.L().Named("approval.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.resolver")
	}
	return &resolver{dir: dir, policy: policy, logger: l}
}

func (r *resolver) IsManagerClass(person Person) bool {
	return r.policy.IsManagerClass(person)
}

func (r *resolver) FindPerson(ctx context.Context, id uuid.UUID) (Person, error) {
	p, err := r.dir.FindPerson(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Person{}, approvalerrors.ErrPersonNotFound
		}
		return Person{}, err
	}
	return *p, nil
}

func (r *resolver) DepartmentManagerFor(ctx context.Context, employee Person) (Person, error) {
	if employee.DepartmentID == nil {
		r.logger.Warn("department manager lookup without department",
			zap.String("employee_id", employee.ID.String()),
		)
		return Person{}, approvalerrors.ErrNoDepartment
	}

	unit, err := r.dir.FindUnit(ctx, *employee.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Person{}, approvalerrors.ErrNoDepartmentManager
		}
		return Person{}, err
	}

	members, err := r.dir.ListUnitMembers(ctx, unit.ID)
	if err != nil {
		return Person{}, err
	}

	manager, err := r.policy.PickDepartmentManager(*unit, members)
	if err != nil {
		r.logger.Warn("department manager not resolved",
			zap.String("employee_id", employee.ID.String()),
			zap.String("department_id", unit.ID.String()),
			zap.Error(err),
		)
		return Person{}, err
	}
	return manager, nil
}

func (r *resolver) HRManager(ctx context.Context) (Person, error) {
	unit, err := r.hrUnit(ctx)
	if err != nil {
		return Person{}, err
	}

	members, err := r.dir.ListUnitMembers(ctx, unit.ID)
	if err != nil {
		return Person{}, err
	}

	// The explicit manager may sit outside the HR unit itself.
	if unit.ManagerID != nil && !containsPerson(members, *unit.ManagerID) {
		explicit, err := r.dir.FindPerson(ctx, *unit.ManagerID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return Person{}, err
		}
		if explicit != nil {
			members = append(members, *explicit)
		}
	}

	manager, err := r.policy.PickHRManager(*unit, members)
	if err != nil {
		r.logger.Warn("hr manager not resolved",
			zap.String("department_id", unit.ID.String()),
			zap.Error(err),
		)
		return Person{}, err
	}
	return manager, nil
}

func (r *resolver) hrUnit(ctx context.Context) (*Unit, error) {
	if r.policy.HRDepartmentID != nil {
		unit, err := r.dir.FindUnit(ctx, *r.policy.HRDepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, approvalerrors.ErrHRDepartmentNotFound
			}
			return nil, err
		}
		return unit, nil
	}

	units, err := r.dir.ListActiveUnits(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		if r.policy.IsHRDepartment(u) {
			unit := u
			return &unit, nil
		}
	}
	return nil, approvalerrors.ErrHRDepartmentNotFound
}

// AuthorityOf resolves both managers from current data and reports which of
// them actor is. Resolution failures mean "no authority", not an error.
func (r *resolver) AuthorityOf(ctx context.Context, actor Person) (Authority, error) {
	var snap Snapshot

	if actor.DepartmentID != nil {
		manager, err := r.DepartmentManagerFor(ctx, actor)
		switch {
		case err == nil:
			snap.DepartmentManager = &manager
		case !isDomainError(err):
			return Authority{}, err
		}
	}

	hr, err := r.HRManager(ctx)
	switch {
	case err == nil:
		snap.HRManager = &hr
	case !isDomainError(err):
		return Authority{}, err
	}

	return r.policy.ResolveAuthority(actor, snap), nil
}

func containsPerson(people []Person, id uuid.UUID) bool {
	for _, p := range people {
		if p.ID == id {
			return true
		}
	}
	return false
}

func isDomainError(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr)
}
