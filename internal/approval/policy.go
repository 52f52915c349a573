package approval

import (
	approvalerrors "go-leave/internal/approval/errors"

	"github.com/google/uuid"
)

// Person is the directory view of an employee needed to decide authority.
type Person struct {
	ID              uuid.UUID
	FullName        string
	DepartmentID    *uuid.UUID
	Title           string
	WorksOnSaturday bool
	IsActive        bool
	IsSystemAdmin   bool
}

// Unit is the directory view of a department.
type Unit struct {
	ID        uuid.UUID
	Name      string
	ManagerID *uuid.UUID
	IsActive  bool
}

// Authority is what a person may do in the approval workflow right now.
type Authority struct {
	IsDepartmentManager bool
	IsHRManager         bool
}

// Snapshot carries the managers resolved from current directory state.
// Either may be nil when resolution failed.
type Snapshot struct {
	DepartmentManager *Person
	HRManager         *Person
}

type Policy struct {
	ManagerTitles     NameSet
	HRDepartmentID    *uuid.UUID
	HRDepartmentNames NameSet
}

func DefaultPolicy() Policy {
	return Policy{
		ManagerTitles:     NewNameSet(DefaultManagerTitles...),
		HRDepartmentNames: NewNameSet(DefaultHRDepartmentNames...),
	}
}

func (p Policy) IsManagerClass(person Person) bool {
	return p.ManagerTitles.Contains(person.Title)
}

// eligible reports whether person can hold an approver slot at all.
func eligible(person Person) bool {
	return person.IsActive && !person.IsSystemAdmin
}

func (p Policy) IsHRDepartment(unit Unit) bool {
	if p.HRDepartmentID != nil {
		return unit.ID == *p.HRDepartmentID
	}
	return unit.IsActive && p.HRDepartmentNames.Contains(unit.Name)
}

// PickDepartmentManager selects the approving manager among the members of
// unit. The title decides eligibility; the unit's manager reference only
// breaks ties between several manager-class members.
func (p Policy) PickDepartmentManager(unit Unit, members []Person) (Person, error) {
	var candidates []Person
	for _, m := range members {
		if m.DepartmentID == nil || *m.DepartmentID != unit.ID {
			continue
		}
		if eligible(m) && p.IsManagerClass(m) {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		return Person{}, approvalerrors.ErrNoDepartmentManager.WithDetails(map[string]any{
			"department_id": unit.ID.String(),
		})
	case 1:
		return candidates[0], nil
	}

	if unit.ManagerID != nil {
		for _, c := range candidates {
			if c.ID == *unit.ManagerID {
				return c, nil
			}
		}
	}
	return Person{}, approvalerrors.ErrAmbiguousDepartmentManager.WithDetails(map[string]any{
		"department_id": unit.ID.String(),
		"candidates":    len(candidates),
	})
}

// PickHRManager resolves the HR manager of the HR unit. An explicit manager
// reference on the unit wins over title inference.
func (p Policy) PickHRManager(unit Unit, members []Person) (Person, error) {
	if unit.ManagerID != nil {
		for _, m := range members {
			if m.ID == *unit.ManagerID && eligible(m) {
				return m, nil
			}
		}
	}

	manager, err := p.PickDepartmentManager(unit, members)
	if err != nil {
		return Person{}, approvalerrors.ErrNoHRManager
	}
	return manager, nil
}

// ResolveAuthority computes actor's approval authority from a snapshot of
// the current directory. It never consults stored request data.
func (p Policy) ResolveAuthority(actor Person, snap Snapshot) Authority {
	if !eligible(actor) || !p.IsManagerClass(actor) {
		return Authority{}
	}
	return Authority{
		IsDepartmentManager: snap.DepartmentManager != nil && snap.DepartmentManager.ID == actor.ID,
		IsHRManager:         snap.HRManager != nil && snap.HRManager.ID == actor.ID,
	}
}
