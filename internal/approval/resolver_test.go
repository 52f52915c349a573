package approval

import (
	"context"
	"errors"
	"testing"

	approvalerrors "go-leave/internal/approval/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDirectory struct {
	people  map[uuid.UUID]Person
	units   map[uuid.UUID]Unit
	listErr error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{people: map[uuid.UUID]Person{}, units: map[uuid.UUID]Unit{}}
}

func (f *fakeDirectory) add(p Person) Person {
	f.people[p.ID] = p
	return p
}

func (f *fakeDirectory) FindPerson(_ context.Context, id uuid.UUID) (*Person, error) {
	p, ok := f.people[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeDirectory) FindUnit(_ context.Context, id uuid.UUID) (*Unit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeDirectory) ListUnitMembers(_ context.Context, unitID uuid.UUID) ([]Person, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []Person
	for _, p := range f.people {
		if p.DepartmentID != nil && *p.DepartmentID == unitID && p.IsActive && !p.IsSystemAdmin {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeDirectory) ListActiveUnits(_ context.Context) ([]Unit, error) {
	var out []Unit
	for _, u := range f.units {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

type directoryFixture struct {
	dir     *fakeDirectory
	eng     Unit
	hr      Unit
	dev     Person
	manager Person
	hrMgr   Person
}

func newDirectoryFixture() directoryFixture {
	dir := newFakeDirectory()
	eng := Unit{ID: uuid.New(), Name: "Engineering", IsActive: true}
	hr := Unit{ID: uuid.New(), Name: "Human Resources", IsActive: true}
	dir.units[eng.ID] = eng
	dir.units[hr.ID] = hr

	return directoryFixture{
		dir:     dir,
		eng:     eng,
		hr:      hr,
		dev:     dir.add(person(eng.ID, "Engineer")),
		manager: dir.add(person(eng.ID, "Manager")),
		hrMgr:   dir.add(person(hr.ID, "Director")),
	}
}

func TestResolver_FindPerson(t *testing.T) {
	fx := newDirectoryFixture()
	r := NewResolver(fx.dir, DefaultPolicy())

	got, err := r.FindPerson(context.Background(), fx.dev.ID)
	require.NoError(t, err)
	assert.Equal(t, fx.dev.ID, got.ID)

	_, err = r.FindPerson(context.Background(), uuid.New())
	assert.ErrorIs(t, err, approvalerrors.ErrPersonNotFound)
}

func TestResolver_DepartmentManagerFor(t *testing.T) {
	fx := newDirectoryFixture()
	r := NewResolver(fx.dir, DefaultPolicy())

	got, err := r.DepartmentManagerFor(context.Background(), fx.dev)
	require.NoError(t, err)
	assert.Equal(t, fx.manager.ID, got.ID)

	t.Run("no department", func(t *testing.T) {
		loose := fx.dev
		loose.DepartmentID = nil
		_, err := r.DepartmentManagerFor(context.Background(), loose)
		assert.ErrorIs(t, err, approvalerrors.ErrNoDepartment)
	})

	t.Run("unknown department", func(t *testing.T) {
		lost := fx.dev
		other := uuid.New()
		lost.DepartmentID = &other
		_, err := r.DepartmentManagerFor(context.Background(), lost)
		assert.ErrorIs(t, err, approvalerrors.ErrNoDepartmentManager)
	})

	t.Run("infrastructure error is passed through", func(t *testing.T) {
		boom := errors.New("db down")
		fx.dir.listErr = boom
		defer func() { fx.dir.listErr = nil }()

		_, err := r.DepartmentManagerFor(context.Background(), fx.dev)
		assert.ErrorIs(t, err, boom)
	})
}

func TestResolver_HRManager(t *testing.T) {
	t.Run("by name", func(t *testing.T) {
		fx := newDirectoryFixture()
		r := NewResolver(fx.dir, DefaultPolicy())

		got, err := r.HRManager(context.Background())
		require.NoError(t, err)
		assert.Equal(t, fx.hrMgr.ID, got.ID)
	})

	t.Run("by configured id", func(t *testing.T) {
		fx := newDirectoryFixture()
		people := Unit{ID: uuid.New(), Name: "People Ops", IsActive: true}
		fx.dir.units[people.ID] = people
		lead := fx.dir.add(person(people.ID, "Manager"))

		p := DefaultPolicy()
		p.HRDepartmentID = &people.ID
		r := NewResolver(fx.dir, p)

		got, err := r.HRManager(context.Background())
		require.NoError(t, err)
		assert.Equal(t, lead.ID, got.ID)
	})

	t.Run("explicit manager outside the unit", func(t *testing.T) {
		fx := newDirectoryFixture()
		hr := fx.hr
		hr.ManagerID = &fx.manager.ID
		fx.dir.units[hr.ID] = hr
		r := NewResolver(fx.dir, DefaultPolicy())

		got, err := r.HRManager(context.Background())
		require.NoError(t, err)
		assert.Equal(t, fx.manager.ID, got.ID)
	})

	t.Run("no hr department", func(t *testing.T) {
		fx := newDirectoryFixture()
		delete(fx.dir.units, fx.hr.ID)
		r := NewResolver(fx.dir, DefaultPolicy())

		_, err := r.HRManager(context.Background())
		assert.ErrorIs(t, err, approvalerrors.ErrHRDepartmentNotFound)
	})

	t.Run("no manager in hr", func(t *testing.T) {
		fx := newDirectoryFixture()
		delete(fx.dir.people, fx.hrMgr.ID)
		r := NewResolver(fx.dir, DefaultPolicy())

		_, err := r.HRManager(context.Background())
		assert.ErrorIs(t, err, approvalerrors.ErrNoHRManager)
	})
}

func TestResolver_AuthorityOf(t *testing.T) {
	fx := newDirectoryFixture()
	r := NewResolver(fx.dir, DefaultPolicy())
	ctx := context.Background()

	auth, err := r.AuthorityOf(ctx, fx.manager)
	require.NoError(t, err)
	assert.Equal(t, Authority{IsDepartmentManager: true}, auth)

	auth, err = r.AuthorityOf(ctx, fx.hrMgr)
	require.NoError(t, err)
	assert.True(t, auth.IsHRManager)
	assert.True(t, auth.IsDepartmentManager, "the HR manager also manages the HR department")

	auth, err = r.AuthorityOf(ctx, fx.dev)
	require.NoError(t, err)
	assert.Equal(t, Authority{}, auth)

	t.Run("missing hr manager is not an error", func(t *testing.T) {
		delete(fx.dir.people, fx.hrMgr.ID)
		auth, err := r.AuthorityOf(ctx, fx.manager)
		require.NoError(t, err)
		assert.Equal(t, Authority{IsDepartmentManager: true}, auth)
	})
}
