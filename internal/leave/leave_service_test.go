package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-leave/internal/approval"
	approvalerrors "go-leave/internal/approval/errors"
	approvalMock "go-leave/internal/approval/mock"
	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	leaveMock "go-leave/internal/leave/mock"
	"go-leave/internal/leavebalance"
	leavebalanceMock "go-leave/internal/leavebalance/mock"
	"go-leave/internal/leavetype"
	kafkaMock "go-leave/internal/messaging/kafka/mock"
	"go-leave/internal/workday"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  leave.Service
	repo     *leaveMock.MockRepository
	resolver *approvalMock.MockResolver
	types    *leaveMock.MockLeaveTypeReader
	calendar *leaveMock.MockHolidayCalendar
	balances *leavebalanceMock.MockRepository
	outbox   *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		repo:     leaveMock.NewMockRepository(ctrl),
		resolver: approvalMock.NewMockResolver(ctrl),
		types:    leaveMock.NewMockLeaveTypeReader(ctrl),
		calendar: leaveMock.NewMockHolidayCalendar(ctrl),
		balances: leavebalanceMock.NewMockRepository(ctrl),
		outbox:   kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = leave.NewService(db, deps.repo, deps.resolver, deps.types, deps.calendar, deps.balances, deps.outbox)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func (d *serviceDeps) expectOutbox() {
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
}

type fixture struct {
	dept     uuid.UUID
	hrDept   uuid.UUID
	employee approval.Person
	manager  approval.Person
	hr       approval.Person
	annual   leavetype.LeaveType
	unpaid   leavetype.LeaveType
	sick     leavetype.LeaveType
}

func newFixture() fixture {
	dept := uuid.New()
	hrDept := uuid.New()
	return fixture{
		dept:     dept,
		hrDept:   hrDept,
		employee: approval.Person{ID: uuid.New(), FullName: "Ayse Yilmaz", DepartmentID: &dept, Title: "Developer", IsActive: true},
		manager:  approval.Person{ID: uuid.New(), FullName: "Mehmet Kaya", DepartmentID: &dept, Title: "Manager", IsActive: true},
		hr:       approval.Person{ID: uuid.New(), FullName: "Zeynep Demir", DepartmentID: &hrDept, Title: "Director", IsActive: true},
		annual: leavetype.LeaveType{
			ID: uuid.New(), Code: leavetype.CodeAnnual, Name: "Annual Leave",
			RequiresBalance: true, DeductsFromBalance: true, IsActive: true,
		},
		unpaid: leavetype.LeaveType{ID: uuid.New(), Code: leavetype.CodeUnpaid, Name: "Unpaid Leave", IsActive: true},
		sick:   leavetype.LeaveType{ID: uuid.New(), Code: "SICK", Name: "Sick Leave", IsActive: true},
	}
}

// 2026-03-02 is a Monday, 2026-03-07 the following Saturday.
func createReq(f fixture, lt leavetype.LeaveType, start, end string) leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		LeaveTypeID: lt.ID.String(),
		StartDate:   start,
		EndDate:     end,
		Reason:      "family visit",
	}
}

// expectCreatePrelude sets up the lookups that run before the transaction
// and the lock plus overlap check inside it.
func (d *serviceDeps) expectCreatePrelude(person approval.Person, lt leavetype.LeaveType, overlap bool) {
	d.resolver.EXPECT().FindPerson(gomock.Any(), person.ID).Return(person, nil)
	d.types.EXPECT().FindByID(gomock.Any(), lt.ID).Return(&lt, nil)
	d.calendar.EXPECT().ActiveDatesInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(workday.HolidaySet{}, nil)
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.balances.EXPECT().WithTx(gomock.Any()).Return(d.balances)
	d.repo.EXPECT().LockEmployee(gomock.Any(), person.ID).Return(nil)
	d.repo.EXPECT().HasOverlappingPeriod(gomock.Any(), person.ID, gomock.Any(), gomock.Any(), gomock.Nil()).Return(overlap, nil)
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success counts working days and assigns both approvers", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, true)
		deps.expectCreatePrelude(f.employee, f.annual, false)
		deps.balances.EXPECT().FindByKey(gomock.Any(), f.employee.ID, f.annual.ID, 2026).
			Return(&leavebalance.LeaveBalance{TotalDays: 14, UsedDays: 2}, nil)
		deps.resolver.EXPECT().DepartmentManagerFor(gomock.Any(), f.employee).Return(f.manager, nil)
		deps.resolver.EXPECT().HRManager(gomock.Any()).Return(f.hr, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, 5, l.TotalDays)
			assert.Equal(t, leave.StatusPending, l.Status)
			assert.Equal(t, f.manager.ID, *l.DepartmentManagerID)
			assert.Equal(t, f.hr.ID, *l.HRManagerID)
			return nil
		})
		deps.expectOutbox()

		resp, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.annual, "2026-03-02", "2026-03-07"))

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
		assert.Equal(t, f.employee.ID.String(), resp.EmployeeID)
		assert.Equal(t, "ANNUAL", resp.LeaveTypeCode)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("saturday worker is billed for saturday", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		f.employee.WorksOnSaturday = true

		expectTx(t, deps.sqlMock, true)
		deps.expectCreatePrelude(f.employee, f.sick, false)
		deps.resolver.EXPECT().DepartmentManagerFor(gomock.Any(), f.employee).Return(f.manager, nil)
		deps.resolver.EXPECT().HRManager(gomock.Any()).Return(f.hr, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.expectOutbox()

		resp, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.sick, "2026-03-02", "2026-03-07"))

		assert.NoError(t, err)
		assert.Equal(t, 6, resp.TotalDays)
	})

	t.Run("holidays are not billed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, true)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.employee.ID).Return(f.employee, nil)
		deps.types.EXPECT().FindByID(gomock.Any(), f.sick.ID).Return(&f.sick, nil)
		deps.calendar.EXPECT().ActiveDatesInRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(workday.NewHolidaySet(time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)), nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.balances.EXPECT().WithTx(gomock.Any()).Return(deps.balances)
		deps.repo.EXPECT().LockEmployee(gomock.Any(), f.employee.ID).Return(nil)
		deps.repo.EXPECT().HasOverlappingPeriod(gomock.Any(), f.employee.ID, gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		deps.resolver.EXPECT().DepartmentManagerFor(gomock.Any(), f.employee).Return(f.manager, nil)
		deps.resolver.EXPECT().HRManager(gomock.Any()).Return(f.hr, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.expectOutbox()

		resp, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.sick, "2026-03-02", "2026-03-06"))

		assert.NoError(t, err)
		assert.Equal(t, 4, resp.TotalDays)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, false)
		deps.expectCreatePrelude(f.employee, f.annual, false)
		deps.balances.EXPECT().FindByKey(gomock.Any(), f.employee.ID, f.annual.ID, 2026).
			Return(&leavebalance.LeaveBalance{TotalDays: 14, UsedDays: 12}, nil)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.annual, "2026-03-02", "2026-03-04"))

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing balance row counts as empty", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, false)
		deps.expectCreatePrelude(f.employee, f.annual, false)
		deps.balances.EXPECT().FindByKey(gomock.Any(), f.employee.ID, f.annual.ID, 2026).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.annual, "2026-03-02", "2026-03-02"))

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("unpaid leave blocked while annual leave remains", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, false)
		deps.expectCreatePrelude(f.employee, f.unpaid, false)
		deps.types.EXPECT().FindByCode(gomock.Any(), leavetype.CodeAnnual).Return(&f.annual, nil)
		deps.balances.EXPECT().FindByKey(gomock.Any(), f.employee.ID, f.annual.ID, 2026).
			Return(&leavebalance.LeaveBalance{TotalDays: 14, UsedDays: 11}, nil)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.unpaid, "2026-03-02", "2026-03-03"))

		assert.ErrorIs(t, err, leaveerrors.ErrUnpaidLeaveBlocked)
	})

	t.Run("unpaid leave allowed once annual leave is used up", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, true)
		deps.expectCreatePrelude(f.employee, f.unpaid, false)
		deps.types.EXPECT().FindByCode(gomock.Any(), leavetype.CodeAnnual).Return(&f.annual, nil)
		deps.balances.EXPECT().FindByKey(gomock.Any(), f.employee.ID, f.annual.ID, 2026).
			Return(&leavebalance.LeaveBalance{TotalDays: 14, UsedDays: 14}, nil)
		deps.resolver.EXPECT().DepartmentManagerFor(gomock.Any(), f.employee).Return(f.manager, nil)
		deps.resolver.EXPECT().HRManager(gomock.Any()).Return(f.hr, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.expectOutbox()

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.unpaid, "2026-03-02", "2026-03-03"))

		assert.NoError(t, err)
	})

	t.Run("fails closed without department manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, false)
		deps.expectCreatePrelude(f.employee, f.sick, false)
		deps.resolver.EXPECT().DepartmentManagerFor(gomock.Any(), f.employee).Return(approval.Person{}, approvalerrors.ErrNoDepartmentManager)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.sick, "2026-03-02", "2026-03-03"))

		assert.ErrorIs(t, err, approvalerrors.ErrNoDepartmentManager)
	})

	t.Run("overlap", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, false)
		deps.expectCreatePrelude(f.employee, f.sick, true)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.sick, "2026-03-02", "2026-03-03"))

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("zero working days", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, false)
		deps.expectCreatePrelude(f.employee, f.sick, false)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.sick, "2026-03-01", "2026-03-01"))

		assert.ErrorIs(t, err, leaveerrors.ErrNoWorkingDays)
	})

	t.Run("inactive employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		f.employee.IsActive = false

		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.employee.ID).Return(f.employee, nil)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.sick, "2026-03-02", "2026-03-03"))

		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeInactive)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.employee.ID).Return(f.employee, nil)
		deps.types.EXPECT().FindByID(gomock.Any(), f.sick.ID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.sick, "2026-03-02", "2026-03-03"))

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveTypeNotFound)
	})

	t.Run("end before start", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.sick, "2026-03-05", "2026-03-02"))

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}

func pendingRequest(f fixture, lt leavetype.LeaveType, status string) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:                  uuid.New(),
		EmployeeID:          f.employee.ID,
		LeaveTypeID:         lt.ID,
		StartDate:           time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2026, time.March, 6, 0, 0, 0, 0, time.UTC),
		TotalDays:           5,
		Status:              status,
		DepartmentManagerID: &f.manager.ID,
		HRManagerID:         &f.hr.ID,
	}
}

func TestLeaveService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("department manager approves pending request", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusPending)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.manager.ID).Return(f.manager, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.employee.ID).Return(f.employee, nil)
		deps.repo.EXPECT().TransitionStatus(gomock.Any(), l.ID, []string{leave.StatusPending}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ []string, updates map[string]any) (int64, error) {
				assert.Equal(t, leave.StatusApprovedByDepartmentManager, updates["status"])
				assert.Contains(t, updates, "department_manager_approval_date")
				return 1, nil
			})
		deps.expectOutbox()

		resp, err := deps.service.UpdateStatus(ctx, f.manager.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status:   leave.StatusApprovedByDepartmentManager,
			Comments: "ok",
		}, false)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApprovedByDepartmentManager, resp.Status)
		assert.NotNil(t, resp.DepartmentManagerApprovalDate)
		assert.Equal(t, "ok", *resp.DepartmentManagerComments)
	})

	t.Run("hr cannot approve a pending request", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusPending)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)

		_, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, true)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("hr approval increments the ledger once", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByDepartmentManager)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.hr.ID).Return(f.hr, nil)
		deps.resolver.EXPECT().IsManagerClass(f.hr).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.hr).Return(approval.Authority{IsHRManager: true}, nil)
		deps.repo.EXPECT().TransitionStatus(gomock.Any(), l.ID, []string{leave.StatusApprovedByDepartmentManager}, gomock.Any()).Return(int64(1), nil)
		deps.types.EXPECT().FindByID(gomock.Any(), f.annual.ID).Return(&f.annual, nil)
		deps.balances.EXPECT().WithTx(gomock.Any()).Return(deps.balances)
		deps.balances.EXPECT().Increment(gomock.Any(), f.employee.ID, f.annual.ID, 2026, 5).Return(true, nil).Times(1)
		deps.expectOutbox()

		resp, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, true)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApprovedByHRManager, resp.Status)
		assert.Equal(t, f.hr.ID.String(), *resp.HRManagerID)
		assert.NotNil(t, resp.HRManagerApprovalDate)
	})

	t.Run("second hr approval conflicts without touching the ledger", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByHRManager)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)

		_, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, true)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("lost compare-and-swap conflicts without touching the ledger", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByDepartmentManager)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.hr.ID).Return(f.hr, nil)
		deps.resolver.EXPECT().IsManagerClass(f.hr).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.hr).Return(approval.Authority{IsHRManager: true}, nil)
		deps.repo.EXPECT().TransitionStatus(gomock.Any(), l.ID, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, true)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("missing ledger row is skipped", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByDepartmentManager)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.hr.ID).Return(f.hr, nil)
		deps.resolver.EXPECT().IsManagerClass(f.hr).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.hr).Return(approval.Authority{IsHRManager: true}, nil)
		deps.repo.EXPECT().TransitionStatus(gomock.Any(), l.ID, gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.types.EXPECT().FindByID(gomock.Any(), f.annual.ID).Return(&f.annual, nil)
		deps.balances.EXPECT().WithTx(gomock.Any()).Return(deps.balances)
		deps.balances.EXPECT().Increment(gomock.Any(), f.employee.ID, f.annual.ID, 2026, 5).Return(false, nil)
		deps.expectOutbox()

		_, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, true)

		assert.NoError(t, err)
	})

	t.Run("non deducting type leaves the ledger alone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.sick, leave.StatusApprovedByDepartmentManager)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.hr.ID).Return(f.hr, nil)
		deps.resolver.EXPECT().IsManagerClass(f.hr).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.hr).Return(approval.Authority{IsHRManager: true}, nil)
		deps.repo.EXPECT().TransitionStatus(gomock.Any(), l.ID, gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.types.EXPECT().FindByID(gomock.Any(), f.sick.ID).Return(&f.sick, nil)
		deps.expectOutbox()

		_, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, true)

		assert.NoError(t, err)
	})

	t.Run("hr rejection does not deduct", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByDepartmentManager)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.hr.ID).Return(f.hr, nil)
		deps.resolver.EXPECT().IsManagerClass(f.hr).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.hr).Return(approval.Authority{IsHRManager: true}, nil)
		deps.repo.EXPECT().TransitionStatus(gomock.Any(), l.ID, gomock.Any(), gomock.Any()).Return(int64(1), nil)
		deps.expectOutbox()

		resp, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status:   leave.StatusRejectedByHRManager,
			Comments: "team capacity",
		}, true)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejectedByHRManager, resp.Status)
	})

	t.Run("department step by another manager is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusPending)
		other := approval.Person{ID: uuid.New(), DepartmentID: &f.dept, Title: "Manager", IsActive: true}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), other.ID).Return(other, nil)

		_, err := deps.service.UpdateStatus(ctx, other.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByDepartmentManager,
		}, false)

		assert.ErrorIs(t, err, leaveerrors.ErrNotAssignedApprover)
	})

	t.Run("assigned manager who moved department is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusPending)
		moved := f.manager
		moved.DepartmentID = &f.hrDept

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.manager.ID).Return(moved, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.employee.ID).Return(f.employee, nil)

		_, err := deps.service.UpdateStatus(ctx, f.manager.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByDepartmentManager,
		}, false)

		assert.ErrorIs(t, err, leaveerrors.ErrNotAssignedApprover)
	})

	t.Run("hr step by someone who is not the hr manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByDepartmentManager)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.manager.ID).Return(f.manager, nil)
		deps.resolver.EXPECT().IsManagerClass(f.manager).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.manager).Return(approval.Authority{IsDepartmentManager: true}, nil)

		_, err := deps.service.UpdateStatus(ctx, f.manager.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, true)

		assert.ErrorIs(t, err, leaveerrors.ErrNotHRManager)
	})

	t.Run("stage flag must match status", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		_, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), uuid.NewString(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, false)

		assert.ErrorIs(t, err, leaveerrors.ErrStageMismatch)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		id := uuid.New()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, f.manager.ID.String(), id.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusRejectedByDepartmentManager,
		}, false)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels after department approval", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByDepartmentManager)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.repo.EXPECT().TransitionStatus(gomock.Any(), l.ID,
			[]string{leave.StatusPending, leave.StatusApprovedByDepartmentManager}, gomock.Any()).Return(int64(1), nil)
		deps.expectOutbox()

		resp, err := deps.service.Cancel(ctx, f.employee.ID.String(), l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusCancelled, resp.Status)
	})

	t.Run("someone else cannot cancel", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusPending)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)

		_, err := deps.service.Cancel(ctx, f.manager.ID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)
	})

	t.Run("terminal request cannot be cancelled", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByHRManager)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)

		_, err := deps.service.Cancel(ctx, f.employee.ID.String(), l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("hr approved request is kept", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByHRManager)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)

		err := deps.service.Delete(ctx, l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrApprovedLeaveImmutable)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusRejectedByHRManager)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.repo.EXPECT().DeleteUnlessStatus(gomock.Any(), l.ID, leave.StatusApprovedByHRManager).Return(int64(1), nil)

		assert.NoError(t, deps.service.Delete(ctx, l.ID.String()))
	})
}

func TestLeaveService_PendingQueues(t *testing.T) {
	ctx := context.Background()

	t.Run("non manager sees an empty department queue", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.employee.ID).Return(f.employee, nil)
		deps.resolver.EXPECT().IsManagerClass(f.employee).Return(false)

		resp, err := deps.service.GetPendingForDepartmentManager(ctx, f.employee.ID.String())

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("manager sees the department queue", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusPending)

		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.manager.ID).Return(f.manager, nil)
		deps.resolver.EXPECT().IsManagerClass(f.manager).Return(true)
		deps.repo.EXPECT().FindPendingByDepartment(gomock.Any(), f.dept).Return([]leave.LeaveRequestView{
			{LeaveRequest: *l, EmployeeName: "Ayse Yilmaz"},
		}, nil)

		resp, err := deps.service.GetPendingForDepartmentManager(ctx, f.manager.ID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Ayse Yilmaz", resp[0].EmployeeName)
	})

	t.Run("hr queue is forbidden to others", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.manager.ID).Return(f.manager, nil)
		deps.resolver.EXPECT().IsManagerClass(f.manager).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.manager).Return(approval.Authority{IsDepartmentManager: true}, nil)

		_, err := deps.service.GetPendingForHrManager(ctx, f.manager.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotHRManager)
	})

	t.Run("hr manager sees department approved requests", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.hr.ID).Return(f.hr, nil)
		deps.resolver.EXPECT().IsManagerClass(f.hr).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.hr).Return(approval.Authority{IsHRManager: true}, nil)
		deps.repo.EXPECT().FindByStatus(gomock.Any(), leave.StatusApprovedByDepartmentManager).Return(nil, nil)

		resp, err := deps.service.GetPendingForHrManager(ctx, f.hr.ID.String())

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestLeaveService_BalanceYearFollowsStartDate(t *testing.T) {
	ctx := context.Background()

	// 2026-12-28 is a Monday; the range runs into 2027-01-01, a Friday.
	t.Run("create checks the start year ledger row", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, true)
		deps.expectCreatePrelude(f.employee, f.annual, false)
		deps.balances.EXPECT().FindByKey(gomock.Any(), f.employee.ID, f.annual.ID, 2026).
			Return(&leavebalance.LeaveBalance{TotalDays: 14, UsedDays: 9}, nil)
		deps.resolver.EXPECT().DepartmentManagerFor(gomock.Any(), f.employee).Return(f.manager, nil)
		deps.resolver.EXPECT().HRManager(gomock.Any()).Return(f.hr, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.expectOutbox()

		resp, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.annual, "2026-12-28", "2027-01-01"))

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.TotalDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing start year row is not covered by next year", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()

		expectTx(t, deps.sqlMock, false)
		deps.expectCreatePrelude(f.employee, f.annual, false)
		deps.balances.EXPECT().FindByKey(gomock.Any(), f.employee.ID, f.annual.ID, 2026).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, f.employee.ID.String(), createReq(f, f.annual, "2026-12-28", "2027-01-01"))

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("hr approval deducts from the start year", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		f := newFixture()
		l := pendingRequest(f, f.annual, leave.StatusApprovedByDepartmentManager)
		l.StartDate = time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC)
		l.EndDate = time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
		deps.resolver.EXPECT().FindPerson(gomock.Any(), f.hr.ID).Return(f.hr, nil)
		deps.resolver.EXPECT().IsManagerClass(f.hr).Return(true)
		deps.resolver.EXPECT().AuthorityOf(gomock.Any(), f.hr).Return(approval.Authority{IsHRManager: true}, nil)
		deps.repo.EXPECT().TransitionStatus(gomock.Any(), l.ID, []string{leave.StatusApprovedByDepartmentManager}, gomock.Any()).Return(int64(1), nil)
		deps.types.EXPECT().FindByID(gomock.Any(), f.annual.ID).Return(&f.annual, nil)
		deps.balances.EXPECT().WithTx(gomock.Any()).Return(deps.balances)
		deps.balances.EXPECT().Increment(gomock.Any(), f.employee.ID, f.annual.ID, 2026, 5).Return(true, nil)
		deps.expectOutbox()

		_, err := deps.service.UpdateStatus(ctx, f.hr.ID.String(), l.ID.String(), leave.UpdateLeaveStatusRequest{
			Status: leave.StatusApprovedByHRManager,
		}, true)

		assert.NoError(t, err)
	})
}
