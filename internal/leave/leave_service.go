package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-leave/internal/approval"
	approvalerrors "go-leave/internal/approval/errors"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/leavebalance"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/workday"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LeaveTypeReader is the part of the leave type catalog the workflow reads.
type LeaveTypeReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*leavetype.LeaveType, error)
	FindByCode(ctx context.Context, code string) (*leavetype.LeaveType, error)
}

// HolidayCalendar supplies the active holidays of a date range.
type HolidayCalendar interface {
	ActiveDatesInRange(ctx context.Context, start, end time.Time) (workday.HolidaySet, error)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	GetMine(ctx context.Context, actorID string) ([]LeaveResponse, error)
	GetPendingForDepartmentManager(ctx context.Context, managerID string) ([]LeaveResponse, error)
	GetPendingForHrManager(ctx context.Context, actorID string) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, actorID, id string, req UpdateLeaveStatusRequest, isHrManager bool) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	resolver approval.Resolver
	types    LeaveTypeReader
	calendar HolidayCalendar
	balances leavebalance.Repository
	outbox   kafka.OutboxRepository
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	resolver approval.Resolver,
	types LeaveTypeReader,
	calendar HolidayCalendar,
	balances leavebalance.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		resolver: resolver,
		types:    types,
		calendar: calendar,
		balances: balances,
		outbox:   outboxRepo,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	in, err := validateCreateRequest(actorID, req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	employee, err := s.findPerson(ctx, in.employeeID, leaveerrors.ErrEmployeeNotFound)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !employee.IsActive {
		return LeaveResponse{}, leaveerrors.ErrEmployeeInactive
	}

	lt, err := s.types.FindByID(ctx, in.leaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		s.logger.Error("create leave find leave type failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !lt.IsActive {
		return LeaveResponse{}, leaveerrors.ErrLeaveTypeInactive
	}

	holidays, err := s.calendar.ActiveDatesInRange(ctx, in.startDate, in.endDate)
	if err != nil {
		s.logger.Error("create leave load holidays failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	btx := s.balances.WithTx(tx)

	if err := qtx.LockEmployee(ctx, employee.ID); err != nil {
		s.logger.Error("create leave lock employee failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, employee.ID, in.startDate, in.endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", employee.ID.String()),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	totalDays := workday.Count(in.startDate, in.endDate, employee.WorksOnSaturday, holidays)
	if totalDays <= 0 {
		return LeaveResponse{}, leaveerrors.ErrNoWorkingDays
	}

	// The whole range is booked against the start date's ledger year.
	year := in.startDate.Year()
	if lt.RequiresBalance {
		remaining, err := remainingDays(ctx, btx, employee.ID, lt.ID, year)
		if err != nil {
			s.logger.Error("create leave balance lookup failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		if remaining < totalDays {
			s.logger.Warn("create leave insufficient balance",
				zap.String("employee_id", employee.ID.String()),
				zap.Int("remaining_days", remaining),
				zap.Int("requested_days", totalDays),
			)
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance.WithDetails(map[string]any{
				"remaining_days": remaining,
				"requested_days": totalDays,
				"year":           year,
			})
		}
	}

	if lt.Code == leavetype.CodeUnpaid {
		if err := s.checkAnnualExhausted(ctx, btx, employee.ID, year); err != nil {
			return LeaveResponse{}, err
		}
	}

	deptManager, err := s.resolver.DepartmentManagerFor(ctx, employee)
	if err != nil {
		return LeaveResponse{}, err
	}
	hrManager, err := s.resolver.HRManager(ctx)
	if err != nil {
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:                  uuid.New(),
		EmployeeID:          employee.ID,
		LeaveTypeID:         lt.ID,
		StartDate:           in.startDate,
		EndDate:             in.endDate,
		TotalDays:           totalDays,
		Reason:              req.Reason,
		Status:              StatusPending,
		DepartmentManagerID: &deptManager.ID,
		HRManagerID:         &hrManager.ID,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	event := events.LeaveRequestCreatedEvent{
		EventType:           events.LeaveRequestCreated,
		RequestID:           rid,
		LeaveRequestID:      l.ID.String(),
		EmployeeID:          l.EmployeeID.String(),
		LeaveTypeID:         l.LeaveTypeID.String(),
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		TotalDays:           totalDays,
		DepartmentManagerID: deptManager.ID.String(),
		OccurredAt:          s.now().UTC(),
	}
	if err := s.enqueue(ctx, tx, l.ID, event.EventType, event); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", l.EmployeeID.String()),
		zap.Int("total_days", totalDays),
	)

	resp := mapToResponse(*l)
	resp.EmployeeName = employee.FullName
	resp.LeaveTypeCode = lt.Code
	resp.LeaveTypeName = lt.Name
	return resp, nil
}

// checkAnnualExhausted blocks unpaid leave while annual leave remains for
// the year. A missing annual type or balance row counts as exhausted.
func (s *service) checkAnnualExhausted(ctx context.Context, btx leavebalance.Repository, employeeID uuid.UUID, year int) error {
	annual, err := s.types.FindByCode(ctx, leavetype.CodeAnnual)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	remaining, err := remainingDays(ctx, btx, employeeID, annual.ID, year)
	if err != nil {
		return err
	}
	if remaining > 0 {
		s.logger.Warn("create leave unpaid blocked",
			zap.String("employee_id", employeeID.String()),
			zap.Int("annual_remaining_days", remaining),
		)
		return leaveerrors.ErrUnpaidLeaveBlocked.WithDetails(map[string]any{
			"annual_remaining_days": remaining,
			"year":                  year,
		})
	}
	return nil
}

func remainingDays(ctx context.Context, repo leavebalance.Repository, employeeID, leaveTypeID uuid.UUID, year int) (int, error) {
	b, err := repo.FindByKey(ctx, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return b.RemainingDays(), nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id string, req UpdateLeaveStatusRequest, isHrManager bool) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update leave status requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
		zap.Bool("is_hr_manager", isHrManager),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	if !isHRStage(req.Status) && !isDepartmentStage(req.Status) {
		return LeaveResponse{}, leaveerrors.ErrInvalidTargetStatus
	}
	if isHRStage(req.Status) != isHrManager {
		return LeaveResponse{}, leaveerrors.ErrStageMismatch
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	from := predecessorOf(req.Status)
	if l.Status != from {
		s.logger.Warn("update leave status invalid transition",
			zap.String("leave_id", id),
			zap.String("from_status", l.Status),
			zap.String("to_status", req.Status),
		)
		return LeaveResponse{}, invalidTransition(l.Status, req.Status)
	}

	actor, err := s.findPerson(ctx, actorUUID, leaveerrors.ErrEmployeeNotFound)
	if err != nil {
		return LeaveResponse{}, err
	}

	if isHrManager {
		err = s.authorizeHRManager(ctx, actor)
	} else {
		err = s.authorizeDepartmentManager(ctx, actor, l)
	}
	if err != nil {
		s.logger.Warn("update leave status unauthorized",
			zap.String("leave_id", id),
			zap.String("actor_id", actorID),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	now := s.now().UTC()
	var comments *string
	if req.Comments != "" {
		c := req.Comments
		comments = &c
	}

	updates := map[string]any{
		"status":     req.Status,
		"updated_at": now,
	}
	if isHrManager {
		updates["hr_manager_id"] = actor.ID
		updates["hr_manager_approval_date"] = now
		updates["hr_manager_comments"] = comments
		l.HRManagerID = &actor.ID
		l.HRManagerApprovalDate = &now
		l.HRManagerComments = comments
	} else {
		updates["department_manager_approval_date"] = now
		updates["department_manager_comments"] = comments
		l.DepartmentManagerApprovalDate = &now
		l.DepartmentManagerComments = comments
	}

	n, err := qtx.TransitionStatus(ctx, l.ID, []string{from}, updates)
	if err != nil {
		s.logger.Error("update leave status persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if n == 0 {
		s.logger.Warn("update leave status lost race", zap.String("leave_id", id))
		return LeaveResponse{}, invalidTransition(l.Status, req.Status)
	}
	l.Status = req.Status
	l.UpdatedAt = now

	if req.Status == StatusApprovedByHRManager {
		if err := s.deduct(ctx, tx, l); err != nil {
			return LeaveResponse{}, err
		}
	}

	event := events.LeaveRequestStatusChangedEvent{
		EventType:      events.LeaveRequestStatusChanged,
		RequestID:      rid,
		LeaveRequestID: l.ID.String(),
		EmployeeID:     l.EmployeeID.String(),
		FromStatus:     from,
		ToStatus:       req.Status,
		ActorID:        actor.ID.String(),
		OccurredAt:     now,
	}
	if err := s.enqueue(ctx, tx, l.ID, event.EventType, event); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave status commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("update leave status success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", req.Status),
	)
	return mapToResponse(*l), nil
}

// deduct books the approved days against the ledger. The ledger row must
// already exist; a missing row is logged and left alone.
func (s *service) deduct(ctx context.Context, tx *sql.Tx, l *LeaveRequest) error {
	lt, err := s.types.FindByID(ctx, l.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveTypeNotFound
		}
		return err
	}
	if !lt.DeductsFromBalance {
		return nil
	}

	year := l.StartDate.Year()
	ok, err := s.balances.WithTx(tx).Increment(ctx, l.EmployeeID, l.LeaveTypeID, year, l.TotalDays)
	if err != nil {
		s.logger.Error("update leave status ledger increment failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return err
	}
	if !ok {
		s.logger.Warn("update leave status ledger row missing, deduction skipped",
			zap.String("leave_id", l.ID.String()),
			zap.String("employee_id", l.EmployeeID.String()),
			zap.String("leave_type_id", l.LeaveTypeID.String()),
			zap.Int("year", year),
		)
	}
	return nil
}

// authorizeDepartmentManager checks the actor against the approver assigned
// at creation and against the requester's current department.
func (s *service) authorizeDepartmentManager(ctx context.Context, actor approval.Person, l *LeaveRequest) error {
	if l.DepartmentManagerID == nil || *l.DepartmentManagerID != actor.ID {
		return leaveerrors.ErrNotAssignedApprover
	}

	requester, err := s.findPerson(ctx, l.EmployeeID, leaveerrors.ErrEmployeeNotFound)
	if err != nil {
		return err
	}
	if actor.DepartmentID == nil || requester.DepartmentID == nil || *actor.DepartmentID != *requester.DepartmentID {
		return leaveerrors.ErrNotAssignedApprover
	}
	return nil
}

func (s *service) authorizeHRManager(ctx context.Context, actor approval.Person) error {
	if !s.resolver.IsManagerClass(actor) {
		return leaveerrors.ErrNotHRManager
	}
	auth, err := s.resolver.AuthorityOf(ctx, actor)
	if err != nil {
		return err
	}
	if !auth.IsHRManager {
		return leaveerrors.ErrNotHRManager
	}
	return nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("cancel leave requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.EmployeeID != actorUUID {
		s.logger.Warn("cancel leave by non-owner",
			zap.String("leave_id", id),
			zap.String("actor_id", actorID),
		)
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}
	if IsTerminal(l.Status) {
		return LeaveResponse{}, invalidTransition(l.Status, StatusCancelled)
	}

	now := s.now().UTC()
	n, err := qtx.TransitionStatus(ctx, l.ID, cancellable, map[string]any{
		"status":     StatusCancelled,
		"updated_at": now,
	})
	if err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if n == 0 {
		return LeaveResponse{}, invalidTransition(l.Status, StatusCancelled)
	}

	from := l.Status
	l.Status = StatusCancelled
	l.UpdatedAt = now

	event := events.LeaveRequestStatusChangedEvent{
		EventType:      events.LeaveRequestStatusChanged,
		RequestID:      rid,
		LeaveRequestID: l.ID.String(),
		EmployeeID:     l.EmployeeID.String(),
		FromStatus:     from,
		ToStatus:       StatusCancelled,
		ActorID:        actorID,
		OccurredAt:     now,
	}
	if err := s.enqueue(ctx, tx, l.ID, event.EventType, event); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("cancel leave success", zap.String("leave_id", id))
	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, leaveID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if l.Status == StatusApprovedByHRManager {
		return leaveerrors.ErrApprovedLeaveImmutable
	}

	n, err := qtx.DeleteUnlessStatus(ctx, leaveID, StatusApprovedByHRManager)
	if err != nil {
		s.logger.Error("delete leave failed", zap.String("leave_id", id), zap.Error(err))
		return err
	}
	if n == 0 {
		return leaveerrors.ErrApprovedLeaveImmutable
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete leave success", zap.String("leave_id", id), zap.String("status", l.Status))
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapViewsToResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	leaveID, err := uuid.Parse(id)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	v, err := s.repo.FindViewByID(ctx, leaveID)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapViewToResponse(*v), nil
}

func (s *service) GetMine(ctx context.Context, actorID string) ([]LeaveResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}
	rows, err := s.repo.FindByEmployee(ctx, actorUUID)
	if err != nil {
		return nil, err
	}
	return mapViewsToResponse(rows), nil
}

// GetPendingForDepartmentManager lists the pending requests of the caller's
// department. Callers without department authority get an empty list.
func (s *service) GetPendingForDepartmentManager(ctx context.Context, managerID string) ([]LeaveResponse, error) {
	managerUUID, err := uuid.Parse(managerID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}
	manager, err := s.findPerson(ctx, managerUUID, leaveerrors.ErrEmployeeNotFound)
	if err != nil {
		return nil, err
	}
	if manager.IsSystemAdmin || manager.DepartmentID == nil || !s.resolver.IsManagerClass(manager) {
		return []LeaveResponse{}, nil
	}

	rows, err := s.repo.FindPendingByDepartment(ctx, *manager.DepartmentID)
	if err != nil {
		return nil, err
	}
	return mapViewsToResponse(rows), nil
}

func (s *service) GetPendingForHrManager(ctx context.Context, actorID string) ([]LeaveResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}
	actor, err := s.findPerson(ctx, actorUUID, leaveerrors.ErrEmployeeNotFound)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeHRManager(ctx, actor); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByStatus(ctx, StatusApprovedByDepartmentManager)
	if err != nil {
		return nil, err
	}
	return mapViewsToResponse(rows), nil
}

func (s *service) findPerson(ctx context.Context, id uuid.UUID, notFound error) (approval.Person, error) {
	p, err := s.resolver.FindPerson(ctx, id)
	if err != nil {
		if errors.Is(err, approvalerrors.ErrPersonNotFound) {
			return approval.Person{}, notFound
		}
		return approval.Person{}, err
	}
	return p, nil
}

func (s *service) enqueue(ctx context.Context, tx *sql.Tx, leaveID uuid.UUID, eventType string, event any) error {
	if s.outbox == nil {
		return nil
	}

	outboxEvent, err := kafka.NewOutboxEvent(
		"leave_request", leaveID.String(), eventType, events.LeaveRequestTopic,
		contextutil.GetRequestID(ctx), event,
	)
	if err != nil {
		s.logger.Error("marshal leave event failed", zap.String("event_type", eventType), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("leave outbox persist failed",
			zap.String("leave_id", leaveID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

type createInput struct {
	employeeID  uuid.UUID
	leaveTypeID uuid.UUID
	startDate   time.Time
	endDate     time.Time
}

func validateCreateRequest(actorID string, req CreateLeaveRequest) (createInput, error) {
	var in createInput

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return in, leaveerrors.ErrInvalidActorID
	}
	in.employeeID = actorUUID
	if req.EmployeeID != "" {
		if in.employeeID, err = uuid.Parse(req.EmployeeID); err != nil {
			return in, leaveerrors.ErrInvalidEmployeeID
		}
	}
	if in.leaveTypeID, err = uuid.Parse(req.LeaveTypeID); err != nil {
		return in, leaveerrors.ErrInvalidLeaveTypeID
	}
	if in.startDate, err = parseDate(req.StartDate); err != nil {
		return in, err
	}
	if in.endDate, err = parseDate(req.EndDate); err != nil {
		return in, err
	}
	if in.startDate.After(in.endDate) {
		return in, leaveerrors.ErrInvalidDateRange
	}
	return in, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func invalidTransition(from, to string) error {
	return leaveerrors.ErrInvalidStatusTransition.WithDetails(map[string]any{
		"current_status": from,
		"target_status":  to,
	})
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}
	return err
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func formatID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:                            l.ID.String(),
		EmployeeID:                    l.EmployeeID.String(),
		LeaveTypeID:                   l.LeaveTypeID.String(),
		StartDate:                     l.StartDate.Format(time.DateOnly),
		EndDate:                       l.EndDate.Format(time.DateOnly),
		TotalDays:                     l.TotalDays,
		Reason:                        l.Reason,
		Status:                        l.Status,
		DepartmentManagerID:           formatID(l.DepartmentManagerID),
		HRManagerID:                   formatID(l.HRManagerID),
		DepartmentManagerApprovalDate: formatTime(l.DepartmentManagerApprovalDate),
		HRManagerApprovalDate:         formatTime(l.HRManagerApprovalDate),
		DepartmentManagerComments:     l.DepartmentManagerComments,
		HRManagerComments:             l.HRManagerComments,
		CreatedAt:                     l.CreatedAt.Format(time.RFC3339),
	}
}

func mapViewToResponse(v LeaveRequestView) LeaveResponse {
	resp := mapToResponse(v.LeaveRequest)
	resp.EmployeeName = v.EmployeeName
	resp.LeaveTypeCode = v.LeaveTypeCode
	resp.LeaveTypeName = v.LeaveTypeName
	return resp
}

func mapViewsToResponse(rows []LeaveRequestView) []LeaveResponse {
	resp := make([]LeaveResponse, len(rows))
	for i, v := range rows {
		resp[i] = mapViewToResponse(v)
	}
	return resp
}
