package leavebalance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	leavebalanceerrors "go-leave/internal/leavebalance/errors"
	"go-leave/internal/leavetype"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/pgerr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LeaveTypeLister is the slice of the leave type catalog needed to provision
// new balances.
type LeaveTypeLister interface {
	ListActiveRequiringBalance(ctx context.Context) ([]leavetype.LeaveType, error)
}

//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock
type Service interface {
	GetBalances(ctx context.Context, employeeID string, year *int) ([]BalanceResponse, error)
	GetAllForYear(ctx context.Context, year *int) ([]BalanceResponse, error)
	GetByID(ctx context.Context, id string) (BalanceResponse, error)
	Create(ctx context.Context, req CreateLeaveBalanceRequest) (BalanceResponse, error)
	UpdateTotal(ctx context.Context, id string, req UpdateLeaveBalanceRequest) (BalanceResponse, error)
	Delete(ctx context.Context, id string) error
	EnsureForEmployee(ctx context.Context, employeeID uuid.UUID, year int) (int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	types  LeaveTypeLister
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, types LeaveTypeLister, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, types, time.Now, logger...)
}

func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	types LeaveTypeLister,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{db: db, repo: repo, types: types, now: now, logger: l}
}

func (s *service) resolveYear(year *int) (int, error) {
	if year == nil {
		return s.now().Year(), nil
	}
	if *year < 1900 || *year > 2100 {
		return 0, leavebalanceerrors.ErrInvalidYear
	}
	return *year, nil
}

func (s *service) GetBalances(ctx context.Context, employeeID string, year *int) ([]BalanceResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, leavebalanceerrors.ErrInvalidEmployeeID
	}
	y, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByEmployeeYear(ctx, empID, y)
	if err != nil {
		s.logger.Error("get balances failed",
			zap.String("employee_id", employeeID),
			zap.Int("year", y),
			zap.Error(err),
		)
		return nil, err
	}
	return mapViewsToResponse(rows), nil
}

func (s *service) GetAllForYear(ctx context.Context, year *int) ([]BalanceResponse, error) {
	y, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByYear(ctx, y)
	if err != nil {
		s.logger.Error("get all balances failed", zap.Int("year", y), zap.Error(err))
		return nil, err
	}
	return mapViewsToResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, id string) (BalanceResponse, error) {
	bID, err := uuid.Parse(id)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidBalanceID
	}
	b, err := s.repo.FindByID(ctx, bID)
	if err != nil {
		return BalanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*b), nil
}

func (s *service) Create(ctx context.Context, req CreateLeaveBalanceRequest) (BalanceResponse, error) {
	s.logger.Debug("create leave balance requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("year", req.Year),
	)

	empID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	ltID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return BalanceResponse{}, apperror.InvalidField("leave_type_id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave balance begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindByKey(ctx, empID, ltID, req.Year)
	switch {
	case err == nil:
		return BalanceResponse{}, leavebalanceerrors.ErrBalanceExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return BalanceResponse{}, err
	}

	b := &LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  empID,
		LeaveTypeID: ltID,
		Year:        req.Year,
		TotalDays:   req.TotalDays,
	}
	if err := qtx.Create(ctx, b); err != nil {
		s.logger.Warn("create leave balance persist failed", zap.Error(err))
		return BalanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave balance commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	s.logger.Info("create leave balance success", zap.String("leave_balance_id", b.ID.String()))
	return mapToResponse(*b), nil
}

// UpdateTotal changes the entitlement only; used days belong to the approval
// workflow.
func (s *service) UpdateTotal(ctx context.Context, id string, req UpdateLeaveBalanceRequest) (BalanceResponse, error) {
	bID, err := uuid.Parse(id)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidBalanceID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave balance begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.SetTotal(ctx, bID, req.TotalDays)
	if err != nil {
		s.logger.Error("update leave balance persist failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	b, err := qtx.FindByID(ctx, bID)
	if err != nil {
		return BalanceResponse{}, mapRepositoryError(err)
	}
	if !ok {
		s.logger.Warn("update leave balance below used days",
			zap.String("leave_balance_id", id),
			zap.Int("used_days", b.UsedDays),
			zap.Int("total_days", req.TotalDays),
		)
		return BalanceResponse{}, leavebalanceerrors.ErrTotalBelowUsed.WithDetails(map[string]any{
			"used_days":  b.UsedDays,
			"total_days": req.TotalDays,
		})
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave balance commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	s.logger.Info("update leave balance success",
		zap.String("leave_balance_id", id),
		zap.Int("total_days", b.TotalDays),
	)
	return mapToResponse(*b), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	bID, err := uuid.Parse(id)
	if err != nil {
		return leavebalanceerrors.ErrInvalidBalanceID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.DeleteUnused(ctx, bID)
	if err != nil {
		s.logger.Error("delete leave balance failed", zap.Error(err))
		return err
	}
	if !ok {
		b, err := qtx.FindByID(ctx, bID)
		if err != nil {
			return mapRepositoryError(err)
		}
		return leavebalanceerrors.ErrBalanceInUse.WithDetails(map[string]any{"used_days": b.UsedDays})
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete leave balance success", zap.String("leave_balance_id", id))
	return nil
}

// EnsureForEmployee provisions one row per active balance-requiring leave
// type, seeded with the type's yearly maximum. Existing rows are left alone,
// so repeated calls are harmless.
func (s *service) EnsureForEmployee(ctx context.Context, employeeID uuid.UUID, year int) (int64, error) {
	types, err := s.types.ListActiveRequiringBalance(ctx)
	if err != nil {
		s.logger.Error("ensure balances list leave types failed", zap.Error(err))
		return 0, err
	}

	rows := make([]LeaveBalance, 0, len(types))
	for _, lt := range types {
		rows = append(rows, LeaveBalance{
			ID:          uuid.New(),
			EmployeeID:  employeeID,
			LeaveTypeID: lt.ID,
			Year:        year,
			TotalDays:   lt.MaxDaysPerYear,
		})
	}

	created, err := s.repo.CreateMissing(ctx, rows)
	if err != nil {
		s.logger.Error("ensure balances persist failed",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err),
		)
		return 0, err
	}

	s.logger.Info("ensure balances success",
		zap.String("employee_id", employeeID.String()),
		zap.Int("year", year),
		zap.Int64("created", created),
	)
	return created, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leavebalanceerrors.ErrBalanceNotFound
	}

	switch {
	case pgerr.IsUnique(err):
		return leavebalanceerrors.ErrBalanceExists
	case pgerr.IsForeignKey(err):
		return apperror.NotFound("employee or leave type not found")
	}
	return err
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:            b.ID.String(),
		EmployeeID:    b.EmployeeID.String(),
		LeaveTypeID:   b.LeaveTypeID.String(),
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.RemainingDays(),
	}
}

func mapViewsToResponse(rows []BalanceView) []BalanceResponse {
	res := make([]BalanceResponse, len(rows))
	for i, v := range rows {
		r := mapToResponse(v.LeaveBalance)
		r.LeaveTypeCode = v.LeaveTypeCode
		r.LeaveTypeName = v.LeaveTypeName
		r.EmployeeName = v.EmployeeName
		res[i] = r
	}
	return res
}
