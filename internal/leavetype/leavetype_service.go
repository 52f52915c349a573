package leavetype

import (
	"context"
	"database/sql"
	"strings"

	leavetypeerrors "go-leave/internal/leavetype/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id string) (LeaveTypeResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	s.logger.Debug("create leave type requested", zap.String("code", code))

	if req.DeductsFromBalance && !req.RequiresBalance {
		return LeaveTypeResponse{}, leavetypeerrors.ErrDeductRequiresBalance
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	lt := &LeaveType{
		ID:                 uuid.New(),
		Code:               code,
		Name:               strings.TrimSpace(req.Name),
		Description:        req.Description,
		MaxDaysPerYear:     req.MaxDaysPerYear,
		RequiresApproval:   requiresApproval,
		IsPaid:             req.IsPaid,
		RequiresBalance:    req.RequiresBalance,
		DeductsFromBalance: req.DeductsFromBalance,
		IsActive:           true,
	}

	if err := qtx.Create(ctx, lt); err != nil {
		s.logger.Warn("create leave type persist failed", zap.String("code", code), zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("create leave type success",
		zap.String("leave_type_id", lt.ID.String()),
		zap.String("code", code),
	)
	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leave types failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(types), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveTypeResponse, error) {
	ltID, err := uuid.Parse(id)
	if err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	lt, err := s.repo.FindByID(ctx, ltID)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*lt), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	s.logger.Debug("update leave type requested", zap.String("leave_type_id", id))

	ltID, err := uuid.Parse(id)
	if err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}
	if req.DeductsFromBalance && !req.RequiresBalance {
		return LeaveTypeResponse{}, leavetypeerrors.ErrDeductRequiresBalance
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, ltID)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	lt.Name = strings.TrimSpace(req.Name)
	lt.Description = req.Description
	lt.MaxDaysPerYear = req.MaxDaysPerYear
	lt.RequiresApproval = req.RequiresApproval
	lt.IsPaid = req.IsPaid
	lt.RequiresBalance = req.RequiresBalance
	lt.DeductsFromBalance = req.DeductsFromBalance
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, lt); err != nil {
		s.logger.Error("update leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("update leave type success", zap.String("leave_type_id", id))
	return mapToResponse(*lt), nil
}

// Delete deactivates the leave type. Requests and balances keep referencing it.
func (s *service) Delete(ctx context.Context, id string) error {
	ltID, err := uuid.Parse(id)
	if err != nil {
		return leavetypeerrors.ErrInvalidLeaveTypeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lt, err := qtx.FindByID(ctx, ltID)
	if err != nil {
		return mapRepositoryError(err)
	}

	lt.IsActive = false
	if err := qtx.Update(ctx, lt); err != nil {
		s.logger.Error("delete leave type failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete leave type success", zap.String("leave_type_id", id))
	return nil
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                 lt.ID.String(),
		Code:               lt.Code,
		Name:               lt.Name,
		Description:        lt.Description,
		MaxDaysPerYear:     lt.MaxDaysPerYear,
		RequiresApproval:   lt.RequiresApproval,
		IsPaid:             lt.IsPaid,
		RequiresBalance:    lt.RequiresBalance,
		DeductsFromBalance: lt.DeductsFromBalance,
		IsActive:           lt.IsActive,
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		res[i] = mapToResponse(lt)
	}
	return res
}
