package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	departmenterrors "go-leave/internal/department/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	DepartmentAllKey = "departments:all"
	cacheTTL         = 30 * time.Minute
)

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
	EnsureSystemDepartment(ctx context.Context, name string) (DepartmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	managerID, err := parseOptionalID(req.ManagerID)
	if err != nil {
		return DepartmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Code:        normalizeCode(req.Code),
		Description: req.Description,
		ManagerID:   managerID,
		IsActive:    true,
	}

	if err := qtx.Create(ctx, dept); err != nil {
		s.logger.Warn("create department persist failed", zap.String("name", dept.Name), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.String("department_id", dept.ID.String()),
	)
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, DepartmentAllKey).Result()
		if err == nil {
			var resp []DepartmentResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DepartmentAllKey, func() (interface{}, error) {
		depts, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(depts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, DepartmentAllKey, jsonData, cacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, deptID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("update department requested", zap.String("department_id", id))

	deptID, err := uuid.Parse(id)
	if err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	managerID, err := parseOptionalID(req.ManagerID)
	if err != nil {
		return DepartmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update department begin tx failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, deptID)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Name = strings.TrimSpace(req.Name)
	dept.Code = normalizeCode(req.Code)
	dept.Description = req.Description
	dept.ManagerID = managerID
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, dept); err != nil {
		s.logger.Warn("update department persist failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("update department success", zap.String("department_id", id))
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deptID, err := uuid.Parse(id)
	if err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete department begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, deptID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if dept.IsSystem {
		return departmenterrors.ErrSystemDepartment
	}

	members, err := qtx.CountActiveMembers(ctx, deptID)
	if err != nil {
		return err
	}
	if members > 0 {
		s.logger.Warn("delete department with active members",
			zap.String("department_id", id),
			zap.Int64("members", members),
		)
		return departmenterrors.ErrDepartmentHasMembers.WithDetails(map[string]any{"active_employees": members})
	}

	if err := qtx.Delete(ctx, deptID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete department commit failed", zap.Error(err))
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

// EnsureSystemDepartment returns the department with the given name,
// creating it as a system department when it does not exist yet.
func (s *service) EnsureSystemDepartment(ctx context.Context, name string) (DepartmentResponse, error) {
	name = strings.TrimSpace(name)

	dept, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return mapToResponse(*dept), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return DepartmentResponse{}, err
	}

	dept = &Department{
		ID:       uuid.New(),
		Name:     name,
		IsActive: true,
		IsSystem: true,
	}
	if err := s.repo.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx)
	s.logger.Info("system department provisioned",
		zap.String("department_id", dept.ID.String()),
		zap.String("name", name),
	)
	return mapToResponse(*dept), nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DepartmentAllKey).Err(); err != nil {
		s.logger.Warn("invalidate department cache failed", zap.String("key", DepartmentAllKey), zap.Error(err))
	}
}

func parseOptionalID(v *string) (*uuid.UUID, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, departmenterrors.ErrInvalidManagerID
	}
	return &id, nil
}

func normalizeCode(v *string) *string {
	if v == nil {
		return nil
	}
	code := strings.ToUpper(strings.TrimSpace(*v))
	if code == "" {
		return nil
	}
	return &code
}

func mapToResponse(dept Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:          dept.ID.String(),
		Name:        dept.Name,
		Code:        dept.Code,
		Description: dept.Description,
		IsActive:    dept.IsActive,
		IsSystem:    dept.IsSystem,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   dept.UpdatedAt.Format(time.RFC3339),
	}
	if dept.ManagerID != nil {
		m := dept.ManagerID.String()
		resp.ManagerID = &m
	}
	return resp
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
