package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-leave/internal/domain"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	EmployeeOptionsKey = "employees:options"
	optionsTTL         = 1 * time.Hour
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	EnsureSystemAdmin(ctx context.Context, email, password string) (EmployeeResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	refs, err := parseRefs(req.DepartmentID, req.TitleID, req.ManagerID)
	if err != nil {
		s.logger.Warn("create employee invalid reference", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:              uuid.New(),
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		EmployeeNumber:  strings.TrimSpace(req.EmployeeNumber),
		Phone:           req.Phone,
		DepartmentID:    refs.department,
		TitleID:         refs.title,
		ManagerID:       refs.manager,
		WorksOnSaturday: req.WorksOnSaturday,
		IsActive:        true,
		Role:            domain.NormalizeRole(req.Role),
	}
	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			s.logger.Error("create employee hash password failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.PasswordHash = hash
	}

	if err := s.create(ctx, empl); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)
	return mapToResponse(*empl), nil
}

// create persists the employee and queues employee_created in one transaction.
func (s *service) create(ctx context.Context, empl *Employee) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if empl.EmployeeNumber == "" {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, counter.EmployeeNumber)
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return err
		}
		empl.EmployeeNumber = fmt.Sprintf("EMP-%06d", nextVal)
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Warn("create employee persist failed", zap.String("email", empl.Email), zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:       events.EmployeeCreated,
			RequestID:       rid,
			EmployeeID:      empl.ID.String(),
			DepartmentID:    uuidToString(empl.DepartmentID),
			WorksOnSaturday: empl.WorksOnSaturday,
			OccurredAt:      time.Now().UTC(),
		}
		outboxEvent, err := kafka.NewOutboxEvent(
			"employee", empl.ID.String(), event.EventType, events.EmployeeLifecycleTopic, rid, event,
		)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, optionsTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	emplID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, emplID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	emplID, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	refs, err := parseRefs(req.DepartmentID, req.TitleID, req.ManagerID)
	if err != nil {
		s.logger.Warn("update employee invalid reference", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if refs.manager != nil && *refs.manager == emplID {
		return EmployeeResponse{}, employeeerrors.ErrSelfManager
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, emplID)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FirstName = strings.TrimSpace(req.FirstName)
	empl.LastName = strings.TrimSpace(req.LastName)
	empl.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if n := strings.TrimSpace(req.EmployeeNumber); n != "" {
		empl.EmployeeNumber = n
	}
	empl.Phone = req.Phone
	empl.DepartmentID = refs.department
	empl.TitleID = refs.title
	empl.ManagerID = refs.manager
	empl.WorksOnSaturday = req.WorksOnSaturday
	if req.IsActive != nil {
		if !*req.IsActive && empl.IsSystemAdmin {
			return EmployeeResponse{}, employeeerrors.ErrSystemAdminImmutable
		}
		empl.IsActive = *req.IsActive
	}
	if req.Role != "" {
		empl.Role = domain.NormalizeRole(req.Role)
	}
	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			s.logger.Error("update employee hash password failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		empl.PasswordHash = hash
	}
	// Preloaded projections may be stale after a reassignment.
	empl.Department = nil
	empl.Title = nil

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Warn("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

// Delete deactivates the employee. Leave history keeps referencing the row.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	emplID, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, emplID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if empl.IsSystemAdmin {
		s.logger.Warn("delete employee refused for system admin", zap.String("employee_id", id))
		return employeeerrors.ErrSystemAdminImmutable
	}

	if err := qtx.Deactivate(ctx, emplID); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

// EnsureSystemAdmin provisions the bootstrap administrator when no employee
// with the given email exists. An existing employee is returned untouched.
func (s *service) EnsureSystemAdmin(ctx context.Context, email, password string) (EmployeeResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return mapToResponse(*existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("system admin lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:            uuid.New(),
		FirstName:     "System",
		LastName:      "Administrator",
		Email:         email,
		IsActive:      true,
		IsSystemAdmin: true,
		Role:          domain.RoleAdmin,
		PasswordHash:  hash,
	}
	if err := s.create(ctx, empl); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("system admin provisioned",
		zap.String("employee_id", empl.ID.String()),
		zap.String("email", email),
	)
	return mapToResponse(*empl), nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

type references struct {
	department *uuid.UUID
	title      *uuid.UUID
	manager    *uuid.UUID
}

func parseRefs(departmentID, titleID, managerID *string) (references, error) {
	var refs references
	var err error
	if refs.department, err = optionalID(departmentID); err != nil {
		return refs, err
	}
	if refs.title, err = optionalID(titleID); err != nil {
		return refs, err
	}
	if refs.manager, err = optionalID(managerID); err != nil {
		return refs, err
	}
	return refs, nil
}

func optionalID(v *string) (*uuid.UUID, error) {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*v))
	if err != nil {
		return nil, employeeerrors.ErrInvalidReference
	}
	return &id, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              empl.ID.String(),
		FirstName:       empl.FirstName,
		LastName:        empl.LastName,
		FullName:        empl.FullName(),
		Email:           empl.Email,
		EmployeeNumber:  empl.EmployeeNumber,
		Phone:           empl.Phone,
		DepartmentID:    uuidToString(empl.DepartmentID),
		TitleID:         uuidToString(empl.TitleID),
		ManagerID:       uuidToString(empl.ManagerID),
		WorksOnSaturday: empl.WorksOnSaturday,
		IsActive:        empl.IsActive,
		IsSystemAdmin:   empl.IsSystemAdmin,
		Role:            empl.Role,
	}
	if empl.Department != nil {
		resp.Department = &EmployeeDepartmentResponse{
			ID:   empl.Department.ID.String(),
			Name: empl.Department.Name,
		}
	}
	if empl.Title != nil {
		resp.Title = &EmployeeTitleResponse{
			ID:   empl.Title.ID.String(),
			Name: empl.Title.Name,
		}
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
