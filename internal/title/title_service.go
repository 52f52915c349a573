package title

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-leave/internal/approval"
	"go-leave/internal/shared/pgerr"
	titleerrors "go-leave/internal/title/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const TitleAllKey = "titles:all"

//go:generate mockgen -source=title_service.go -destination=mock/title_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTitleRequest) (TitleResponse, error)
	GetAll(ctx context.Context) ([]TitleResponse, error)
	GetByID(ctx context.Context, id string) (TitleResponse, error)
	Update(ctx context.Context, id string, req UpdateTitleRequest) (TitleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	managers approval.NameSet
	logger   *zap.Logger
}

// NewService builds the title service. managers is the manager-class title
// set used to flag titles that carry approval authority.
func NewService(db *sql.DB, repo Repository, rdb *redis.Client, managers approval.NameSet, logger ...*zap.Logger) Service {
	l := zap.L().Named("title.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("title.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, managers: managers, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTitleRequest) (TitleResponse, error) {
	s.logger.Debug("create title requested", zap.String("name", req.Name))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TitleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t := &Title{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Warn("create title persist failed", zap.String("name", t.Name), zap.Error(err))
		return TitleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TitleResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("create title success", zap.String("title_id", t.ID.String()))
	return s.mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context) ([]TitleResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, TitleAllKey).Result()
		if err == nil {
			var resp []TitleResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(TitleAllKey, func() (interface{}, error) {
		titles, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := make([]TitleResponse, len(titles))
		for i, t := range titles {
			resp[i] = s.mapToResponse(t)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, TitleAllKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]TitleResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TitleResponse, error) {
	titleID, err := uuid.Parse(id)
	if err != nil {
		return TitleResponse{}, titleerrors.ErrInvalidTitleID
	}

	t, err := s.repo.FindByID(ctx, titleID)
	if err != nil {
		return TitleResponse{}, mapRepositoryError(err)
	}

	return s.mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTitleRequest) (TitleResponse, error) {
	titleID, err := uuid.Parse(id)
	if err != nil {
		return TitleResponse{}, titleerrors.ErrInvalidTitleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TitleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, titleID)
	if err != nil {
		return TitleResponse{}, mapRepositoryError(err)
	}

	t.Name = strings.TrimSpace(req.Name)
	t.Description = req.Description

	if err := qtx.Update(ctx, t); err != nil {
		return TitleResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TitleResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("update title success", zap.String("title_id", id))
	return s.mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	titleID, err := uuid.Parse(id)
	if err != nil {
		return titleerrors.ErrInvalidTitleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	assigned, err := qtx.CountAssigned(ctx, titleID)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return titleerrors.ErrTitleInUse.WithDetails(map[string]any{"active_employees": assigned})
	}

	if err := qtx.Delete(ctx, titleID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("delete title success", zap.String("title_id", id))
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, TitleAllKey).Err(); err != nil {
		s.logger.Warn("invalidate title cache failed", zap.String("key", TitleAllKey), zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return titleerrors.ErrTitleNotFound
	}
	if pgerr.IsUnique(err) {
		return titleerrors.ErrTitleNameExists
	}
	return err
}

func (s *service) mapToResponse(t Title) TitleResponse {
	resp := TitleResponse{
		ID:             t.ID.String(),
		Name:           t.Name,
		Description:    t.Description,
		IsManagerClass: s.managers.Contains(t.Name),
	}
	if !t.CreatedAt.IsZero() {
		resp.CreatedAt = t.CreatedAt.Format(time.RFC3339)
	}
	if !t.UpdatedAt.IsZero() {
		resp.UpdatedAt = t.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
