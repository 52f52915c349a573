package holiday

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	holidayerrors "go-leave/internal/holiday/errors"
	"go-leave/internal/shared/pgerr"
	"go-leave/internal/workday"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	minYear = 1900
	maxYear = 2100
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	GetByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	GetByID(ctx context.Context, id string) (HolidayResponse, error)
	Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	IsHoliday(ctx context.Context, date string) (IsHolidayResponse, error)
	Official(year int) ([]HolidayResponse, error)
	Generate(ctx context.Context, year int) (GenerateHolidaysResponse, error)
	ActiveDatesInRange(ctx context.Context, start, end time.Time) (workday.HolidaySet, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return HolidayResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	h := &Holiday{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Date:        date,
		Year:        date.Year(),
		IsActive:    true,
	}
	if err := s.repo.WithTx(tx).Create(ctx, h); err != nil {
		s.logger.Warn("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create holiday commit failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("create holiday success",
		zap.String("holiday_id", h.ID.String()),
		zap.String("date", req.Date),
	)
	return mapToResponse(*h), nil
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(holidays), nil
}

func (s *service) GetByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < minYear || year > maxYear {
		return nil, holidayerrors.ErrInvalidYear
	}
	holidays, err := s.repo.FindActiveByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(holidays), nil
}

func (s *service) GetByID(ctx context.Context, id string) (HolidayResponse, error) {
	hID, err := uuid.Parse(id)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayID
	}
	h, err := s.repo.FindByID(ctx, hID)
	if err != nil {
		return HolidayResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*h), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error) {
	hID, err := uuid.Parse(id)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayID
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return HolidayResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h, err := qtx.FindByID(ctx, hID)
	if err != nil {
		return HolidayResponse{}, mapRepositoryError(err)
	}

	h.Name = strings.TrimSpace(req.Name)
	h.Description = req.Description
	h.Date = date
	h.Year = date.Year()
	h.IsActive = req.IsActive

	if err := qtx.Update(ctx, h); err != nil {
		s.logger.Warn("update holiday persist failed", zap.Error(err))
		return HolidayResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update holiday commit failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("update holiday success", zap.String("holiday_id", id))
	return mapToResponse(*h), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	hID, err := uuid.Parse(id)
	if err != nil {
		return holidayerrors.ErrInvalidHolidayID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h, err := qtx.FindByID(ctx, hID)
	if err != nil {
		return mapRepositoryError(err)
	}

	h.IsActive = false
	if err := qtx.Update(ctx, h); err != nil {
		s.logger.Error("delete holiday failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("delete holiday success", zap.String("holiday_id", id))
	return nil
}

func (s *service) IsHoliday(ctx context.Context, date string) (IsHolidayResponse, error) {
	d, err := parseDate(date)
	if err != nil {
		return IsHolidayResponse{}, err
	}

	set, err := s.ActiveDatesInRange(ctx, d, d)
	if err != nil {
		return IsHolidayResponse{}, err
	}
	return IsHolidayResponse{Date: date, IsHoliday: set.Contains(d)}, nil
}

// Official previews the official calendar of year without persisting it.
func (s *service) Official(year int) ([]HolidayResponse, error) {
	if year < minYear || year > maxYear {
		return nil, holidayerrors.ErrInvalidYear
	}
	return mapToListResponse(officialToHolidays(year)), nil
}

// Generate stores the official calendar for year unless the year already has
// active holidays. Created reports whether anything was inserted.
func (s *service) Generate(ctx context.Context, year int) (GenerateHolidaysResponse, error) {
	if year < minYear || year > maxYear {
		return GenerateHolidaysResponse{}, holidayerrors.ErrInvalidYear
	}
	s.logger.Debug("generate holidays requested", zap.Int("year", year))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate holidays begin tx failed", zap.Error(err))
		return GenerateHolidaysResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.CountActiveByYear(ctx, year)
	if err != nil {
		s.logger.Error("generate holidays count failed", zap.Error(err))
		return GenerateHolidaysResponse{}, err
	}
	if existing > 0 {
		s.logger.Debug("generate holidays skipped",
			zap.Int("year", year),
			zap.Int64("existing", existing),
		)
		return GenerateHolidaysResponse{Year: year, Created: false, Holidays: []HolidayResponse{}}, nil
	}

	holidays := officialToHolidays(year)
	for i := range holidays {
		holidays[i].ID = uuid.New()
	}

	if err := qtx.CreateBatch(ctx, holidays); err != nil {
		s.logger.Error("generate holidays persist failed", zap.Error(err))
		return GenerateHolidaysResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate holidays commit failed", zap.Error(err))
		return GenerateHolidaysResponse{}, err
	}

	s.logger.Info("generate holidays success",
		zap.Int("year", year),
		zap.Int("count", len(holidays)),
	)
	return GenerateHolidaysResponse{Year: year, Created: true, Holidays: mapToListResponse(holidays)}, nil
}

func (s *service) ActiveDatesInRange(ctx context.Context, start, end time.Time) (workday.HolidaySet, error) {
	holidays, err := s.repo.FindActiveInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(holidays))
	for i, h := range holidays {
		dates[i] = h.Date
	}
	return workday.NewHolidaySet(dates...), nil
}

func officialToHolidays(year int) []Holiday {
	official := OfficialHolidays(year)
	holidays := make([]Holiday, len(official))
	for i, o := range official {
		holidays[i] = Holiday{
			Name:        o.Name,
			Description: o.Description,
			Date:        o.Date,
			Year:        year,
			IsActive:    true,
		}
	}
	return holidays
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, holidayerrors.ErrInvalidDate
	}
	return t, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return holidayerrors.ErrHolidayNotFound
	}
	if pgerr.IsUnique(err) {
		return holidayerrors.ErrHolidayExists
	}
	return err
}

func mapToResponse(h Holiday) HolidayResponse {
	resp := HolidayResponse{
		Name:        h.Name,
		Description: h.Description,
		Date:        h.Date.Format(time.DateOnly),
		Year:        h.Year,
		IsActive:    h.IsActive,
	}
	if h.ID != uuid.Nil {
		resp.ID = h.ID.String()
	}
	return resp
}

func mapToListResponse(holidays []Holiday) []HolidayResponse {
	res := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		res[i] = mapToResponse(h)
	}
	return res
}
