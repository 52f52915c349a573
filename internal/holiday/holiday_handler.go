package holiday

import (
	"net/http"
	"strconv"

	holidayerrors "go-leave/internal/holiday/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("holiday.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("holiday request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func yearParam(c *gin.Context, v string) (int, bool) {
	year, err := strconv.Atoi(v)
	if err != nil {
		e := holidayerrors.ErrInvalidYear
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return 0, false
	}
	return year, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GetAll lists active holidays, narrowed to one year when ?year= is given.
func (h *Handler) GetAll(c *gin.Context) {
	var (
		resp []HolidayResponse
		err  error
	)
	if v := c.Query("year"); v != "" {
		year, ok := yearParam(c, v)
		if !ok {
			return
		}
		resp, err = h.service.GetByYear(c.Request.Context(), year)
	} else {
		resp, err = h.service.GetAll(c.Request.Context())
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Check(c *gin.Context) {
	resp, err := h.service.IsHoliday(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Official(c *gin.Context) {
	year, ok := yearParam(c, c.Param("year"))
	if !ok {
		return
	}

	resp, err := h.service.Official(year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Generate(c *gin.Context) {
	year, ok := yearParam(c, c.Param("year"))
	if !ok {
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	response.Success(c, status, resp, nil)
}
