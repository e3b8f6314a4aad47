package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Renal37/valerius-unlock/internal/admin"
	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

type servicesResponse struct {
	Services []models.Service `json:"services"`
}

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

type reviewsResponse struct {
	Reviews []models.Review `json:"reviews"`
}

type videosResponse struct {
	Videos []models.Video `json:"videos"`
}

// serviceRequest тело создания и изменения услуги. Без is_active услуга считается активной.
type serviceRequest struct {
	models.Service
	IsActive *bool `json:"is_active"`
}

func (s serviceRequest) toService() models.Service {
	service := s.Service
	service.IsActive = s.IsActive == nil || *s.IsActive
	return service
}

func includeAll(r *http.Request) bool {
	return r.URL.Query().Get("all") == "true"
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryID читает ?id=. При ошибке отвечает 400.
func queryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := parseID(r.URL.Query().Get("id"))
	if !ok {
		middlewares.EncodeJSONError(w, http.StatusBadRequest, "Не указан корректный id")
	}
	return id, ok
}

// pathID читает {id} из пути. При ошибке отвечает 400.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		middlewares.EncodeJSONError(w, http.StatusBadRequest, "Не указан корректный id")
	}
	return id, ok
}

func writeSuccess(w http.ResponseWriter, message string) {
	middlewares.EncodeJSONResponse(w, successResponse{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	middlewares.EncodeJSONResponseWithStatus(w, status, middlewares.ErrorResponse{Error: err.Error(), Message: message})
}

// statusFor переводит доменную ошибку в HTTP-статус. fallback используется для неизвестных ошибок.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, admin.ErrSessionClosed):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidStatusTransition):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return fallback
}

// writeDataError ответ API данных. Неизвестные ошибки хранилища дают 500.
func writeDataError(w http.ResponseWriter, err error, message string) {
	status := statusFor(err, http.StatusInternalServerError)
	if status == http.StatusInternalServerError {
		logger.Log.Error(message, zap.Error(err))
	}
	writeError(w, status, message, err)
}

// writeAdminError ответ админ-панели. Сбой удалённого API даёт 502.
func writeAdminError(w http.ResponseWriter, err error, message string) {
	writeError(w, statusFor(err, http.StatusBadGateway), message, err)
}

// writeAdminResult изменение, после которого не удалось перечитать данные, считается успешным.
func writeAdminResult(w http.ResponseWriter, err error, success, failure string) {
	if err != nil && !errors.Is(err, admin.ErrReloadFailed) {
		writeAdminError(w, err, failure)
		return
	}

	resp := successResponse{Success: true, Message: success}
	if err != nil {
		resp.Warning = admin.ErrReloadFailed.Error()
	}
	middlewares.EncodeJSONResponse(w, resp)
}
