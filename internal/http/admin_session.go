package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/valerius-unlock/internal/admin"
	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
	"go.uber.org/zap"
)

const loadFailedMessage = "Ошибка загрузки данных"

// AdminLogin открывает сессию и возвращает токен в заголовке Authorization.
// Если данные загрузить не удалось, вход всё равно выполняется, а в ответе есть warning.
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.Credentials](w, r)
	if !ok {
		return
	}
	if data.Username == nil || data.Password == nil {
		middlewares.EncodeJSONError(w, http.StatusBadRequest, "Запрос не содержит логин или пароль")
		return
	}

	sessions := middlewares.GetServiceFromContext[*admin.Sessions](w, r, middlewares.SessionsKey)
	if sessions == nil {
		return
	}
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JWTServiceKey)
	if jwtService == nil {
		return
	}

	sessionID, _, err := (*sessions).Login(r.Context(), data)
	if sessionID == "" {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Неверный логин или пароль", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Ошибка входа", err)
		return
	}

	token, tokenErr := (*jwtService).GenerateJWT(sessionID)
	if tokenErr != nil {
		(*sessions).Logout(sessionID)
		writeError(w, http.StatusInternalServerError, "Ошибка входа", tokenErr)
		return
	}

	resp := successResponse{Success: true, Message: "Добро пожаловать в админ-панель!"}
	if err != nil {
		logger.Log.Warn("admin data wasn't loaded on login", zap.Error(err))
		resp.Warning = loadFailedMessage
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	middlewares.EncodeJSONResponse(w, resp)
}

func AdminLogout(w http.ResponseWriter, r *http.Request) {
	sessions := middlewares.GetServiceFromContext[*admin.Sessions](w, r, middlewares.SessionsKey)
	if sessions == nil {
		return
	}

	(*sessions).Logout(middlewares.GetSessionIDFromContext(r))
	writeSuccess(w, "Вы вышли из системы")
}

// AdminReload перечитывает все коллекции. При ошибке данные сессии не меняются.
func AdminReload(w http.ResponseWriter, r *http.Request) {
	console := middlewares.GetConsoleFromContext(w, r)
	if console == nil {
		return
	}

	if err := console.Reload(r.Context()); err != nil {
		writeAdminError(w, err, loadFailedMessage)
		return
	}

	writeSuccess(w, "Данные обновлены")
}

func AdminDashboard(w http.ResponseWriter, r *http.Request) {
	console := middlewares.GetConsoleFromContext(w, r)
	if console == nil {
		return
	}

	middlewares.EncodeJSONResponse(w, console.Store().Dashboard())
}

// AdminUpdateStats значения сохраняются только в текущей сессии.
func AdminUpdateStats(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.Stats](w, r)
	if !ok {
		return
	}
	console := middlewares.GetConsoleFromContext(w, r)
	if console == nil {
		return
	}

	if err := console.Orchestrator().UpdateStats(data); err != nil {
		writeAdminError(w, err, "Ошибка сохранения статистики")
		return
	}

	writeSuccess(w, "Статистика обновлена")
}

func AdminListServices(w http.ResponseWriter, r *http.Request) {
	if console := middlewares.GetConsoleFromContext(w, r); console != nil {
		middlewares.EncodeJSONResponse(w, servicesResponse{Services: console.Store().Services()})
	}
}

func AdminListOrders(w http.ResponseWriter, r *http.Request) {
	if console := middlewares.GetConsoleFromContext(w, r); console != nil {
		middlewares.EncodeJSONResponse(w, ordersResponse{Orders: console.Store().Orders()})
	}
}

func AdminListVideos(w http.ResponseWriter, r *http.Request) {
	if console := middlewares.GetConsoleFromContext(w, r); console != nil {
		middlewares.EncodeJSONResponse(w, videosResponse{Videos: console.Store().Videos()})
	}
}

func AdminListReviews(w http.ResponseWriter, r *http.Request) {
	if console := middlewares.GetConsoleFromContext(w, r); console != nil {
		middlewares.EncodeJSONResponse(w, reviewsResponse{Reviews: console.Store().Reviews()})
	}
}
