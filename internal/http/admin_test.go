package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Renal37/valerius-unlock/internal/admin"
	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
	mock_models "github.com/Renal37/valerius-unlock/internal/models/mocks"
	"github.com/Renal37/valerius-unlock/internal/services"
	"github.com/Renal37/valerius-unlock/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminServer(t *testing.T, source models.DataSource) (*httptest.Server, *admin.Sessions) {
	t.Helper()

	sessions := admin.NewSessions(admin.DefaultVerifier(), source, admin.DefaultPolicy(), time.Hour)
	server := httptest.NewServer(New(Config{}, middlewares.Services{
		JWT:      services.NewJWTService("test-secret", time.Hour),
		Sessions: sessions,
	}).get())
	t.Cleanup(server.Close)

	return server, sessions
}

func login(t *testing.T, server *httptest.Server) (string, successResponse) {
	t.Helper()

	res, mes := utils.TestJSONRequest(t, server, http.MethodPost, "/api/admin/login", nil,
		map[string]string{"username": "admin", "password": "admin"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	return res.Header.Get("Authorization"), utils.DecodeJSON[successResponse](t, mes)
}

func adminRequest(t *testing.T, server *httptest.Server, token, method, path string, body any) (int, string) {
	t.Helper()

	res, mes := utils.TestJSONRequest(t, server, method, path, map[string]string{"Authorization": token}, body)

	return res.StatusCode, mes
}

func TestAdminLogin(t *testing.T) {
	server, sessions := newAdminServer(t, admin.NewMockSource())

	runRouteTests(t, server, []routeTestCase{
		{
			testName:        "Should return a validation error due to missing body",
			methodName:      http.MethodPost,
			targetURL:       "/api/admin/login",
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"error":"Ошибка при разборе данных JSON: unexpected end of JSON input","message":"Ошибка при разборе данных JSON: unexpected end of JSON input"}`,
		},
		{
			testName:        "Should require password",
			methodName:      http.MethodPost,
			targetURL:       "/api/admin/login",
			body:            jsonBody(map[string]string{"username": "admin"}),
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"error":"Запрос не содержит логин или пароль","message":"Запрос не содержит логин или пароль"}`,
		},
		{
			testName:        "Should reject wrong password",
			methodName:      http.MethodPost,
			targetURL:       "/api/admin/login",
			body:            jsonBody(map[string]string{"username": "admin", "password": "qwerty"}),
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: `{"error":"неверный логин или пароль","message":"Неверный логин или пароль"}`,
		},
	})
	assert.Equal(t, 0, sessions.Len())

	token, resp := login(t, server)
	assert.True(t, strings.HasPrefix(token, "Bearer "))
	assert.Equal(t, "Добро пожаловать в админ-панель!", resp.Message)
	assert.Empty(t, resp.Warning)
	assert.Equal(t, 1, sessions.Len())
}

func TestAdminRoutesRequireToken(t *testing.T) {
	server, _ := newAdminServer(t, admin.NewMockSource())

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "unknown-session",
		Issuer:    "valerius-admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	testCases := []struct {
		testName string
		token    string
		expected string
	}{
		{testName: "Should require header", token: "", expected: "Требуется заголовок Authorization"},
		{testName: "Should require bearer token", token: "Basic abc", expected: "Токен Bearer пуст"},
		{testName: "Should reject broken token", token: "Bearer abc", expected: "Неверный токен"},
		{testName: "Should reject unknown session", token: "Bearer " + foreign, expected: "Сессия завершена, войдите снова"},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			code, mes := adminRequest(t, server, tc.token, http.MethodGet, "/api/admin/orders", nil)

			assert.Equal(t, http.StatusUnauthorized, code)
			assert.Contains(t, mes, tc.expected)
		})
	}
}

func TestAdminWorkflow(t *testing.T) {
	server, sessions := newAdminServer(t, admin.NewMockSource())
	token, _ := login(t, server)

	code, mes := adminRequest(t, server, token, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	var dashboard models.Dashboard
	require.NoError(t, json.Unmarshal([]byte(mes), &dashboard))
	assert.Equal(t, 1, dashboard.NewOrders)
	assert.Equal(t, 1, dashboard.PendingReviews)
	assert.Equal(t, models.DefaultStats(), dashboard.Stats)

	code, mes = adminRequest(t, server, token, http.MethodGet, "/api/admin/videos", nil)
	require.Equal(t, http.StatusOK, code)
	var videos videosResponse
	require.NoError(t, json.Unmarshal([]byte(mes), &videos))
	assert.Len(t, videos.Videos, len(admin.Portfolio()))

	testCases := []struct {
		testName        string
		method          string
		path            string
		body            any
		expectedCode    int
		expectedMessage string
	}{
		{testName: "Should start new order", method: http.MethodPost, path: "/api/admin/orders/3/start", expectedCode: http.StatusOK, expectedMessage: "Статус изменён"},
		{testName: "Should treat repeated start as no-op", method: http.MethodPost, path: "/api/admin/orders/3/start", expectedCode: http.StatusOK, expectedMessage: "Статус изменён"},
		{testName: "Should refuse to move order back", method: http.MethodPut, path: "/api/admin/orders/3/status", body: map[string]string{"status": "new"}, expectedCode: http.StatusConflict, expectedMessage: "Ошибка изменения статуса"},
		{testName: "Should finish order", method: http.MethodPost, path: "/api/admin/orders/3/finish", expectedCode: http.StatusOK, expectedMessage: "Статус изменён"},
		{testName: "Should delete order", method: http.MethodDelete, path: "/api/admin/orders/1", expectedCode: http.StatusOK, expectedMessage: "Заказ удалён"},
		{testName: "Should report missing order", method: http.MethodDelete, path: "/api/admin/orders/1", expectedCode: http.StatusNotFound, expectedMessage: "Ошибка удаления заказа"},
		{testName: "Should reject bad id", method: http.MethodDelete, path: "/api/admin/orders/abc", expectedCode: http.StatusBadRequest, expectedMessage: "Не указан корректный id"},
		{testName: "Should publish review", method: http.MethodPut, path: "/api/admin/reviews/3/published", body: map[string]bool{"is_published": true}, expectedCode: http.StatusOK, expectedMessage: "Отзыв опубликован"},
		{testName: "Should hide review", method: http.MethodPut, path: "/api/admin/reviews/2/published", body: map[string]bool{"is_published": false}, expectedCode: http.StatusOK, expectedMessage: "Отзыв скрыт"},
		{testName: "Should delete review", method: http.MethodDelete, path: "/api/admin/reviews/1", expectedCode: http.StatusOK, expectedMessage: "Отзыв удалён"},
		{testName: "Should create service", method: http.MethodPost, path: "/api/admin/services", body: map[string]any{"title": "Замена стекла", "price": 2500}, expectedCode: http.StatusCreated, expectedMessage: "Услуга создана"},
		{testName: "Should reject service without price", method: http.MethodPost, path: "/api/admin/services", body: map[string]any{"title": "Замена стекла"}, expectedCode: http.StatusBadRequest, expectedMessage: "Ошибка создания услуги"},
		{testName: "Should update service", method: http.MethodPut, path: "/api/admin/services/6", body: map[string]any{"title": "Прошивка", "price": 1100, "is_active": true}, expectedCode: http.StatusOK, expectedMessage: "Услуга обновлена"},
		{testName: "Should delete service", method: http.MethodDelete, path: "/api/admin/services/5", expectedCode: http.StatusOK, expectedMessage: "Услуга удалена"},
		{testName: "Should update stats", method: http.MethodPut, path: "/api/admin/stats", body: models.Stats{Unlocks: 1200, Clients: 640, SuccessRate: 99.9}, expectedCode: http.StatusOK, expectedMessage: "Статистика обновлена"},
		{testName: "Should reload data", method: http.MethodPost, path: "/api/admin/reload", expectedCode: http.StatusOK, expectedMessage: "Данные обновлены"},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			code, mes := adminRequest(t, server, token, tc.method, tc.path, tc.body)

			assert.Equal(t, tc.expectedCode, code)

			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal([]byte(mes), &resp))
			assert.Equal(t, tc.expectedMessage, resp.Message)
		})
	}

	code, mes = adminRequest(t, server, token, http.MethodGet, "/api/admin/orders", nil)
	require.Equal(t, http.StatusOK, code)
	var orders ordersResponse
	require.NoError(t, json.Unmarshal([]byte(mes), &orders))
	require.Len(t, orders.Orders, 2)
	assert.Equal(t, models.StatusCompleted, orders.Orders[0].Status)

	code, mes = adminRequest(t, server, token, http.MethodGet, "/api/admin/services", nil)
	require.Equal(t, http.StatusOK, code)
	var catalog servicesResponse
	require.NoError(t, json.Unmarshal([]byte(mes), &catalog))
	assert.Len(t, catalog.Services, 6)

	code, mes = adminRequest(t, server, token, http.MethodGet, "/api/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal([]byte(mes), &dashboard))
	assert.Equal(t, models.Stats{Unlocks: 1200, Clients: 640, SuccessRate: 99.9}, dashboard.Stats)

	code, _ = adminRequest(t, server, token, http.MethodPost, "/api/admin/logout", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, sessions.Len())

	code, _ = adminRequest(t, server, token, http.MethodGet, "/api/admin/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminLoginWithUnavailableSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_models.NewMockDataSource(ctrl)
	source.EXPECT().ListServices(gomock.Any()).Return(nil, context.DeadlineExceeded).AnyTimes()
	source.EXPECT().ListOrders(gomock.Any()).Return(nil, nil).AnyTimes()
	source.EXPECT().ListReviews(gomock.Any()).Return(nil, nil).AnyTimes()

	server, _ := newAdminServer(t, source)
	token, resp := login(t, server)

	assert.Equal(t, loadFailedMessage, resp.Warning)

	code, mes := adminRequest(t, server, token, http.MethodPost, "/api/admin/reload", nil)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Contains(t, mes, loadFailedMessage)

	source.EXPECT().DeleteOrder(gomock.Any(), int64(5)).Return(context.DeadlineExceeded)
	code, mes = adminRequest(t, server, token, http.MethodDelete, "/api/admin/orders/5", nil)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Contains(t, mes, "Ошибка удаления заказа")
}
