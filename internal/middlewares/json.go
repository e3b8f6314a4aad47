package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/Renal37/valerius-unlock/internal/logger"
	"go.uber.org/zap"
)

type parsedJSONDataFieldType string

const parsedJSONDataField parsedJSONDataFieldType = "parsedJSONDataField"

// ModelParameter ограничение для моделей тела запроса.
type ModelParameter interface {
	interface{} | []interface{}
}

// ErrorResponse тело ответа с ошибкой. Message показывается пользователю.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSONMiddleware разбирает тело запроса в Model и кладёт результат в контекст.
func JSONMiddleware[Model ModelParameter](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			EncodeJSONError(w, http.StatusUnsupportedMediaType, "Тип контента не является application/json")
			return
		}

		var parsedData Model
		var buf bytes.Buffer

		if _, err := buf.ReadFrom(r.Body); err != nil {
			EncodeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Ошибка чтения из тела запроса: %s", err.Error()))
			return
		}

		if err := json.Unmarshal(buf.Bytes(), &parsedData); err != nil {
			EncodeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Ошибка при разборе данных JSON: %s", err.Error()))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), parsedJSONDataField, parsedData)))
	})
}

// GetParsedJSONData достаёт тело, разобранное JSONMiddleware. Второе значение false,
// если данных нет; ответ 500 в этом случае уже отправлен.
func GetParsedJSONData[Model ModelParameter](w http.ResponseWriter, r *http.Request) (Model, bool) {
	data, ok := r.Context().Value(parsedJSONDataField).(Model)

	if !ok {
		EncodeJSONError(w, http.StatusInternalServerError, "Не удалось извлечь данные из контекста")
		var empty Model
		return empty, false
	}

	return data, true
}

// EncodeJSONResponse отправляет data со статусом 200.
func EncodeJSONResponse[Model any](w http.ResponseWriter, data Model) {
	EncodeJSONResponseWithStatus(w, http.StatusOK, data)
}

func EncodeJSONResponseWithStatus[Model any](w http.ResponseWriter, status int, data Model) {
	resp, err := json.Marshal(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Ошибка при кодировании JSON-ответа: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(resp); err != nil {
		logger.Log.Warn("failed to write response", zap.Error(err))
	}
}

// EncodeJSONError отправляет ErrorResponse с одинаковым текстом в error и message.
func EncodeJSONError(w http.ResponseWriter, status int, message string) {
	EncodeJSONResponseWithStatus(w, status, ErrorResponse{Error: message, Message: message})
}
