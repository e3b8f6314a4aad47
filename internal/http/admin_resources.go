package router

import (
	"errors"
	"net/http"

	"github.com/Renal37/valerius-unlock/internal/admin"
	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
)

// orchestratorWithID достаёт оркестратор сессии и id из пути.
func orchestratorWithID(w http.ResponseWriter, r *http.Request) (*admin.Orchestrator, int64, bool) {
	console := middlewares.GetConsoleFromContext(w, r)
	if console == nil {
		return nil, 0, false
	}

	id, ok := pathID(w, r)
	if !ok {
		return nil, 0, false
	}

	return console.Orchestrator(), id, true
}

func AdminDeleteOrder(w http.ResponseWriter, r *http.Request) {
	orchestrator, id, ok := orchestratorWithID(w, r)
	if !ok {
		return
	}

	err := orchestrator.DeleteOrder(r.Context(), id)
	writeAdminResult(w, err, "Заказ удалён", "Ошибка удаления заказа")
}

func AdminChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.OrderStatusUpdate](w, r)
	if !ok {
		return
	}
	orchestrator, id, ok := orchestratorWithID(w, r)
	if !ok {
		return
	}

	err := orchestrator.ChangeOrderStatus(r.Context(), id, data.Status)
	writeAdminResult(w, err, "Статус изменён", "Ошибка изменения статуса")
}

func AdminStartOrder(w http.ResponseWriter, r *http.Request) {
	orchestrator, id, ok := orchestratorWithID(w, r)
	if !ok {
		return
	}

	err := orchestrator.StartOrder(r.Context(), id)
	writeAdminResult(w, err, "Статус изменён", "Ошибка изменения статуса")
}

func AdminFinishOrder(w http.ResponseWriter, r *http.Request) {
	orchestrator, id, ok := orchestratorWithID(w, r)
	if !ok {
		return
	}

	err := orchestrator.FinishOrder(r.Context(), id)
	writeAdminResult(w, err, "Статус изменён", "Ошибка изменения статуса")
}

func AdminSetReviewPublished(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.ReviewModeration](w, r)
	if !ok {
		return
	}
	if data.IsPublished == nil {
		middlewares.EncodeJSONError(w, http.StatusBadRequest, "Запрос не содержит is_published")
		return
	}
	orchestrator, id, ok := orchestratorWithID(w, r)
	if !ok {
		return
	}

	success := "Отзыв скрыт"
	if *data.IsPublished {
		success = "Отзыв опубликован"
	}

	err := orchestrator.SetReviewPublished(r.Context(), id, *data.IsPublished)
	writeAdminResult(w, err, success, "Ошибка модерации отзыва")
}

func AdminDeleteReview(w http.ResponseWriter, r *http.Request) {
	orchestrator, id, ok := orchestratorWithID(w, r)
	if !ok {
		return
	}

	err := orchestrator.DeleteReview(r.Context(), id)
	writeAdminResult(w, err, "Отзыв удалён", "Ошибка удаления отзыва")
}

func AdminCreateService(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[serviceRequest](w, r)
	if !ok {
		return
	}
	console := middlewares.GetConsoleFromContext(w, r)
	if console == nil {
		return
	}

	service := data.toService()
	service.ID = 0

	id, err := console.Orchestrator().CreateService(r.Context(), service)
	if err != nil && !errors.Is(err, admin.ErrReloadFailed) {
		writeAdminError(w, err, "Ошибка создания услуги")
		return
	}

	resp := createServiceResponse{
		successResponse: successResponse{Success: true, Message: "Услуга создана"},
		ServiceID:       id,
	}
	if err != nil {
		resp.Warning = admin.ErrReloadFailed.Error()
	}
	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, resp)
}

func AdminUpdateService(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[serviceRequest](w, r)
	if !ok {
		return
	}
	orchestrator, id, ok := orchestratorWithID(w, r)
	if !ok {
		return
	}

	service := data.toService()
	service.ID = id

	err := orchestrator.UpdateService(r.Context(), service)
	writeAdminResult(w, err, "Услуга обновлена", "Ошибка обновления услуги")
}

func AdminDeleteService(w http.ResponseWriter, r *http.Request) {
	orchestrator, id, ok := orchestratorWithID(w, r)
	if !ok {
		return
	}

	err := orchestrator.DeleteService(r.Context(), id)
	writeAdminResult(w, err, "Услуга удалена", "Ошибка удаления услуги")
}
