package router

import (
	"net/http"

	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
)

type createOrderResponse struct {
	successResponse
	OrderID int64 `json:"order_id"`
}

// ListOrders все заказы, новые первыми.
func ListOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	orders, err := (*orderService).ListOrders(r.Context())
	if err != nil {
		writeDataError(w, err, "Ошибка загрузки заказов")
		return
	}

	middlewares.EncodeJSONResponse(w, ordersResponse{Orders: orders})
}

// CreateOrder заявка с публичной формы сайта.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.Inquiry](w, r)
	if !ok {
		return
	}
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	id, err := (*orderService).CreateOrder(r.Context(), data)
	if err != nil {
		writeDataError(w, err, "Ошибка создания заказа")
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, createOrderResponse{
		successResponse: successResponse{Success: true, Message: "Заказ создан успешно"},
		OrderID:         id,
	})
}

func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.OrderStatusUpdate](w, r)
	if !ok {
		return
	}
	if data.ID == nil || *data.ID <= 0 {
		middlewares.EncodeJSONError(w, http.StatusBadRequest, "Не указан корректный id")
		return
	}
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	if err := (*orderService).UpdateOrderStatus(r.Context(), *data.ID, data.Status); err != nil {
		writeDataError(w, err, "Ошибка изменения статуса")
		return
	}

	writeSuccess(w, "Статус обновлён")
}

func DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	if err := (*orderService).DeleteOrder(r.Context(), id); err != nil {
		writeDataError(w, err, "Ошибка удаления заказа")
		return
	}

	writeSuccess(w, "Заказ удалён")
}
