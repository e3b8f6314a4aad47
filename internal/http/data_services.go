package router

import (
	"net/http"

	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
)

type createServiceResponse struct {
	successResponse
	ServiceID int64 `json:"service_id"`
}

// ListServices отдаёт активные услуги, а с ?all=true все.
func ListServices(w http.ResponseWriter, r *http.Request) {
	catalog := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)
	if catalog == nil {
		return
	}

	services, err := (*catalog).ListServices(r.Context(), includeAll(r))
	if err != nil {
		writeDataError(w, err, "Ошибка загрузки услуг")
		return
	}

	middlewares.EncodeJSONResponse(w, servicesResponse{Services: services})
}

func CreateService(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[serviceRequest](w, r)
	if !ok {
		return
	}
	catalog := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)
	if catalog == nil {
		return
	}

	id, err := (*catalog).CreateService(r.Context(), data.toService())
	if err != nil {
		writeDataError(w, err, "Ошибка создания услуги")
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, createServiceResponse{
		successResponse: successResponse{Success: true, Message: "Услуга создана"},
		ServiceID:       id,
	})
}

func UpdateService(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[serviceRequest](w, r)
	if !ok {
		return
	}
	catalog := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)
	if catalog == nil {
		return
	}

	if err := (*catalog).UpdateService(r.Context(), data.toService()); err != nil {
		writeDataError(w, err, "Ошибка обновления услуги")
		return
	}

	writeSuccess(w, "Услуга обновлена")
}

func DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	catalog := middlewares.GetServiceFromContext[models.CatalogService](w, r, middlewares.CatalogServiceKey)
	if catalog == nil {
		return
	}

	if err := (*catalog).DeleteService(r.Context(), id); err != nil {
		writeDataError(w, err, "Ошибка удаления услуги")
		return
	}

	writeSuccess(w, "Услуга удалена")
}
