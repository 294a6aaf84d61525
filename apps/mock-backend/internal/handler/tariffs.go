package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/roaming-admin/pkg/httputil"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

const (
	resourceTariffs     = "tariffs"
	resourceOpcoTariffs = "opco-tariffs"
)

// ListTariffs はGET /api/tariffs のハンドラー。
func (h *Handler) ListTariffs(c *gin.Context) {
	httputil.WriteData(c, http.StatusOK, h.store.ListTariffs())
}

// GetTariff はGET /api/tariffs/:id のハンドラー。
func (h *Handler) GetTariff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.store.GetTariff(id)
	if err != nil {
		writeStoreError(c, resourceTariffs, err)
		return
	}
	httputil.WriteData(c, http.StatusOK, t)
}

// CreateTariff はPOST /api/tariffs のハンドラー。
func (h *Handler) CreateTariff(c *gin.Context) {
	var t model.Tariff
	if !bindJSON(c, resourceTariffs, &t) {
		return
	}
	created, err := h.store.CreateTariff(t)
	if err != nil {
		writeStoreError(c, resourceTariffs, err)
		return
	}
	logWrite(c, resourceTariffs, "created", created.ID)
	httputil.WriteMessage(c, http.StatusCreated, created, "Tariff created")
}

// UpdateTariff はPUT /api/tariffs/:id のハンドラー。
func (h *Handler) UpdateTariff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var t model.Tariff
	if !bindJSON(c, resourceTariffs, &t) {
		return
	}
	updated, err := h.store.UpdateTariff(id, t)
	if err != nil {
		writeStoreError(c, resourceTariffs, err)
		return
	}
	logWrite(c, resourceTariffs, "updated", id)
	httputil.WriteMessage(c, http.StatusOK, updated, "Tariff updated")
}

// DeleteTariff はDELETE /api/tariffs/:id のハンドラー。
func (h *Handler) DeleteTariff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteTariff(id); err != nil {
		writeStoreError(c, resourceTariffs, err)
		return
	}
	logWrite(c, resourceTariffs, "deleted", id)
	httputil.WriteMessage(c, http.StatusOK, nil, "Tariff deleted")
}

// ListOpcoTariffs はGET /api/opco-tariffs のハンドラー。
func (h *Handler) ListOpcoTariffs(c *gin.Context) {
	httputil.WriteData(c, http.StatusOK, h.store.ListOpcoTariffs())
}

// GetOpcoTariff はGET /api/opco-tariffs/:id のハンドラー。
func (h *Handler) GetOpcoTariff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.store.GetOpcoTariff(id)
	if err != nil {
		writeStoreError(c, resourceOpcoTariffs, err)
		return
	}
	httputil.WriteData(c, http.StatusOK, t)
}

// CreateOpcoTariff はPOST /api/opco-tariffs のハンドラー。
func (h *Handler) CreateOpcoTariff(c *gin.Context) {
	var t model.OpcoTariff
	if !bindJSON(c, resourceOpcoTariffs, &t) {
		return
	}
	created, err := h.store.CreateOpcoTariff(t)
	if err != nil {
		writeStoreError(c, resourceOpcoTariffs, err)
		return
	}
	logWrite(c, resourceOpcoTariffs, "created", created.ID)
	httputil.WriteMessage(c, http.StatusCreated, created, "Opco tariff created")
}

// UpdateOpcoTariff はPUT /api/opco-tariffs/:id のハンドラー。
func (h *Handler) UpdateOpcoTariff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var t model.OpcoTariff
	if !bindJSON(c, resourceOpcoTariffs, &t) {
		return
	}
	updated, err := h.store.UpdateOpcoTariff(id, t)
	if err != nil {
		writeStoreError(c, resourceOpcoTariffs, err)
		return
	}
	logWrite(c, resourceOpcoTariffs, "updated", id)
	httputil.WriteMessage(c, http.StatusOK, updated, "Opco tariff updated")
}

// DeleteOpcoTariff はDELETE /api/opco-tariffs/:id のハンドラー。
func (h *Handler) DeleteOpcoTariff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteOpcoTariff(id); err != nil {
		writeStoreError(c, resourceOpcoTariffs, err)
		return
	}
	logWrite(c, resourceOpcoTariffs, "deleted", id)
	httputil.WriteMessage(c, http.StatusOK, nil, "Opco tariff deleted")
}
