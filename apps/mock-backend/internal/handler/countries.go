package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/roaming-admin/pkg/httputil"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

const resourceCountries = "countries"

// readCountryInput はカテゴリを値・ラベルどちらでも受け付け、正規の値に揃える。
// 不正な入力の場合は400を書き込みfalseを返す。
func readCountryInput(c *gin.Context) (model.CountryInput, bool) {
	var in model.CountryInput
	if !bindJSON(c, resourceCountries, &in) {
		return in, false
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		writeStoreError(c, resourceCountries, invalid("countryName is required"))
		return in, false
	}
	cat, ok := model.ParseCategory(string(in.Category))
	if !ok {
		writeStoreError(c, resourceCountries, invalid("unknown category %q", in.Category))
		return in, false
	}
	in.Category = cat
	return in, true
}

// ListCountries はGET /api/countries のハンドラー。
func (h *Handler) ListCountries(c *gin.Context) {
	httputil.WriteData(c, http.StatusOK, h.store.ListCountries())
}

// GetCountry はGET /api/countries/:id のハンドラー。
func (h *Handler) GetCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	country, err := h.store.GetCountry(id)
	if err != nil {
		writeStoreError(c, resourceCountries, err)
		return
	}
	httputil.WriteData(c, http.StatusOK, country)
}

// CreateCountry はPOST /api/countries のハンドラー。
func (h *Handler) CreateCountry(c *gin.Context) {
	in, ok := readCountryInput(c)
	if !ok {
		return
	}
	created, err := h.store.CreateCountry(in)
	if err != nil {
		writeStoreError(c, resourceCountries, err)
		return
	}
	logWrite(c, resourceCountries, "created", created.ID)
	httputil.WriteMessage(c, http.StatusCreated, created, "Country created")
}

// UpdateCountry はPUT /api/countries/:id のハンドラー。
func (h *Handler) UpdateCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := readCountryInput(c)
	if !ok {
		return
	}
	updated, err := h.store.UpdateCountry(id, in)
	if err != nil {
		writeStoreError(c, resourceCountries, err)
		return
	}
	logWrite(c, resourceCountries, "updated", id)
	httputil.WriteMessage(c, http.StatusOK, updated, "Country updated")
}

// DeleteCountry はDELETE /api/countries/:id のハンドラー。
// OPCO料金表が紐づく国は409を返す。
func (h *Handler) DeleteCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteCountry(id); err != nil {
		writeStoreError(c, resourceCountries, err)
		return
	}
	logWrite(c, resourceCountries, "deleted", id)
	httputil.WriteMessage(c, http.StatusOK, nil, "Country deleted")
}
