package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/roaming-admin/pkg/httputil"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

const resourcePartners = "partners"

func validatePartner(p *model.Partner) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return invalid("partnerName is required")
	}
	if p.Country.ID <= 0 {
		return invalid("country.countryId is required")
	}
	switch p.Mechanism {
	case model.MechanismSRDC, model.MechanismLBTR:
	default:
		return invalid("mechanism must be SRDC or LBTR")
	}
	if p.MCC == "" || p.MNC == "" {
		return invalid("mcc and mnc are required")
	}
	return nil
}

// ListPartners はGET /api/partners のハンドラー。
func (h *Handler) ListPartners(c *gin.Context) {
	httputil.WriteData(c, http.StatusOK, h.store.ListPartners())
}

// GetPartner はGET /api/partners/:id のハンドラー。
func (h *Handler) GetPartner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.store.GetPartner(id)
	if err != nil {
		writeStoreError(c, resourcePartners, err)
		return
	}
	httputil.WriteData(c, http.StatusOK, p)
}

// CreatePartner はPOST /api/partners のハンドラー。
func (h *Handler) CreatePartner(c *gin.Context) {
	var p model.Partner
	if !bindJSON(c, resourcePartners, &p) {
		return
	}
	if err := validatePartner(&p); err != nil {
		writeStoreError(c, resourcePartners, err)
		return
	}
	created, err := h.store.CreatePartner(p)
	if err != nil {
		writeStoreError(c, resourcePartners, err)
		return
	}
	logWrite(c, resourcePartners, "created", created.ID)
	httputil.WriteMessage(c, http.StatusCreated, created, "Partner created")
}

// UpdatePartner はPUT /api/partners/:id のハンドラー。
func (h *Handler) UpdatePartner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var p model.Partner
	if !bindJSON(c, resourcePartners, &p) {
		return
	}
	if err := validatePartner(&p); err != nil {
		writeStoreError(c, resourcePartners, err)
		return
	}
	updated, err := h.store.UpdatePartner(id, p)
	if err != nil {
		writeStoreError(c, resourcePartners, err)
		return
	}
	logWrite(c, resourcePartners, "updated", id)
	httputil.WriteMessage(c, http.StatusOK, updated, "Partner updated")
}

// DeletePartner はDELETE /api/partners/:id のハンドラー。
// 料金表が紐づくパートナーは409を返す。
func (h *Handler) DeletePartner(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.DeletePartner(id); err != nil {
		writeStoreError(c, resourcePartners, err)
		return
	}
	logWrite(c, resourcePartners, "deleted", id)
	httputil.WriteMessage(c, http.StatusOK, nil, "Partner deleted")
}
