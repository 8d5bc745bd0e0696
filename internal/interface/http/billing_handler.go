package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/medicore/hms-api/internal/application"
	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/response"
	"github.com/medicore/hms-api/pkg/validation"
)

type BillingHandler struct {
	Svc    *application.BillingService
	Logger *logrus.Logger
}

func NewBillingHandler(svc *application.BillingService, logger *logrus.Logger) *BillingHandler {
	return &BillingHandler{Svc: svc, Logger: logger}
}

type createInvoiceRequest struct {
	AppointmentID string           `json:"appointment_id" binding:"required,uuid"`
	Items         []invoiceItemReq `json:"items" binding:"required,min=1,dive"`
}

type invoiceItemReq struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"gte=0"`
}

func invoiceView(inv *entity.Invoice) gin.H {
	return gin.H{
		"id":             inv.ID,
		"appointment_id": inv.AppointmentID,
		"patient_id":     inv.PatientID,
		"items":          inv.Items,
		"total":          inv.Total,
		"status":         inv.Status,
		"paid_at":        inv.PaidAt,
		"created_at":     inv.CreatedAt,
		"updated_at":     inv.UpdatedAt,
	}
}

func (h *BillingHandler) Create(c *gin.Context) {
	var req createInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	items := make([]entity.InvoiceItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.InvoiceItem{Description: it.Description, Amount: it.Amount})
	}
	inv, err := h.Svc.Create(c.Request.Context(), application.CreateInvoiceInput{
		AppointmentID: req.AppointmentID,
		Items:         items,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, invoiceView(inv), "invoice created", nil)
}

func (h *BillingHandler) Get(c *gin.Context) {
	inv, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoiceView(inv), "invoice", nil)
}

func (h *BillingHandler) Pay(c *gin.Context) {
	inv, err := h.Svc.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoiceView(inv), "invoice paid", nil)
}

func (h *BillingHandler) Refund(c *gin.Context) {
	inv, err := h.Svc.Refund(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, invoiceView(inv), "invoice refunded", nil)
}

func (h *BillingHandler) List(c *gin.Context) {
	f := repository.InvoiceFilter{
		PatientID: c.Query("patient_id"),
		Status:    entity.InvoiceStatus(c.Query("status")),
		Limit:     queryInt(c, "limit", 20),
		Offset:    queryInt(c, "offset", 0),
	}
	list, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, inv := range list {
		out = append(out, invoiceView(inv))
	}
	response.Success(c, http.StatusOK, out, "invoices", gin.H{"limit": f.Limit, "offset": f.Offset})
}
