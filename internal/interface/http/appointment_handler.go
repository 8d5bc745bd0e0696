package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/medicore/hms-api/internal/application"
	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/response"
	"github.com/medicore/hms-api/pkg/validation"
)

type AppointmentHandler struct {
	Svc    *application.AppointmentService
	Logger *logrus.Logger
}

func NewAppointmentHandler(svc *application.AppointmentService, logger *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

type bookRequest struct {
	PatientID string    `json:"patient_id" binding:"required,uuid"`
	DoctorID  string    `json:"doctor_id" binding:"required,uuid"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	EndsAt    time.Time `json:"ends_at" binding:"required"`
	Notes     string    `json:"notes"`
}

type rescheduleRequest struct {
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
}

func appointmentView(a *entity.Appointment) gin.H {
	return gin.H{
		"id":         a.ID,
		"patient_id": a.PatientID,
		"doctor_id":  a.DoctorID,
		"starts_at":  a.StartsAt,
		"ends_at":    a.EndsAt,
		"status":     a.Status,
		"notes":      a.Notes,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Book(c.Request.Context(), application.BookInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, appointmentView(a), "appointment booked", nil)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	a, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentView(a), "appointment", nil)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Reschedule(c.Request.Context(), c.Param("id"), req.StartsAt, req.EndsAt)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentView(a), "appointment rescheduled", nil)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	a, err := h.Svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentView(a), "appointment completed", nil)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	a, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentView(a), "appointment cancelled", nil)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	f := repository.AppointmentFilter{
		DoctorID:  c.Query("doctor_id"),
		PatientID: c.Query("patient_id"),
		Status:    entity.AppointmentStatus(c.Query("status")),
		Limit:     queryInt(c, "limit", 20),
		Offset:    queryInt(c, "offset", 0),
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"from": "must be RFC3339"})
			return
		}
		f.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"to": "must be RFC3339"})
			return
		}
		f.To = t
	}
	list, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, a := range list {
		out = append(out, appointmentView(a))
	}
	response.Success(c, http.StatusOK, out, "appointments", gin.H{"limit": f.Limit, "offset": f.Offset})
}
