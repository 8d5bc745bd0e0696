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

type DoctorHandler struct {
	Svc    *application.DoctorService
	Logger *logrus.Logger
}

func NewDoctorHandler(svc *application.DoctorService, logger *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{Svc: svc, Logger: logger}
}

type doctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,phone"`
}

type availabilityRequest struct {
	Windows []availabilityWindow `json:"windows" binding:"required,dive"`
}

type availabilityWindow struct {
	Weekday int    `json:"weekday" binding:"gte=0,lte=6"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
}

func doctorView(d *entity.Doctor) gin.H {
	windows := make([]gin.H, 0, len(d.Availabilities))
	for _, a := range d.Availabilities {
		windows = append(windows, gin.H{"weekday": int(a.Weekday), "start": a.Start, "end": a.End})
	}
	return gin.H{
		"id":           d.ID,
		"name":         d.Name,
		"specialty":    d.Specialty,
		"email":        d.Email,
		"phone":        d.Phone,
		"availability": windows,
		"created_at":   d.CreatedAt,
		"updated_at":   d.UpdatedAt,
	}
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	d, err := h.Svc.Create(c.Request.Context(), application.DoctorInput{
		Name: req.Name, Specialty: req.Specialty, Email: req.Email, Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, doctorView(d), "doctor created", nil)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	d, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, doctorView(d), "doctor", nil)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	var req doctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	d, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.DoctorInput{
		Name: req.Name, Specialty: req.Specialty, Email: req.Email, Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, doctorView(d), "doctor updated", nil)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "doctor deleted", nil)
}

func (h *DoctorHandler) List(c *gin.Context) {
	f := repository.DoctorFilter{
		Specialty: c.Query("specialty"),
		Limit:     queryInt(c, "limit", 20),
		Offset:    queryInt(c, "offset", 0),
	}
	doctors, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]gin.H, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, doctorView(d))
	}
	response.Success(c, http.StatusOK, out, "doctors", gin.H{"limit": f.Limit, "offset": f.Offset})
}

func (h *DoctorHandler) SetAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	windows := make([]application.AvailabilityInput, 0, len(req.Windows))
	for _, w := range req.Windows {
		windows = append(windows, application.AvailabilityInput{
			Weekday: time.Weekday(w.Weekday),
			Start:   w.Start,
			End:     w.End,
		})
	}
	d, err := h.Svc.SetAvailability(c.Request.Context(), c.Param("id"), windows)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, doctorView(d), "availability updated", nil)
}

// Slots lists the doctor's free slots for one day (date=YYYY-MM-DD).
func (h *DoctorHandler) Slots(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"date": "date must be YYYY-MM-DD"})
		return
	}
	slots, err := h.Svc.AvailableSlots(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, slots, "available slots", gin.H{"date": c.Query("date")})
}
