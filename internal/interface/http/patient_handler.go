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

type PatientHandler struct {
	Svc    *application.PatientService
	Logger *logrus.Logger
}

func NewPatientHandler(svc *application.PatientService, logger *logrus.Logger) *PatientHandler {
	return &PatientHandler{Svc: svc, Logger: logger}
}

type patientRequest struct {
	Name    string `json:"name" binding:"required"`
	Age     int    `json:"age" binding:"required,gte=0,lte=150"`
	Gender  string `json:"gender" binding:"required,oneof=male female other"`
	Phone   string `json:"phone" binding:"omitempty,phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

func patientView(p *entity.Patient) gin.H {
	return gin.H{
		"id":            p.ID,
		"name":          p.Name,
		"age":           p.Age,
		"gender":        p.Gender,
		"phone":         p.Phone,
		"email":         p.Email,
		"address":       p.Address,
		"document_urls": p.DocumentURLs,
		"created_at":    p.CreatedAt,
		"updated_at":    p.UpdatedAt,
	}
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), application.PatientInput{
		Name: req.Name, Age: req.Age, Gender: req.Gender,
		Phone: req.Phone, Email: req.Email, Address: req.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, patientView(p), "patient created", nil)
}

func (h *PatientHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, patientView(p), "patient", nil)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.PatientInput{
		Name: req.Name, Age: req.Age, Gender: req.Gender,
		Phone: req.Phone, Email: req.Email, Address: req.Address,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, patientView(p), "patient updated", nil)
}

func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "patient deleted", nil)
}

func (h *PatientHandler) List(c *gin.Context) {
	f := repository.PatientFilter{
		Name:   c.Query("name"),
		Limit:  queryInt(c, "limit", 20),
		Offset: queryInt(c, "offset", 0),
	}
	patients, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]gin.H, 0, len(patients))
	for _, p := range patients {
		out = append(out, patientView(p))
	}
	response.Success(c, http.StatusOK, out, "patients", gin.H{"limit": f.Limit, "offset": f.Offset})
}

// Search queries the patient index; unlike List it matches name, phone, and
// email with fuzziness.
func (h *PatientHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"q": "q is required"})
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, queryInt(c, "limit", 20))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}

// UploadDocument stores one multipart file under the patient's folder and
// appends its public URL to the record.
func (h *PatientHandler) UploadDocument(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"file": "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer f.Close()

	url, err := h.Svc.AttachDocument(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"url": url}, "document uploaded", nil)
}
