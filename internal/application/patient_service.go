package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/medicore/hms-api/internal/domain/entity"
	repo "github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/helpers"
)

// PatientService owns patient records: CRUD with soft delete, full-text search
// through Elasticsearch, and document attachments stored in GCS.
type PatientService struct {
	Patients  repo.PatientRepository
	ES        *elasticsearch.Client
	ESIndex   string
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewPatientService(patients repo.PatientRepository, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *PatientService {
	return &PatientService{Patients: patients, ES: es, ESIndex: esIndex, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

type PatientInput struct {
	Name    string
	Age     int
	Gender  string
	Phone   string
	Email   string
	Address string
}

func (s *PatientService) Create(ctx context.Context, in PatientInput) (*entity.Patient, error) {
	p := &entity.Patient{
		Name:    in.Name,
		Age:     in.Age,
		Gender:  in.Gender,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}
	if err := s.Patients.Create(ctx, p); err != nil {
		return nil, err
	}
	_ = s.index(ctx, p)
	return p, nil
}

func (s *PatientService) Get(ctx context.Context, id string) (*entity.Patient, error) {
	p, err := s.Patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// Soft-deleted records stay resolvable for history joins but are not
	// served from the read endpoint.
	if p.Deleted() {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *PatientService) Update(ctx context.Context, id string, in PatientInput) (*entity.Patient, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Age != 0 {
		p.Age = in.Age
	}
	if in.Gender != "" {
		p.Gender = in.Gender
	}
	if in.Phone != "" {
		p.Phone = in.Phone
	}
	if in.Email != "" {
		p.Email = in.Email
	}
	if in.Address != "" {
		p.Address = in.Address
	}
	if err := s.Patients.Update(ctx, p); err != nil {
		return nil, err
	}
	_ = s.index(ctx, p)
	return p, nil
}

func (s *PatientService) Delete(ctx context.Context, id string) error {
	if err := s.Patients.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *PatientService) List(ctx context.Context, f repo.PatientFilter) ([]*entity.Patient, error) {
	f.Limit = normalizeLimit(f.Limit)
	return s.Patients.List(ctx, f)
}

// AttachDocument uploads a document (lab report, referral letter) to GCS and
// records its URL on the patient.
func (s *PatientService) AttachDocument(ctx context.Context, id string, r io.Reader, filename, contentType string) (string, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("document storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("patients", p.ID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	p.DocumentURLs = append(p.DocumentURLs, url)
	if err := s.Patients.Update(ctx, p); err != nil {
		return "", err
	}
	return url, nil
}

func (s *PatientService) index(ctx context.Context, p *entity.Patient) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         p.ID,
		"name":       p.Name,
		"phone":      p.Phone,
		"email":      p.Email,
		"address":    p.Address,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("patient_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("patient_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *PatientService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("patient_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over name, phone, and email.
func (s *PatientService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "phone", "email"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
