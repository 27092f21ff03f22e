package contact

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxsite/internal/crm"
	"taxsite/internal/pkg/response"
	"taxsite/internal/storage/blob"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{service: service, log: log}
}

// CreateContact captures a lead from the site's contact or booking forms.
// @Summary Submit a contact
// @Tags Contact
// @Accept json
// @Accept mpfd
// @Produce json
// @Success 200 {object} Result
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/create-contact [post]
func (h *Handler) CreateContact(c *gin.Context) {
	var (
		sub Submission
		err error
	)
	if strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		sub, err = readMultipart(c)
	} else {
		sub, err = readJSON(c)
	}
	if err != nil {
		h.log.Error("create-contact decode failed", zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	res, err := h.service.Submit(c.Request.Context(), sub)
	if err != nil {
		if errors.Is(err, ErrMissingEmail) {
			response.Fail(c, http.StatusBadRequest, "Missing required email")
			return
		}
		fields := []zap.Field{zap.Error(err)}
		var perr *crm.ProviderError
		if errors.As(err, &perr) {
			fields = append(fields, zap.String("provider", perr.Provider), zap.Int("status", perr.StatusCode))
		}
		h.log.Error("create-contact failed", fields...)
		response.Fail(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	c.JSON(http.StatusOK, res)
}

func readJSON(c *gin.Context) (Submission, error) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return Submission{}, err
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return Submission{}, errors.Join(ErrInvalidPayload, err)
	}
	raw, ok := decoded.(map[string]any)
	if !ok {
		// No fields at all; the email check rejects it.
		return Submission{}, nil
	}

	if email, ok := raw["email"]; ok {
		if _, isString := email.(string); !isString {
			fields := make(map[string]any, len(raw))
			for k, v := range raw {
				fields[k] = v
			}
			fields["email"] = scalarText(email)
			if data, err = json.Marshal(fields); err != nil {
				return Submission{}, errors.Join(ErrInvalidPayload, err)
			}
		}
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Submission{}, errors.Join(ErrInvalidPayload, err)
	}
	return Submission{Payload: p, Raw: raw}, nil
}

// scalarText renders a non-string JSON scalar as text. Falsy values, objects
// and arrays become "".
func scalarText(v any) string {
	switch t := v.(type) {
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
	}
	return ""
}

func readMultipart(c *gin.Context) (Submission, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return Submission{}, errors.Join(ErrInvalidPayload, err)
	}

	get := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	p := Payload{
		FirstName:    get("firstName"),
		LastName:     get("lastName"),
		Email:        get("email"),
		Phone:        get("phone"),
		Company:      get("company"),
		Notes:        get("notes"),
		LeadCategory: get("leadCategory"),
		ICPScore:     parseScore(get("icpScore")),
	}
	if sel := strings.TrimSpace(get("selections")); sel != "" && json.Valid([]byte(sel)) {
		p.Selections = json.RawMessage(sel)
	}

	files := make([]blob.File, 0, len(form.File["attachments"]))
	p.Attachments = make([]crm.Attachment, 0, len(form.File["attachments"]))
	for _, fh := range form.File["attachments"] {
		content, err := readFile(fh)
		if err != nil {
			return Submission{}, err
		}
		ct := contentType(fh, content)
		files = append(files, blob.File{Name: fh.Filename, ContentType: ct, Content: content})
		p.Attachments = append(p.Attachments, crm.Attachment{Name: fh.Filename, Size: fh.Size, Type: ct})
	}

	return Submission{Payload: p, Multipart: true, Form: form.Value, Files: files}, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// contentType trusts the part header unless it is missing or generic, in
// which case the type is sniffed from the first bytes.
func contentType(fh *multipart.FileHeader, content []byte) string {
	ct := fh.Header.Get("Content-Type")
	if ct != "" && ct != "application/octet-stream" {
		return ct
	}
	return strings.Split(http.DetectContentType(content), ";")[0]
}

// parseScore reads a numeric form value; non-numbers are dropped.
func parseScore(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	n := int(math.Round(v))
	return &n
}
