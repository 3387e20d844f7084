package server

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/logger"
	"github.com/spigell/resume-ranker/internal/ranking"
	"github.com/spigell/resume-ranker/internal/utils"
)

const previewLength = 80

// RankRequest is the body of POST /rank.
//
// The web form fields requiredSkills, jobKeywords and resumeText are accepted as
// well. Skills and keywords are then comma separated strings.
type RankRequest struct {
	ResumeText   string                `json:"resume_text"`
	Requirements *ranking.Requirements `json:"requirements" validate:"required"`

	FormSkills     *string `json:"requiredSkills,omitempty"`
	FormKeywords   *string `json:"jobKeywords,omitempty"`
	FormResumeText *string `json:"resumeText,omitempty"`
}

func (r *RankRequest) normalize() {
	if r.Requirements != nil || (r.FormSkills == nil && r.FormKeywords == nil && r.FormResumeText == nil) {
		return
	}

	r.Requirements = &ranking.Requirements{
		Skills:   splitForm(r.FormSkills),
		Keywords: splitForm(r.FormKeywords),
	}
	if r.ResumeText == "" && r.FormResumeText != nil {
		r.ResumeText = *r.FormResumeText
	}
}

// splitForm splits a comma separated form value into trimmed non-empty items.
func splitForm(value *string) []string {
	items := make([]string, 0)
	if value == nil {
		return items
	}
	for _, item := range strings.Split(*value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// normalizer is implemented by requests that accept more than one body shape.
type normalizer interface {
	normalize()
}

// BatchResume is a single resume of a batch request. A missing filename is
// reported as Unknown.
type BatchResume struct {
	Filename *string `json:"filename,omitempty"`
	Text     string  `json:"text"`
}

// BatchRequest is the body of POST /rank/batch.
type BatchRequest struct {
	Requirements *ranking.Requirements `json:"requirements" validate:"required"`
	Resumes      []BatchResume         `json:"resumes" validate:"required,min=1"`
}

// BatchResponse is the body returned by POST /rank/batch.
type BatchResponse struct {
	Results []ranking.RankedResult `json:"results"`
	Count   int                    `json:"count"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError names a request field that failed validation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) weights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"weights": s.engine.Weights(),
		"tiers":   s.engine.Tiers(),
		"labels":  s.engine.Labels(),
	})
}

func (s *Server) rank(c *gin.Context) {
	var req RankRequest
	if !s.bind(c, &req) {
		return
	}

	result := s.engine.Rank(req.ResumeText, *req.Requirements)

	s.logger.Debug("resume ranked", append(
		logger.ResultFields("", result),
		zap.String(logger.FieldRequestID, c.GetString(requestIDKey)),
		zap.String("preview", utils.Preview(req.ResumeText, previewLength)),
	)...)

	c.JSON(http.StatusOK, result)
}

func (s *Server) rankBatch(c *gin.Context) {
	var req BatchRequest
	if !s.bind(c, &req) {
		return
	}

	resumes := make([]ranking.Resume, 0, len(req.Resumes))
	for _, r := range req.Resumes {
		id := ranking.UnknownID
		if r.Filename != nil {
			id = *r.Filename
		}
		resumes = append(resumes, ranking.Resume{ID: id, Text: r.Text})
	}

	results, err := s.engine.RankBatchParallel(c.Request.Context(), resumes, *req.Requirements, s.cfg.Workers)
	if err != nil {
		s.logger.Warn("batch ranking aborted",
			zap.String(logger.FieldRequestID, c.GetString(requestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "ranking_aborted", Message: err.Error()})
		return
	}

	for _, r := range results {
		s.logger.Debug("resume ranked", append(
			logger.ResultFields(r.ID, r.Result),
			zap.String(logger.FieldRequestID, c.GetString(requestIDKey)),
		)...)
	}

	c.JSON(http.StatusOK, BatchResponse{Results: results, Count: len(results)})
}

// bind decodes and validates the JSON body into obj. On failure it writes the
// error response and returns false.
func (s *Server) bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   "request_too_large",
				Message: err.Error(),
			})
			return false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
		return false
	}

	if n, ok := obj.(normalizer); ok {
		n.normalize()
	}

	if err := s.validate.Struct(obj); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error()})
			return false
		}

		resp := ErrorResponse{Error: "validation_failed"}
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			field := jsonPath(fe.Namespace())
			resp.Fields = append(resp.Fields, FieldError{Field: field, Rule: fe.Tag()})
			messages = append(messages, field+" failed on "+fe.Tag())
		}
		resp.Message = strings.Join(messages, "; ")

		c.JSON(http.StatusUnprocessableEntity, resp)
		return false
	}

	return true
}

// jsonPath drops the struct name from a validator namespace.
func jsonPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

// jsonTagName makes validator report fields by their JSON names.
func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
