package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Paging is attached to list responses.
type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Paging  *Paging      `json:"paging,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// NewPaging computes total_page as ceil(total/size).
func NewPaging(page, size int, total int64) *Paging {
	return &Paging{CurrentPage: page, Size: size, TotalPage: TotalPages(total, size)}
}

func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// MaxPage bounds the page query so Offset cannot overflow.
const MaxPage = 1000000

// Offset translates a 1-based page into the number of rows to skip. Pages
// beyond MaxPage are clamped to it.
func Offset(page, size int) int {
	if page < 1 || size < 1 {
		return 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	return (page - 1) * size
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 envelope.
func OK(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// WriteResponse writes a prepared envelope with status 200.
func WriteResponse(w http.ResponseWriter, resp *Response) {
	WriteJSON(w, http.StatusOK, resp)
}

// WriteError is the single place errors become HTTP responses.
func WriteError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	status := StatusOf(err)
	resp := Response{Message: "Internal server error"}
	var verr *ValidationError
	var herr *HTTPError
	switch {
	case errors.As(err, &verr):
		resp = Response{Message: "Validation error", Errors: verr.Fields}
	case errors.As(err, &herr):
		resp.Message = herr.Message
	case logger != nil:
		logger.Errorw("unhandled error", "err", err)
	}
	WriteJSON(w, status, resp)
}

// DecodeJSON decodes the request body into v. An empty body leaves v
// untouched so the schema can report the missing fields.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return BadRequest("Invalid request body")
	}
	return nil
}
