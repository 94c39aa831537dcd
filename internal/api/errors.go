package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/udisondev/dmgcalc/internal/damage"
	"github.com/udisondev/dmgcalc/internal/db"
	"github.com/udisondev/dmgcalc/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeError maps err onto a status code and writes the JSON error body.
func writeError(c *gin.Context, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "err", err)
		body.Error = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, body)
}

func classify(err error) (int, errorResponse) {
	body := errorResponse{Error: err.Error()}

	switch {
	case model.IsInputError(err):
		body.Field = inputField(err)
		return http.StatusBadRequest, body
	case errors.Is(err, damage.ErrNoTemplateStore):
		body.Field = "templateId"
		return http.StatusBadRequest, body
	case errors.Is(err, db.ErrTemplateNotFound):
		return http.StatusNotFound, body
	case errors.Is(err, db.ErrTemplateDuplicate):
		body.Field = "name"
		return http.StatusConflict, body
	}
	return http.StatusInternalServerError, body
}

// inputField names the request field an input error refers to.
func inputField(err error) string {
	var (
		ve *model.ValidationError
		ne *model.UnknownNatureError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Field
	case errors.As(err, &ne):
		return "nature"
	case errors.Is(err, model.ErrUnknownSpecies):
		return "species"
	case errors.Is(err, model.ErrUnknownMove):
		return "moves"
	}
	return "type"
}

// badRequest reports a body that could not be decoded. Input errors raised
// by the decoders keep their field.
func badRequest(c *gin.Context, err error) {
	if model.IsInputError(err) {
		writeError(c, err)
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
