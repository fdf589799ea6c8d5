package render

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/liquidkit/handler"
	"github.com/dmitrymomot/liquidkit/pkg/liquid"
)

// ErrConflictingSource is returned when a render request names both a pipeline and a preset.
var ErrConflictingSource = errors.New("pipeline and preset are mutually exclusive")

var (
	errUnknownFilter   = handler.HTTPError{Code: http.StatusNotFound, Key: "unknown_filter"}
	errUnknownPreset   = handler.HTTPError{Code: http.StatusNotFound, Key: "unknown_preset"}
	errInvalidPipeline = handler.HTTPError{Code: http.StatusUnprocessableEntity, Key: "invalid_pipeline"}
	errConflicting     = handler.HTTPError{Code: http.StatusBadRequest, Key: "conflicting_source"}
)

// mapError translates service errors into HTTP errors.
func mapError(err error) (handler.HTTPError, bool) {
	switch {
	case errors.Is(err, liquid.ErrInvalidPipeline):
		return errInvalidPipeline, true
	case errors.Is(err, liquid.ErrUnknownFilter):
		return errUnknownFilter, true
	case errors.Is(err, liquid.ErrUnknownPreset):
		return errUnknownPreset, true
	case errors.Is(err, ErrConflictingSource):
		return errConflicting, true
	}
	return handler.HTTPError{}, false
}
