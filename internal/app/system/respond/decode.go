// internal/app/system/respond/decode.go
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/limits"
)

// ErrBadJSON classifies malformed request bodies; Fail maps it to 400.
var ErrBadJSON = errors.New("invalid request body")

// ErrBodyTooLarge classifies bodies over limits.MaxJSONBody; Fail maps
// it to 413.
var ErrBodyTooLarge = errors.New("request body too large")

// DecodeJSON reads the request body into v, capping the body size and
// rejecting unknown fields so typos in client payloads fail loudly
// instead of silently dropping data.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
		}
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	return nil
}
