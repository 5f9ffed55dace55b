package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jellydator/validation"
)

// MaxBodyBytes caps the size of a decoded request body.
const MaxBodyBytes = 1 << 20

var errTrailingData = errors.New("unexpected data after json object")

// Decoder decodes strict JSON request bodies and validates them when the
// target implements validation.Validatable.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	if decoder.More() {
		return fmt.Errorf("decoding json payload: %w", errTrailingData)
	}

	if v, ok := object.(validation.Validatable); ok {
		if err = v.Validate(); err != nil {
			return fmt.Errorf("validating payload: %w", err)
		}
	}

	return nil
}
