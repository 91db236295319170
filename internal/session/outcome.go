package session

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/and161185/kid-clinic/internal/errs"
	"github.com/and161185/kid-clinic/internal/validate"
)

// Kind classifies the result of a remote call.
type Kind string

// Outcome kinds.
const (
	Success          Kind = "success"
	ValidationFailed Kind = "validation_failed"
	Unauthorized     Kind = "unauthorized"
	NetworkError     Kind = "network_error"
	Failed           Kind = "failed"
)

// RawErrorKey carries the raw body of a 400 response that is not a field map.
const RawErrorKey = "_error"

// Outcome is the classified result of a call. Status is zero when no response was received.
type Outcome struct {
	Kind        Kind
	Status      int
	Payload     json.RawMessage // Success only
	FieldErrors validate.Errors // ValidationFailed only
	Err         error           // every kind but Success
}

// OK reports whether the call succeeded.
func (o Outcome) OK() bool { return o.Kind == Success }

// Decode unmarshals the payload of a successful outcome into v.
func Decode(o Outcome, v any) error {
	if o.Kind != Success {
		if o.Err != nil {
			return o.Err
		}
		return fmt.Errorf("session: outcome %s", o.Kind)
	}
	if len(bytes.TrimSpace(o.Payload)) == 0 {
		return fmt.Errorf("%w: empty body", errs.ErrUnexpectedResponse)
	}
	if err := json.Unmarshal(o.Payload, v); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrUnexpectedResponse, err)
	}
	return nil
}

// AsUnexpected turns o into a Failed outcome caused by a response that did not match the endpoint schema.
func AsUnexpected(o Outcome, err error) Outcome {
	return Outcome{Kind: Failed, Status: o.Status, Err: fmt.Errorf("%w: %w", errs.ErrUnexpectedResponse, err)}
}

func classify(status int, body []byte) Outcome {
	switch {
	case status >= 200 && status < 300:
		return Outcome{Kind: Success, Status: status, Payload: json.RawMessage(body)}
	case status == http.StatusBadRequest:
		fe := fieldErrors(body)
		return Outcome{Kind: ValidationFailed, Status: status, FieldErrors: fe, Err: fe.Err()}
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return Outcome{Kind: Unauthorized, Status: status, Err: fmt.Errorf("%w: status %d", errs.ErrUnauthorized, status)}
	case status == http.StatusNotFound:
		return Outcome{Kind: Failed, Status: status, Err: fmt.Errorf("%w: status %d", errs.ErrNotFound, status)}
	default:
		return Outcome{Kind: Failed, Status: status, Err: fmt.Errorf("session: status %d", status)}
	}
}

// fieldErrors flattens a 400 body. Field arrays are joined with a space, strings kept as-is,
// and anything that is not a JSON object ends up under RawErrorKey.
func fieldErrors(body []byte) validate.Errors {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		text := strings.TrimSpace(string(body))
		if text == "" {
			text = http.StatusText(http.StatusBadRequest)
		}
		return validate.Errors{RawErrorKey: text}
	}

	out := validate.Errors{}
	for field, v := range raw {
		out[field] = flatten(v)
	}
	return out
}

func flatten(v json.RawMessage) string {
	var s string
	if json.Unmarshal(v, &s) == nil {
		return s
	}
	var list []any
	if json.Unmarshal(v, &list) == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			switch x := item.(type) {
			case string:
				parts = append(parts, x)
			default:
				b, _ := json.Marshal(x)
				parts = append(parts, string(b))
			}
		}
		return strings.Join(parts, " ")
	}
	var nested map[string]any
	if json.Unmarshal(v, &nested) == nil {
		keys := make([]string, 0, len(nested))
		for k := range nested {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %v", k, nested[k]))
		}
		return strings.Join(parts, " ")
	}
	return strings.TrimSpace(string(v))
}
