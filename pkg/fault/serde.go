package fault

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Record is the plain wire shape of a fault: {code, message, ...extra}. It
// carries the rendered message, not the template, so the receiving side
// needs no access to the message catalog.
type Record map[string]any

// Fixed record keys. Extras never collide with them: New rejects reserved
// keys at construction.
const (
	recordCode         = "code"
	recordMessage      = "message"
	recordRuntimeError = "runtimeError"
	recordFaultID      = "faultId"
)

// ErrBadRecord reports a record that is not a serialized fault.
var ErrBadRecord = errors.New("record is not a serialized fault")

// Marshal flattens f into its wire record. Everything except the stack and
// the instance id round-trips through Unmarshal unchanged; the id is carried
// too but regenerated when absent.
func Marshal(f *Fault) Record {
	rec := make(Record, len(f.extra)+4)
	for k, v := range f.extra {
		rec[k] = v
	}
	rec[recordCode] = f.code
	rec[recordMessage] = f.friendlyMessage
	if f.runtimeError {
		rec[recordRuntimeError] = true
	}
	if f.id != "" {
		rec[recordFaultID] = f.id
	}
	return rec
}

// Unmarshal reconstructs a Fault from its wire record. The record's message
// is taken verbatim as the friendly message; no re-rendering happens on the
// receiving side. All non-structural fields are restored as extras.
func Unmarshal(rec Record) (*Fault, error) {
	code, ok := rec[recordCode].(string)
	if !ok || code == "" {
		return nil, fmt.Errorf("%w: missing code", ErrBadRecord)
	}
	msg, ok := rec[recordMessage].(string)
	if !ok || msg == "" {
		return nil, fmt.Errorf("%w: missing message", ErrBadRecord)
	}

	f := &Fault{
		code:            code,
		friendlyMessage: msg,
		id:              uuid.NewString(),
		stack:           captureStack(),
	}

	for k, v := range rec {
		switch k {
		case recordCode, recordMessage:
		case recordRuntimeError:
			b, _ := v.(bool)
			f.runtimeError = b
		case recordFaultID:
			if id, ok := v.(string); ok && id != "" {
				f.id = id
			}
		default:
			if f.extra == nil {
				f.extra = make(map[string]any)
			}
			f.extra[k] = v
		}
	}

	return f, nil
}

// MarshalJSON encodes the fault as its wire record.
func (f *Fault) MarshalJSON() ([]byte, error) {
	return json.Marshal(Marshal(f))
}

// UnmarshalJSON decodes a wire record produced by MarshalJSON.
func (f *Fault) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	parsed, err := Unmarshal(rec)
	if err != nil {
		return err
	}

	*f = *parsed
	return nil
}
