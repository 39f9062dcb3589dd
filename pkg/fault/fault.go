// Package fault implements the structured failure type produced by
// classification and carried across audit service boundaries.
package fault

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/Goden-Gun/fault-lib/pkg/catalog"
	"github.com/Goden-Gun/fault-lib/pkg/messages"
)

// SubstituteKey is the extra-property key consulted for the message template
// placeholder value. When present it overrides the definition's default.
const SubstituteKey = "substitute"

// Extra keys derived from the definition. Supplying them as extras is a
// call-site authoring error, not a runtime condition.
var reservedKeys = map[string]struct{}{
	"code":         {},
	"message":      {},
	"runtimeError": {},
}

// Fault is a classified failure: a registry code plus the rendered friendly
// message and an open bag of diagnostic properties. Instances are immutable
// after construction.
type Fault struct {
	code            string
	friendlyMessage string
	runtimeError    bool
	extra           map[string]any
	id              string
	stack           []uintptr
}

// New builds a Fault from a registry definition and merges the caller's
// extra diagnostic properties.
//
// The friendly message is rendered from the definition's message key; the
// extras' SubstituteKey value, then the definition's SubstituteDefault, fill
// the template placeholder. New never fails for a well-formed definition. A
// definition whose message key is missing from the message catalog, or an
// extra named after a reserved key, is an authoring defect and panics.
func New(def catalog.Definition, extra map[string]any) *Fault {
	substitute, hasSubstitute := "", false
	if v, ok := extra[SubstituteKey].(string); ok {
		substitute, hasSubstitute = v, true
	} else if def.SubstituteDefault != "" {
		substitute, hasSubstitute = def.SubstituteDefault, true
	}

	var (
		msg string
		err error
	)
	if hasSubstitute {
		msg, err = messages.Render(def.MessageKey, substitute)
	} else {
		msg, err = messages.Render(def.MessageKey)
	}
	if err != nil {
		panic(fmt.Sprintf("fault: definition %s: %v", def.Code, err))
	}

	return &Fault{
		code:            def.Code,
		friendlyMessage: msg,
		runtimeError:    def.RuntimeError,
		extra:           cloneExtra(extra),
		id:              uuid.NewString(),
		stack:           captureStack(),
	}
}

func (f *Fault) Error() string {
	if f == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", f.code, f.friendlyMessage)
}

// Code returns the registry code identifying the fault kind.
func (f *Fault) Code() string { return f.code }

// FriendlyMessage returns the rendered, displayable message.
func (f *Fault) FriendlyMessage() string { return f.friendlyMessage }

// RuntimeError reports whether the fault belongs on the top-level result
// summary.
func (f *Fault) RuntimeError() bool { return f.runtimeError }

// ID returns the provenance id assigned at construction. It identifies the
// instance, not the fault kind, and is not part of the round-trip contract.
func (f *Fault) ID() string { return f.id }

// Extra returns a defensive copy of the diagnostic properties.
func (f *Fault) Extra() map[string]any {
	if len(f.extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(f.extra))
	for k, v := range f.extra {
		out[k] = v
	}
	return out
}

// Stack formats the call stack captured at construction.
func (f *Fault) Stack() string {
	if len(f.stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(f.stack)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}

func cloneExtra(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if _, reserved := reservedKeys[k]; reserved {
			panic("fault: reserved extra key: " + k)
		}
		out[k] = v
	}
	return out
}

func captureStack() []uintptr {
	pcs := make([]uintptr, 32)
	// skip runtime.Callers, captureStack and the constructor frame
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}
