// Package classify turns raw debugging-protocol failure reports into
// structured catalog faults.
package classify

import (
	"context"
	"fmt"

	"github.com/Goden-Gun/fault-lib/pkg/catalog"
	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/logger"
)

// ProtocolError is the raw failure payload reported by the browser's
// debugging protocol for a command.
type ProtocolError struct {
	Message string
	// Data is optional vendor detail accompanying the message.
	Data string
}

// ProtocolFault is the fallback failure used when no catalog pattern matches
// the raw text. It keeps the original method and message so no detail is
// lost, and is distinguishable from a catalog fault by the absence of a
// code.
type ProtocolFault struct {
	Method  string
	Message string
	Data    string
}

func (p *ProtocolFault) Error() string {
	text := fmt.Sprintf("Protocol error (%s): %s", p.Method, p.Message)
	if p.Data != "" {
		text = fmt.Sprintf("%s (%s)", text, p.Data)
	}
	return text
}

// Classify maps a raw protocol failure for method to a catalog fault.
//
// Patterned registry definitions are tried in declaration order against the
// raw message text and the first match wins; overlap between patterns is
// resolved by that order alone, never by match quality. When nothing
// matches, the report degrades to a *ProtocolFault carrying the raw detail.
// Classification always produces a failure value and never fails itself.
//
// ctx is used only to correlate log output with an active trace span.
func Classify(ctx context.Context, method string, perr ProtocolError) error {
	for _, def := range catalog.Patterned() {
		if !def.Pattern.MatchString(perr.Message) {
			continue
		}

		f := fault.New(def, map[string]any{
			"protocolMethod": method,
			"protocolError":  perr.Message,
		})
		logger.WithTrace(ctx).WithFields(logger.Fields{
			"method": method,
			"code":   f.Code(),
		}).Debug("protocol failure classified")
		return f
	}

	pf := &ProtocolFault{Method: method, Message: perr.Message, Data: perr.Data}
	logger.WithTrace(ctx).WithField("method", method).
		Warn("protocol failure matched no catalog pattern")
	return pf
}
