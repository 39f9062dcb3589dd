// Package catalog is the registry of structured fault kinds shared across
// the GGA audit services. It is the single source of truth for fault codes,
// their message keys, and the patterns used to classify raw debugging
// protocol failures.
package catalog

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Goden-Gun/fault-lib/pkg/messages"
)

// Sentinel codes for callers that need to report "no fault" or a fault of
// unclassified kind without constructing a full instance.
const (
	NoError      = "NO_ERROR"
	UnknownError = "UNKNOWN_ERROR"
)

// Definition describes one fault kind.
type Definition struct {
	// Code is the stable symbolic identifier, unique across the registry.
	Code string
	// MessageKey selects the friendly-message template.
	MessageKey messages.Key
	// SubstituteDefault fills the template placeholder when the caller
	// supplies no substitute. Empty means no default.
	SubstituteDefault string
	// Pattern, when set, makes the definition eligible for classification
	// of raw protocol failure text.
	Pattern *regexp.Regexp
	// RuntimeError marks faults severe enough to surface on the top-level
	// result summary rather than only in logs.
	RuntimeError bool
}

var (
	// Visual capture failures.

	// NoSpeedlineFrames indicates the filmstrip had no usable frames.
	NoSpeedlineFrames = Definition{Code: "NO_SPEEDLINE_FRAMES", MessageKey: messages.DidntCollectScreenshots, SubstituteDefault: "NO_SPEEDLINE_FRAMES"}
	// SpeedIndexOfZero indicates the computed speed index was zero.
	SpeedIndexOfZero = Definition{Code: "SPEEDINDEX_OF_ZERO", MessageKey: messages.DidntCollectScreenshots, SubstituteDefault: "SPEEDINDEX_OF_ZERO"}
	// NoScreenshots indicates the trace carried no screenshot events.
	NoScreenshots = Definition{Code: "NO_SCREENSHOTS", MessageKey: messages.DidntCollectScreenshots, SubstituteDefault: "NO_SCREENSHOTS"}
	// InvalidSpeedline indicates the filmstrip could not be analyzed.
	InvalidSpeedline = Definition{Code: "INVALID_SPEEDLINE", MessageKey: messages.DidntCollectScreenshots, SubstituteDefault: "INVALID_SPEEDLINE"}

	// Trace recording failures.

	// NoTracingStarted indicates the trace recording never began.
	NoTracingStarted = Definition{Code: "NO_TRACING_STARTED", MessageKey: messages.BadTraceRecording, SubstituteDefault: "NO_TRACING_STARTED"}
	// NoNavstart indicates the trace had no navigation start event.
	NoNavstart = Definition{Code: "NO_NAVSTART", MessageKey: messages.BadTraceRecording, SubstituteDefault: "NO_NAVSTART"}
	// NoFMP indicates the trace had no first meaningful paint event.
	NoFMP = Definition{Code: "NO_FMP", MessageKey: messages.BadTraceRecording, SubstituteDefault: "NO_FMP"}
	// NoDCL indicates the trace had no DOMContentLoaded event.
	NoDCL = Definition{Code: "NO_DCL", MessageKey: messages.BadTraceRecording, SubstituteDefault: "NO_DCL"}
	// NoFCP indicates the trace had no first contentful paint event.
	NoFCP = Definition{Code: "NO_FCP", MessageKey: messages.BadTraceRecording, SubstituteDefault: "NO_FCP"}

	// Interactivity computation failures.

	// NoTTICPUIdlePeriod indicates no CPU idle period was found.
	NoTTICPUIdlePeriod = Definition{Code: "NO_TTI_CPU_IDLE_PERIOD", MessageKey: messages.BadTraceRecording, SubstituteDefault: "NO_TTI_CPU_IDLE_PERIOD"}
	// NoTTINetworkIdlePeriod indicates no network idle period was found.
	NoTTINetworkIdlePeriod = Definition{Code: "NO_TTI_NETWORK_IDLE_PERIOD", MessageKey: messages.BadTraceRecording, SubstituteDefault: "NO_TTI_NETWORK_IDLE_PERIOD"}

	// Page load failures.

	// NoDocumentRequest indicates the page issued no document request.
	NoDocumentRequest = Definition{Code: "NO_DOCUMENT_REQUEST", MessageKey: messages.PageLoadFailed, RuntimeError: true}
	// FailedDocumentRequest indicates the document request did not complete.
	FailedDocumentRequest = Definition{Code: "FAILED_DOCUMENT_REQUEST", MessageKey: messages.PageLoadFailed, RuntimeError: true}
	// ErroredDocumentRequest indicates the document request completed with a
	// failing HTTP status; the substitute carries the status code.
	ErroredDocumentRequest = Definition{Code: "ERRORED_DOCUMENT_REQUEST", MessageKey: messages.PageLoadFailedWithStatusCode, RuntimeError: true}
	// InsecureDocumentRequest indicates the page failed TLS validation; the
	// substitute carries the security failure descriptions.
	InsecureDocumentRequest = Definition{Code: "INSECURE_DOCUMENT_REQUEST", MessageKey: messages.PageLoadFailedInsecure, RuntimeError: true}

	// Internal browser faults recognized from raw protocol text.

	// TracingAlreadyStarted indicates a stale tracing session was left open.
	TracingAlreadyStarted = Definition{Code: "TRACING_ALREADY_STARTED", MessageKey: messages.InternalBrowserError, Pattern: regexp.MustCompile(`Tracing.*started`)}
	// ParsingProblem indicates the browser failed to parse its own data.
	ParsingProblem = Definition{Code: "PARSING_PROBLEM", MessageKey: messages.InternalBrowserError, Pattern: regexp.MustCompile(`Parsing problem`)}
	// ReadFailed indicates the browser failed reading protocol data.
	ReadFailed = Definition{Code: "READ_FAILED", MessageKey: messages.InternalBrowserError, Pattern: regexp.MustCompile(`Read failed`)}

	// URL validation failures.

	// InvalidURL indicates the requested URL could not be parsed.
	InvalidURL = Definition{Code: "INVALID_URL", MessageKey: messages.URLInvalid}

	// Timeout failures. Detecting the timeout is the protocol client's job;
	// these entries only represent it.

	// ProtocolTimeout indicates a protocol command got no response in time;
	// the substitute carries the stalled method name.
	ProtocolTimeout = Definition{Code: "PROTOCOL_TIMEOUT", MessageKey: messages.ProtocolTimeout, SubstituteDefault: "No Method Loaded.", RuntimeError: true}
	// RequestContentTimeout indicates resource content fetching timed out.
	RequestContentTimeout = Definition{Code: "REQUEST_CONTENT_TIMEOUT", MessageKey: messages.RequestContentTimeout}
)

// Registry lists every definition in declaration order. The order is the
// classification precedence contract: when two patterns match the same raw
// text the earlier entry wins, so authors must register the more specific
// pattern first. Appending a new fault kind means adding its Definition
// above and one line here.
var Registry = []Definition{
	NoSpeedlineFrames,
	SpeedIndexOfZero,
	NoScreenshots,
	InvalidSpeedline,
	NoTracingStarted,
	NoNavstart,
	NoFMP,
	NoDCL,
	NoFCP,
	NoTTICPUIdlePeriod,
	NoTTINetworkIdlePeriod,
	NoDocumentRequest,
	FailedDocumentRequest,
	ErroredDocumentRequest,
	InsecureDocumentRequest,
	TracingAlreadyStarted,
	ParsingProblem,
	ReadFailed,
	InvalidURL,
	ProtocolTimeout,
	RequestContentTimeout,
}

// ErrUnknownCode reports a lookup for a code absent from the registry.
var ErrUnknownCode = errors.New("unknown fault code")

// Lookup returns the definition registered under code.
func Lookup(code string) (Definition, error) {
	for _, def := range Registry {
		if def.Code == code {
			return def, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %s", ErrUnknownCode, code)
}

// Patterned returns the definitions eligible for raw-text classification,
// in registry order.
func Patterned() []Definition {
	out := make([]Definition, 0, len(Registry))
	for _, def := range Registry {
		if def.Pattern != nil {
			out = append(out, def)
		}
	}
	return out
}
