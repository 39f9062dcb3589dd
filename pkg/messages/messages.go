// Package messages holds the localizable message catalog for audit faults.
//
// Every catalog entry maps a symbolic key to a display template. A template
// contains at most one {placeholder} token; rendering never leaves raw
// placeholder syntax in the output, a missing substitution is filled with
// the MissingValue marker instead.
//
// The base catalog is fixed at compile time. Translated tables can replace
// individual templates during process startup (see locale.go); after that
// the catalog is read-only and safe for concurrent use.
package messages

import (
	"errors"
	"fmt"
	"regexp"
)

// Key identifies one message template in the catalog.
type Key string

// Message keys. Several fault codes intentionally share one key: many
// distinct causes surface the same user-facing guidance.
const (
	DidntCollectScreenshots      Key = "didntCollectScreenshots"
	BadTraceRecording            Key = "badTraceRecording"
	PageLoadFailed               Key = "pageLoadFailed"
	PageLoadFailedWithStatusCode Key = "pageLoadFailedWithStatusCode"
	PageLoadFailedInsecure       Key = "pageLoadFailedInsecure"
	InternalBrowserError         Key = "internalBrowserError"
	RequestContentTimeout        Key = "requestContentTimeout"
	URLInvalid                   Key = "urlInvalid"
	ProtocolTimeout              Key = "protocolTimeout"
)

// MissingValue fills a template placeholder when no substitute is supplied.
const MissingValue = "UNKNOWN"

// ErrUnknownKey reports a render request for a key absent from the catalog.
var ErrUnknownKey = errors.New("unknown message key")

var placeholderPattern = regexp.MustCompile(`\{\w+\}`)

var catalog = map[Key]string{
	DidntCollectScreenshots:      "The browser didn't collect any screenshots during the page load. Please make sure there is content visible on the page, and then try re-running the audit. ({errorCode})",
	BadTraceRecording:            "Something went wrong with recording the trace over your page load. Please run the audit again. ({errorCode})",
	PageLoadFailed:               "The audit was unable to reliably load the page you requested. Make sure you are testing the correct URL and that the server is properly responding to all requests.",
	PageLoadFailedWithStatusCode: "The audit was unable to reliably load the page you requested. Make sure you are testing the correct URL and that the server is properly responding to all requests. (Status code: {statusCode})",
	PageLoadFailedInsecure:       "The URL you have provided does not have valid security credentials. ({securityMessages})",
	InternalBrowserError:         "An internal browser error occurred. Please restart the browser and try re-running the audit.",
	RequestContentTimeout:        "Fetching resource content has exceeded the allotted time.",
	URLInvalid:                   "The URL you have provided appears to be invalid.",
	ProtocolTimeout:              "Waiting for the debugging protocol response has exceeded the allotted time. (Method: {protocolMethod})",
}

// Render resolves key and fills the template's placeholder, if it has one.
// The optional substitute value takes the placeholder's position; without it
// the placeholder renders as MissingValue so the result is always a complete
// displayable sentence.
func Render(key Key, substitute ...string) (string, error) {
	tmpl, err := template(key)
	if err != nil {
		return "", err
	}

	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(string) string {
		if len(substitute) > 0 {
			return substitute[0]
		}
		return MissingValue
	}), nil
}

// Has reports whether key exists in the catalog.
func Has(key Key) bool {
	_, ok := catalog[key]
	return ok
}

// Keys returns every catalog key. Intended for catalog lint tooling.
func Keys() []Key {
	out := make([]Key, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	return out
}

func template(key Key) (string, error) {
	if tmpl, ok := activeLocale[key]; ok {
		return tmpl, nil
	}
	if tmpl, ok := catalog[key]; ok {
		return tmpl, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}
