package logger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Goden-Gun/fault-lib/pkg/catalog"
	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/logger"
)

func TestWithFault_CatalogFault(t *testing.T) {
	t.Parallel()

	f := fault.New(catalog.ProtocolTimeout, nil)
	entry := logger.WithFault(f)

	if got := entry.Data["code"]; got != "PROTOCOL_TIMEOUT" {
		t.Fatalf("code field=%v", got)
	}

	if got := entry.Data["runtime_error"]; got != true {
		t.Fatalf("runtime_error field=%v", got)
	}

	if got, _ := entry.Data["fault_id"].(string); got == "" {
		t.Fatalf("fault_id field missing")
	}
}

func TestWithFault_PlainError(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	entry := logger.WithFault(plain)

	if entry.Data["error"] != plain {
		t.Fatalf("error field=%v", entry.Data["error"])
	}

	if _, ok := entry.Data["code"]; ok {
		t.Fatalf("plain error must not carry a code field")
	}
}

func TestWithTrace_NoSpan(t *testing.T) {
	t.Parallel()

	entry := logger.WithTrace(context.Background())
	if _, ok := entry.Data["trace_id"]; ok {
		t.Fatalf("trace_id must be absent without a span")
	}
}
