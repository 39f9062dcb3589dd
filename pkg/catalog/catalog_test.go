package catalog_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/Goden-Gun/fault-lib/pkg/catalog"
	"github.com/Goden-Gun/fault-lib/pkg/messages"
)

var codeShape = regexp.MustCompile(`^[A-Z_]+$`)

// Registry lint: the authoring invariants every entry must satisfy.
func TestRegistry_Authoring(t *testing.T) {
	t.Parallel()

	if len(catalog.Registry) == 0 {
		t.Fatalf("empty registry")
	}

	seen := make(map[string]bool, len(catalog.Registry))
	for _, def := range catalog.Registry {
		if !codeShape.MatchString(def.Code) {
			t.Errorf("code %q does not match %s", def.Code, codeShape)
		}

		if seen[def.Code] {
			t.Errorf("duplicate code %q", def.Code)
		}
		seen[def.Code] = true

		if !messages.Has(def.MessageKey) {
			t.Errorf("code %q references unknown message key %q", def.Code, def.MessageKey)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	def, err := catalog.Lookup("NO_FCP")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}

	if def.Code != "NO_FCP" {
		t.Fatalf("Lookup code=%q", def.Code)
	}

	if _, err := catalog.Lookup("NOT_IN_REGISTRY"); !errors.Is(err, catalog.ErrUnknownCode) {
		t.Fatalf("err=%v, want ErrUnknownCode", err)
	}
}

func TestPatterned_OrderAndSubset(t *testing.T) {
	t.Parallel()

	patterned := catalog.Patterned()
	if len(patterned) == 0 {
		t.Fatalf("no patterned definitions")
	}

	idx := make(map[string]int, len(catalog.Registry))
	for i, def := range catalog.Registry {
		idx[def.Code] = i
	}

	last := -1
	for _, def := range patterned {
		if def.Pattern == nil {
			t.Fatalf("Patterned returned %q without a pattern", def.Code)
		}

		pos, ok := idx[def.Code]
		if !ok {
			t.Fatalf("Patterned returned %q, not in registry", def.Code)
		}
		if pos <= last {
			t.Fatalf("Patterned out of registry order at %q", def.Code)
		}
		last = pos
	}
}

func TestSentinels(t *testing.T) {
	t.Parallel()

	if catalog.NoError == catalog.UnknownError {
		t.Fatalf("sentinels must be distinct")
	}

	// Sentinels are not registry entries; they stand in where no full
	// fault instance exists.
	for _, code := range []string{catalog.NoError, catalog.UnknownError} {
		if _, err := catalog.Lookup(code); err == nil {
			t.Fatalf("sentinel %q must not resolve to a definition", code)
		}
	}
}
