package ledger

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"
)

func TestTupleTypedAccessors(t *testing.T) {
	tup := Tuple{
		"hub1creator",
		uint64(1),
		"15000000000",
		json.Number("1767139200"),
		true,
		[]any{"Kingston", "KIN"},
	}

	if s, err := tup.String(0); err != nil || s != "hub1creator" {
		t.Fatalf("String(0) = %q, %v", s, err)
	}
	if n, err := tup.Uint64(1); err != nil || n != 1 {
		t.Fatalf("Uint64(1) = %d, %v", n, err)
	}
	want := new(big.Int).SetUint64(15_000_000_000)
	if n, err := tup.BigInt(2); err != nil || n.Cmp(want) != 0 {
		t.Fatalf("BigInt(2) = %v, %v", n, err)
	}
	ts, err := tup.Time(3)
	if err != nil {
		t.Fatalf("Time(3): %v", err)
	}
	if !ts.Equal(time.Unix(1767139200, 0)) {
		t.Fatalf("Time(3) = %v", ts)
	}
	if b, err := tup.Bool(4); err != nil || !b {
		t.Fatalf("Bool(4) = %v, %v", b, err)
	}
	nested, err := tup.Tuple(5)
	if err != nil {
		t.Fatalf("Tuple(5): %v", err)
	}
	if s, err := nested.String(1); err != nil || s != "KIN" {
		t.Fatalf("nested String(1) = %q, %v", s, err)
	}
}

func TestTupleFieldErrors(t *testing.T) {
	tup := Tuple{"x", 3.5}

	if _, err := tup.String(7); !errors.Is(err, ErrFieldMissing) {
		t.Fatalf("expected ErrFieldMissing, got %v", err)
	}
	if _, err := tup.Uint64(0); !errors.Is(err, ErrFieldType) {
		t.Fatalf("expected ErrFieldType for non-numeric string, got %v", err)
	}
	if _, err := tup.BigInt(1); !errors.Is(err, ErrFieldType) {
		t.Fatalf("expected ErrFieldType for fractional number, got %v", err)
	}
	if _, err := tup.Bool(0); !errors.Is(err, ErrFieldType) {
		t.Fatalf("expected ErrFieldType for string-as-bool, got %v", err)
	}
}

func TestTupleUint64RejectsNegative(t *testing.T) {
	tup := Tuple{"-4"}
	if _, err := tup.Uint64(0); !errors.Is(err, ErrFieldType) {
		t.Fatalf("expected ErrFieldType, got %v", err)
	}
}
