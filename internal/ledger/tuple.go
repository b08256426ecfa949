package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

var (
	ErrFieldMissing = errors.New("tuple field is missing")
	ErrFieldType    = errors.New("tuple field has unexpected type")
)

// Tuple is a fixed-order positional record returned by a ledger read. List
// results are tuples whose elements are plain values or nested tuples. The
// index-to-field mapping of each call is a compatibility contract owned by
// the coordinator that decodes it.
type Tuple []any

func (t Tuple) at(i int) (any, error) {
	if i < 0 || i >= len(t) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrFieldMissing, i, len(t))
	}
	return t[i], nil
}

func (t Tuple) String(i int) (string, error) {
	v, err := t.at(i)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	}
	return "", fmt.Errorf("%w: index %d is %T, want string", ErrFieldType, i, v)
}

// BigInt accepts the integer shapes the gateway emits: native ints, big.Int,
// and decimal strings (arbitrary-precision values cross JSON as strings).
func (t Tuple) BigInt(i int) (*big.Int, error) {
	v, err := t.at(i)
	if err != nil {
		return nil, err
	}
	switch n := v.(type) {
	case *big.Int:
		return new(big.Int).Set(n), nil
	case int:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return nil, fmt.Errorf("%w: index %d is a non-integral number", ErrFieldType, i)
		}
		return big.NewInt(int64(n)), nil
	case json.Number:
		if out, ok := new(big.Int).SetString(n.String(), 10); ok {
			return out, nil
		}
	case string:
		if out, ok := new(big.Int).SetString(strings.TrimSpace(n), 10); ok {
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: index %d is %T, want integer", ErrFieldType, i, v)
}

func (t Tuple) Uint64(i int) (uint64, error) {
	n, err := t.BigInt(i)
	if err != nil {
		return 0, err
	}
	if n.Sign() < 0 || !n.IsUint64() {
		return 0, fmt.Errorf("%w: index %d is out of uint64 range", ErrFieldType, i)
	}
	return n.Uint64(), nil
}

func (t Tuple) Int64(i int) (int64, error) {
	n, err := t.BigInt(i)
	if err != nil {
		return 0, err
	}
	if !n.IsInt64() {
		return 0, fmt.Errorf("%w: index %d is out of int64 range", ErrFieldType, i)
	}
	return n.Int64(), nil
}

func (t Tuple) Bool(i int) (bool, error) {
	v, err := t.at(i)
	if err != nil {
		return false, err
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, fmt.Errorf("%w: index %d is %T, want bool", ErrFieldType, i, v)
}

// Time decodes a whole-second epoch timestamp.
func (t Tuple) Time(i int) (time.Time, error) {
	secs, err := t.Int64(i)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(secs, 0).UTC(), nil
}

// Tuple decodes a nested positional record, as returned inside list results.
func (t Tuple) Tuple(i int) (Tuple, error) {
	v, err := t.at(i)
	if err != nil {
		return nil, err
	}
	switch n := v.(type) {
	case Tuple:
		return n, nil
	case []any:
		return Tuple(n), nil
	}
	return nil, fmt.Errorf("%w: index %d is %T, want tuple", ErrFieldType, i, v)
}
