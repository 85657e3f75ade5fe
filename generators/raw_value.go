package generators

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/fernandosanchezjr/hashrand/utils"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// RawValue is a seed input: Uint, Hex or Big.
type RawValue interface {
	fmt.Stringer
	toUint256() (*uint256.Int, error)
}

type Uint uint64

// Hex is a 0x prefixed hexadecimal string.
type Hex string

// Big wraps an arbitrary precision integer. The wrapped value is read, never
// retained or modified.
type Big struct {
	*big.Int
}

func NewBig(v *big.Int) Big {
	return Big{Int: v}
}

func (u Uint) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

func (u Uint) toUint256() (*uint256.Int, error) {
	return uint256.NewInt(uint64(u)), nil
}

func (h Hex) String() string {
	return string(h)
}

func (h Hex) toUint256() (*uint256.Int, error) {
	if value, ok := utils.ParseUint256(string(h)); ok {
		return value, nil
	}
	return nil, errors.Wrapf(ErrInvalidInput, "malformed hex %q", string(h))
}

func (b Big) String() string {
	if b.Int == nil {
		return "<nil>"
	}
	return b.Int.String()
}

func (b Big) toUint256() (*uint256.Int, error) {
	switch {
	case b.Int == nil:
		return nil, errors.Wrap(ErrInvalidInput, "nil big integer")
	case b.Int.Sign() < 0:
		return nil, errors.Wrapf(ErrInvalidInput, "negative value %s", b.Int)
	}
	if value, ok := utils.BigToUint256(b.Int); ok {
		return value, nil
	}
	return nil, errors.Wrapf(ErrInvalidInput, "value exceeds 256 bits (%d bits)", b.Int.BitLen())
}

// ParseRawValue reads a 0x prefixed hex string as Hex and a decimal string as
// Uint, or as Big when it does not fit in 64 bits.
func ParseRawValue(s string) (RawValue, error) {
	var trimmed = strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		var h = Hex(trimmed)
		if _, err := h.toUint256(); err != nil {
			return nil, err
		}
		return h, nil
	}
	if trimmed == "" || trimmed[0] == '-' || trimmed[0] == '+' {
		return nil, errors.Wrapf(ErrInvalidInput, "malformed number %q", s)
	}
	if value, err := strconv.ParseUint(trimmed, 10, 64); err == nil {
		return Uint(value), nil
	}
	var value, ok = new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidInput, "malformed number %q", s)
	}
	var b = NewBig(value)
	if _, err := b.toUint256(); err != nil {
		return nil, err
	}
	return b, nil
}

func normalize(inputs []RawValue) ([]*uint256.Int, error) {
	if len(inputs) == 0 {
		inputs = defaultInputs
	}
	var values = make([]*uint256.Int, len(inputs))
	for i, input := range inputs {
		if input == nil {
			return nil, errors.Wrapf(ErrInvalidInput, "input %d is nil", i)
		}
		value, err := input.toUint256()
		if err != nil {
			return nil, errors.WithMessagef(err, "input %d", i)
		}
		values[i] = value
	}
	return values, nil
}
