package duration

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Duration is an exact rational amount of musical time with no bound on the
// size of its numerator or denominator. The zero value is Zero.
//
// The value is held as the reduced text form of a big.Rat, so Durations
// stay immutable and comparable with == (and reflect.DeepEqual).
type Duration struct {
	v string
}

var Zero = Duration{}

func New(num, den int64) Duration {
	if den == 0 {
		panic("duration: zero denominator")
	}
	return FromRat(big.NewRat(num, den))
}

func FromInt(n int64) Duration {
	return FromRat(new(big.Rat).SetInt64(n))
}

// FromRat copies r.
func FromRat(r *big.Rat) Duration {
	if r.Sign() == 0 {
		return Zero
	}
	return Duration{v: r.RatString()}
}

// Parse reads "4", "3/16" or the notation form "3,16".
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	numText, denText, frac := strings.Cut(strings.Replace(s, ",", "/", 1), "/")
	num, ok := new(big.Int).SetString(strings.TrimSpace(numText), 10)
	if !ok {
		return Zero, fmt.Errorf("invalid duration %q", s)
	}
	den := big.NewInt(1)
	if frac {
		if den, ok = den.SetString(strings.TrimSpace(denText), 10); !ok {
			return Zero, fmt.Errorf("invalid duration %q", s)
		}
		if den.Sign() == 0 {
			return Zero, fmt.Errorf("invalid duration %q: zero denominator", s)
		}
	}
	return FromRat(new(big.Rat).SetFrac(num, den)), nil
}

// Rat returns a fresh copy of the value.
func (d Duration) Rat() *big.Rat {
	r := new(big.Rat)
	if d.v != "" {
		r.SetString(d.v)
	}
	return r
}

func (d Duration) Add(o Duration) Duration {
	return FromRat(new(big.Rat).Add(d.Rat(), o.Rat()))
}

// Sub may return a negative Duration; callers decide whether that is valid.
func (d Duration) Sub(o Duration) Duration {
	return FromRat(new(big.Rat).Sub(d.Rat(), o.Rat()))
}

// Mul scales d by num/den.
func (d Duration) Mul(num, den int64) Duration {
	return d.MulFrac(big.NewInt(num), big.NewInt(den))
}

// MulFrac scales d by num/den.
func (d Duration) MulFrac(num, den *big.Int) Duration {
	if den.Sign() == 0 {
		panic("duration: zero denominator")
	}
	return FromRat(new(big.Rat).Mul(d.Rat(), new(big.Rat).SetFrac(num, den)))
}

func (d Duration) Cmp(o Duration) int {
	return d.Rat().Cmp(o.Rat())
}

func (d Duration) Less(o Duration) bool {
	return d.Cmp(o) < 0
}

func (d Duration) Equal(o Duration) bool {
	return d == o
}

func (d Duration) IsZero() bool {
	return d.v == ""
}

func (d Duration) Sign() int {
	switch {
	case d.v == "":
		return 0
	case d.v[0] == '-':
		return -1
	}
	return 1
}

func Max(a, b Duration) Duration {
	if a.Less(b) {
		return b
	}
	return a
}

func Min(a, b Duration) Duration {
	if b.Less(a) {
		return b
	}
	return a
}

func (d Duration) Float64() float64 {
	f, _ := d.Rat().Float64()
	return f
}

func (d Duration) String() string {
	if d.v == "" {
		return "0"
	}
	return d.v
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a JSON integer or any string Parse accepts.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invalid duration %s", string(b))
		}
		s = n.String()
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
