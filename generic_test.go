package fixedpoint

import (
	"errors"
	"math"
	"testing"
)

func TestGAdd(t *testing.T) {
	tests := []struct {
		x, y  Scaled
		want  string
		scale int
	}{
		{MustParse[Scale2]("1.25"), MustParse[Scale1]("0.5"), "1.75", 2},
		{MustParse[Scale1]("0.5"), MustParse[Scale2]("1.25"), "1.75", 2},
		{NewUnits(3), MustParse[Scale3]("0.125"), "3.125", 3},
		{MustParseVariable("-1.5"), NewUnits(2), "0.5", 1},
	}
	for _, tt := range tests {
		got, err := GAdd(tt.x, tt.y)
		if err != nil {
			t.Errorf("GAdd(%v, %v) failed: %v", tt.x, tt.y, err)
			continue
		}
		if got.String() != tt.want || got.Scale() != tt.scale {
			t.Errorf("GAdd(%v, %v) = %q at scale %d, want %q at scale %d", tt.x, tt.y, got, got.Scale(), tt.want, tt.scale)
		}
	}
}

func TestGAdd_zeroShortCircuit(t *testing.T) {
	// adding zero returns the other operand unchanged, scale included
	x := MustParse[Scale2]("1.25")
	got, err := GAdd(New[Scale6](0), x)
	if err != nil {
		t.Fatalf("GAdd(0, x) failed: %v", err)
	}
	if got.Mantissa() != x.Mantissa() || got.Scale() != x.Scale() {
		t.Errorf("GAdd(0, x) = %d at scale %d, want %d at scale %d", got.Mantissa(), got.Scale(), x.Mantissa(), x.Scale())
	}
	got, err = GAdd(x, New[Scale6](0))
	if err != nil {
		t.Fatalf("GAdd(x, 0) failed: %v", err)
	}
	if got.Mantissa() != x.Mantissa() || got.Scale() != x.Scale() {
		t.Errorf("GAdd(x, 0) = %d at scale %d, want %d at scale %d", got.Mantissa(), got.Scale(), x.Mantissa(), x.Scale())
	}
}

func TestGSub(t *testing.T) {
	got, err := GSub(MustParse[Scale2]("1.25"), MustParse[Scale1]("0.5"))
	if err != nil || got.String() != "0.75" {
		t.Errorf("GSub(1.25, 0.5) = %v, %v, want 0.75", got, err)
	}

	// subtracting from zero negates the operand at its own scale
	neg, err := GSub(NewUnits(0), MustParse[Scale3]("1.500"))
	if err != nil || neg.String() != "-1.500" || neg.Scale() != 3 {
		t.Errorf("GSub(0, 1.500) = %v, %v, want -1.500 at scale 3", neg, err)
	}
}

func TestGMul(t *testing.T) {
	tests := []struct {
		x, y  Scaled
		mode  RoundingMode
		want  string
		scale int
	}{
		// the product takes the left operand's scale
		{MustParse[Scale3]("12.345"), NewUnits(2), RoundHalfEven, "24.690", 3},
		{MustParse[Scale2]("1.50"), MustParse[Scale1]("1.5"), RoundUnnecessary, "2.25", 2},
		{MustParse[Scale2]("0.33"), MustParse[Scale2]("0.33"), RoundHalfEven, "0.11", 2},
		{MustParseVariable("-1.5"), MustParseVariable("1.5"), RoundHalfEven, "-2.2", 1},
	}
	for _, tt := range tests {
		got, err := GMul(tt.x, tt.y, tt.mode)
		if err != nil {
			t.Errorf("GMul(%v, %v, %v) failed: %v", tt.x, tt.y, tt.mode, err)
			continue
		}
		if got.String() != tt.want || got.Scale() != tt.scale {
			t.Errorf("GMul(%v, %v, %v) = %q at scale %d, want %q at scale %d", tt.x, tt.y, tt.mode, got, got.Scale(), tt.want, tt.scale)
		}
	}
}

func TestGMul_shortCircuits(t *testing.T) {
	x := MustParse[Scale2]("12.34")
	one := MustParse[Scale6]("1.000000")

	got, err := GMul(x, one, RoundUnnecessary)
	if err != nil || got.Mantissa() != x.Mantissa() || got.Scale() != x.Scale() {
		t.Errorf("GMul(x, 1) = %v, %v, want x unchanged", got, err)
	}
	got, err = GMul(one, x, RoundUnnecessary)
	if err != nil || got.Mantissa() != x.Mantissa() || got.Scale() != x.Scale() {
		t.Errorf("GMul(1, x) = %v, %v, want x unchanged", got, err)
	}
	got, err = GMul(x, New[Scale9](0), RoundUnnecessary)
	if err != nil || !got.IsZero() || got.Scale() != 9 {
		t.Errorf("GMul(x, 0) = %v, %v, want the zero operand", got, err)
	}
	got, err = GMul(MustParse[Scale1]("-1.0"), x, RoundUnnecessary)
	if err != nil || got.String() != "-12.34" {
		t.Errorf("GMul(-1, x) = %v, %v, want -12.34", got, err)
	}
}

func TestGMulScale(t *testing.T) {
	tests := []struct {
		x, y  Scaled
		scale int
		mode  RoundingMode
		want  string
	}{
		// single rounding at the target scale
		{NewUnits(1000), MustParse[Scale4]("0.0093"), 2, RoundHalfEven, "9.30"},
		{MustParse[Scale2]("10.00"), MustParse[Scale1]("107.5"), 0, RoundHalfEven, "1075"},
		{MustParse[Scale3]("12.345"), NewUnits(2), 1, RoundHalfEven, "24.7"},
		{MustParse[Scale3]("12.345"), NewUnits(2), 6, RoundUnnecessary, "24.690000"},
	}
	for _, tt := range tests {
		got, err := GMulScale(tt.x, tt.y, tt.scale, tt.mode)
		if err != nil {
			t.Errorf("GMulScale(%v, %v, %d, %v) failed: %v", tt.x, tt.y, tt.scale, tt.mode, err)
			continue
		}
		if got.String() != tt.want || got.Scale() != tt.scale {
			t.Errorf("GMulScale(%v, %v, %d, %v) = %q, want %q", tt.x, tt.y, tt.scale, tt.mode, got, tt.want)
		}
	}

	if _, err := GMulScale(NewUnits(1), NewUnits(1), 19, RoundHalfEven); !errors.Is(err, ErrScaleRange) {
		t.Errorf("GMulScale at scale 19 error = %v, want %v", err, ErrScaleRange)
	}
}

func TestGDiv(t *testing.T) {
	got, err := GDiv(MustParse[Scale2]("7.00"), NewUnits(4), RoundHalfUp)
	if err != nil || got.String() != "1.75" {
		t.Errorf("GDiv(7.00, 4) = %v, %v, want 1.75", got, err)
	}
	if _, err := GDiv(NewUnits(1), New[Scale4](0), RoundHalfEven); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("GDiv(1, 0) error = %v, want %v", err, ErrDivisionByZero)
	}

	// dividing by one returns the dividend unchanged
	keep, err := GDiv(MustParse[Scale3]("9.999"), MustParse[Scale1]("1.0"), RoundUnnecessary)
	if err != nil || keep.String() != "9.999" {
		t.Errorf("GDiv(9.999, 1) = %v, %v, want 9.999", keep, err)
	}
}

func TestGCmp(t *testing.T) {
	if got := GCmp(MustParse[Scale2]("1.00"), NewUnits(1)); got != 0 {
		t.Errorf("GCmp(1.00, 1) = %d, want 0", got)
	}
	if got := GCmp(MustParse[Scale2]("1.01"), MustParseVariable("1.0")); got != 1 {
		t.Errorf("GCmp(1.01, 1.0) = %d, want 1", got)
	}
	if got := GCmp(NewUnits(-1), New[Scale18](1)); got != -1 {
		t.Errorf("GCmp(-1, 1e-18) = %d, want -1", got)
	}
}

func TestGMinMax(t *testing.T) {
	x, y := MustParse[Scale2]("1.50"), MustParse[Scale1]("1.4")
	if got := GMin(x, y); got.String() != "1.4" {
		t.Errorf("GMin(1.50, 1.4) = %q, want 1.4", got)
	}
	if got := GMax(x, y); got.String() != "1.50" {
		t.Errorf("GMax(1.50, 1.4) = %q, want 1.50", got)
	}
}

func TestGSum(t *testing.T) {
	t.Run("mixed scales", func(t *testing.T) {
		xs := []Scaled{
			MustParse[Scale2]("1.10"),
			MustParse[Scale1]("2.2"),
			NewUnits(3),
			MustParseVariable("-0.300"),
		}
		got, err := GSum(xs)
		if err != nil {
			t.Fatalf("GSum failed: %v", err)
		}
		if got.String() != "6.000" || got.Scale() != 3 {
			t.Errorf("GSum = %q at scale %d, want 6.000 at scale 3", got, got.Scale())
		}
	})
	t.Run("empty is zero", func(t *testing.T) {
		got, err := GSum(nil)
		if err != nil || !got.IsZero() || got.Scale() != 0 {
			t.Errorf("GSum(nil) = %v, %v, want 0 at scale 0", got, err)
		}
	})
	t.Run("overflow", func(t *testing.T) {
		xs := []Scaled{NewUnits(math.MaxInt64), NewUnits(math.MaxInt64)}
		if _, err := GSum(xs); !errors.Is(err, ErrOverflow) {
			t.Errorf("GSum(overflow) error = %v, want %v", err, ErrOverflow)
		}
	})
}
