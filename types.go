package fixedpoint

// Named instantiations for the scales that come up constantly in
// financial code. Every one of them is an ordinary [Fixed] and mixes
// freely with the rest of the family through [Scaled].
type (
	// Units holds whole numbers.
	Units = Fixed[Scale0]
	// Millis holds values with 3 fractional digits.
	Millis = Fixed[Scale3]
	// Micros holds values with 6 fractional digits.
	Micros = Fixed[Scale6]
	// Nanos holds values with 9 fractional digits.
	Nanos = Fixed[Scale9]
	// Picos holds values with 12 fractional digits.
	Picos = Fixed[Scale12]
	// Femtos holds values with 15 fractional digits.
	Femtos = Fixed[Scale15]
	// Attos holds values with 18 fractional digits.
	Attos = Fixed[Scale18]
)

// NewUnits returns a whole number from its mantissa.
func NewUnits(mantissa int64) Units { return New[Scale0](mantissa) }

// NewMillis returns a 3-digit value from its mantissa.
func NewMillis(mantissa int64) Millis { return New[Scale3](mantissa) }

// NewMicros returns a 6-digit value from its mantissa.
func NewMicros(mantissa int64) Micros { return New[Scale6](mantissa) }

// NewNanos returns a 9-digit value from its mantissa.
func NewNanos(mantissa int64) Nanos { return New[Scale9](mantissa) }

// NewPicos returns a 12-digit value from its mantissa.
func NewPicos(mantissa int64) Picos { return New[Scale12](mantissa) }

// NewFemtos returns a 15-digit value from its mantissa.
func NewFemtos(mantissa int64) Femtos { return New[Scale15](mantissa) }

// NewAttos returns an 18-digit value from its mantissa.
func NewAttos(mantissa int64) Attos { return New[Scale18](mantissa) }
