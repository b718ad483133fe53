/*
Package fixedpoint implements exact decimal arithmetic on a 64-bit
mantissa with a fixed number of fractional digits.

# Representation

A value is a mantissa m and a scale s, denoting m / 10^s.
The mantissa is an int64 and the scale is between 0 and 18 fractional
digits, so every value in range is represented exactly and arithmetic
never allocates on the happy path.

There are two kinds of value:

  - [Fixed] carries its scale in the type parameter, so a [Fixed] is a
    single machine word and mixing scales by accident is a compile
    error. [Units], [Millis], [Micros], [Nanos], [Picos], [Femtos] and
    [Attos] name the common instantiations.
  - [Variable] carries its scale at runtime, for code whose scale is
    data, such as currency handling.

Both kinds satisfy [Scaled], and the cross-scale operations ([GAdd],
[GMul], [GCmp] and friends) accept any mix of them.

# Rounding

Every operation that can lose digits takes an explicit [RoundingMode].
The eight modes match their well-known decimal arithmetic definitions,
including [RoundUnnecessary], which turns any inexact result into
[ErrInexactResult]. Products that overflow 64 bits internally are
computed through a 128-bit intermediate, so the rounded result is exact
whenever it fits the target scale.

# Errors

Operations return errors instead of panicking. Sentinel errors such as
[ErrOverflow], [ErrDivisionByZero] and [ErrInexactResult] are wrapped
with the failing operands and unwrap with [errors.Is]. The Must
variants ([MustParse], [Fixed.MustAdd] and so on) panic and suit
hardcoded inputs.

# Conversions

Values convert exactly to and from strings, [decimal.Decimal] and JSON,
and with explicit precision rules to and from float64. String and JSON
forms are plain decimal notation without exponents.
*/
package fixedpoint
