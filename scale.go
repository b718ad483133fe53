package fixedpoint

// Scale constrains the marker types that pin the number of fractional
// decimal digits of a [Fixed] value at compile time. The set of markers is
// closed: one per supported scale, 0 through 18.
type Scale interface {
	digits() int
}

// scaleOf reports the digit count of a scale marker.
func scaleOf[S Scale]() int {
	var s S
	return s.digits()
}

// Scale markers. Each is an empty struct whose only purpose is to select
// the scale of a [Fixed] instantiation.
type (
	Scale0  struct{}
	Scale1  struct{}
	Scale2  struct{}
	Scale3  struct{}
	Scale4  struct{}
	Scale5  struct{}
	Scale6  struct{}
	Scale7  struct{}
	Scale8  struct{}
	Scale9  struct{}
	Scale10 struct{}
	Scale11 struct{}
	Scale12 struct{}
	Scale13 struct{}
	Scale14 struct{}
	Scale15 struct{}
	Scale16 struct{}
	Scale17 struct{}
	Scale18 struct{}
)

func (Scale0) digits() int  { return 0 }
func (Scale1) digits() int  { return 1 }
func (Scale2) digits() int  { return 2 }
func (Scale3) digits() int  { return 3 }
func (Scale4) digits() int  { return 4 }
func (Scale5) digits() int  { return 5 }
func (Scale6) digits() int  { return 6 }
func (Scale7) digits() int  { return 7 }
func (Scale8) digits() int  { return 8 }
func (Scale9) digits() int  { return 9 }
func (Scale10) digits() int { return 10 }
func (Scale11) digits() int { return 11 }
func (Scale12) digits() int { return 12 }
func (Scale13) digits() int { return 13 }
func (Scale14) digits() int { return 14 }
func (Scale15) digits() int { return 15 }
func (Scale16) digits() int { return 16 }
func (Scale17) digits() int { return 17 }
func (Scale18) digits() int { return 18 }
