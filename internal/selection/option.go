package selection

import (
	"strconv"
)

// Value identifies an option. It holds either text or a number; the two are
// never equal to each other, so Text("1") and Number(1) are distinct values.
type Value struct {
	text   string
	number float64
	isNum  bool
}

// Text returns a textual option value.
func Text(s string) Value {
	return Value{text: s}
}

// Number returns a numeric option value.
func Number(n float64) Value {
	return Value{number: n, isNum: true}
}

// IsNumber reports whether the value holds a number.
func (v Value) IsNumber() bool {
	return v.isNum
}

// Float returns the numeric payload and whether the value is numeric.
func (v Value) Float() (float64, bool) {
	return v.number, v.isNum
}

func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	}
	return v.text
}

// Option is one entry of the option list. Options are matched by Value only.
type Option struct {
	Label string
	Value Value
}

// Same reports whether both options carry the same value.
func (o Option) Same(other Option) bool {
	return o.Value == other.Value
}

// IndexOf returns the position of the option with the given value, or -1.
func IndexOf(options []Option, v Value) int {
	for i, opt := range options {
		if opt.Value == v {
			return i
		}
	}
	return -1
}
