package numeric

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
)

// Scalar is the set of element types the codec can persist.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Kind is the value kind of a MatrixMarket file.
type Kind uint8

// Value kinds.
const (
	Integer Kind = iota
	Real
	Complex
	Pattern
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Complex:
		return "complex"
	case Pattern:
		return "pattern"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Tokens returns the number of value tokens one entry of this kind occupies.
func (k Kind) Tokens() int {
	switch k {
	case Pattern:
		return 0
	case Complex:
		return 2
	default:
		return 1
	}
}

// KindOf returns the value kind of the scalar type T.
func KindOf[T Scalar]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return Real
	case reflect.Complex64, reflect.Complex128:
		return Complex
	default:
		return Integer
	}
}

// BlockShape is the scalar extent of one block.
type BlockShape struct {
	Rows, Cols int
}

// Scalar1x1 is the shape of an unblocked container.
var Scalar1x1 = BlockShape{Rows: 1, Cols: 1}

// Size returns the number of scalars in a block.
func (b BlockShape) Size() int {
	return b.Rows * b.Cols
}

// IsScalar reports whether the shape is 1x1.
func (b BlockShape) IsScalar() bool {
	return b.Rows == 1 && b.Cols == 1
}

// Valid reports whether both extents are positive.
func (b BlockShape) Valid() bool {
	return b.Rows > 0 && b.Cols > 0
}

func (b BlockShape) String() string {
	return fmt.Sprintf("%dx%d", b.Rows, b.Cols)
}

// Slot holds either a numeric value or nothing for pattern entries.
type Slot[T Scalar] struct {
	value   T
	pattern bool
}

// Numeric returns a slot carrying v.
func Numeric[T Scalar](v T) Slot[T] {
	return Slot[T]{value: v}
}

// PatternSlot returns a slot without a value.
func PatternSlot[T Scalar]() Slot[T] {
	return Slot[T]{pattern: true}
}

// IsPattern reports whether the slot carries no value.
func (s Slot[T]) IsPattern() bool {
	return s.pattern
}

// Value returns the value and whether the slot is numeric.
func (s Slot[T]) Value() (T, bool) {
	return s.value, !s.pattern
}

// Format renders v as MatrixMarket value tokens. Integers are written in
// decimal, reals in the shortest form that parses back to the same value
// and always with a decimal point or exponent, complex values as the real
// and imaginary part.
func Format[T Scalar](v T) []string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return []string{formatReal(rv.Float(), 32)}
	case reflect.Float64:
		return []string{formatReal(rv.Float(), 64)}
	case reflect.Complex64:
		c := rv.Complex()
		return []string{formatReal(real(c), 32), formatReal(imag(c), 32)}
	case reflect.Complex128:
		c := rv.Complex()
		return []string{formatReal(real(c), 64), formatReal(imag(c), 64)}
	default:
		return []string{strconv.FormatInt(rv.Int(), 10)}
	}
}

func formatReal(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}

// Parse decodes the value tokens of one entry written with kind k into T.
// A complex file can only be read into a complex container; integer and
// real files can be read into any container whose type can hold the value.
func Parse[T Scalar](k Kind, tokens []string) (T, error) {
	var v T
	if len(tokens) != k.Tokens() {
		return v, errs.Formatf("expected %d value tokens for %s, got %d", k.Tokens(), k, len(tokens))
	}
	if k == Pattern {
		return v, nil
	}
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if k == Complex {
			return v, errs.Unsupportedf("complex values cannot be stored as %s", rv.Type())
		}
		n, err := strconv.ParseInt(tokens[0], 10, rv.Type().Bits())
		if err != nil {
			return v, errs.Formatf("invalid %s value %q", rv.Type(), tokens[0])
		}
		rv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		if k == Complex {
			return v, errs.Unsupportedf("complex values cannot be stored as %s", rv.Type())
		}
		f, err := parseReal(tokens[0], rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		bits := rv.Type().Bits() / 2
		re, err := parseReal(tokens[0], bits)
		if err != nil {
			return v, err
		}
		var im float64
		if k == Complex {
			if im, err = parseReal(tokens[1], bits); err != nil {
				return v, err
			}
		}
		rv.SetComplex(complex(re, im))
	}
	return v, nil
}

// parseReal accepts Go float syntax and Fortran style 'D' exponents.
func parseReal(tok string, bits int) (float64, error) {
	f, err := strconv.ParseFloat(tok, bits)
	if err == nil {
		return f, nil
	}
	if strings.ContainsAny(tok, "dD") {
		if f, err := strconv.ParseFloat(strings.NewReplacer("d", "e", "D", "e").Replace(tok), bits); err == nil {
			return f, nil
		}
	}
	return 0, errs.Formatf("invalid real value %q", tok)
}
