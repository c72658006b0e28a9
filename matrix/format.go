// SPDX-License-Identifier: MIT

// Package matrix - text renderings.
//
// Purpose:
//   - String: nested list-of-lists in LOGICAL row-major order,
//     e.g. [[1.0, 2.0], [3.0, 4.0]].
//   - Repr/GoString: the constructor form over the PHYSICAL buffer,
//     e.g. Matrix((2, 3), (1.0, 2.0, 3.0, 4.0, 5.0, 6.0), transposed=false).
//   - ParseRepr: the inverse of Repr.
//
// Element format:
//   - Shortest decimal that round-trips the float32 value, always with a
//     fraction or an exponent: 1.0, 0.1, 1e-05, 1e+16, inf, -inf, nan.
package matrix

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_reprPrefix  = "Matrix("
	_reprFlag    = "transposed="
)

// formatElem renders one element (see the package notes above).
func formatElem(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'e', -1, 32)
	exp, _ := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return s
	}
	s = strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// String renders m as a nested list of logical rows.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	r, c := m.Shape()
	d := m.data()
	rs, cs := m.logicalStrides()

	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i := 0; i < r; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(formatElem(d[i*rs+j*cs]))
		}
		sb.WriteString(_fmtRowClose)
	}
	sb.WriteString(_fmtRowClose)

	return sb.String()
}

// Repr renders m in constructor form over its physical buffer. ParseRepr
// reverses it exactly.
func (m *Matrix) Repr() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(_reprPrefix)
	sb.WriteString("(" + strconv.Itoa(m.rows) + _fmtSep + strconv.Itoa(m.cols) + ")")
	sb.WriteString(_fmtSep + "(")
	d := m.data()
	for k, v := range d {
		if k > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(formatElem(v))
	}
	if len(d) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteString(")" + _fmtSep + _reprFlag + strconv.FormatBool(m.transposed) + ")")

	return sb.String()
}

// GoString implements fmt.GoStringer with Repr, so %#v prints the constructor form.
func (m *Matrix) GoString() string { return m.Repr() }

// ParseRepr parses the constructor form produced by Repr. The transposed flag
// accepts the forms of strconv.ParseBool (false, true, 0, 1, ...).
//
// Errors:
//   - ErrInvalidArgument for malformed text.
//   - ErrTypeMismatch for a shape or element that is not a number.
//   - ErrShapeError for an invalid shape or element count.
func ParseRepr(s string) (*Matrix, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(s), _reprPrefix)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "ParseRepr: missing %q prefix", _reprPrefix)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return nil, errors.Wrap(ErrInvalidArgument, "ParseRepr: missing closing parenthesis")
	}
	shapeStr, rest, err := cutGroup(body)
	if err != nil {
		return nil, errors.WithMessage(err, "ParseRepr: shape")
	}
	dataStr, rest, err := cutGroup(cutComma(rest))
	if err != nil {
		return nil, errors.WithMessage(err, "ParseRepr: data")
	}
	flagStr, ok := strings.CutPrefix(cutComma(rest), _reprFlag)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "ParseRepr: missing %q", _reprFlag)
	}
	transposed, err := strconv.ParseBool(strings.TrimSpace(flagStr))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "ParseRepr: transposed flag %q", flagStr)
	}

	dims := splitList(shapeStr)
	if len(dims) != 2 {
		return nil, errors.Wrapf(ErrShapeError, "ParseRepr: shape has %d entries", len(dims))
	}
	var shape [2]int
	for k, d := range dims {
		if shape[k], err = strconv.Atoi(d); err != nil {
			return nil, errors.Wrapf(ErrTypeMismatch, "ParseRepr: shape entry %q", d)
		}
	}
	items := splitList(dataStr)
	vals := make([]float32, len(items))
	for k, it := range items {
		f, err := strconv.ParseFloat(it, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, errors.Wrapf(ErrTypeMismatch, "ParseRepr: element %d %q", k, it)
		}
		vals[k] = float32(f)
	}

	return New(shape[0], shape[1], WithData(vals), WithTransposed(transposed))
}

// cutGroup splits "(a, b) rest" into "a, b" and " rest".
func cutGroup(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		return "", "", errors.Wrap(ErrInvalidArgument, "expected '('")
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return "", "", errors.Wrap(ErrInvalidArgument, "expected ')'")
	}

	return s[1:end], s[end+1:], nil
}

// cutComma drops the separator between two groups.
func cutComma(s string) string {
	s = strings.TrimSpace(s)
	s, _ = strings.CutPrefix(s, ",")

	return strings.TrimSpace(s)
}

// splitList splits "a, b, c" (optionally with a trailing comma) into trimmed items.
func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	if strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	for k := range parts {
		parts[k] = strings.TrimSpace(parts[k])
	}

	return parts
}
