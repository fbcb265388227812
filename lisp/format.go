package lisp

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bmatsuo/lispy/internal/lfmt"
)

// ProcedureMarker is the printed form of every primitive and closure.
const ProcedureMarker = "#<procedure>"

// Format writes the printed representation of v to w.  Lists print as their
// space separated elements in parentheses, procedures print as
// ProcedureMarker, booleans print as #t or #f and unspecified values print
// nothing.
func Format(w io.Writer, v *LVal) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value")
	}
	switch v.Type {
	case LNumber:
		return io.WriteString(w, FormatNumber(v.Num))
	case LSymbol:
		return io.WriteString(w, v.Str)
	case LBool:
		if v.Num != 0 {
			return io.WriteString(w, "#t")
		}
		return io.WriteString(w, "#f")
	case LList:
		return lfmt.WriteSeq(w, "(", " ", ")", len(v.Cells), func(w io.Writer, i int) (int, error) {
			return Format(w, v.Cells[i])
		})
	case LPrimitive, LClosure:
		return io.WriteString(w, ProcedureMarker)
	case LUnspecified:
		return 0, nil
	default:
		return 0, fmt.Errorf("unrecognized type: %v", v.Type)
	}
}

// FormatNumber returns the shortest representation of x that reads back as
// x.  Integral values print without an exponent or fraction.
func FormatNumber(x float64) string {
	if x == math.Trunc(x) && math.Abs(x) < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func (v *LVal) String() string {
	var buf strings.Builder
	_, err := Format(&buf, v)
	if err != nil {
		return fmt.Sprintf("#<invalid: %v>", err)
	}
	return buf.String()
}
