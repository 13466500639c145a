// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

const opReduce = "Reduce"

// Form selects the target of a reduction.
type Form int

const (
	// FormREF is Row Echelon Form (ToREF).
	FormREF Form = iota + 1
	// FormRREF is Reduced Row Echelon Form (ToRREF).
	FormRREF
)

// String returns the short lower-case name: "ref" or "rref".
func (f Form) String() string {
	switch f {
	case FormREF:
		return "ref"
	case FormRREF:
		return "rref"
	default:
		return "unknown"
	}
}

// Title returns the long name, e.g. "Reduced Row Echelon Form".
func (f Form) Title() string {
	switch f {
	case FormREF:
		return "Row Echelon Form"
	case FormRREF:
		return "Reduced Row Echelon Form"
	default:
		return "unknown form"
	}
}

// ParseForm accepts "ref" or "rref", case-insensitively.
// Errors: ErrInvalidArgument for any other name.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ref":
		return FormREF, nil
	case "rref":
		return FormRREF, nil
	default:
		return 0, fmt.Errorf("%w: unknown form %q (want ref or rref)", ErrInvalidArgument, s)
	}
}

// Reduce dispatches to ToREF or ToRREF.
// Errors: ErrNilMatrix, or ErrInvalidArgument for an unknown form.
func Reduce(m *Matrix, f Form, opts ...Option) (*Matrix, error) {
	switch f {
	case FormREF:
		return ToREF(m, opts...)
	case FormRREF:
		return ToRREF(m, opts...)
	default:
		return nil, matrixErrorf(opReduce, fmt.Errorf("%w: unknown form %d", ErrInvalidArgument, int(f)))
	}
}
