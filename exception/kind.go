// Package exception defines the closed set of exception kinds and the
// single-level taxonomy used to decide which catch clause accepts a thrown
// kind.
package exception

import "strings"

// Kind identifies an exception. The set is closed and totally ordered; user
// code cannot add kinds.
type Kind int

const (
	// None means no exception has been thrown yet.
	None Kind = iota
	// LogicError is the root of errors in program logic.
	LogicError
	// DomainError indicates an argument outside a function's domain.
	DomainError
	// InvalidArgument indicates an unacceptable argument value.
	InvalidArgument
	// LengthError indicates an attempt to exceed a maximum size.
	LengthError
	// OutOfRange indicates an access outside a valid range.
	OutOfRange
	// RuntimeError is the root of errors only detectable at run time.
	RuntimeError
	// RangeError indicates a result that cannot be represented.
	RangeError
	// OverflowError indicates an arithmetic overflow.
	OverflowError
	// UnderflowError indicates an arithmetic underflow.
	UnderflowError
	// BadAlloc indicates an allocation failure.
	BadAlloc
	// Any is the catch-all sentinel. It is only meaningful in a catch
	// clause and can never be thrown.
	Any
)

var kindNames = [...]string{
	None:            "none",
	LogicError:      "logic_error",
	DomainError:     "domain_error",
	InvalidArgument: "invalid_argument",
	LengthError:     "length_error",
	OutOfRange:      "out_of_range",
	RuntimeError:    "runtime_error",
	RangeError:      "range_error",
	OverflowError:   "overflow_error",
	UnderflowError:  "underflow_error",
	BadAlloc:        "bad_alloc",
	Any:             "any",
}

var kindDescriptions = [...]string{
	LogicError:      "logic error",
	DomainError:     "domain error",
	InvalidArgument: "invalid argument",
	LengthError:     "length error",
	OutOfRange:      "out of range error",
	RuntimeError:    "runtime error",
	RangeError:      "range error",
	OverflowError:   "overflow error",
	UnderflowError:  "underflow error",
	BadAlloc:        "bad allocation",
}

// UnknownDescription is returned by Describe for values that are not
// concrete kinds.
const UnknownDescription = "unknown error"

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if k < None || k > Any {
		return "unknown"
	}
	return kindNames[k]
}

// Describe returns the human readable message for the kind.
func (k Kind) Describe() string {
	return Describe(k)
}

// IsConcrete reports whether k is a throwable kind, i.e. neither None, Any
// nor out of range.
func (k Kind) IsConcrete() bool {
	return k > None && k < Any
}

// Describe returns a static human readable message for the given kind, or
// UnknownDescription for sentinels and out-of-range values.
func Describe(k Kind) string {
	if !k.IsConcrete() {
		return UnknownDescription
	}
	return kindDescriptions[k]
}

// Kinds returns the concrete kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, Any-LogicError)
	for k := LogicError; k < Any; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Names returns the names of every kind usable in a catch clause, including
// the catch-all "any".
func Names() []string {
	names := make([]string, 0, Any)
	for k := LogicError; k <= Any; k++ {
		names = append(names, kindNames[k])
	}
	return names
}

// ParseKind resolves a kind from its name. Matching ignores case and accepts
// dashes in place of underscores. None is never returned with ok set.
func ParseKind(name string) (Kind, bool) {
	name = Normalize(name)
	for k := LogicError; k <= Any; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return None, false
}

// Normalize folds a user supplied kind name into the form used by String:
// lower case, no surrounding space, underscores for dashes.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}
