package errors

// ErrorCode represents a unique identifier for engine faults.
// Codes are organized by category:
//   - E1xxx: Taxonomy errors
//   - E2xxx: Frame errors
//   - E3xxx: Propagation errors
type ErrorCode string

const (
	// Taxonomy errors (E1xxx)
	E1001 ErrorCode = "E1001" // Invalid exception kind
	E1002 ErrorCode = "E1002" // Invalid taxonomy

	// Frame errors (E2xxx)
	E2001 ErrorCode = "E2001" // Frame capacity exceeded
	E2002 ErrorCode = "E2002" // Unbalanced protected region
	E2003 ErrorCode = "E2003" // Protected region closed twice

	// Propagation errors (E3xxx)
	E3001 ErrorCode = "E3001" // Uncaught exception
	E3002 ErrorCode = "E3002" // Terminate handler returned
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "invalid exception kind",
	E1002: "invalid taxonomy",

	E2001: "frame capacity exceeded",
	E2002: "unbalanced protected region",
	E2003: "protected region closed twice",

	E3001: "uncaught exception",
	E3002: "terminate handler returned",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "taxonomy"
	case '2':
		return "frame"
	case '3':
		return "propagation"
	default:
		return "unknown"
	}
}
