package exception

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{LogicError, "logic error"},
		{DomainError, "domain error"},
		{InvalidArgument, "invalid argument"},
		{LengthError, "length error"},
		{OutOfRange, "out of range error"},
		{RuntimeError, "runtime error"},
		{RangeError, "range error"},
		{OverflowError, "overflow error"},
		{UnderflowError, "underflow error"},
		{BadAlloc, "bad allocation"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.expected, Describe(tt.kind))
			require.Equal(t, tt.expected, tt.kind.Describe())
		})
	}
}

func TestDescribeUnknown(t *testing.T) {
	for _, k := range []Kind{None, Any, Kind(-1), Kind(42)} {
		assert.Equal(t, UnknownDescription, Describe(k), "kind %d", int(k))
	}
}

func TestDescribeStable(t *testing.T) {
	for _, k := range Kinds() {
		first := Describe(k)
		require.NotEmpty(t, first)
		require.Equal(t, first, Describe(k))
		require.NotEqual(t, UnknownDescription, first)
	}
}

func TestKindsOrder(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 10)
	require.Equal(t, LogicError, kinds[0])
	require.Equal(t, BadAlloc, kinds[len(kinds)-1])
	for i := 1; i < len(kinds); i++ {
		require.Less(t, int(kinds[i-1]), int(kinds[i]))
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "out_of_range", OutOfRange.String())
	require.Equal(t, "none", None.String())
	require.Equal(t, "any", Any.String())
	require.Equal(t, "unknown", Kind(99).String())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		ok       bool
	}{
		{"out_of_range", OutOfRange, true},
		{"OUT-OF-RANGE", OutOfRange, true},
		{" bad_alloc ", BadAlloc, true},
		{"any", Any, true},
		{"none", None, false},
		{"out_of_rang", None, false},
		{"", None, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, ok := ParseKind(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, k)
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, 11)
	require.Contains(t, names, "any")
	require.NotContains(t, names, "none")
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "out_of_range", Normalize("  Out-Of-Range "))
	require.Equal(t, "", Normalize("   "))
}
