package exception

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatchesReflexive(t *testing.T) {
	tax := DefaultTaxonomy()
	for _, k := range Kinds() {
		require.True(t, tax.Catches(k, k), "%s should catch itself", k)
		require.True(t, tax.Catches(Any, k), "any should catch %s", k)
	}
}

func TestCatchesParent(t *testing.T) {
	tax := DefaultTaxonomy()
	tests := []struct {
		declared Kind
		thrown   Kind
		expected bool
	}{
		{LogicError, OutOfRange, true},
		{LogicError, DomainError, true},
		{LogicError, InvalidArgument, true},
		{LogicError, LengthError, true},
		{RuntimeError, OverflowError, true},
		{RuntimeError, UnderflowError, true},
		{RuntimeError, RangeError, true},
		{DomainError, OutOfRange, false},
		{OutOfRange, LogicError, false},
		{RuntimeError, OutOfRange, false},
		{LogicError, BadAlloc, false},
		{RuntimeError, BadAlloc, false},
		{None, BadAlloc, false},
	}
	for _, tt := range tests {
		t.Run(tt.declared.String()+"/"+tt.thrown.String(), func(t *testing.T) {
			require.Equal(t, tt.expected, tax.Catches(tt.declared, tt.thrown))
		})
	}
}

func TestCatchesSentinels(t *testing.T) {
	tax := DefaultTaxonomy()
	require.False(t, tax.Catches(Any, None))
	require.False(t, tax.Catches(Any, Any))
	require.False(t, tax.Catches(None, None))
	require.False(t, tax.Catches(Any, Kind(77)))
}

func TestParentAndChildren(t *testing.T) {
	tax := DefaultTaxonomy()

	p, ok := tax.Parent(OutOfRange)
	require.True(t, ok)
	require.Equal(t, LogicError, p)

	_, ok = tax.Parent(LogicError)
	require.False(t, ok)
	_, ok = tax.Parent(BadAlloc)
	require.False(t, ok)
	_, ok = tax.Parent(Any)
	require.False(t, ok)

	require.Equal(t, []Kind{DomainError, InvalidArgument, LengthError, OutOfRange}, tax.Children(LogicError))
	require.Equal(t, []Kind{RangeError, OverflowError, UnderflowError}, tax.Children(RuntimeError))
	require.Empty(t, tax.Children(BadAlloc))
	require.Empty(t, tax.Children(None))
}

func TestNewTaxonomy(t *testing.T) {
	tax, err := NewTaxonomy(map[Kind]Kind{
		BadAlloc:   RuntimeError,
		OutOfRange: None,
	})
	require.NoError(t, err)
	require.True(t, tax.Catches(RuntimeError, BadAlloc))
	require.False(t, tax.Catches(LogicError, OutOfRange))
	require.False(t, tax.Catches(RuntimeError, OverflowError))
}

func TestNewTaxonomyRejectsMultiLevel(t *testing.T) {
	_, err := NewTaxonomy(map[Kind]Kind{
		OutOfRange:  DomainError,
		DomainError: LogicError,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "only one level is allowed")
}

func TestNewTaxonomyCollectsErrors(t *testing.T) {
	_, err := NewTaxonomy(map[Kind]Kind{
		None:       LogicError,
		BadAlloc:   BadAlloc,
		RangeError: Any,
	})
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "3 errors occurred")
	require.Contains(t, msg, "invalid child kind 0")
	require.Contains(t, msg, "bad_alloc cannot inherit from itself")
	require.Contains(t, msg, "invalid parent any for range_error")
}
