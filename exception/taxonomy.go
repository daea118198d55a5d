package exception

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Taxonomy is the "is caught by" relation between kinds. Each concrete kind
// has at most one parent, and a parent never has a parent of its own, so
// matching only ever looks one level up. A Taxonomy is read-only once built.
type Taxonomy struct {
	parents [Any]Kind
}

var defaultTaxonomy = &Taxonomy{
	parents: [Any]Kind{
		DomainError:     LogicError,
		InvalidArgument: LogicError,
		LengthError:     LogicError,
		OutOfRange:      LogicError,
		RangeError:      RuntimeError,
		OverflowError:   RuntimeError,
		UnderflowError:  RuntimeError,
	},
}

// DefaultTaxonomy returns the standard relation: the four logic errors
// inherit from LogicError, the three arithmetic errors inherit from
// RuntimeError, and BadAlloc stands alone.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy
}

// NewTaxonomy builds a Taxonomy from a child to parent table. Kinds missing
// from the table have no parent. Every problem in the table is reported in
// the returned error.
func NewTaxonomy(parents map[Kind]Kind) (*Taxonomy, error) {
	var result *multierror.Error
	t := &Taxonomy{}
	for child, parent := range parents {
		switch {
		case !child.IsConcrete():
			result = multierror.Append(result, fmt.Errorf("invalid child kind %d", int(child)))
			continue
		case parent == None:
			continue
		case !parent.IsConcrete():
			result = multierror.Append(result, fmt.Errorf("invalid parent %s for %s", parent, child))
			continue
		case parent == child:
			result = multierror.Append(result, fmt.Errorf("%s cannot inherit from itself", child))
			continue
		}
		if grand, ok := parents[parent]; ok && grand != None {
			result = multierror.Append(result, fmt.Errorf(
				"%s inherits from %s which inherits from %s: only one level is allowed",
				child, parent, grand))
			continue
		}
		t.parents[child] = parent
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return t, nil
}

// Parent returns the direct parent of k, if any.
func (t *Taxonomy) Parent(k Kind) (Kind, bool) {
	if !k.IsConcrete() {
		return None, false
	}
	p := t.parents[k]
	return p, p != None
}

// Children returns the kinds whose parent is k, in declaration order.
func (t *Taxonomy) Children(k Kind) []Kind {
	var children []Kind
	for _, c := range Kinds() {
		if t.parents[c] == k && k != None {
			children = append(children, c)
		}
	}
	return children
}

// Catches reports whether a catch clause declared for the kind declared
// accepts the thrown kind. That is the case when declared is Any, when the
// two are equal, or when declared is the direct parent of thrown. Matching is
// not transitive. Sentinels are never caught.
func (t *Taxonomy) Catches(declared, thrown Kind) bool {
	if !thrown.IsConcrete() {
		return false
	}
	if declared == Any || declared == thrown {
		return true
	}
	return t.parents[thrown] == declared && declared != None
}
