package value

import "fmt"

// Type identifies a runtime value type. Types form a single-inheritance
// hierarchy rooted at Any, the fully-dynamic type that stands in for
// "unknown until evaluation".
//
// Types are declared once at startup, before any condition is constructed;
// the table is append-only and never mutated afterwards.
type Type struct {
	name   string
	parent *Type
}

// Built-in types. Any is its own root; everything else descends from it.
var (
	Any         = &Type{name: "object"}
	NumberType  = &Type{name: "number", parent: Any}
	TextType    = &Type{name: "text", parent: Any}
	BoolType    = &Type{name: "boolean", parent: Any}
	InstantType = &Type{name: "date", parent: Any}
	SpanType    = &Type{name: "timespan", parent: Any}
)

var typesByName = map[string]*Type{
	Any.name:         Any,
	NumberType.name:  NumberType,
	TextType.name:    TextType,
	BoolType.name:    BoolType,
	InstantType.name: InstantType,
	SpanType.name:    SpanType,
}

// NewType declares a type under parent. A nil parent means Any. Declaring a
// name twice panics; type declaration is a startup-time concern.
func NewType(name string, parent *Type) *Type {
	if parent == nil {
		parent = Any
	}
	if _, dup := typesByName[name]; dup {
		panic(fmt.Sprintf("value: type %q declared twice", name))
	}
	t := &Type{name: name, parent: parent}
	typesByName[name] = t
	return t
}

// LookupType returns the declared type with the given name.
func LookupType(name string) (*Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}

// Name returns the declared type name.
func (t *Type) Name() string { return t.name }

// Parent returns the supertype, nil for Any.
func (t *Type) Parent() *Type { return t.parent }

// Is reports whether t is other or a subtype of other.
func (t *Type) Is(other *Type) bool {
	for x := t; x != nil; x = x.parent {
		if x == other {
			return true
		}
	}
	return false
}

func (t *Type) String() string { return t.name }

// WithArticle renders the type name with its indefinite article, the way
// operand types read in error messages ("a number", "an object").
func (t *Type) WithArticle() string {
	switch t.name[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + t.name
	}
	return "a " + t.name
}

// CommonSupertype returns the nearest common ancestor of a and b. The
// hierarchy is rooted, so the result is at worst Any.
func CommonSupertype(a, b *Type) *Type {
	for x := a; x != nil; x = x.parent {
		if b.Is(x) {
			return x
		}
	}
	return Any
}
