package sortedlist

// Kind identifies the primitive element kind a list accepts. It is fixed at
// construction and never changes for the lifetime of the list.
type Kind uint8

const (
	// KindInt accepts values of the built-in int type.
	KindInt Kind = iota + 1
	// KindString accepts values of the built-in string type.
	KindString
)

// String returns the display label for the kind, as used by List.String.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Element constrains the primitive types a typed list can hold, mirroring
// the closed set of supported kinds.
type Element interface {
	int | string
}

// KindOf reports the element kind of a runtime value. The boolean is false
// when the value is not one of the supported kinds.
func KindOf(value any) (Kind, bool) {
	switch value.(type) {
	case int:
		return KindInt, true
	case string:
		return KindString, true
	default:
		return 0, false
	}
}

// kindFor maps a type parameter to its element kind.
func kindFor[T Element]() Kind {
	var zero T

	kind, ok := KindOf(zero)

	// Element's type set is exactly the supported kinds.
	if !ok {
		panic("sortedlist: unsupported element type")
	}

	return kind
}
