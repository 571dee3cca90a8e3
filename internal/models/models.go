package models

// Kind identifies which of the six JSON kinds a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node of a parsed JSON document.
// Only the types declared in this package implement it: Null, Bool, Number,
// String, Array and *Object.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number. JSON numbers are IEEE-754 doubles.
type Number float64

// String is a JSON string.
type String string

// Array is an ordered JSON array.
type Array []Value

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object. Members keep insertion order, which is also the
// traversal order of every metric. Keys are unique.
type Object struct {
	Members []Member
}

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Number) Kind() Kind  { return KindNumber }
func (String) Kind() Kind  { return KindString }
func (Array) Kind() Kind   { return KindArray }
func (*Object) Kind() Kind { return KindObject }

func (Null) isValue()    {}
func (Bool) isValue()    {}
func (Number) isValue()  {}
func (String) isValue()  {}
func (Array) isValue()   {}
func (*Object) isValue() {}

// NewObject builds an object from members. A repeated key replaces the value
// of its first occurrence and keeps that position.
func NewObject(members ...Member) *Object {
	obj := &Object{Members: make([]Member, 0, len(members))}
	for _, m := range members {
		obj.Set(m.Key, m.Value)
	}
	return obj
}

// Set assigns value to key, appending the key if it is new.
func (o *Object) Set(key string, value Value) {
	for i := range o.Members {
		if o.Members[i].Key == key {
			o.Members[i].Value = value
			return
		}
	}
	o.Members = append(o.Members, Member{Key: key, Value: value})
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	for _, m := range o.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Len returns the number of members.
func (o *Object) Len() int { return len(o.Members) }

// Keys returns the member keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}

// IsContainer reports whether v is an array or an object.
func IsContainer(v Value) bool {
	switch v.(type) {
	case Array, *Object:
		return true
	default:
		return false
	}
}

// Children returns the direct children of a container in traversal order:
// index order for arrays, insertion order for objects. Scalars have none.
func Children(v Value) []Value {
	switch node := v.(type) {
	case Array:
		return node
	case *Object:
		children := make([]Value, len(node.Members))
		for i, m := range node.Members {
			children[i] = m.Value
		}
		return children
	default:
		return nil
	}
}
