package gir

// Env is the read-only type environment threaded through analysis. Register
// everything up front; lookups after that are safe for concurrent readers.
type Env struct {
	types []TypeDef
}

// NewEnv returns an environment with every Fundamental pre-registered so
// that FundamentalID(f) is always a valid TypeID.
func NewEnv() *Env {
	env := &Env{types: make([]TypeDef, 0, int(fundamentalCount)+16)}
	for f := None; f < fundamentalCount; f++ {
		env.types = append(env.types, f)
	}
	return env
}

// FundamentalID returns the TypeID of a pre-registered fundamental.
func (e *Env) FundamentalID(f Fundamental) TypeID {
	if f < None || f >= fundamentalCount {
		return TypeID(Unsupported)
	}
	return TypeID(f)
}

// Register adds a type definition and returns its id.
func (e *Env) Register(t TypeDef) TypeID {
	e.types = append(e.types, t)
	return TypeID(len(e.types) - 1)
}

// Type resolves an id to its definition. Out-of-range ids degrade to the
// Unsupported fundamental rather than failing.
func (e *Env) Type(id TypeID) TypeDef {
	if id < 0 || int(id) >= len(e.types) {
		return Unsupported
	}
	return e.types[id]
}

// ResolveAlias follows alias chains to the underlying type id. Cycles are cut
// off after the number of registered types.
func (e *Env) ResolveAlias(id TypeID) TypeID {
	for i := 0; i < len(e.types); i++ {
		alias, ok := e.Type(id).(*Alias)
		if !ok {
			return id
		}
		id = alias.Target
	}
	return id
}

// IsInterface reports whether id resolves to an interface type.
func (e *Env) IsInterface(id TypeID) bool {
	_, ok := e.Type(e.ResolveAlias(id)).(*Interface)
	return ok
}

// IsClass reports whether id resolves to a class type.
func (e *Env) IsClass(id TypeID) bool {
	_, ok := e.Type(e.ResolveAlias(id)).(*Class)
	return ok
}

// IsFinal reports whether id resolves to a class declared final. Interfaces
// and non-class types are never final.
func (e *Env) IsFinal(id TypeID) bool {
	class, ok := e.Type(e.ResolveAlias(id)).(*Class)
	return ok && class.Final
}

// Name returns the printable name of the type behind id.
func (e *Env) Name(id TypeID) string {
	return TypeName(e.Type(id))
}

// Len returns the number of registered types.
func (e *Env) Len() int {
	return len(e.types)
}
