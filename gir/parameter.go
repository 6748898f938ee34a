package gir

// Direction is how a parameter crosses the native call boundary.
type Direction int

const (
	In Direction = iota
	Out
	InOut
	Return
)

var directionNames = [...]string{
	In:     "in",
	Out:    "out",
	InOut:  "inout",
	Return: "return",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "in"
}

// Transfer is the ownership-transfer mode declared for a parameter.
type Transfer int

const (
	TransferNone Transfer = iota
	TransferContainer
	TransferFull
)

var transferNames = [...]string{
	TransferNone:      "none",
	TransferContainer: "container",
	TransferFull:      "full",
}

func (t Transfer) String() string {
	if int(t) < len(transferNames) {
		return transferNames[t]
	}
	return "none"
}

// Scope is the lifetime of a callback parameter.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeCall
	ScopeAsync
	ScopeNotified
)

var scopeNames = [...]string{
	ScopeNone:     "none",
	ScopeCall:     "call",
	ScopeAsync:    "async",
	ScopeNotified: "notified",
}

func (s Scope) String() string {
	if int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "none"
}

// Parameter is the raw descriptor of one native function parameter.
// Index links (ArrayLength, Closure, Destroy) are positions in the owning
// function's parameter list; nil means no link.
type Parameter struct {
	Name            string
	Type            TypeID
	CType           string
	Instance        bool
	Direction       Direction
	Nullable        bool
	AllowNone       bool
	Transfer        Transfer
	CallerAllocates bool
	IsError         bool
	Scope           Scope
	ArrayLength     *int
	Closure         *int
	Destroy         *int
}

// Function groups the descriptors of one native function signature.
// Return is nil for void functions.
type Function struct {
	Name        string
	CIdentifier string
	Parameters  []Parameter
	Return      *Parameter
	Throws      bool
}
