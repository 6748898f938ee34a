package analysis

import (
	"strings"

	"go.uber.org/zap"

	"github.com/girkit/girgen/config"
	"github.com/girkit/girgen/gir"
	"github.com/girkit/girgen/nameutil"
)

const (
	dataParamName     = "user_data"
	callbackParamName = "callback"
)

// SurfaceParameter is a parameter exposed in the generated binding's
// callable signature. NativeIndex points at the native parameter it was
// derived from.
type SurfaceParameter struct {
	Name        string
	Type        gir.TypeID
	NativeIndex int
	AllowNone   bool
}

// NativeParameter is a parameter exactly as the foreign call needs it, with
// ownership, nullability and reference mode fully resolved.
type NativeParameter struct {
	Name            string
	Type            gir.TypeID
	CType           string
	Instance        bool
	Direction       gir.Direction
	Nullable        bool
	Transfer        gir.Transfer
	CallerAllocates bool
	IsError         bool
	Scope           gir.Scope
	UserDataIndex   *int
	DestroyIndex    *int
	RefMode         RefMode
}

// TransformationKind is the tagged variant describing how one surface value
// becomes its native counterpart. A late substitution (async restructuring)
// builds a new variant value; payloads are never mutated in place.
type TransformationKind interface {
	isTransformationKind()
}

// ToNativeDirect passes the value through unchanged.
type ToNativeDirect struct {
	Name string
}

// ToNativeScalar converts a copyable value.
type ToNativeScalar struct {
	Name     string
	Nullable bool
}

// ToNativePointer converts through a pointer with transfer semantics.
// ExplicitTargetType and PointerCast stay empty here; code emission fills
// them when the call site needs a cast.
type ToNativePointer struct {
	Name               string
	Instance           bool
	Transfer           gir.Transfer
	RefMode            RefMode
	ConvertSuffix      string
	ExplicitTargetType string
	PointerCast        string
	InTrait            bool
	Nullable           bool
}

// ToNativeBorrow needs no conversion glue.
type ToNativeBorrow struct{}

// ToNativeUnknown is the opaque conversion for unclassified types.
type ToNativeUnknown struct {
	Name string
}

// LengthLink pairs an array parameter with the parameter carrying its
// element count. The length parameter has no surface counterpart.
type LengthLink struct {
	ArrayName  string
	LengthName string
	LengthType string
}

// ToSome wraps the callback slot of an asynchronous function: the generated
// code always supplies a callback, so the conversion degenerates to wrapping
// the value as present.
type ToSome struct {
	Name string
}

// IntoRaw boxes the user-data slot of an asynchronous function into a raw
// owned pointer; it smuggles the future's completion state across the
// foreign call.
type IntoRaw struct {
	Name string
}

func (*ToNativeDirect) isTransformationKind()  {}
func (*ToNativeScalar) isTransformationKind()  {}
func (*ToNativePointer) isTransformationKind() {}
func (*ToNativeBorrow) isTransformationKind()  {}
func (*ToNativeUnknown) isTransformationKind() {}
func (*LengthLink) isTransformationKind()      {}
func (*ToSome) isTransformationKind()          {}
func (*IntoRaw) isTransformationKind()         {}

// IsToNative reports whether a step converts a value toward the native call.
// Only length links fall outside that set.
func IsToNative(k TransformationKind) bool {
	_, isLink := k.(*LengthLink)
	return !isLink
}

// Transformation is one step of the conversion program. NativeIndex is
// always set; SurfaceIndex is nil when the native parameter has no surface
// counterpart (a folded length, a promoted out parameter, async plumbing).
type Transformation struct {
	NativeIndex  int
	SurfaceIndex *int
	Kind         TransformationKind
}

// Parameters owns the three ordered lists computed for one function. It is
// built once by Analyze, optionally extended once by AnalyzeReturn, and then
// read-only.
type Parameters struct {
	Surface         []SurfaceParameter
	Native          []NativeParameter
	Transformations []Transformation
}

func newParameters(capacity int) *Parameters {
	return &Parameters{
		Surface:         make([]SurfaceParameter, 0, capacity),
		Native:          make([]NativeParameter, 0, capacity),
		Transformations: make([]Transformation, 0, capacity),
	}
}

// AnalyzeReturn appends the length-link step for a return value whose
// array-length back-link names one of the already-built native parameters.
// Absent or dangling links are skipped silently.
func (p *Parameters) AnalyzeReturn(env *gir.Env, ret *gir.Parameter) {
	if ret == nil || ret.ArrayLength == nil {
		return
	}

	ind := *ret.ArrayLength
	if ind < 0 || ind >= len(p.Native) {
		return
	}
	par := &p.Native[ind]

	p.Transformations = append(p.Transformations, Transformation{
		NativeIndex: ind,
		Kind:        lengthKind(env, "", par.Name, par.Type),
	})
}

// Analyze lowers one native function's parameter list. It is total: every
// optional lookup that misses degrades to a conservative model instead of
// failing.
func Analyze(
	env *gir.Env,
	params []gir.Parameter,
	configured []*config.Function,
	disableLengthDetect bool,
	async bool,
	inTrait bool,
) *Parameters {
	parameters := newParameters(len(params))

	// Length argument position => array name, from descriptor back-links.
	arrayLengths := make(map[int]string)
	for i := range params {
		if params[i].ArrayLength != nil {
			arrayLengths[*params[i].ArrayLength] = params[i].Name
		}
	}

	for pos := range params {
		par := &params[pos]

		name := par.Name
		if !par.Instance {
			name = nameutil.MangleKeywords(par.Name)
		}

		configuredParams := config.MatchedParameters(configured, name)

		cType := par.CType
		typ := OverrideStringType(env, par.Type, configuredParams)

		indNative := len(parameters.Native)

		addSurface := false
		switch par.Direction {
		case gir.In, gir.InOut:
			addSurface = true
		case gir.Return:
			addSurface = false
		case gir.Out:
			addSurface = !CanAsReturn(env, par) && !async
		}

		if async && AsyncParamToRemove(par.Name) {
			addSurface = false
		}

		// Array/length pairing: an explicit override wins, then the
		// descriptor's own back-link, then the naming heuristic.
		arrayName := ""
		for _, p := range configuredParams {
			if p.LengthOf != "" {
				arrayName = p.LengthOf
				break
			}
		}
		if arrayName == "" {
			arrayName = arrayLengths[pos]
		}
		if arrayName == "" && !disableLengthDetect {
			arrayName = detectLength(env, pos, par, params)
		}

		callerAllocates := par.CallerAllocates
		transfer := par.Transfer
		conversion := ConversionOf(env, typ)
		if conversion == ConversionDirect || conversion == ConversionScalar {
			// Ownership flags are meaningless for copyable value types.
			callerAllocates = false
			transfer = gir.TransferNone
		}

		immutable := false
		for _, p := range configuredParams {
			if p.Constant {
				immutable = true
				break
			}
		}
		refMode := RefModeFor(env, par, immutable, inTrait && par.Instance)

		nullable := par.Nullable
		for _, p := range configuredParams {
			if p.Nullable != nil {
				nullable = *p.Nullable
				break
			}
		}

		parameters.Native = append(parameters.Native, NativeParameter{
			Name:            name,
			Type:            typ,
			CType:           cType,
			Instance:        par.Instance,
			Direction:       par.Direction,
			Nullable:        nullable,
			Transfer:        transfer,
			CallerAllocates: callerAllocates,
			IsError:         par.IsError,
			Scope:           par.Scope,
			UserDataIndex:   par.Closure,
			DestroyIndex:    par.Destroy,
			RefMode:         refMode,
		})

		if arrayName != "" {
			// Folded into a length link: no surface entry, no primary
			// conversion step.
			parameters.Transformations = append(parameters.Transformations, Transformation{
				NativeIndex: indNative,
				Kind:        lengthKind(env, nameutil.MangleKeywords(arrayName), par.Name, typ),
			})
			Logger().Debug("folded length parameter",
				zap.String("parameter", par.Name),
				zap.String("array", arrayName))
			continue
		}

		var surfaceIndex *int
		if addSurface {
			idx := len(parameters.Surface)
			parameters.Surface = append(parameters.Surface, SurfaceParameter{
				Name:        name,
				Type:        typ,
				NativeIndex: indNative,
				AllowNone:   par.AllowNone,
			})
			surfaceIndex = &idx
		}

		// Nullable non-receiver object parameters of extensible classes
		// convert through a shared-reference view.
		convertSuffix := ""
		transNullable := false
		if !par.Instance && nullable && (env.IsInterface(par.Type) || env.IsClass(par.Type)) {
			transNullable = nullable
			if !env.IsFinal(par.Type) {
				convertSuffix = ".as_ref()"
			}
		}

		var kind TransformationKind
		switch conversion {
		case ConversionDirect:
			kind = &ToNativeDirect{Name: name}
		case ConversionScalar:
			kind = &ToNativeScalar{Name: name, Nullable: nullable}
		case ConversionPointer:
			kind = &ToNativePointer{
				Name:          name,
				Instance:      par.Instance,
				Transfer:      transfer,
				RefMode:       refMode,
				ConvertSuffix: convertSuffix,
				InTrait:       inTrait,
				Nullable:      transNullable,
			}
		case ConversionBorrow:
			kind = &ToNativeBorrow{}
		default:
			kind = &ToNativeUnknown{Name: name}
		}

		if async {
			kind = substituteAsync(kind)
		}

		parameters.Transformations = append(parameters.Transformations, Transformation{
			NativeIndex:  indNative,
			SurfaceIndex: surfaceIndex,
			Kind:         kind,
		})
	}

	return parameters
}

// substituteAsync retargets the two named slots an asynchronous function
// threads through its future machinery. The callback slot is always
// supplied by generated code, so its conversion degenerates to wrapping the
// value as present; the user-data slot is boxed into a raw owned pointer.
func substituteAsync(kind TransformationKind) TransformationKind {
	switch k := kind.(type) {
	case *ToNativeDirect:
		if k.Name == callbackParamName {
			Logger().Debug("async callback slot rewrapped", zap.String("parameter", k.Name))
			return &ToSome{Name: k.Name}
		}
	case *ToNativeUnknown:
		if k.Name == callbackParamName {
			Logger().Debug("async callback slot rewrapped", zap.String("parameter", k.Name))
			return &ToSome{Name: k.Name}
		}
	case *ToNativePointer:
		if k.Name == dataParamName {
			Logger().Debug("async user-data slot boxed", zap.String("parameter", k.Name))
			return &IntoRaw{Name: k.Name}
		}
	}
	return kind
}

func lengthKind(env *gir.Env, arrayName, lengthName string, lengthType gir.TypeID) TransformationKind {
	return &LengthLink{
		ArrayName:  arrayName,
		LengthName: lengthName,
		LengthType: TargetType(env, lengthType),
	}
}

// detectLength applies the naming heuristic: an In parameter named "...len"
// or containing "length" is a length candidate, and the immediately
// preceding parameter qualifies as its array when its type carries a length.
// The heuristic is known to be fuzzy; explicit configuration overrides it.
func detectLength(env *gir.Env, pos int, par *gir.Parameter, params []gir.Parameter) string {
	if !isLengthName(par) {
		return ""
	}
	if pos == 0 {
		return ""
	}
	prev := &params[pos-1]
	if !hasLength(env, prev.Type) {
		Logger().Debug("length candidate without qualifying array",
			zap.String("parameter", par.Name))
		return ""
	}
	return prev.Name
}

func isLengthName(par *gir.Parameter) bool {
	if par.Direction != gir.In {
		return false
	}
	if strings.HasSuffix(par.Name, "len") {
		return true
	}
	return strings.Contains(par.Name, "length")
}

func hasLength(env *gir.Env, id gir.TypeID) bool {
	switch t := env.Type(id).(type) {
	case gir.Fundamental:
		switch t {
		case gir.Utf8, gir.Filename, gir.OsString:
			return true
		}
		return false
	case *gir.CArray, *gir.FixedArray, *gir.Array, *gir.PtrArray,
		*gir.List, *gir.SList, *gir.HashTable:
		return true
	case *gir.Alias:
		return hasLength(env, t.Target)
	default:
		return false
	}
}

// AsyncParamToRemove reports whether an asynchronous function's parameter is
// callback plumbing threaded through the generated future rather than a
// surface argument. Matching "...data" by name is an approximation inherited
// from the source metadata; closure indexes would be more precise.
func AsyncParamToRemove(name string) bool {
	return name == dataParamName || strings.HasSuffix(name, "data")
}
