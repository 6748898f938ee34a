package main

import (
	"encoding/json"
	"os"

	"github.com/girkit/girgen"
	"github.com/girkit/girgen/errors"
	"github.com/girkit/girgen/gir"
)

// The manifest is girgen's own JSON description of a library: a flat list of
// type definitions referenced by name, and the function signatures to lower.
// It is not the introspection XML format.

type manifestType struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Final      bool   `json:"final,omitempty"`
	Elem       string `json:"elem,omitempty"`
	Key        string `json:"key,omitempty"`
	Value      string `json:"value,omitempty"`
	Target     string `json:"target,omitempty"`
	Conversion string `json:"conversion,omitempty"`
	Size       int    `json:"size,omitempty"`
}

type manifestParam struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	CType           string `json:"c_type,omitempty"`
	Direction       string `json:"direction,omitempty"`
	Transfer        string `json:"transfer,omitempty"`
	Scope           string `json:"scope,omitempty"`
	Nullable        bool   `json:"nullable,omitempty"`
	AllowNone       bool   `json:"allow_none,omitempty"`
	CallerAllocates bool   `json:"caller_allocates,omitempty"`
	Instance        bool   `json:"instance,omitempty"`
	IsError         bool   `json:"is_error,omitempty"`
	ArrayLength     *int   `json:"array_length,omitempty"`
	Closure         *int   `json:"closure,omitempty"`
	Destroy         *int   `json:"destroy,omitempty"`
}

type manifestFunction struct {
	Name        string          `json:"name"`
	CIdentifier string          `json:"c_identifier,omitempty"`
	Async       bool            `json:"async,omitempty"`
	Trait       bool            `json:"trait,omitempty"`
	Parameters  []manifestParam `json:"parameters"`
	Return      *manifestParam  `json:"return,omitempty"`
}

type manifest struct {
	Types     []manifestType     `json:"types"`
	Functions []manifestFunction `json:"functions"`
}

func loadManifest(path string) (*gir.Env, []gir.Function, []girgen.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, errors.ParseFailed(errors.PhaseManifest, path, err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, nil, nil, errors.ParseFailed(errors.PhaseManifest, path, err)
	}

	env := gir.NewEnv()
	ids := make(map[string]gir.TypeID)

	lookup := func(name string) (gir.TypeID, error) {
		if id, ok := ids[name]; ok {
			return id, nil
		}
		if f, ok := gir.FundamentalByName(name); ok {
			return env.FundamentalID(f), nil
		}
		return 0, errors.NotFound(errors.PhaseManifest, "type", name)
	}

	// Nominal types first so containers and aliases can reference them in
	// any order.
	for _, t := range m.Types {
		switch t.Kind {
		case "class":
			ids[t.Name] = env.Register(&gir.Class{Name: t.Name, Final: t.Final})
		case "interface":
			ids[t.Name] = env.Register(&gir.Interface{Name: t.Name})
		case "record":
			ids[t.Name] = env.Register(&gir.Record{Name: t.Name})
		case "union":
			ids[t.Name] = env.Register(&gir.Union{Name: t.Name})
		case "enum":
			ids[t.Name] = env.Register(&gir.Enumeration{Name: t.Name})
		case "bitfield":
			ids[t.Name] = env.Register(&gir.Bitfield{Name: t.Name})
		case "callback":
			ids[t.Name] = env.Register(&gir.Callback{Name: t.Name})
		case "custom":
			ids[t.Name] = env.Register(&gir.Custom{Name: t.Name, Conversion: t.Conversion})
		}
	}

	for _, t := range m.Types {
		switch t.Kind {
		case "class", "interface", "record", "union", "enum", "bitfield", "callback", "custom":
			// done above
		case "alias":
			target, err := lookup(t.Target)
			if err != nil {
				return nil, nil, nil, err
			}
			ids[t.Name] = env.Register(&gir.Alias{Name: t.Name, Target: target})
		case "carray":
			elem, err := lookup(t.Elem)
			if err != nil {
				return nil, nil, nil, err
			}
			ids[t.Name] = env.Register(&gir.CArray{Elem: elem})
		case "fixed-array":
			elem, err := lookup(t.Elem)
			if err != nil {
				return nil, nil, nil, err
			}
			ids[t.Name] = env.Register(&gir.FixedArray{Elem: elem, Size: t.Size})
		case "array":
			elem, err := lookup(t.Elem)
			if err != nil {
				return nil, nil, nil, err
			}
			ids[t.Name] = env.Register(&gir.Array{Elem: elem})
		case "ptr-array":
			elem, err := lookup(t.Elem)
			if err != nil {
				return nil, nil, nil, err
			}
			ids[t.Name] = env.Register(&gir.PtrArray{Elem: elem})
		case "list":
			elem, err := lookup(t.Elem)
			if err != nil {
				return nil, nil, nil, err
			}
			ids[t.Name] = env.Register(&gir.List{Elem: elem})
		case "slist":
			elem, err := lookup(t.Elem)
			if err != nil {
				return nil, nil, nil, err
			}
			ids[t.Name] = env.Register(&gir.SList{Elem: elem})
		case "hash-table":
			key, err := lookup(t.Key)
			if err != nil {
				return nil, nil, nil, err
			}
			value, err := lookup(t.Value)
			if err != nil {
				return nil, nil, nil, err
			}
			ids[t.Name] = env.Register(&gir.HashTable{Key: key, Value: value})
		default:
			return nil, nil, nil, errors.New(errors.PhaseManifest, errors.KindInvalidData).
				Path("types", t.Name).
				Detail("unknown kind %q", t.Kind).
				Build()
		}
	}

	functions := make([]gir.Function, 0, len(m.Functions))
	options := make([]girgen.Options, 0, len(m.Functions))

	for _, f := range m.Functions {
		fn := gir.Function{
			Name:        f.Name,
			CIdentifier: f.CIdentifier,
			Parameters:  make([]gir.Parameter, 0, len(f.Parameters)),
		}
		for _, p := range f.Parameters {
			par, err := buildParam(p, lookup)
			if err != nil {
				return nil, nil, nil, err
			}
			fn.Parameters = append(fn.Parameters, par)
		}
		if f.Return != nil {
			ret, err := buildParam(*f.Return, lookup)
			if err != nil {
				return nil, nil, nil, err
			}
			ret.Direction = gir.Return
			fn.Return = &ret
		}
		functions = append(functions, fn)
		options = append(options, girgen.Options{Async: f.Async, InTrait: f.Trait})
	}

	return env, functions, options, nil
}

func buildParam(p manifestParam, lookup func(string) (gir.TypeID, error)) (gir.Parameter, error) {
	id, err := lookup(p.Type)
	if err != nil {
		return gir.Parameter{}, err
	}
	return gir.Parameter{
		Name:            p.Name,
		Type:            id,
		CType:           p.CType,
		Instance:        p.Instance,
		Direction:       parseDirection(p.Direction),
		Nullable:        p.Nullable,
		AllowNone:       p.AllowNone,
		Transfer:        parseTransfer(p.Transfer),
		CallerAllocates: p.CallerAllocates,
		IsError:         p.IsError,
		Scope:           parseScope(p.Scope),
		ArrayLength:     p.ArrayLength,
		Closure:         p.Closure,
		Destroy:         p.Destroy,
	}, nil
}

func parseDirection(s string) gir.Direction {
	switch s {
	case "out":
		return gir.Out
	case "inout":
		return gir.InOut
	case "return":
		return gir.Return
	default:
		return gir.In
	}
}

func parseTransfer(s string) gir.Transfer {
	switch s {
	case "full":
		return gir.TransferFull
	case "container":
		return gir.TransferContainer
	default:
		return gir.TransferNone
	}
}

func parseScope(s string) gir.Scope {
	switch s {
	case "call":
		return gir.ScopeCall
	case "async":
		return gir.ScopeAsync
	case "notified":
		return gir.ScopeNotified
	default:
		return gir.ScopeNone
	}
}
