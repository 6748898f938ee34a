package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/girkit/girgen/analysis"
	"github.com/girkit/girgen/gir"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func surfaceSignature(env *gir.Env, fn *gir.Function, params *analysis.Parameters) string {
	args := make([]string, 0, len(params.Surface))
	for _, s := range params.Surface {
		args = append(args, s.Name+": "+typeStyle.Render(env.Name(s.Type)))
	}
	sig := funcStyle.Render(fn.Name) + "(" + strings.Join(args, ", ") + ")"
	if fn.Return != nil {
		sig += " -> " + typeStyle.Render(env.Name(fn.Return.Type))
	}
	return sig
}

func renderFunction(env *gir.Env, fn *gir.Function, params *analysis.Parameters) string {
	var b strings.Builder

	b.WriteString(surfaceSignature(env, fn, params))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("  native:"))
	b.WriteString("\n")
	for i, n := range params.Native {
		flags := []string{n.Direction.String()}
		if n.Transfer != gir.TransferNone {
			flags = append(flags, "transfer="+n.Transfer.String())
		}
		if n.Nullable {
			flags = append(flags, "nullable")
		}
		if n.CallerAllocates {
			flags = append(flags, "caller-allocates")
		}
		if n.RefMode != analysis.RefModeNone {
			flags = append(flags, n.RefMode.String())
		}
		if n.Instance {
			flags = append(flags, "instance")
		}
		if n.IsError {
			flags = append(flags, "error")
		}
		fmt.Fprintf(&b, "    [%d] %s: %s (%s)\n",
			i, n.Name, typeStyle.Render(env.Name(n.Type)), strings.Join(flags, ", "))
	}

	b.WriteString(helpStyle.Render("  steps:"))
	b.WriteString("\n")
	for _, t := range params.Transformations {
		surface := "-"
		if t.SurfaceIndex != nil {
			surface = fmt.Sprintf("%d", *t.SurfaceIndex)
		}
		fmt.Fprintf(&b, "    [c:%d s:%s] %s\n",
			t.NativeIndex, surface, stepStyle.Render(describeStep(t.Kind)))
	}

	return b.String()
}

func describeStep(kind analysis.TransformationKind) string {
	switch k := kind.(type) {
	case *analysis.ToNativeDirect:
		return "direct " + k.Name
	case *analysis.ToNativeScalar:
		if k.Nullable {
			return "scalar " + k.Name + " (nullable)"
		}
		return "scalar " + k.Name
	case *analysis.ToNativePointer:
		s := "pointer " + k.Name + " transfer=" + k.Transfer.String() + " " + k.RefMode.String()
		if k.ConvertSuffix != "" {
			s += " suffix=" + k.ConvertSuffix
		}
		if k.Nullable {
			s += " (nullable)"
		}
		return s
	case *analysis.ToNativeBorrow:
		return "borrow"
	case *analysis.ToNativeUnknown:
		return "unknown " + k.Name
	case *analysis.LengthLink:
		if k.ArrayName == "" {
			return "length of return value = " + k.LengthName + ": " + k.LengthType
		}
		return "length " + k.LengthName + " = len(" + k.ArrayName + "): " + k.LengthType
	case *analysis.ToSome:
		return "some(" + k.Name + ")"
	case *analysis.IntoRaw:
		return "into-raw " + k.Name
	default:
		return fmt.Sprintf("%T", kind)
	}
}
