// Package funcs holds the named functions grapher can plot.
package funcs

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/san-kum/grapher/internal/plot"
)

// Mode says how a function is drawn.
type Mode int

const (
	Real Mode = iota
	Complex
)

func (m Mode) String() string {
	if m == Complex {
		return "complex"
	}
	return "real"
}

// Function is one registered entry. Exactly one of Real and Complex is set.
type Function struct {
	Name        string
	Description string
	Real        plot.RealFunc
	Complex     plot.ComplexFunc
	// Param, when set, fixes the parameter range of a complex function.
	Param *plot.Window
}

func (f Function) Mode() Mode {
	if f.Complex != nil {
		return Complex
	}
	return Real
}

// Drawer returns the drawing strategy for f. A non-nil param overrides the
// function's own parameter range.
func (f Function) Drawer(precision int, param *plot.Window) plot.Drawer {
	if f.Mode() == Complex {
		if param == nil {
			param = f.Param
		}
		return plot.NewComplexDrawer(f.Complex, precision, param)
	}
	return plot.NewRealDrawer(f.Real, precision)
}

type Registry struct {
	funcs map[string]Function
}

func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Function)}

	r.Register(Function{Name: "square", Description: "x^2", Real: func(x float64) float64 { return x * x }})
	r.Register(Function{Name: "cube", Description: "x^3 / 10", Real: func(x float64) float64 { return x * x * x / 10 }})
	r.Register(Function{Name: "sin", Description: "10 sin(x / 4)", Real: func(x float64) float64 { return 10 * math.Sin(x/4) }})
	r.Register(Function{Name: "abs", Description: "|x|", Real: math.Abs})
	r.Register(Function{Name: "sqrt", Description: "sqrt(x)", Real: math.Sqrt})

	full := &plot.Window{Min: 0, Max: 2 * math.Pi}
	r.Register(Function{
		Name: "circle", Description: "e^(it)", Param: full,
		Complex: func(t float64) complex128 { return cmplx.Exp(complex(0, t)) },
	})
	r.Register(Function{
		Name: "spiral", Description: "t e^(it)",
		Complex: func(t float64) complex128 { return complex(t, 0) * cmplx.Exp(complex(0, t)) },
	})
	r.Register(Function{
		Name: "exp", Description: "e^((0.1+i)t)",
		Complex: func(t float64) complex128 { return cmplx.Exp(complex(0.1, 1) * complex(t, 0)) },
	})
	r.Register(Function{
		Name: "rose", Description: "10 cos(2t) e^(it)", Param: full,
		Complex: func(t float64) complex128 {
			return complex(10*math.Cos(2*t), 0) * cmplx.Exp(complex(0, t))
		},
	})
	r.Register(Function{
		Name: "lissajous", Description: "10 sin(3t) + 10i sin(2t)", Param: full,
		Complex: func(t float64) complex128 { return complex(10*math.Sin(3*t), 10*math.Sin(2*t)) },
	})

	return r
}

// Register adds f, replacing any function with the same name.
func (r *Registry) Register(f Function) {
	r.funcs[f.Name] = f
}

func (r *Registry) Get(name string) (Function, error) {
	f, ok := r.funcs[name]
	if !ok {
		return Function{}, fmt.Errorf("unknown function: %s (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
