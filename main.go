package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/Kuro-dev/polynomialsv3/pkg/expr"
)

var x = expr.NewVar(expr.DefaultVar)

// catalog holds the demo expressions. Text parsing is out of scope, so the
// binary works from this fixed set of pre-built trees.
var catalog = map[string]expr.ExprNode{
	"poly":     expr.Add(expr.Sub(expr.Pow(x, expr.NewConst(3)), expr.Mul(expr.NewConst(4), x)), expr.NewConst(1)),
	"gaussian": expr.Exp(expr.Neg(expr.Pow(x, expr.Two))),
	"logistic": expr.Div(expr.One, expr.Add(expr.One, expr.Exp(expr.Neg(x)))),
	"wave":     expr.Mul(x, expr.Sin(x)),
	"decay":    expr.Div(expr.Exp(x), expr.Add(expr.One, expr.Pow(x, expr.Two))),
	"entropy":  expr.Mul(x, expr.Ln(x)),
	"root":     expr.NthRoot(expr.Add(expr.Pow(x, expr.Two), expr.One), 5),
	"halfpi":   expr.Sin(expr.Div(expr.Pi, expr.Two)),
}

func names() []string {
	ns := make([]string, 0, len(catalog))
	for n := range catalog {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// Report summarizes one expression at one point.
type Report struct {
	Expression string  `json:"expression"`
	LaTeX      string  `json:"latex"`
	Simplified string  `json:"simplified"`
	Derivative string  `json:"derivative"`
	X          float64 `json:"x"`
	Value      float64 `json:"value,omitempty"`
	ValueError string  `json:"value_error,omitempty"`
	Slope      float64 `json:"slope,omitempty"`
	SlopeError string  `json:"slope_error,omitempty"`
	Nodes      int     `json:"nodes"`
	Depth      int     `json:"depth"`
}

func buildReport(node expr.ExprNode, at float64) Report {
	deriv := expr.Differentiate(node, expr.DefaultVar)
	r := Report{
		Expression: node.String(),
		LaTeX:      node.LaTeX(),
		Simplified: expr.Simplify(node).String(),
		Derivative: deriv.String(),
		X:          at,
		Nodes:      node.NodeCount(),
		Depth:      node.Depth(),
	}
	if v, err := node.Compute(expr.At(at)); err == nil {
		r.Value = v
	} else {
		r.ValueError = err.Error()
	}
	if s, err := deriv.Compute(expr.At(at)); err == nil {
		r.Slope = s
	} else {
		r.SlopeError = err.Error()
	}
	return r
}

func writeText(w io.Writer, r Report) {
	fmt.Fprintf(w, "f(x)       = %s\n", r.Expression)
	fmt.Fprintf(w, "latex      = %s\n", r.LaTeX)
	fmt.Fprintf(w, "simplified = %s\n", r.Simplified)
	fmt.Fprintf(w, "f'(x)      = %s\n", r.Derivative)
	if r.ValueError != "" {
		fmt.Fprintf(w, "f(%g): %s\n", r.X, r.ValueError)
	} else {
		fmt.Fprintf(w, "f(%g)  = %g\n", r.X, r.Value)
	}
	if r.SlopeError != "" {
		fmt.Fprintf(w, "f'(%g): %s\n", r.X, r.SlopeError)
	} else {
		fmt.Fprintf(w, "f'(%g) = %g\n", r.X, r.Slope)
	}
	fmt.Fprintf(w, "%d nodes, depth %d\n", r.Nodes, r.Depth)
}

func writeJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func main() {
	fn := flag.String("fn", "poly", "expression to inspect ("+strings.Join(names(), ", ")+")")
	at := flag.Float64("x", 1.0, "value to bind x to")
	format := flag.String("format", "text", "output format (text, json)")
	flag.Parse()

	node, ok := catalog[*fn]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown expression %q, have: %s\n", *fn, strings.Join(names(), ", "))
		os.Exit(1)
	}

	r := buildReport(node, *at)
	switch *format {
	case "json":
		if err := writeJSON(os.Stdout, r); err != nil {
			fmt.Fprintf(os.Stderr, "error writing JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		writeText(os.Stdout, r)
	}
}
