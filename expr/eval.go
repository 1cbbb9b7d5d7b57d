package expr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"math"
	"strconv"
)

// ErrUnknownName is returned by Eval when an identifier is neither bound by
// the caller nor a known constant.
var ErrUnknownName = errors.New("unknown name")

type function struct {
	arity int
	fn    func(args []float64) float64
}

// functions is the whitelist of callables; nothing else can be invoked.
var functions = map[string]function{
	"sin":   {1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":   {1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"tan":   {1, func(a []float64) float64 { return math.Tan(a[0]) }},
	"asin":  {1, func(a []float64) float64 { return math.Asin(a[0]) }},
	"acos":  {1, func(a []float64) float64 { return math.Acos(a[0]) }},
	"atan":  {1, func(a []float64) float64 { return math.Atan(a[0]) }},
	"sinh":  {1, func(a []float64) float64 { return math.Sinh(a[0]) }},
	"cosh":  {1, func(a []float64) float64 { return math.Cosh(a[0]) }},
	"tanh":  {1, func(a []float64) float64 { return math.Tanh(a[0]) }},
	"sqrt":  {1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"exp":   {1, func(a []float64) float64 { return math.Exp(a[0]) }},
	"log":   {1, func(a []float64) float64 { return math.Log(a[0]) }},
	"log2":  {1, func(a []float64) float64 { return math.Log2(a[0]) }},
	"log10": {1, func(a []float64) float64 { return math.Log10(a[0]) }},
	"abs":   {1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"floor": {1, func(a []float64) float64 { return math.Floor(a[0]) }},
	"ceil":  {1, func(a []float64) float64 { return math.Ceil(a[0]) }},
	"round": {1, func(a []float64) float64 { return math.Round(a[0]) }},
	"pow":   {2, func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	"atan2": {2, func(a []float64) float64 { return math.Atan2(a[0], a[1]) }},
	"hypot": {2, func(a []float64) float64 { return math.Hypot(a[0], a[1]) }},
	"mod":   {2, func(a []float64) float64 { return math.Mod(a[0], a[1]) }},
	"min":   {2, func(a []float64) float64 { return math.Min(a[0], a[1]) }},
	"max":   {2, func(a []float64) float64 { return math.Max(a[0], a[1]) }},
	"factorial": {1, func(a []float64) float64 {
		return math.Gamma(a[0] + 1)
	}},
}

// constants resolve identifiers that are not bound by the caller.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"phi": math.Phi,
	"inf": math.Inf(1),
}

// Eval computes the value of the expression with the given variable
// bindings. Comparisons and logic yield 1 for true and 0 for false. An
// identifier that is neither bound nor a constant makes Eval fail with
// ErrUnknownName; use Bind for partial evaluation.
func (e *Expr) Eval(vars map[string]float64) (float64, error) {
	return eval(e.node, vars)
}

func eval(n ast.Expr, vars map[string]float64) (float64, error) {
	switch n := n.(type) {
	case *ast.BasicLit:
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return 0, fmt.Errorf("bad number %q: %w", n.Value, err)
		}
		return v, nil
	case *ast.Ident:
		if v, ok := vars[n.Name]; ok {
			return v, nil
		}
		if v, ok := constants[n.Name]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownName, n.Name)
	case *ast.UnaryExpr:
		v, err := eval(n.X, vars)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.SUB:
			return -v, nil
		case token.ADD:
			return v, nil
		case token.NOT:
			return bool01(v == 0), nil
		}
		return 0, fmt.Errorf("unsupported unary operator %s", n.Op)
	case *ast.BinaryExpr:
		l, err := eval(n.X, vars)
		if err != nil {
			return 0, err
		}
		r, err := eval(n.Y, vars)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, l, r)
	case *ast.CallExpr:
		name := n.Fun.(*ast.Ident).Name
		f, ok := functions[name]
		if !ok {
			return 0, fmt.Errorf("function %s not allowed", name)
		}
		args := make([]float64, len(n.Args))
		for i, a := range n.Args {
			v, err := eval(a, vars)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return f.fn(args), nil
	}
	return 0, fmt.Errorf("unsupported expression node %T", n)
}

func apply(op token.Token, l, r float64) (float64, error) {
	switch op {
	case token.ADD:
		return l + r, nil
	case token.SUB:
		return l - r, nil
	case token.MUL:
		return l * r, nil
	case token.QUO:
		return l / r, nil
	case token.REM:
		return math.Mod(l, r), nil
	case token.XOR:
		return math.Pow(l, r), nil
	case token.SHL:
		return float64(int64(l) << int64(r)), nil
	case token.SHR:
		return float64(int64(l) >> int64(r)), nil
	case token.LSS:
		return bool01(l < r), nil
	case token.GTR:
		return bool01(l > r), nil
	case token.LEQ:
		return bool01(l <= r), nil
	case token.GEQ:
		return bool01(l >= r), nil
	case token.EQL:
		return bool01(l == r), nil
	case token.NEQ:
		return bool01(l != r), nil
	case token.LAND:
		return bool01(l != 0 && r != 0), nil
	case token.LOR:
		return bool01(l != 0 || r != 0), nil
	}
	return 0, fmt.Errorf("unsupported operator %s", op)
}

func bool01(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Bind substitutes the given variables into the expression and folds every
// now-constant subtree into a number literal, returning the partially
// evaluated expression. Named constants such as pi stay symbolic.
func (e *Expr) Bind(vars map[string]float64) *Expr {
	n := e.node
	for name, v := range vars {
		n = subst(n, name, numLit(v))
	}
	return &Expr{node: constFold(n)}
}

// constFold replaces subtrees built purely from literals with their value.
func constFold(n ast.Expr) ast.Expr {
	switch n := n.(type) {
	case *ast.UnaryExpr:
		x := constFold(n.X)
		out := &ast.UnaryExpr{Op: n.Op, X: x}
		return maybeFold(out, isLiteral(x))
	case *ast.BinaryExpr:
		x, y := constFold(n.X), constFold(n.Y)
		out := &ast.BinaryExpr{X: x, Op: n.Op, Y: y}
		return maybeFold(out, isLiteral(x) && isLiteral(y))
	case *ast.CallExpr:
		args := make([]ast.Expr, len(n.Args))
		all := true
		for i, a := range n.Args {
			args[i] = constFold(a)
			all = all && isLiteral(args[i])
		}
		out := &ast.CallExpr{Fun: n.Fun, Args: args}
		return maybeFold(out, all)
	default:
		return n
	}
}

func maybeFold(n ast.Expr, foldable bool) ast.Expr {
	if !foldable {
		return n
	}
	v, err := eval(n, nil)
	if err != nil {
		return n
	}
	return numLit(v)
}

// isLiteral reports whether n is a plain or negated number literal.
func isLiteral(n ast.Expr) bool {
	switch n := n.(type) {
	case *ast.BasicLit:
		return true
	case *ast.UnaryExpr:
		_, ok := n.X.(*ast.BasicLit)
		return n.Op == token.SUB && ok
	}
	return false
}

// numLit builds the AST form of a number: an INT or FLOAT literal, negated
// for negative values.
func numLit(v float64) ast.Expr {
	if v < 0 {
		return &ast.UnaryExpr{Op: token.SUB, X: numLit(-v)}
	}
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e15 {
		return &ast.BasicLit{Kind: token.INT, Value: strconv.FormatInt(int64(v), 10)}
	}
	return &ast.BasicLit{Kind: token.FLOAT, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}
