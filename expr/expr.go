// Package expr provides small symbolic math expressions built on Go's own
// parse tree. A formula string is parsed with go/parser and the resulting
// go/ast expression is walked for evaluation, substitution and
// pretty-printing in plain text, Go syntax, or LaTeX.
//
// The caret is interpreted as the power operator rather than XOR: after
// parsing, binary chains are rebuilt with mathematical precedence so that
// 3*x^2 means 3*(x^2).
package expr

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// Expr is an immutable symbolic expression. Operations never mutate the
// receiver; they return new expressions sharing unchanged subtrees.
type Expr struct {
	node ast.Expr
}

// Parse builds an expression from a formula string such as
// "3*x^2 + sin(pi*x)". Only numbers, names, parentheses, the arithmetic,
// comparison and logic operators, and the whitelisted math functions are
// accepted.
func Parse(s string) (*Expr, error) {
	node, err := parser.ParseExpr(s)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}
	node, err = normalize(node)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}
	return &Expr{node: node}, nil
}

// FromFloat builds a constant expression.
func FromFloat(v float64) *Expr {
	return &Expr{node: numLit(v)}
}

// Var builds a bare variable reference.
func Var(name string) *Expr {
	return &Expr{node: &ast.Ident{Name: name}}
}

// IsConst reports whether the expression evaluates to a number without any
// variable bindings.
func (e *Expr) IsConst() bool {
	_, err := e.Eval(nil)
	return err == nil
}

func (e *Expr) bin(op token.Token, right *Expr) *Expr {
	return &Expr{node: &ast.BinaryExpr{X: e.node, Op: op, Y: right.node}}
}

// Add returns e + right.
func (e *Expr) Add(right *Expr) *Expr { return e.bin(token.ADD, right) }

// Sub returns e - right.
func (e *Expr) Sub(right *Expr) *Expr { return e.bin(token.SUB, right) }

// Mul returns e * right.
func (e *Expr) Mul(right *Expr) *Expr { return e.bin(token.MUL, right) }

// Div returns e / right.
func (e *Expr) Div(right *Expr) *Expr { return e.bin(token.QUO, right) }

// Pow returns e raised to the power right.
func (e *Expr) Pow(right *Expr) *Expr { return e.bin(token.XOR, right) }

// Neg returns -e.
func (e *Expr) Neg() *Expr {
	return &Expr{node: &ast.UnaryExpr{Op: token.SUB, X: e.node}}
}

// Compose substitutes inner for the variable x in e, the function
// composition e o inner.
func (e *Expr) Compose(inner *Expr) *Expr {
	return &Expr{node: subst(e.node, "x", inner.node)}
}

// Shift translates the expression along x: Shift(dx) is e(x+dx).
func (e *Expr) Shift(dx float64) *Expr {
	return e.Compose(Var("x").Add(FromFloat(dx)))
}

// Complexity measures the expression as the sum of the precedence weights
// of the operators it uses; bigger means more complex.
func (e *Expr) Complexity() int {
	return complexity(e.node)
}

func complexity(n ast.Expr) int {
	switch n := n.(type) {
	case *ast.BinaryExpr:
		return binOps[n.Op].prec + complexity(n.X) + complexity(n.Y)
	case *ast.UnaryExpr:
		return unaryOps[n.Op].prec + complexity(n.X)
	case *ast.CallExpr:
		total := 0
		for _, a := range n.Args {
			total += complexity(a)
		}
		return total
	default:
		return 0
	}
}

// subst rebuilds the tree replacing every reference to name with repl.
// Unchanged subtrees are shared, never copied.
func subst(n ast.Expr, name string, repl ast.Expr) ast.Expr {
	switch n := n.(type) {
	case *ast.Ident:
		if n.Name == name {
			return repl
		}
		return n
	case *ast.UnaryExpr:
		return &ast.UnaryExpr{Op: n.Op, X: subst(n.X, name, repl)}
	case *ast.BinaryExpr:
		return &ast.BinaryExpr{
			X:  subst(n.X, name, repl),
			Op: n.Op,
			Y:  subst(n.Y, name, repl),
		}
	case *ast.CallExpr:
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			args[i] = subst(a, name, repl)
		}
		return &ast.CallExpr{Fun: n.Fun, Args: args}
	default:
		return n
	}
}

// normalize validates a freshly parsed tree, strips parentheses nodes, and
// rebuilds operator chains with mathematical precedence so that the caret
// binds tighter than multiplication.
func normalize(n ast.Expr) (ast.Expr, error) {
	switch n := n.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return nil, fmt.Errorf("unsupported literal %s", n.Value)
		}
		return n, nil
	case *ast.Ident:
		return n, nil
	case *ast.ParenExpr:
		return normalize(n.X)
	case *ast.UnaryExpr:
		if _, ok := unaryOps[n.Op]; !ok {
			return nil, fmt.Errorf("unsupported unary operator %s", n.Op)
		}
		x, err := normalize(n.X)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: n.Op, X: x}, nil
	case *ast.CallExpr:
		ident, ok := n.Fun.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("only plain function calls are allowed")
		}
		f, ok := functions[ident.Name]
		if !ok {
			return nil, fmt.Errorf("function %s not allowed", ident.Name)
		}
		if len(n.Args) != f.arity {
			return nil, fmt.Errorf("%s takes %d argument(s), got %d",
				ident.Name, f.arity, len(n.Args))
		}
		args := make([]ast.Expr, len(n.Args))
		for i, a := range n.Args {
			na, err := normalize(a)
			if err != nil {
				return nil, err
			}
			args[i] = na
		}
		return &ast.CallExpr{Fun: ident, Args: args}, nil
	case *ast.BinaryExpr:
		if _, ok := binOps[n.Op]; !ok {
			return nil, fmt.Errorf("unsupported operator %s", n.Op)
		}
		var operands []ast.Expr
		var ops []token.Token
		if err := flatten(n, &operands, &ops); err != nil {
			return nil, err
		}
		return climb(operands, ops), nil
	default:
		return nil, fmt.Errorf("unsupported expression node %T", n)
	}
}

// flatten collects the in-order operands and operators of a maximal binary
// chain. Parenthesized subexpressions stay atomic operands.
func flatten(n ast.Expr, operands *[]ast.Expr, ops *[]token.Token) error {
	if b, ok := n.(*ast.BinaryExpr); ok {
		if _, known := binOps[b.Op]; known {
			if err := flatten(b.X, operands, ops); err != nil {
				return err
			}
			*ops = append(*ops, b.Op)
			return flatten(b.Y, operands, ops)
		}
	}
	nn, err := normalize(n)
	if err != nil {
		return err
	}
	*operands = append(*operands, nn)
	return nil
}

// climb rebuilds a flattened operator chain by precedence climbing, giving
// the caret its mathematical precedence and right associativity.
func climb(operands []ast.Expr, ops []token.Token) ast.Expr {
	pos := 0
	var rec func(minPrec int) ast.Expr
	rec = func(minPrec int) ast.Expr {
		left := operands[pos]
		for pos < len(ops) && binOps[ops[pos]].prec >= minPrec {
			op := ops[pos]
			next := binOps[op].prec + 1
			if op == token.XOR { // power is right associative
				next = binOps[op].prec
			}
			pos++
			left = &ast.BinaryExpr{X: left, Op: op, Y: rec(next)}
		}
		return left
	}
	return rec(0)
}
