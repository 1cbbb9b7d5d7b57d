package expr

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

// opInfo carries an operator's precedence weight and its spelling in the
// plain text, Go and LaTeX dialects.
type opInfo struct {
	prec  int
	text  string
	gostr string
	latex string
}

const atomPrec = 9999

var binOps = map[token.Token]opInfo{
	token.LOR:  {300, " or ", " || ", " \\vee "},
	token.LAND: {400, " and ", " && ", " \\wedge "},
	token.LSS:  {600, " < ", " < ", " < "},
	token.GTR:  {600, " > ", " > ", " > "},
	token.LEQ:  {600, " <= ", " <= ", " \\leq "},
	token.GEQ:  {600, " >= ", " >= ", " \\geq "},
	token.EQL:  {600, " = ", " == ", " = "},
	token.NEQ:  {600, " <> ", " != ", " \\neq "},
	token.SHL:  {1000, " << ", " << ", " \\ll "},
	token.SHR:  {1000, " >> ", " >> ", " \\gg "},
	token.ADD:  {1100, "+", "+", "+"},
	token.SUB:  {1100, "-", "-", "-"},
	token.MUL:  {1200, "", "*", " \\cdot "},
	token.QUO:  {1200, "/", "/", ""},
	token.REM:  {1200, " mod ", " % ", " \\bmod "},
	token.XOR:  {1400, "^", "", ""},
}

var unaryOps = map[token.Token]opInfo{
	token.SUB: {1300, "-", "-", "-"},
	token.ADD: {1300, "+", "+", "+"},
	token.NOT: {500, "not ", "!", "\\neg "},
}

// latexFuncs are the function names LaTeX spells with a leading backslash.
var latexFuncs = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"sinh": true, "cosh": true, "tanh": true,
	"exp": true, "log": true, "min": true, "max": true,
}

// prec is the precedence weight of a node; atoms bind tightest.
func prec(n ast.Expr) int {
	switch n := n.(type) {
	case *ast.BinaryExpr:
		return binOps[n.Op].prec
	case *ast.UnaryExpr:
		return unaryOps[n.Op].prec
	default:
		return atomPrec
	}
}

// String renders the expression in plain math notation: implicit
// multiplication, a single = for equality, ^ for powers.
func (e *Expr) String() string {
	return renderText(e.node)
}

// GoString renders the expression as a Go expression, with powers spelled
// as math.Pow calls.
func (e *Expr) GoString() string {
	return renderGo(e.node)
}

// Latex renders the expression as LaTeX math, with \frac for divisions and
// ^{...} for powers.
func (e *Expr) Latex() string {
	return renderLatex(e.node)
}

// wrap parenthesizes a child rendering when its precedence requires it.
// Right operands of a left associative operator need parentheses already on
// equal precedence; powers associate the other way around.
func wrap(s string, child ast.Expr, op token.Token, right bool, open, close string) string {
	p, op2 := prec(child), binOps[op].prec
	need := false
	switch {
	case op == token.XOR:
		need = (!right && p <= op2) || (right && p < op2)
	case right:
		need = p <= op2
	default:
		need = p < op2
	}
	if need {
		return open + s + close
	}
	return s
}

func renderText(n ast.Expr) string {
	switch n := n.(type) {
	case *ast.BasicLit:
		return n.Value
	case *ast.Ident:
		return n.Name
	case *ast.UnaryExpr:
		x := renderText(n.X)
		if prec(n.X) < unaryOps[n.Op].prec {
			x = "(" + x + ")"
		}
		return unaryOps[n.Op].text + x
	case *ast.BinaryExpr:
		x, y := n.X, n.Y
		if n.Op == token.MUL && isLiteral(y) && !isLiteral(x) {
			x, y = y, x // numbers read better in front: 3x, not x3
		}
		l := wrap(renderText(x), x, n.Op, false, "(", ")")
		r := wrap(renderText(y), y, n.Op, true, "(", ")")
		sym := binOps[n.Op].text
		if n.Op == token.MUL && endsDigit(l) && startsDigit(r) {
			sym = "*"
		}
		return l + sym + r
	case *ast.CallExpr:
		return callText(n, renderText)
	}
	return fmt.Sprintf("<%T>", n)
}

func renderGo(n ast.Expr) string {
	switch n := n.(type) {
	case *ast.BasicLit:
		return n.Value
	case *ast.Ident:
		return n.Name
	case *ast.UnaryExpr:
		x := renderGo(n.X)
		if prec(n.X) < unaryOps[n.Op].prec {
			x = "(" + x + ")"
		}
		return unaryOps[n.Op].gostr + x
	case *ast.BinaryExpr:
		if n.Op == token.XOR {
			return "math.Pow(" + renderGo(n.X) + ", " + renderGo(n.Y) + ")"
		}
		l := wrap(renderGo(n.X), n.X, n.Op, false, "(", ")")
		r := wrap(renderGo(n.Y), n.Y, n.Op, true, "(", ")")
		return l + binOps[n.Op].gostr + r
	case *ast.CallExpr:
		return callText(n, renderGo)
	}
	return fmt.Sprintf("<%T>", n)
}

func renderLatex(n ast.Expr) string {
	switch n := n.(type) {
	case *ast.BasicLit:
		return n.Value
	case *ast.Ident:
		switch n.Name {
		case "pi":
			return "\\pi"
		case "phi":
			return "\\phi"
		case "inf":
			return "\\infty"
		}
		return n.Name
	case *ast.UnaryExpr:
		x := renderLatex(n.X)
		if prec(n.X) < unaryOps[n.Op].prec {
			x = "\\left(" + x + "\\right)"
		}
		return unaryOps[n.Op].latex + x
	case *ast.BinaryExpr:
		switch n.Op {
		case token.QUO:
			return "\\frac{" + renderLatex(n.X) + "}{" + renderLatex(n.Y) + "}"
		case token.XOR:
			base := renderLatex(n.X)
			if prec(n.X) < atomPrec {
				base = "\\left(" + base + "\\right)"
			}
			exp := renderLatex(n.Y)
			if len(exp) > 1 {
				exp = "{" + exp + "}"
			}
			return base + "^" + exp
		case token.MUL:
			if isLiteral(n.X) {
				if id, ok := n.Y.(*ast.Ident); ok {
					return renderLatex(n.X) + " " + id.Name
				}
			}
		}
		l := wrap(renderLatex(n.X), n.X, n.Op, false, "\\left(", "\\right)")
		r := wrap(renderLatex(n.Y), n.Y, n.Op, true, "\\left(", "\\right)")
		return l + binOps[n.Op].latex + r
	case *ast.CallExpr:
		name := n.Fun.(*ast.Ident).Name
		switch name {
		case "sqrt":
			return "\\sqrt{" + renderLatex(n.Args[0]) + "}"
		case "factorial":
			arg := renderLatex(n.Args[0])
			if prec(n.Args[0]) < atomPrec {
				arg = "\\left(" + arg + "\\right)"
			}
			return arg + "!"
		case "abs":
			return "\\left|" + renderLatex(n.Args[0]) + "\\right|"
		}
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = renderLatex(a)
		}
		if latexFuncs[name] {
			name = "\\" + name
		}
		return name + "\\left(" + strings.Join(args, ", ") + "\\right)"
	}
	return fmt.Sprintf("<%T>", n)
}

func callText(n *ast.CallExpr, render func(ast.Expr) string) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = render(a)
	}
	return n.Fun.(*ast.Ident).Name + "(" + strings.Join(args, ", ") + ")"
}

func endsDigit(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c >= '0' && c <= '9'
}

func startsDigit(s string) bool {
	if s == "" {
		return false
	}
	return (s[0] >= '0' && s[0] <= '9') || s[0] == '.'
}
