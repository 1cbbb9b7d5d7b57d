// Package polynomial implements univariate polynomials with float64
// coefficients, including parsing from strings such as "3x+x^2-x",
// arithmetic, evaluation and calculus.
package polynomial

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Polynomial holds coefficients in ascending order of power: P[i] is the
// coefficient of x^i. The zero polynomial is the empty (or nil) slice.
type Polynomial []float64

// ErrParse is returned by Parse for strings that are not polynomials in x.
var ErrParse = errors.New("not a polynomial")

// New builds a polynomial from ascending coefficients, trimming trailing
// zero terms so Degree is well defined.
func New(coeffs ...float64) Polynomial {
	return Polynomial(coeffs).trim()
}

func (p Polynomial) trim() Polynomial {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

var termRe = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)?)(x(?:\^(\d+))?)?$`)

// Parse reads a polynomial in the variable x, e.g. "3x+x^2-x" or
// "-x^3 + 2.5x - 1". Terms may repeat; their coefficients accumulate.
func Parse(s string) (Polynomial, error) {
	compact := strings.NewReplacer(" ", "", "\t", "", "*", "").Replace(s)
	if compact == "" {
		return nil, fmt.Errorf("%w: empty string", ErrParse)
	}
	// split keeping signs: insert a separator before each + or -
	var terms []string
	start := 0
	for i, r := range compact {
		if i > 0 && (r == '+' || r == '-') && compact[i-1] != '^' {
			terms = append(terms, compact[start:i])
			start = i
		}
	}
	terms = append(terms, compact[start:])

	var p Polynomial
	for _, term := range terms {
		m := termRe.FindStringSubmatch(term)
		if m == nil || (m[1] == "" && m[2] == "") || (m[1] == "+" || m[1] == "-") && m[2] == "" {
			return nil, fmt.Errorf("%w: bad term %q in %q", ErrParse, term, s)
		}
		coeff := 1.0
		switch m[1] {
		case "", "+":
		case "-":
			coeff = -1
		default:
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad coefficient %q", ErrParse, m[1])
			}
			coeff = v
		}
		power := 0
		if m[2] != "" {
			power = 1
			if m[3] != "" {
				n, err := strconv.Atoi(m[3])
				if err != nil {
					return nil, fmt.Errorf("%w: bad power %q", ErrParse, m[3])
				}
				power = n
			}
		}
		for len(p) <= power {
			p = append(p, 0)
		}
		p[power] += coeff
	}
	return p.trim(), nil
}

// Degree is the highest power with a nonzero coefficient; the zero
// polynomial has degree -1.
func (p Polynomial) Degree() int {
	return len(p.trim()) - 1
}

// Eval computes p(x) by Horner's rule.
func (p Polynomial) Eval(x float64) float64 {
	res := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		res = res*x + p[i]
	}
	return res
}

// EvalRange computes p(b) - p(a), the difference form used when p is an
// antiderivative.
func (p Polynomial) EvalRange(a, b float64) float64 {
	return p.Eval(b) - p.Eval(a)
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	res := make(Polynomial, max(len(p), len(q)))
	copy(res, p)
	for i, c := range q {
		res[i] += c
	}
	return res.trim()
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	return p.Scale(-1)
}

// Scale returns the polynomial with every coefficient multiplied by k.
func (p Polynomial) Scale(k float64) Polynomial {
	res := make(Polynomial, len(p))
	for i, c := range p {
		res[i] = k * c
	}
	return res.trim()
}

// Mul returns the product p * q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	res := make(Polynomial, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			res[i+j] += a * b
		}
	}
	return res.trim()
}

// Pow returns p raised to a non-negative integer power.
func (p Polynomial) Pow(n int) Polynomial {
	res := New(1)
	for range n {
		res = res.Mul(p)
	}
	return res
}

// Derivative returns dp/dx.
func (p Polynomial) Derivative() Polynomial {
	if len(p) < 2 {
		return nil
	}
	res := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		res[i-1] = float64(i) * p[i]
	}
	return res.trim()
}

// Integral returns the antiderivative with zero constant term.
func (p Polynomial) Integral() Polynomial {
	if len(p) == 0 {
		return nil
	}
	res := make(Polynomial, len(p)+1)
	for i, c := range p {
		res[i+1] = c / float64(i+1)
	}
	return res.trim()
}

const eps = 1e-12

// Equal reports whether p and q have the same coefficients within eps.
func (p Polynomial) Equal(q Polynomial) bool {
	p, q = p.trim(), q.trim()
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if math.Abs(p[i]-q[i]) > eps {
			return false
		}
	}
	return true
}

// Compare orders polynomials by degree, then by coefficients from the
// highest power down. It returns -1, 0 or +1; polynomials that are Equal
// compare as 0.
func (p Polynomial) Compare(q Polynomial) int {
	p, q = p.trim(), q.trim()
	if len(p) != len(q) {
		if len(p) < len(q) {
			return -1
		}
		return 1
	}
	for i := len(p) - 1; i >= 0; i-- {
		d := p[i] - q[i]
		switch {
		case d < -eps:
			return -1
		case d > eps:
			return 1
		}
	}
	return 0
}

// String renders the polynomial in descending powers, e.g. "x^2+2x-1".
func (p Polynomial) String() string {
	return p.render(false)
}

// GoString renders the polynomial as a Go expression.
func (p Polynomial) GoString() string {
	var b strings.Builder
	b.WriteString("polynomial.New(")
	for i, c := range p.trim() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatCoeff(c))
	}
	b.WriteString(")")
	return b.String()
}

// Latex renders the polynomial as LaTeX math, e.g. "x^{12}+2x-1".
func (p Polynomial) Latex() string {
	return p.render(true)
}

func (p Polynomial) render(latex bool) string {
	p = p.trim()
	if len(p) == 0 {
		return "0"
	}
	var b strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c == 0 {
			continue
		}
		if b.Len() > 0 && c > 0 {
			b.WriteString("+")
		}
		switch {
		case i == 0 || (c != 1 && c != -1):
			b.WriteString(formatCoeff(c))
		case c == -1:
			b.WriteString("-")
		}
		switch {
		case i == 0:
		case i == 1:
			b.WriteString("x")
		default:
			exp := strconv.Itoa(i)
			if latex && len(exp) > 1 {
				exp = "{" + exp + "}"
			}
			b.WriteString("x^" + exp)
		}
	}
	return b.String()
}

func formatCoeff(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
