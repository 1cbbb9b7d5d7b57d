// Package render turns values into HTML fragments and aligned text tables,
// for notebooks, reports and terminal output.
package render

import (
	"fmt"
	"html"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"
)

// HTMLer is implemented by values that know their own HTML rendering.
// HTML prefers it over every other conversion.
type HTMLer interface {
	HTML() string
}

// Latexer marks values with a LaTeX form; HTML wraps it for MathJax.
type Latexer interface {
	Latex() string
}

// HTML converts a value to an HTML fragment. Strings and Stringers are
// escaped; values implementing HTMLer or Latexer render themselves.
// Slices become lists and maps become two-column tables with the keys
// sorted, so repeated renders of the same map are identical.
func HTML(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case HTMLer:
		return v.HTML()
	case Latexer:
		return "$$" + v.Latex() + "$$"
	case string:
		return html.EscapeString(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return html.EscapeString(v.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var b strings.Builder
		b.WriteString("<ul>")
		for i := 0; i < rv.Len(); i++ {
			b.WriteString("<li>" + HTML(rv.Index(i).Interface()) + "</li>")
		}
		b.WriteString("</ul>")
		return b.String()
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		var b strings.Builder
		b.WriteString("<table>")
		for _, k := range keys {
			b.WriteString("<tr><th>" + HTML(k.Interface()) + "</th><td>" +
				HTML(rv.MapIndex(k).Interface()) + "</td></tr>")
		}
		b.WriteString("</table>")
		return b.String()
	}
	return html.EscapeString(fmt.Sprint(v))
}

// Heading renders v as an HTML heading; level is clamped to h1..h6.
func Heading(level int, v any) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	tag := "h" + strconv.Itoa(level)
	return "<" + tag + ">" + HTML(v) + "</" + tag + ">"
}

// Bootstrap alert palette.
const (
	infoColor    = "#337ab7"
	successColor = "#5cb85c"
	warningColor = "#f0ad4e"
	errorColor   = "#d9534f"
)

func alert(hex string, v any) string {
	return `<div style="color:` + hex + `">` + HTML(v) + `</div>`
}

// Info renders v as an informational message.
func Info(v any) string { return alert(infoColor, v) }

// Success renders v as a success message.
func Success(v any) string { return alert(successColor, v) }

// Warning renders v as a warning message.
func Warning(v any) string { return alert(warningColor, v) }

// Error renders v as an error message.
func Error(v any) string { return alert(errorColor, v) }

// Swatch returns a terminal color swatch for a hex color such as
// "#ff8000", a colored block followed by the hex code.
func Swatch(hex string) string {
	return color.HEX(hex, true).Sprint("  ") + " " + hex
}
