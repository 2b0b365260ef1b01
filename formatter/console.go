package formatter

import (
	"strings"
	"text/template"

	"github.com/fatih/color"
)

var (
	labelStyle     = color.New(color.FgCyan, color.Bold)
	queryStyle     = color.New(color.FgWhite, color.Bold)
	narrativeStyle = color.New(color.FgGreen)
	technicalStyle = color.New(color.FgYellow)
	astStyle       = color.New(color.FgHiBlack)
)

// ConsoleData holds the already-rendered pieces of a parse result for
// terminal presentation.
type ConsoleData struct {
	Query         string
	Narrative     string
	Deterministic string
	ASTJSON       string
}

const consoleTemplate = `{{label "Query:"}}         {{query .Query}}
{{label "Narrative:"}}     {{narrative .Narrative}}
{{label "Deterministic:"}} {{technical .Deterministic}}
{{label "AST:"}}
{{ast .ASTJSON}}
`

// Console renders a parse result for the terminal. Styling honors the
// global color configuration, so disabling color yields plain text.
func Console(data ConsoleData) string {
	funcMap := template.FuncMap{
		"label":     labelStyle.Sprint,
		"query":     queryStyle.Sprint,
		"narrative": narrativeStyle.Sprint,
		"technical": technicalStyle.Sprint,
		"ast":       astStyle.Sprint,
	}

	tmpl, err := template.New("console").Funcs(funcMap).Parse(consoleTemplate)
	if err != nil {
		return data.Query + "\n" + data.Narrative + "\n"
	}

	var builder strings.Builder
	if err := tmpl.Execute(&builder, data); err != nil {
		return data.Query + "\n" + data.Narrative + "\n"
	}
	return builder.String()
}
