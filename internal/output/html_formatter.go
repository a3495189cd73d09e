package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/gigtax/t2125-calculator/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report suitable for
// printing or attaching to a filing package.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"km":   FormatKm,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.T2125Data) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.T2125Data
		Part4Items []domain.LineItem
	}{report, report.Part4.LineItems()}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
