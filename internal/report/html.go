package report

import (
	"html/template"
	"strings"
)

// The HTML fragment doubles as a standalone email body, so styling is
// inline and there is no outer <html> shell (the mail client provides it).
var htmlTmpl = template.Must(template.New("report").Parse(`<h1>{{.CompanyName}}</h1>
<h2>Parcel Report - {{.FilterLabel}}</h2>
<h3>Summary</h3>
<p>Total Parcels: {{.TotalParcels}}</p>
<p>Total Earnings: {{.TotalEarnings}}</p>

<h3>Detailed Report</h3>
<table border="1" style="border-collapse: collapse; width: 100%;">
	<thead>
		<tr style="background-color: #f0f0f0;">
{{- range .Columns}}
			<th>{{.}}</th>
{{- end}}
		</tr>
	</thead>
	<tbody>
{{- range .Rows}}
		<tr>
{{- range .}}
			<td>{{.}}</td>
{{- end}}
		</tr>
{{- end}}
	</tbody>
</table>
`))

type htmlReportData struct {
	CompanyName   string
	FilterLabel   string
	TotalParcels  int
	TotalEarnings string
	Columns       []string
	Rows          [][]string
}

// RenderHTML produces the email-ready fragment for the report.
func RenderHTML(rep *Aggregated, companyName, filterLabel string) (string, error) {
	var sb strings.Builder
	err := htmlTmpl.Execute(&sb, htmlReportData{
		CompanyName:   companyName,
		FilterLabel:   filterLabel,
		TotalParcels:  rep.TotalQuantity,
		TotalEarnings: formatEarning(rep.TotalEarnings),
		Columns:       columns,
		Rows:          rows(rep),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
