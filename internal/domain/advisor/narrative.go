package advisor

import (
	"strings"
	"text/template"
)

const narrativeText = `Employee {{.EmployeeID}} sits in skill cluster {{.Cluster}}{{if .ClusterSkills}} (cluster strengths: {{join .ClusterSkills ", "}}){{end}}.
{{- if .TopSkills}}
Strongest individual skills: {{join .TopSkills ", "}}.
{{- end}}
{{- range .Gaps}}
{{- if .Missing}}
For the {{.Domain}} track, still missing: {{join .Missing ", "}}{{if .Present}} (already covered: {{join .Present ", "}}){{end}}.
{{- else}}
The {{.Domain}} track is fully covered.
{{- end}}
{{- end}}
{{- if .Mentors}}
Suggested mentors nearby: {{range $i, $m := .Mentors}}{{if $i}}, {{end}}{{$m.EmployeeID}}{{end}}.
{{- end}}`

// The narrative is formatting, not business logic: a fixed template filled
// from the already-computed report, so identical reports render identically.
var narrativeTemplate = template.Must(
	template.New("narrative").Funcs(template.FuncMap{"join": strings.Join}).Parse(narrativeText),
)

func renderNarrative(report AdvisoryReport) string {
	var b strings.Builder
	if err := narrativeTemplate.Execute(&b, report); err != nil {
		return ""
	}
	return b.String()
}
