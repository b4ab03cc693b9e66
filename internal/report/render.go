package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"beamx-scorecard/backend/internal/scoring"
)

// Input carries everything the report template needs. Narrative and Industry
// are untrusted text and are sanitized before rendering.
type Input struct {
	Total     int
	Label     string
	Narrative string
	Industry  string
	Scores    scoring.SubScores
	CTAURL    string
}

var policy = bluemonday.StrictPolicy()

var reportTemplate = template.Must(template.New("report").Parse(`<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; padding: 30px; max-width: 800px; margin: 0 auto; }
        h1 { color: #007bff; }
        .highlight { font-weight: bold; color: #007bff; }
        .cta { background: #f1f9ff; padding: 10px; border-left: 4px solid #007bff; margin-top: 20px; }
        ul { margin: 20px 0; padding-left: 20px; }
        p { line-height: 1.6; }
    </style>
</head>
<body>
    <h1>BeamX Business Health Report</h1>
    <p><strong>Industry:</strong> {{.Industry}}</p>
    <p><strong>Total Score:</strong> <span class='highlight'>{{.Total}}/100 – {{.Label}}</span></p>
    <ul>
        <li>Financial Health: {{.Scores.Financial}}/11</li>
        <li>Growth Readiness: {{.Scores.Growth}}/11</li>
        <li>Digital Maturity: {{.Scores.Digital}}/11</li>
        <li>Operational Efficiency: {{.Scores.Operations}}/11</li>
    </ul>
    <p>{{.Narrative}}</p>
    <div class='cta'>To turn these insights into action, visit <a href='{{.CTAURL}}'>BeamX Solutions</a></div>
    <p style='font-size:12px;'>© {{.Year}} BeamX Solutions</p>
</body>
</html>
`))

type templateData struct {
	Total     int
	Label     string
	Narrative template.HTML
	Industry  template.HTML
	Scores    scoring.SubScores
	CTAURL    string
	Year      int
}

// Render produces the self-contained styled report document. Deterministic
// for a given input except for the copyright year stamp.
func Render(in Input) (string, error) {
	data := templateData{
		Total: in.Total,
		Label: in.Label,
		// bluemonday already escaped these; embedding the sanitized output
		// directly avoids double-encoding entities in ordinary prose.
		Narrative: template.HTML(strings.TrimSpace(policy.Sanitize(in.Narrative))),
		Industry:  template.HTML(strings.TrimSpace(policy.Sanitize(in.Industry))),
		Scores:    in.Scores,
		CTAURL:    in.CTAURL,
		Year:      time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
