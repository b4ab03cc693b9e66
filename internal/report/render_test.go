package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"beamx-scorecard/backend/internal/scoring"
)

func TestRenderIncludesScoresAndLabel(t *testing.T) {
	out, err := Render(Input{
		Total:     68,
		Label:     scoring.LabelGrowthReady,
		Narrative: "Solid fundamentals with room to grow.",
		Industry:  "logistics",
		Scores:    scoring.SubScores{Financial: 9, Growth: 7, Digital: 8, Operations: 6},
		CTAURL:    "https://beamxsolutions.com",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"68/100",
		scoring.LabelGrowthReady,
		"Financial Health: 9/11",
		"Growth Readiness: 7/11",
		"Digital Maturity: 8/11",
		"Operational Efficiency: 6/11",
		"Solid fundamentals with room to grow.",
		"logistics",
		"https://beamxsolutions.com",
		fmt.Sprintf("© %d", time.Now().Year()),
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q", want)
		}
	}
}

func TestRenderNeutralizesMarkup(t *testing.T) {
	out, err := Render(Input{
		Total:     10,
		Label:     scoring.LabelFoundationStage,
		Narrative: "<script>alert('narrative')</script>Keep tracking costs.",
		Industry:  "<img src=x onerror=alert(1)>retail",
		Scores:    scoring.SubScores{},
		CTAURL:    "https://beamxsolutions.com",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, forbidden := range []string{"<script>", "onerror", "<img"} {
		if strings.Contains(out, forbidden) {
			t.Fatalf("report contains unescaped markup %q", forbidden)
		}
	}
	if !strings.Contains(out, "Keep tracking costs.") {
		t.Fatal("sanitization removed legitimate narrative text")
	}
	if !strings.Contains(out, "retail") {
		t.Fatal("sanitization removed legitimate industry text")
	}
}
