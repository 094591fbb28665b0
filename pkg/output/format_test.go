package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/purchase-cost/internal/calculation"
	"github.com/iwvelando/purchase-cost/internal/render"
	"github.com/iwvelando/purchase-cost/pkg/format"
)

func progressiveDiagram() (calculation.ProgressiveResult, render.Diagram) {
	res := calculation.Progressive(calculation.ProgressiveInput{
		Quantity:      10,
		Invoice:       1000,
		TradeDiscount: 10,
		Freight:       25,
	})
	return res, render.Progressive(res, format.NewFormatter("€", "en"))
}

func TestPrettyFormat(t *testing.T) {
	_, d := progressiveDiagram()

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, d); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"--- Progressive calculation ---",
		"Invoice amount",
		"Trade discount [v.h.]",
		"- € 100.00",
		"+ € 25.00",
		"Total purchase price",
		"€ 925.00",
		"Per unit",
		"€ 92.5000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PrettyFormat output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Special discount") {
		t.Errorf("PrettyFormat should hide zero steps:\n%s", out)
	}
}

func TestPrettyFormatWithoutPerUnit(t *testing.T) {
	d := render.Retrograde(calculation.Retrograde(calculation.RetrogradeInput{TargetTotal: 100}), format.NewFormatter("€", "en"))

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, d); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	if strings.Contains(buf.String(), "Maximum per unit") {
		t.Errorf("unexpected per-unit line:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Maximum invoice amount") {
		t.Errorf("missing total line:\n%s", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	res, d := progressiveDiagram()

	var buf bytes.Buffer
	if err := JSONFormat(&buf, Report{Parts: res.Parts, Diagram: d}); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded struct {
		Parts   map[string]float64 `json:"parts"`
		Diagram struct {
			Title string `json:"title"`
			Steps []struct {
				Label string `json:"label"`
			} `json:"steps"`
		} `json:"diagram"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}

	if decoded.Parts["epTotal"] != 925 {
		t.Errorf("parts.epTotal = %v, expected 925", decoded.Parts["epTotal"])
	}
	if _, ok := decoded.Parts["discSpecial"]; !ok {
		t.Error("parts should include zero amounts")
	}
	if decoded.Diagram.Title != "Progressive calculation" || len(decoded.Diagram.Steps) == 0 {
		t.Errorf("unexpected diagram: %+v", decoded.Diagram)
	}
}
