package export

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/grapher/internal/plot"
)

func TestCollect(t *testing.T) {
	v := plot.NewViewport(10)
	d := plot.NewRealDrawer(func(x float64) float64 { return 2 * x }, 4)

	samples := Collect(d, v)
	if len(samples) != 4 {
		t.Fatalf("got %d samples, want 4", len(samples))
	}
	if samples[0].T != -10 || samples[0].Point != plot.Pt(-10, -20) {
		t.Errorf("first sample = %+v", samples[0])
	}
	if pts := Points(samples); len(pts) != 4 || pts[3] != plot.Pt(5, 10) {
		t.Errorf("Points() = %v", pts)
	}
}

func TestWriteSamplesCSV(t *testing.T) {
	var buf bytes.Buffer
	samples := []Sample{{T: 0, Point: plot.Pt(1, 0)}, {T: 0.5, Point: plot.Pt(0.5, -0.25)}}
	if err := WriteSamplesCSV(&buf, samples); err != nil {
		t.Fatal(err)
	}

	want := "t,x,y\n0.000000,1.000000,0.000000\n0.500000,0.500000,-0.250000\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestCurveToSVG(t *testing.T) {
	pts := []plot.Point{plot.Pt(0, 0), plot.Pt(1, 1), plot.Pt(math.NaN(), 0), plot.Pt(2, 0)}
	svg := CurveToSVG(pts, 100, 50, "#00ff00")

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	if strings.Count(svg, "M") != 2 {
		t.Errorf("NaN should split the path into two parts:\n%s", svg)
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Error("stroke color missing")
	}

	if CurveToSVG(pts[:1], 10, 10, "#000000") != "" {
		t.Error("a single point should produce no svg")
	}
}

func TestFramebufferToSVG(t *testing.T) {
	fb := plot.NewFramebuffer(3, 3)
	fb.Set(1, 2, plot.Black)

	svg := FramebufferToSVG(fb, plot.White, 2)
	if n := strings.Count(svg, `fill="#000000"`); n != 1 {
		t.Errorf("expected one black rect, got %d", n)
	}
	if !strings.Contains(svg, `x="2.0" y="4.0"`) {
		t.Errorf("rect misplaced:\n%s", svg)
	}
	if FramebufferToSVG(nil, plot.White, 1) != "" {
		t.Error("nil framebuffer should produce no svg")
	}
}

func TestExportJSON(t *testing.T) {
	v := plot.NewViewport(10)
	v.Zoom = 2
	samples := Collect(plot.NewRealDrawer(func(x float64) float64 { return x }, 3), v)
	data := NewExportData("line", "real", v, samples)

	if data.Precision != 3 || data.Zoom != 2 || len(data.Points) != 3 {
		t.Fatalf("unexpected export data %+v", data)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(path, data); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back ExportData
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.Function != "line" || back.Inputs[0] != -5 {
		t.Errorf("read back %+v", back)
	}

	bad := NewExportData("log", "real", v, []Sample{{T: 0, Point: plot.Pt(0, math.Inf(-1))}})
	if err := ExportJSON(path, bad); err == nil {
		t.Error("expected error encoding -Inf")
	}
}
