package export

import (
	"encoding/json"
	"os"

	"github.com/san-kum/grapher/internal/plot"
)

type ExportData struct {
	Function  string      `json:"function"`
	Mode      string      `json:"mode"`
	Precision int         `json:"precision"`
	Zoom      float64     `json:"zoom"`
	Center    [2]float64  `json:"center"`
	Inputs    []float64   `json:"inputs"`
	Points    [][]float64 `json:"points"`
}

// NewExportData bundles samples with the view that produced them.
func NewExportData(function, mode string, v plot.Viewport, samples []Sample) ExportData {
	data := ExportData{
		Function:  function,
		Mode:      mode,
		Precision: len(samples),
		Zoom:      v.Zoom,
		Center:    [2]float64{v.Center.X, v.Center.Y},
		Inputs:    make([]float64, len(samples)),
		Points:    make([][]float64, len(samples)),
	}
	for i, s := range samples {
		data.Inputs[i] = s.T
		data.Points[i] = []float64{s.Point.X, s.Point.Y}
	}
	return data
}

// ExportJSON writes data to path. Non-finite values cannot be encoded and
// make the export fail.
func ExportJSON(path string, data ExportData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
