// Package export serializes a distribution's metadata and a computed
// result into an xlsx workbook the frontend offers as a download. Every
// field of both schemas lands in the workbook; nothing is summarized away.
package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/domain/distribution"
)

const (
	sheetMetadata   = "Metadata"
	sheetParameters = "Parameters"
	sheetCurve      = "Curve"
)

// WriteWorkbook writes the workbook to w.
func WriteWorkbook(w io.Writer, meta distribution.Metadata, result distribution.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeMetadataSheet(f, meta, result); err != nil {
		return err
	}
	if err := writeParameterSheet(f, meta.Parameters); err != nil {
		return err
	}
	if err := writeCurveSheet(f, result); err != nil {
		return err
	}

	// Drop the default sheet so the workbook opens on Metadata.
	if idx, err := f.GetSheetIndex(sheetMetadata); err == nil {
		f.SetActiveSheet(idx)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func writeMetadataSheet(f *excelize.File, meta distribution.Metadata, result distribution.Result) error {
	if _, err := f.NewSheet(sheetMetadata); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"type", string(meta.Kind)},
		{"name", meta.Name},
		{"description", meta.Description},
		{"category", string(meta.Category)},
		{"formula_pdf", meta.PDFFormula},
		{"formula_cdf", meta.CDFFormula},
		{"mean", result.Mean},
		{"variance", result.Variance},
		{"std_dev", result.StdDev},
	}
	for _, tag := range meta.Tags {
		rows = append(rows, []interface{}{"tag", tag})
	}
	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+1)
		if err := f.SetSheetRow(sheetMetadata, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeParameterSheet(f *excelize.File, params []distribution.Parameter) error {
	if _, err := f.NewSheet(sheetParameters); err != nil {
		return err
	}
	header := []interface{}{"name", "label", "description", "default_value", "min_value", "max_value", "step"}
	if err := f.SetSheetRow(sheetParameters, "A1", &header); err != nil {
		return err
	}
	for i, p := range params {
		row := []interface{}{p.Name, p.Label, p.Description, p.DefaultValue, p.MinValue, p.MaxValue, p.Step}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetParameters, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeCurveSheet(f *excelize.File, result distribution.Result) error {
	if _, err := f.NewSheet(sheetCurve); err != nil {
		return err
	}
	header := []interface{}{"x", "pdf", "cdf"}
	if err := f.SetSheetRow(sheetCurve, "A1", &header); err != nil {
		return err
	}
	for i := range result.XValues {
		row := []interface{}{result.XValues[i], result.PDFValues[i], result.CDFValues[i]}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetCurve, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
