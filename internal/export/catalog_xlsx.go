package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"course-catalog/internal/domain"
)

const catalogSheet = "Catalog"

// WriteCatalogXLSX writes the merged catalog as a one-sheet workbook:
// a header row, then one row per course in the order given.
func WriteCatalogXLSX(outPath string, courses []*domain.Course) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(catalogSheet)
	if err != nil {
		return fmt.Errorf("export: new sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for col, h := range catalogHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(catalogSheet, cell, h); err != nil {
			return err
		}
	}

	for i, c := range courses {
		values := []string{c.Number, c.Name, RenderPrereqs(c.Prereqs)}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(catalogSheet, cell, v); err != nil {
				return err
			}
		}
	}

	// drop the default sheet excelize creates
	_ = f.DeleteSheet("Sheet1")

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("export: save workbook: %w", err)
	}
	return nil
}
