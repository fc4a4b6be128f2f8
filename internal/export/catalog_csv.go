package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"

	"course-catalog/internal/domain"
)

// Catalog CSV layout. Keep header order EXACT: downstream imports key on
// column position.
var catalogHeader = []string{
	"COURSE_NUMBER",
	"COURSE_NAME",
	"PREREQUISITES",
}

// WriteCatalogCSV writes the merged catalog in a fixed-column layout.
// The prerequisite column uses the same grammar the annotator reads:
// groups joined by ", ", alternatives inside a group by " OR ".
func WriteCatalogCSV(w io.Writer, courses []*domain.Course) error {
	cw := csv.NewWriter(w)
	// match typical import templates
	cw.UseCRLF = true

	if err := cw.Write(catalogHeader); err != nil {
		return err
	}

	for _, c := range courses {
		row := []string{c.Number, c.Name, RenderPrereqs(c.Prereqs)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCatalogCSVFile writes the catalog CSV to outPath. A ".br" suffix
// switches on brotli compression, which keeps large catalogs cheap to
// upload.
func WriteCatalogCSVFile(outPath string, courses []*domain.Course) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", outPath, err)
	}

	var w io.Writer = f
	var bw *brotli.Writer
	if strings.HasSuffix(outPath, ".br") {
		bw = brotli.NewWriter(f)
		w = bw
	}

	if err := WriteCatalogCSV(w, courses); err != nil {
		f.Close()
		return fmt.Errorf("export: write csv: %w", err)
	}
	if bw != nil {
		if err := bw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("export: close brotli stream: %w", err)
		}
	}
	return f.Close()
}

// RenderPrereqs renders prerequisite groups back into the expression
// grammar: "A OR B, C". Round-trips through the annotator's parser.
func RenderPrereqs(groups [][]string) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, strings.Join(g, " OR "))
	}
	return strings.Join(parts, ", ")
}
