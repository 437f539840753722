// Package export formats an accepted inclusion distribution into the file
// formats the downstream tooling consumes: the fixed-format text report,
// FEA sketch scripts, DXF drawings, XLSX workbooks, PDF datasheets, and
// HTML scatter charts.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/piwi3910/rvegen/internal/model"
)

// ExportInclusions renders the distribution report: a matrix header block
// followed by one line per shape in placement order. Column order and
// header literals are fixed; downstream parsers match them exactly. An
// empty distribution produces a header-only report.
func ExportInclusions(dist *model.Distribution) string {
	var b strings.Builder

	b.WriteString("**Matrix:\n")
	b.WriteString("**Bottom left corner X, Bottom left corner Y, height, width\n")
	fmt.Fprintf(&b, "0, 0, %g, %g\n\n", dist.Container.Height, dist.Container.Width)

	switch dist.Kind {
	case model.KindEllipse:
		b.WriteString("**Ellipse distribution\n")
		b.WriteString("**Centre X, centre Y, long axis, short axis, aspect ratio, area, orientation(rad)\n")
	default:
		b.WriteString("**Circle distribution\n")
		b.WriteString("**Centre X, centre Y, radius, area\n")
	}

	for _, s := range dist.Shapes {
		b.WriteString(s.ReportLine())
		b.WriteByte('\n')
	}

	return b.String()
}

// ExportGrouped renders the distribution with shapes grouped per material,
// followed by the list of materials used and the matrix material.
func ExportGrouped(dist *model.Distribution) string {
	groups := make(map[model.MaterialRef][]model.Shape)
	for _, s := range dist.Shapes {
		groups[s.MaterialRef()] = append(groups[s.MaterialRef()], s)
	}

	materials := make([]string, 0, len(groups))
	for m := range groups {
		materials = append(materials, string(m))
	}
	sort.Strings(materials)

	var b strings.Builder
	for _, m := range materials {
		fmt.Fprintf(&b, "Material: %s:\n", m)
		for _, s := range groups[model.MaterialRef(m)] {
			fmt.Fprintf(&b, "\t%s\n", s.ReportLine())
		}
		b.WriteByte('\n')
	}

	b.WriteString("Materials:\n")
	for _, m := range materials {
		fmt.Fprintf(&b, "\t%s\n", m)
	}

	b.WriteString("\nMatrix Material:\n")
	fmt.Fprintf(&b, "\t%s", dist.Matrix)

	return b.String()
}
