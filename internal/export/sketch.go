package export

import (
	"strings"

	"github.com/piwi3910/rvegen/internal/model"
)

// SketchScript concatenates the FEA sketch command sequences of every shape
// in placement order, one command per line with a blank line between
// shapes. The commands themselves come from the shapes; this function only
// assembles the script.
func SketchScript(dist *model.Distribution) string {
	var blocks []string
	for _, s := range dist.Shapes {
		commands := s.SketchCommands()
		if len(commands) == 0 {
			continue
		}
		blocks = append(blocks, strings.Join(commands, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
