package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportChart(t *testing.T) {
	dist := circleDist(t)
	path := filepath.Join(t.TempDir(), "out.html")

	require.NoError(t, ExportChart(path, dist))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "<html")
	assert.Contains(t, content, "echarts")
	assert.Contains(t, content, dist.ID)
}
