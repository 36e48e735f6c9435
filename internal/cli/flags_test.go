package cli

import (
	"testing"

	"github.com/alexanderramin/horizon/internal/config"
	"github.com/alexanderramin/horizon/internal/importer"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagValues_Parse(t *testing.T) {
	var (
		view   viewModeValue
		source sourceValue
		format formatValue
	)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&view, "view", "")
	fs.Var(&source, "source", "")
	fs.Var(&format, "format", "")

	require.NoError(t, fs.Parse([]string{"--view", " Detailed", "--source", "SQLITE", "--format", "yml"}))
	assert.Equal(t, config.ViewDetailed, config.ViewMode(view))
	assert.Equal(t, config.SourceSQLite, config.Source(source))
	assert.Equal(t, importer.FormatYAML, importer.Format(format))
	assert.Equal(t, "mode", fs.Lookup("view").Value.Type())
}

func TestFlagValues_Reject(t *testing.T) {
	var view viewModeValue
	assert.Error(t, view.Set("compact"))
	assert.Empty(t, view.String())

	var source sourceValue
	assert.Error(t, source.Set("s3"))

	var format formatValue
	assert.Error(t, format.Set("xml"))
}
