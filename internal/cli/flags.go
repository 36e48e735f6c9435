package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/config"
	"github.com/alexanderramin/horizon/internal/importer"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*viewModeValue)(nil)
	_ pflag.Value = (*sourceValue)(nil)
	_ pflag.Value = (*formatValue)(nil)
)

// viewModeValue is a pflag.Value accepting only known overview layouts.
type viewModeValue config.ViewMode

func (v *viewModeValue) String() string { return string(*v) }
func (v *viewModeValue) Type() string   { return "mode" }

func (v *viewModeValue) Set(s string) error {
	mode := config.ViewMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.Valid() {
		return fmt.Errorf("must be %q or %q", config.ViewExecutive, config.ViewDetailed)
	}
	*v = viewModeValue(mode)
	return nil
}

// sourceValue is a pflag.Value accepting only known snapshot sources.
type sourceValue config.Source

func (v *sourceValue) String() string { return string(*v) }
func (v *sourceValue) Type() string   { return "source" }

func (v *sourceValue) Set(s string) error {
	src := config.Source(strings.ToLower(strings.TrimSpace(s)))
	if !src.Valid() {
		return fmt.Errorf("must be one of %q, %q or %q", config.SourceFixture, config.SourceFile, config.SourceSQLite)
	}
	*v = sourceValue(src)
	return nil
}

// formatValue is a pflag.Value for snapshot file encodings.
type formatValue importer.Format

func (v *formatValue) String() string { return string(*v) }
func (v *formatValue) Type() string   { return "format" }

func (v *formatValue) Set(s string) error {
	f, err := importer.ParseFormat(s)
	if err != nil {
		return err
	}
	*v = formatValue(f)
	return nil
}
