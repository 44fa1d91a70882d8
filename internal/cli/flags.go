package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/colournodes/internal/colour"
)

// modeValue is a pflag.Value that only accepts classification modes.
type modeValue struct {
	mode colour.Mode
}

var _ pflag.Value = (*modeValue)(nil)

func (m *modeValue) String() string { return string(m.mode) }

func (m *modeValue) Set(s string) error {
	mode, err := colour.ParseMode(s)
	if err != nil {
		return err
	}
	m.mode = mode
	return nil
}

func (m *modeValue) Type() string { return "mode" }

// Output formats.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatTable = "table"
)

// formatValue is a pflag.Value restricted to a fixed set of output formats.
type formatValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(allowed ...string) *formatValue {
	return &formatValue{value: allowed[0], allowed: allowed}
}

func (f *formatValue) String() string { return f.value }

func (f *formatValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(f.allowed, s) {
		return fmt.Errorf("unsupported format %q (supported: %s)", s, strings.Join(f.allowed, ", "))
	}
	f.value = s
	return nil
}

func (f *formatValue) Type() string { return "format" }

func (f *formatValue) usage() string {
	return "output format (" + strings.Join(f.allowed, ", ") + ")"
}

// addFormatFlag registers -f/--format on flags and returns its value.
func addFormatFlag(flags *pflag.FlagSet, allowed ...string) *formatValue {
	v := newFormatValue(allowed...)
	flags.VarP(v, "format", "f", v.usage())
	return v
}

// addModeFlag registers -m/--mode on flags.
func addModeFlag(flags *pflag.FlagSet, v *modeValue) {
	flags.VarP(v, "mode", "m", "classification mode (basic, extended)")
}

// boolOverride returns the flag value when it was set on the command line, else def.
func boolOverride(flags *pflag.FlagSet, name string, def bool) bool {
	if !flags.Changed(name) {
		return def
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return def
	}
	return v
}
