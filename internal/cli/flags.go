package cli

import (
	"fmt"

	"github.com/alexanderramin/shiftaudit/internal/config"
	"github.com/spf13/pflag"
)

// outputFormats accepted by --format.
var outputFormats = []string{config.FormatText, config.FormatPlain, config.FormatJSON}

type inputFlags struct {
	sheet string
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.sheet, "sheet", "", "Worksheet to read (xlsx only; defaults to config or the first sheet)")
}

type outputFlags struct {
	format string
	view   bool
}

func (f *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.format, "format", "f", "", fmt.Sprintf("Output format: %q, %q or %q", outputFormats[0], outputFormats[1], outputFormats[2]))
	fs.BoolVar(&f.view, "view", false, "Open the report in a scrollable viewer")
}

func (f *outputFlags) resolve(cfg config.Config) (string, error) {
	format := f.format
	if format == "" {
		format = cfg.Output.Format
	}
	for _, ok := range outputFormats {
		if format == ok {
			return format, nil
		}
	}
	return "", fmt.Errorf("invalid --format %q (expected one of %q)", format, outputFormats)
}
