package render

import (
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/arbor/payload"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int                          // maximum width of a line in ‘en’s
	Indent    string                       // indentation per level; defaults to two spaces
	Colors    map[payload.Kind]*color.Color // colors per kind; missing kinds print plain
	Context   *uax11.Context               // context for character widths; defaults to Latin
}

const defaultLineWidth = 65

func (config *Config) normalized() *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = defaultLineWidth
	}
	if c.Indent == "" {
		c.Indent = "  "
	}
	if c.Colors == nil {
		c.Colors = DefaultPalette()
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

// DefaultPalette returns a color per kind, from outer kinds in warm colors to
// inner kinds in cold colors.
func DefaultPalette() map[payload.Kind]*color.Color {
	return map[payload.Kind]*color.Color{
		payload.System:   color.New(color.FgRed, color.Bold),
		payload.Server:   color.New(color.FgRed),
		payload.Project:  color.New(color.FgMagenta),
		payload.Dataset:  color.New(color.FgYellow),
		payload.Database: color.New(color.FgYellow),
		payload.Schema:   color.New(color.FgGreen),
		payload.Table:    color.New(color.FgCyan),
		payload.Column:   color.New(color.FgBlue),
	}
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. The character width
// context is derived from the user's environment.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = defaultLineWidth
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = defaultLineWidth
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("render", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
