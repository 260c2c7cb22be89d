/*
Package logotool converts the BrewOS logo artwork into statically compiled
LVGL image data for the firmware splash screen.
*/
package logotool

import "log"

// DefaultSize is the splash-screen logo resolution in pixels per side.
const DefaultSize = 180

// DefaultName is the C identifier stem used in the generated source.
const DefaultName = "logo_splash"

// Converter runs the one-shot conversion pipelines.
type Converter struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
	}
}

// Options controls a conversion run.
type Options struct {
	Size      int    // target resolution, DefaultSize when zero
	Name      string // C identifier stem, DefaultName when empty
	MaxColors int    // when non-zero, requantize to at most this many colors
	Dither    bool   // apply Floyd-Steinberg dithering while requantizing
}

func (o Options) withDefaults() Options {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	return o
}
