package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/brewos-io/logotool"
	"github.com/urfave/cli/v2"
)

const (
	defaultInput  = "assets/logo.png"
	defaultOutput = "src/ui/logo_splash.c"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) *logotool.Converter {
	logger := log.New(os.Stdout, "", 0)
	if c.Bool("quiet") {
		logger.SetOutput(io.Discard)
	}
	return logotool.New(logger)
}

// paths resolves the optional INPUT and OUTPUT positional arguments against
// the project-relative defaults.
func paths(c *cli.Context, input, output string) (string, string) {
	cwd, _ := os.Getwd()
	in := filepath.Join(cwd, input)
	out := filepath.Join(cwd, output)
	if c.NArg() > 0 {
		in = c.Args().Get(0)
	}
	if c.NArg() > 1 {
		out = c.Args().Get(1)
	}
	return in, out
}

func options(c *cli.Context) logotool.Options {
	return logotool.Options{
		Size:      c.Int("size"),
		Name:      c.String("name"),
		MaxColors: c.Int("max-colors"),
		Dither:    c.Bool("dither"),
	}
}

func sizeFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "size",
		EnvVars: []string{"BREWLOGO_SIZE"},
		Value:   logotool.DefaultSize,
		Usage:   "target logo resolution in pixels per side",
	}
}

func nameFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "name",
		Value: logotool.DefaultName,
		Usage: "C identifier stem for the generated array and descriptor",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "brewlogo"
	app.Usage = "BrewOS splash-screen logo conversion utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "suppress progress output",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "convert",
			Usage:     "Convert an image to the compressed indexed-color format",
			ArgsUsage: "[INPUT [OUTPUT]]",
			Flags: []cli.Flag{
				sizeFlag(),
				nameFlag(),
				&cli.IntFlag{
					Name:  "max-colors",
					Usage: "requantize to at most this many colors before indexing",
				},
				&cli.BoolFlag{
					Name:  "dither",
					Usage: "apply Floyd-Steinberg dithering while requantizing",
				},
			},
			Action: func(c *cli.Context) error {
				in, out := paths(c, defaultInput, defaultOutput)
				if err := newConverter(c).ConvertIndexed(in, out, options(c)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "rgb565",
			Usage:     "Convert an image to the uncompressed RGB565 format",
			ArgsUsage: "[INPUT [OUTPUT]]",
			Flags:     []cli.Flag{sizeFlag(), nameFlag()},
			Action: func(c *cli.Context) error {
				in, out := paths(c, defaultInput, defaultOutput)
				if err := newConverter(c).ConvertTrueColor(in, out, options(c)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "compress",
			Usage:     "Re-encode a generated RGB565 source file as indexed color",
			ArgsUsage: "[INPUT [OUTPUT]]",
			Flags:     []cli.Flag{sizeFlag(), nameFlag()},
			Action: func(c *cli.Context) error {
				// In-place by default, like the original generated file.
				in, out := paths(c, defaultOutput, defaultOutput)
				if c.NArg() == 1 {
					out = in
				}
				if err := newConverter(c).Compress(in, out, options(c)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "embed",
			Usage:     "Embed a file verbatim as a raw-format logo",
			ArgsUsage: "[INPUT [OUTPUT]]",
			Flags:     []cli.Flag{nameFlag()},
			Action: func(c *cli.Context) error {
				in, out := paths(c, defaultInput, defaultOutput)
				if err := newConverter(c).Embed(in, out, options(c)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
