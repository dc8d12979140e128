// Command steinhaus generates a Sierpiński–Peano/Steinhaus space-filling
// curve from a seed pattern and writes one image per recursion level.
//
// Usage:
//
//	steinhaus --level 6 --out out --format svg,png
//	steinhaus --px=-0.5,-0.5,-0.75 --py=0,0.25,0.5 --level 4
//	steinhaus --config run.yaml --color --grid
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ttacon/chalk"
	"github.com/urfave/cli"

	"github.com/Gjacquenot/SierpinskiCurve/curve"
	"github.com/Gjacquenot/SierpinskiCurve/render"
)

func check(err error, msg string) {
	if err != nil {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Fatalln(err)
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "steinhaus"
	app.Usage = "generate a space-filling curve from a user defined seed pattern"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "px", Usage: "comma-separated X coordinates of the seed pattern"},
		cli.StringFlag{Name: "py", Usage: "comma-separated Y coordinates of the seed pattern"},
		cli.IntFlag{Name: "level", Value: 6, Usage: "number of recursion levels"},
		cli.StringFlag{Name: "out", Value: ".", Usage: "output directory"},
		cli.StringFlag{Name: "format", Value: "svg,png", Usage: "output formats: svg, png, or both"},
		cli.StringFlag{Name: "config", Usage: "YAML file with px, py and level"},
		cli.BoolFlag{Name: "grid", Usage: "draw a background grid"},
		cli.BoolFlag{Name: "color", Usage: "cycle polyline colors instead of black"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		check(err, "steinhaus failed")
	}
}

func run(c *cli.Context) error {
	opts := curve.DefaultOptions()
	opts.MaxLevel = c.Int("level")

	if path := c.String("config"); path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			return err
		}
		if len(cfg.PX) > 0 || len(cfg.PY) > 0 {
			opts.SeedX, opts.SeedY = cfg.PX, cfg.PY
		}
		if cfg.Level > 0 {
			opts.MaxLevel = cfg.Level
		}
	}

	// Flags override the config file.
	px, py := c.String("px"), c.String("py")
	if px != "" || py != "" {
		xs, err := parseFloats(px)
		if err != nil {
			return fmt.Errorf("--px: %w", err)
		}
		ys, err := parseFloats(py)
		if err != nil {
			return fmt.Errorf("--py: %w", err)
		}
		if len(xs) != len(ys) {
			return fmt.Errorf("--px and --py must have the same number of elements, got %d and %d", len(xs), len(ys))
		}
		opts.SeedX, opts.SeedY = xs, ys
	}

	formats, err := parseFormats(c.String("format"))
	if err != nil {
		return err
	}

	crv, err := curve.New(opts)
	if err != nil {
		return err
	}

	ropts := render.DefaultOptions()
	ropts.Grid = c.Bool("grid")
	ropts.ColorCycle = c.Bool("color")

	paths, err := render.WriteLevels(c.String("out"), "Steinhaus", crv, formats, ropts)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.Println("wrote", p)
	}
	fmt.Println(chalk.Green.Color(fmt.Sprintf("done: %d levels, %d files", crv.MaxLevel(), len(paths))))

	return nil
}

// parseFloats splits a comma-separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// parseFormats maps the --format flag onto renderer formats.
func parseFormats(s string) ([]render.Format, error) {
	parts := strings.Split(s, ",")
	out := make([]render.Format, 0, len(parts))
	for _, part := range parts {
		f, err := render.ParseFormat(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", render.ErrUnknownFormat, part)
		}
		out = append(out, f)
	}

	return out, nil
}
