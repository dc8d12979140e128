package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Gjacquenot/SierpinskiCurve/curve"
)

// WriteLevels renders every level of c in every requested format, one file
// per level per format, named {base}_{level}.{format} inside dir. The
// directory is created if missing. Returns the written paths in level
// order (all formats of level 1, then level 2, …).
//
// Errors wrap the failing path; a failure leaves earlier files in place.
func WriteLevels(dir, base string, c *curve.Curve, formats []Format, opts Options) ([]string, error) {
	for _, f := range formats {
		if f != SVG && f != PNG {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create %s: %w", dir, err)
	}

	written := make([]string, 0, c.MaxLevel()*len(formats))
	for n := 1; n <= c.MaxLevel(); n++ {
		lv, err := c.Level(n)
		if err != nil {
			return written, err
		}
		for _, f := range formats {
			path := filepath.Join(dir, fmt.Sprintf("%s_%d.%s", base, n, f))
			if err := writeFile(path, f, lv, opts); err != nil {
				return written, err
			}
			written = append(written, path)
		}
	}

	return written, nil
}

// writeFile encodes one level into one artifact.
func writeFile(path string, f Format, lv *curve.Level, opts Options) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer out.Close()

	switch f {
	case SVG:
		err = WriteSVG(out, lv, opts)
	case PNG:
		err = WritePNG(out, lv, opts)
	}
	if err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}

	return nil
}
