package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/deckforge/deckforge/pkg/errors"
)

const converterBinary = "rsvg-convert"

// ToPDF rasterizes an SVG slide into a single-page PDF. Conversion runs
// through librsvg's rsvg-convert binary, which must be on PATH.
func ToPDF(svg []byte) ([]byte, error) {
	return convertSVG(svg, "pdf")
}

// ToPNG rasterizes an SVG slide into a PNG at the given zoom factor.
// A scale of 2.0 doubles the canvas resolution for retina exports.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convertSVG(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// convertSVG pipes the SVG through rsvg-convert and captures the target
// format from stdout.
func convertSVG(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(converterBinary); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export needs librsvg (brew install librsvg / apt install librsvg2-bin)", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command(converterBinary, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s conversion failed: %s", converterBinary, bytes.TrimSpace(stderr.Bytes()))
	}
	return out.Bytes(), nil
}
