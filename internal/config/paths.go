package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	// OutputDir is the directory where result files are written.
	// It is created if it does not exist.
	OutputDir *string
}

func (p *Paths) setDefaults() {
	p.OutputDir = gosettings.DefaultPointer(p.OutputDir, ".")
}

var ErrOutputDirNotDirectory = errors.New("output path is not a directory")

func (p Paths) Validate() (err error) {
	info, err := os.Stat(*p.OutputDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("checking output directory: %w", err)
	case !info.IsDir():
		return fmt.Errorf("%w: %s", ErrOutputDirNotDirectory, *p.OutputDir)
	}
	return nil
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Output directory: %s", *p.OutputDir)
	return node
}

func (p *Paths) read(r *reader.Reader) {
	p.OutputDir = r.Get("OUTPUT_DIR", reader.ForceLowercase(false))
}
