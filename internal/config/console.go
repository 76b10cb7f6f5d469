package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Console struct {
	// Color enables the colored domain banner if the terminal supports it.
	Color *bool
}

func (c *Console) setDefaults() {
	c.Color = gosettings.DefaultPointer(c.Color, true)
}

func (c Console) Validate() (err error) {
	return nil
}

func (c Console) String() string {
	return c.toLinesNode().String()
}

func (c Console) toLinesNode() *gotree.Node {
	node := gotree.New("Console")
	node.Appendf("Color: %s", gosettings.BoolToYesNo(c.Color))
	return node
}

func (c *Console) read(reader *reader.Reader) (err error) {
	c.Color, err = reader.BoolPtr("COLOR")
	return err
}
