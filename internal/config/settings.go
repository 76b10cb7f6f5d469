package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client   Client
	API      API
	Paths    Paths
	Console  Console
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.API.setDefaults()
	c.Paths.setDefaults()
	c.Console.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":   &c.Client,
		"api":      &c.API,
		"paths":    &c.Paths,
		"console":  &c.Console,
		"logger":   &c.Logger,
		"shoutrrr": &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.API.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Console.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	c.API.read(reader)
	c.Paths.read(reader)

	err = c.Console.read(reader)
	if err != nil {
		return fmt.Errorf("reading console settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
