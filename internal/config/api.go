package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type API struct {
	BaseURL string
}

func (a *API) setDefaults() {
	a.BaseURL = gosettings.DefaultComparable(a.BaseURL, "https://api.dnsdumpster.com")
}

var ErrBaseURLNotValid = errors.New("base URL is not valid")

func (a API) Validate() (err error) {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBaseURLNotValid, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%w: scheme %q must be http or https",
			ErrBaseURLNotValid, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%w: host is empty in %s", ErrBaseURLNotValid, a.BaseURL)
	}

	return nil
}

func (a API) String() string {
	return a.toLinesNode().String()
}

func (a API) toLinesNode() *gotree.Node {
	node := gotree.New("DNSDumpster API")
	node.Appendf("Base URL: %s", a.BaseURL)
	return node
}

func (a *API) read(r *reader.Reader) {
	a.BaseURL = r.String("DNSDUMPSTER_BASE_URL", reader.ForceLowercase(false))
}
