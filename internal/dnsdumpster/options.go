package dnsdumpster

import (
	"net/url"
	"strconv"
)

// Options are optional parameters of a domain query.
type Options struct {
	// Page is the results page to fetch, and is ignored if zero.
	Page uint
	// Map requests the domain map to be included in the response.
	Map bool
}

func (o Options) values() (values url.Values) {
	values = url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.FormatUint(uint64(o.Page), 10))
	}
	if o.Map {
		values.Set("map", "1")
	}
	return values
}
