package dnsdumpster

import "errors"

var (
	ErrAPIKeyNotSet       = errors.New("API key is not set")
	ErrBaseURLNotValid    = errors.New("base URL is not valid")
	ErrHTTPStatusNotValid = errors.New("HTTP status is not valid")
	ErrUnmarshalResponse  = errors.New("cannot unmarshal response")
)
