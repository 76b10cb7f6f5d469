package models

import (
	"encoding/json"
	"fmt"
)

// Record is the domain information returned by the DNSDumpster API.
// Any of the A, NS and TXT sections may be absent from the response.
type Record struct {
	A   []HostEntry `json:"a"`
	NS  []HostEntry `json:"ns"`
	TXT []string    `json:"txt"`
	// Raw is the response body exactly as received, including keys
	// not decoded into the fields above.
	Raw json.RawMessage `json:"-"`
	// Empty is true if the response is null or an empty JSON object.
	Empty bool `json:"-"`
}

type HostEntry struct {
	// Host is nil if the key is missing from the entry.
	Host *string  `json:"host"`
	IPs  []IPInfo `json:"ips"`
}

// HostOr returns the host of the entry, or the fallback
// if the entry has no host key.
func (h HostEntry) HostOr(fallback string) string {
	if h.Host == nil {
		return fallback
	}
	return *h.Host
}

type IPInfo struct {
	IP      string `json:"ip"`
	ASNName string `json:"asn_name"`
	Country string `json:"country"`
}

// ParseRecord decodes data into a Record, keeping a copy of data as the raw body.
func ParseRecord(data []byte) (record Record, err error) {
	var keys map[string]json.RawMessage
	err = json.Unmarshal(data, &keys)
	if err != nil {
		return Record{}, fmt.Errorf("decoding JSON object: %w", err)
	}

	err = json.Unmarshal(data, &record)
	if err != nil {
		return Record{}, fmt.Errorf("decoding records: %w", err)
	}

	record.Raw = append(json.RawMessage(nil), data...)
	record.Empty = len(keys) == 0
	return record, nil
}
