// Package persistence saves domain records to files.
package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/qdm12/dnsdumpster/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Logger

type Logger interface {
	Info(s string)
	Error(s string)
}

const filePermission fs.FileMode = 0o644

type Persister struct {
	outputDir string
	logger    Logger
}

func New(outputDir string, logger Logger) *Persister {
	return &Persister{
		outputDir: outputDir,
		logger:    logger,
	}
}

// Save writes the full record to {domain}.json and the host to IP
// address pairs of its A records to short_{domain}.txt.
// Each file is written independently of the other, and
// errors are logged instead of being returned.
func (p *Persister) Save(domain string, record models.Record) {
	jsonPath := filepath.Join(p.outputDir, domain+".json")
	err := writeJSON(jsonPath, record)
	if err != nil {
		p.logger.Error("Error saving " + jsonPath + ": " + err.Error())
	} else {
		p.logger.Info("Full results saved to: " + jsonPath)
	}

	shortPath := filepath.Join(p.outputDir, "short_"+domain+".txt")
	err = os.WriteFile(shortPath, shortText(domain, record), filePermission)
	if err != nil {
		p.logger.Error("Error saving " + shortPath + ": " + err.Error())
	} else {
		p.logger.Info("Short results saved to: " + shortPath)
	}
}

func writeJSON(path string, record models.Record) (err error) {
	data, err := fullJSON(record)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, filePermission)
}

// fullJSON returns the raw response indented with two spaces, or the
// decoded record if the raw response is not available.
func fullJSON(record models.Record) (data []byte, err error) {
	if len(record.Raw) == 0 {
		data, err = json.MarshalIndent(record, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding record: %w", err)
		}
		return data, nil
	}

	buffer := bytes.NewBuffer(nil)
	err = json.Indent(buffer, record.Raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("indenting JSON: %w", err)
	}
	return buffer.Bytes(), nil
}

func shortText(domain string, record models.Record) (data []byte) {
	builder := strings.Builder{}
	for _, entry := range record.A {
		host := entry.HostOr(domain)
		for _, ipInfo := range entry.IPs {
			builder.WriteString(host + " : " + ipInfo.IP + "\n")
		}
	}
	return []byte(builder.String())
}
