// Package report prints a summary of the DNS records of a domain.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/qdm12/dnsdumpster/internal/models"
)

type Reporter struct {
	writer io.Writer
	banner *color.Color
}

// New creates a reporter writing to the writer given.
// If colored is false, the banner is never colored, otherwise
// it is colored only if the terminal supports it.
func New(writer io.Writer, colored bool) *Reporter {
	banner := color.New(color.FgCyan, color.Bold)
	if !colored {
		banner.DisableColor()
	}
	return &Reporter{
		writer: writer,
		banner: banner,
	}
}

// Report prints the A, NS and TXT records of the record given.
// A nil record prints a no data notice instead.
func (r *Reporter) Report(domain string, record *models.Record) {
	fmt.Fprintln(r.writer)
	r.banner.Fprintf(r.writer, "======= %s =======", strings.ToUpper(domain))
	fmt.Fprintln(r.writer)

	if record == nil || record.Empty {
		fmt.Fprintln(r.writer, "No data to display.")
		return
	}

	fmt.Fprint(r.writer, "\nA records:\n")
	for _, entry := range record.A {
		host := entry.HostOr("")
		for _, ipInfo := range entry.IPs {
			fmt.Fprintf(r.writer, "  - Host: %s, IP: %s, ASN: %s, Country: %s\n",
				host, ipInfo.IP, ipInfo.ASNName, ipInfo.Country)
		}
	}

	fmt.Fprint(r.writer, "\nNS records:\n")
	for _, entry := range record.NS {
		host := entry.HostOr("")
		for _, ipInfo := range entry.IPs {
			fmt.Fprintf(r.writer, "  - Host: %s, IP: %s, Country: %s\n",
				host, ipInfo.IP, ipInfo.Country)
		}
	}

	fmt.Fprint(r.writer, "\nTXT records:\n")
	for _, txt := range record.TXT {
		fmt.Fprintf(r.writer, "  - %s\n", txt)
	}
}
