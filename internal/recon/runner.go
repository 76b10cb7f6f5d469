// Package recon fetches, reports and saves the records of domains,
// one domain at a time.
package recon

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/qdm12/dnsdumpster/internal/dnsdumpster"
)

// DomainsPause is the time waited between two domains of a batch,
// to respect the API rate limit.
const DomainsPause = 2 * time.Second

type Runner struct {
	fetcher   Fetcher
	reporter  Reporter
	persister Persister
	notifier  Notifier
	sleeper   Sleeper
	logger    Logger
	options   dnsdumpster.Options
	pause     time.Duration
}

func New(fetcher Fetcher, reporter Reporter, persister Persister,
	notifier Notifier, sleeper Sleeper, logger Logger,
	options dnsdumpster.Options) *Runner {
	return &Runner{
		fetcher:   fetcher,
		reporter:  reporter,
		persister: persister,
		notifier:  notifier,
		sleeper:   sleeper,
		logger:    logger,
		options:   options,
		pause:     DomainsPause,
	}
}

// ProcessDomain fetches the records of the domain, reports them and,
// if any data was received, saves them. It returns false if the
// records could not be fetched.
func (r *Runner) ProcessDomain(ctx context.Context, domain string) (ok bool) {
	record, err := r.fetcher.GetDomain(ctx, domain, r.options)
	if err != nil {
		message := "Error while requesting " + domain + ": " + err.Error()
		r.logger.Error(message)
		r.notifier.Notify(message)
		r.reporter.Report(domain, nil)
		return false
	}

	r.reporter.Report(domain, &record)
	if !record.Empty {
		r.persister.Save(domain, record)
	}
	return true
}

// ProcessFile processes each domain listed in the file at path, pausing
// between consecutive domains. It returns an error wrapping
// ErrFileNotFound without fetching anything if the file does not exist.
func (r *Runner) ProcessFile(ctx context.Context, path string) (err error) {
	domains, err := ReadDomains(path)
	if err != nil {
		return err
	}

	r.logger.Info("Found " + strconv.Itoa(len(domains)) + " domains in " + path)

	failed := 0
	for i, domain := range domains {
		if i > 0 {
			err = r.sleeper.Sleep(ctx, r.pause)
			if err != nil {
				return fmt.Errorf("pausing between domains: %w", err)
			}
		}

		if !r.ProcessDomain(ctx, domain) {
			failed++
		}
	}

	r.notifier.Notify(fmt.Sprintf("Processed %d domains from %s, %d failed",
		len(domains), path, failed))
	return nil
}
