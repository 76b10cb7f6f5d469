package recon

import (
	"context"
	"time"

	"github.com/qdm12/dnsdumpster/internal/dnsdumpster"
	"github.com/qdm12/dnsdumpster/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Fetcher,Reporter,Persister,Notifier,Sleeper,Logger

type Fetcher interface {
	GetDomain(ctx context.Context, domain string,
		options dnsdumpster.Options) (record models.Record, err error)
}

type Reporter interface {
	Report(domain string, record *models.Record)
}

type Persister interface {
	Save(domain string, record models.Record)
}

type Notifier interface {
	Notify(message string)
}

type Sleeper interface {
	Sleep(ctx context.Context, duration time.Duration) (err error)
}

type Logger interface {
	Info(s string)
	Error(s string)
}
