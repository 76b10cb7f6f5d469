package dnsdumpster

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Logger,Sleeper

type Logger interface {
	Debug(s string)
	Warn(s string)
}

type Sleeper interface {
	Sleep(ctx context.Context, duration time.Duration) (err error)
}
