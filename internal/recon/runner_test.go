package recon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/dnsdumpster/internal/dnsdumpster"
	"github.com/qdm12/dnsdumpster/internal/models"
	"github.com/qdm12/dnsdumpster/internal/recon/mock_recon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mocks struct {
	fetcher   *mock_recon.MockFetcher
	reporter  *mock_recon.MockReporter
	persister *mock_recon.MockPersister
	notifier  *mock_recon.MockNotifier
	sleeper   *mock_recon.MockSleeper
	logger    *mock_recon.MockLogger
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		fetcher:   mock_recon.NewMockFetcher(ctrl),
		reporter:  mock_recon.NewMockReporter(ctrl),
		persister: mock_recon.NewMockPersister(ctrl),
		notifier:  mock_recon.NewMockNotifier(ctrl),
		sleeper:   mock_recon.NewMockSleeper(ctrl),
		logger:    mock_recon.NewMockLogger(ctrl),
	}
}

func (m mocks) runner(options dnsdumpster.Options) *Runner {
	return New(m.fetcher, m.reporter, m.persister, m.notifier,
		m.sleeper, m.logger, options)
}

func writeDomainsFile(t *testing.T, content string) (path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "domains.txt")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func makeRecord(host string) models.Record {
	return models.Record{
		A: []models.HostEntry{{
			Host: &host,
			IPs:  []models.IPInfo{{IP: "1.2.3.4"}},
		}},
		Raw: []byte(`{"a":[{"host":"` + host + `","ips":[{"ip":"1.2.3.4"}]}]}`),
	}
}

func Test_Runner_ProcessDomain(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		ctx := context.Background()
		m := newMocks(ctrl)
		options := dnsdumpster.Options{Page: 2, Map: true}
		record := makeRecord("www.example.com")

		gomock.InOrder(
			m.fetcher.EXPECT().GetDomain(ctx, "example.com", options).Return(record, nil),
			m.reporter.EXPECT().Report("example.com", &record),
			m.persister.EXPECT().Save("example.com", record),
		)

		ok := m.runner(options).ProcessDomain(ctx, "example.com")

		assert.True(t, ok)
	})

	t.Run("fetch_error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		ctx := context.Background()
		m := newMocks(ctrl)

		const message = "Error while requesting example.com: test error"
		gomock.InOrder(
			m.fetcher.EXPECT().GetDomain(ctx, "example.com", dnsdumpster.Options{}).
				Return(models.Record{}, errTest),
			m.logger.EXPECT().Error(message),
			m.notifier.EXPECT().Notify(message),
			m.reporter.EXPECT().Report("example.com", nil),
		)

		ok := m.runner(dnsdumpster.Options{}).ProcessDomain(ctx, "example.com")

		assert.False(t, ok)
	})

	t.Run("empty_record", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		ctx := context.Background()
		m := newMocks(ctrl)
		record := models.Record{Raw: []byte(`{}`), Empty: true}

		gomock.InOrder(
			m.fetcher.EXPECT().GetDomain(ctx, "example.com", dnsdumpster.Options{}).
				Return(record, nil),
			m.reporter.EXPECT().Report("example.com", &record),
		)

		ok := m.runner(dnsdumpster.Options{}).ProcessDomain(ctx, "example.com")

		assert.True(t, ok)
	})
}

func Test_Runner_ProcessFile(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	t.Run("three_domains", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		ctx := context.Background()
		m := newMocks(ctrl)
		path := writeDomainsFile(t, "a.com\n\n  b.com  \n\t\nc.com")

		calls := []*gomock.Call{
			m.logger.EXPECT().Info("Found 3 domains in " + path),
		}
		for i, domain := range []string{"a.com", "b.com", "c.com"} {
			if i > 0 {
				calls = append(calls, m.sleeper.EXPECT().Sleep(ctx, DomainsPause).Return(nil))
			}
			record := makeRecord("www." + domain)
			calls = append(calls,
				m.fetcher.EXPECT().GetDomain(ctx, domain, dnsdumpster.Options{}).Return(record, nil),
				m.reporter.EXPECT().Report(domain, &record),
				m.persister.EXPECT().Save(domain, record),
			)
		}
		calls = append(calls,
			m.notifier.EXPECT().Notify("Processed 3 domains from "+path+", 0 failed"))
		gomock.InOrder(calls...)

		err := m.runner(dnsdumpster.Options{}).ProcessFile(ctx, path)

		assert.NoError(t, err)
	})

	t.Run("failed_domain_does_not_stop_batch", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		ctx := context.Background()
		m := newMocks(ctrl)
		path := writeDomainsFile(t, "bad.com\ngood.com\n")
		record := makeRecord("www.good.com")

		const message = "Error while requesting bad.com: test error"
		gomock.InOrder(
			m.logger.EXPECT().Info("Found 2 domains in "+path),
			m.fetcher.EXPECT().GetDomain(ctx, "bad.com", dnsdumpster.Options{}).
				Return(models.Record{}, errTest),
			m.logger.EXPECT().Error(message),
			m.notifier.EXPECT().Notify(message),
			m.reporter.EXPECT().Report("bad.com", nil),
			m.sleeper.EXPECT().Sleep(ctx, DomainsPause).Return(nil),
			m.fetcher.EXPECT().GetDomain(ctx, "good.com", dnsdumpster.Options{}).Return(record, nil),
			m.reporter.EXPECT().Report("good.com", &record),
			m.persister.EXPECT().Save("good.com", record),
			m.notifier.EXPECT().Notify("Processed 2 domains from "+path+", 1 failed"),
		)

		err := m.runner(dnsdumpster.Options{}).ProcessFile(ctx, path)

		assert.NoError(t, err)
	})

	t.Run("file_not_found", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		m := newMocks(ctrl)
		path := filepath.Join(t.TempDir(), "missing.txt")

		err := m.runner(dnsdumpster.Options{}).ProcessFile(context.Background(), path)

		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.EqualError(t, err, "file not found: "+path)
	})

	t.Run("canceled_during_pause", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		ctx := context.Background()
		m := newMocks(ctrl)
		path := writeDomainsFile(t, "a.com\nb.com\n")
		record := makeRecord("www.a.com")

		gomock.InOrder(
			m.logger.EXPECT().Info("Found 2 domains in "+path),
			m.fetcher.EXPECT().GetDomain(ctx, "a.com", dnsdumpster.Options{}).Return(record, nil),
			m.reporter.EXPECT().Report("a.com", &record),
			m.persister.EXPECT().Save("a.com", record),
			m.sleeper.EXPECT().Sleep(ctx, DomainsPause).Return(context.Canceled),
		)

		err := m.runner(dnsdumpster.Options{}).ProcessFile(ctx, path)

		assert.ErrorIs(t, err, context.Canceled)
		assert.EqualError(t, err, "pausing between domains: context canceled")
	})
}

func Test_ReadDomains(t *testing.T) {
	t.Parallel()

	t.Run("trimmed_non_empty_lines", func(t *testing.T) {
		t.Parallel()
		path := writeDomainsFile(t, "\n example.com\r\n\n   \nexample.org\t\n")

		domains, err := ReadDomains(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com", "example.org"}, domains)
	})

	t.Run("empty_file", func(t *testing.T) {
		t.Parallel()
		path := writeDomainsFile(t, "")

		domains, err := ReadDomains(path)

		require.NoError(t, err)
		assert.Empty(t, domains)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		path := t.TempDir()

		domains, err := ReadDomains(path)

		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.Nil(t, domains)
	})
}
