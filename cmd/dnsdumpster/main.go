package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/dnsdumpster/internal/config"
	"github.com/qdm12/dnsdumpster/internal/dnsdumpster"
	"github.com/qdm12/dnsdumpster/internal/models"
	"github.com/qdm12/dnsdumpster/internal/persistence"
	"github.com/qdm12/dnsdumpster/internal/recon"
	"github.com/qdm12/dnsdumpster/internal/report"
	"github.com/qdm12/dnsdumpster/internal/shoutrrr"
	"github.com/qdm12/dnsdumpster/internal/sleep"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run := func(ctx context.Context, flags cliFlags) error {
		return _main(ctx, flags, reader, logger, buildInfo, os.Stdout)
	}
	command := newRootCommand(buildInfo, run)
	command.SetArgs(os.Args[1:])

	err := command.ExecuteContext(ctx)
	if err == nil {
		return
	}

	stop()
	logger.Error(err.Error())
	os.Exit(1)
}

func _main(ctx context.Context, flags cliFlags, reader *reader.Reader,
	logger log.LoggerInterface, buildInfo models.BuildInformation,
	stdout io.Writer) (err error) {
	printSplash(stdout, buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	if *config.Paths.OutputDir != "." {
		const outputDirPermission = 0o755
		err = os.MkdirAll(*config.Paths.OutputDir, outputDirPermission)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	shoutrrrClient, err := shoutrrr.New(shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	})
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	httpClient := &http.Client{Timeout: config.Client.Timeout}
	defer httpClient.CloseIdleConnections()

	client, err := dnsdumpster.New(httpClient, config.API.BaseURL, flags.key,
		logger.New(log.SetComponent("dnsdumpster")))
	if err != nil {
		return fmt.Errorf("creating DNSDumpster client: %w", err)
	}

	reporter := report.New(stdout, *config.Console.Color)
	persister := persistence.New(*config.Paths.OutputDir, logger)
	options := dnsdumpster.Options{
		Page: flags.page,
		Map:  flags.includeMap,
	}
	runner := recon.New(client, reporter, persister, shoutrrrClient,
		sleep.New(), logger, options)

	if flags.domain != "" {
		runner.ProcessDomain(ctx, flags.domain)
		return nil
	}
	return runner.ProcessFile(ctx, flags.file)
}

func printSplash(writer io.Writer, buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:          "qdm12",
		Repository:    "dnsdumpster",
		Emails:        []string{"quentin.mcgaw@gmail.com"},
		Version:       buildInfo.Version,
		Commit:        buildInfo.Commit,
		BuildDate:     buildInfo.Date,
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(writer, line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Debug(config.String())

	return config, nil
}
