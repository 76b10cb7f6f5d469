package main

import (
	"context"

	"github.com/qdm12/dnsdumpster/internal/models"
	"github.com/spf13/cobra"
)

type cliFlags struct {
	key        string
	domain     string
	file       string
	page       uint
	includeMap bool
}

func newRootCommand(buildInfo models.BuildInformation,
	run func(ctx context.Context, flags cliFlags) error) *cobra.Command {
	var flags cliFlags

	command := &cobra.Command{
		Use:           "dnsdumpster -k API_KEY (-d DOMAIN | -f FILE)",
		Short:         "Query the DNSDumpster API for domain information",
		Version:       buildInfo.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags)
		},
	}

	commandFlags := command.Flags()
	commandFlags.StringVarP(&flags.key, "key", "k", "", "DNSDumpster API key")
	commandFlags.StringVarP(&flags.domain, "domain", "d", "", "Single domain to search")
	commandFlags.StringVarP(&flags.file, "file", "f", "", "File with list of domains")
	commandFlags.UintVar(&flags.page, "page", 0, "Results page to fetch for each domain")
	commandFlags.BoolVar(&flags.includeMap, "map", false, "Include the domain map in results")

	_ = command.MarkFlagRequired("key")
	command.MarkFlagsMutuallyExclusive("domain", "file")
	command.MarkFlagsOneRequired("domain", "file")

	return command
}
