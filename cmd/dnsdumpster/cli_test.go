package main

import (
	"context"
	"testing"

	"github.com/qdm12/dnsdumpster/internal/models"
	"github.com/stretchr/testify/assert"
)

func Test_newRootCommand(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		args       []string
		runCalled  bool
		flags      cliFlags
		errMessage string
	}{
		"single_domain": {
			args:      []string{"-k", "secret", "-d", "example.com"},
			runCalled: true,
			flags:     cliFlags{key: "secret", domain: "example.com"},
		},
		"file_long_flags": {
			args:      []string{"--key", "secret", "--file", "domains.txt"},
			runCalled: true,
			flags:     cliFlags{key: "secret", file: "domains.txt"},
		},
		"page_and_map": {
			args:      []string{"-k", "secret", "-d", "example.com", "--page", "2", "--map"},
			runCalled: true,
			flags: cliFlags{
				key:        "secret",
				domain:     "example.com",
				page:       2,
				includeMap: true,
			},
		},
		"domain_and_file": {
			args: []string{"-k", "secret", "-d", "example.com", "-f", "domains.txt"},
			errMessage: "if any flags in the group [domain file] are set " +
				"none of the others can be; [domain file] were all set",
		},
		"neither_domain_nor_file": {
			args:       []string{"-k", "secret"},
			errMessage: "at least one of the flags in the group [domain file] is required",
		},
		"key_missing": {
			args:       []string{"-d", "example.com"},
			errMessage: `required flag(s) "key" not set`,
		},
		"positional_argument": {
			args:       []string{"-k", "secret", "-d", "example.com", "extra"},
			errMessage: `unknown command "extra" for "dnsdumpster"`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var runCalled bool
			var flags cliFlags
			run := func(_ context.Context, f cliFlags) error {
				runCalled = true
				flags = f
				return nil
			}
			command := newRootCommand(models.BuildInformation{}, run)
			command.SetArgs(testCase.args)

			err := command.ExecuteContext(context.Background())

			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.runCalled, runCalled)
			assert.Equal(t, testCase.flags, flags)
		})
	}
}
