package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildInformation_VersionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		buildInfo BuildInformation
		version   string
	}{
		"release": {
			buildInfo: BuildInformation{Version: "v1.2.0", Commit: "0123456789"},
			version:   "v1.2.0",
		},
		"latest_with_commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "0123456789"},
			version:   "latest-0123456",
		},
		"latest_without_commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: ""},
			version:   "latest",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			version := testCase.buildInfo.VersionString()

			assert.Equal(t, testCase.version, version)
		})
	}
}
