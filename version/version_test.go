// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		major, minor, patch uint
		pre, build          string
		want                string
	}{
		{1, 2, 3, "", "", "1.2.3"},
		{0, 1, 0, "beta", "", "0.1.0-beta"},
		{0, 1, 0, "", "0a1b2c3d4e5f", "0.1.0+0a1b2c3d4e5f"},
		{0, 1, 0, "rc1", "abc-dirty", "0.1.0-rc1+abc-dirty"},
		{0, 1, 0, "be.ta!", "a+b", "0.1.0-beta+ab"},
		{0, 1, 0, "!!", "++", "0.1.0"},
	}

	for i, test := range tests {
		got := format(test.major, test.minor, test.patch, test.pre,
			test.build)
		require.Equal(t, test.want, got, "#%d", i)
	}
}

func TestCommitMetadata(t *testing.T) {
	const commit = "950b68348261e0b4ff288d216269b8ad2a384411"

	require.Equal(t, "", commitMetadata("", true))
	require.Equal(t, "950b68348261", commitMetadata(commit, false))
	require.Equal(t, "950b68348261-dirty", commitMetadata(commit, true))
	require.Equal(t, "abc", commitMetadata("abc", false))
}

func TestString(t *testing.T) {
	defer func(pre, build string) {
		PreRelease, BuildMetadata = pre, build
	}(PreRelease, BuildMetadata)

	PreRelease, BuildMetadata = "", "ci.42"
	require.Equal(t, "0.1.0+ci.42", String())

	PreRelease, BuildMetadata = "beta", ""
	semver := regexp.MustCompile(`^\d+\.\d+\.\d+-beta(\+[0-9A-Za-z.-]+)?$`)
	require.Regexp(t, semver, String())
}
