package linker_test

import (
	"testing"

	"github.com/arthur-debert/dolink/pkg/errors"
	"github.com/arthur-debert/dolink/pkg/linker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMapping(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantSrc string
		wantDst string
	}{
		{name: "simple", raw: "./a.txt:./b.txt", wantSrc: "./a.txt", wantDst: "./b.txt"},
		{name: "home_destination", raw: "zsh/zshrc:~/.zshrc", wantSrc: "zsh/zshrc", wantDst: "~/.zshrc"},
		{name: "first_separator_only", raw: "a:b:c", wantSrc: "a", wantDst: "b:c"},
		{name: "empty_source", raw: ":b", wantSrc: "", wantDst: "b"},
		{name: "empty_destination", raw: "a:", wantSrc: "a", wantDst: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst, err := linker.SplitMapping(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSrc, src)
			assert.Equal(t, tt.wantDst, dst)
		})
	}
}

func TestSplitMapping_NoSeparator(t *testing.T) {
	for _, raw := range []string{"", "a.txt", "./a.txt->./b.txt"} {
		_, _, err := linker.SplitMapping(raw)
		require.Error(t, err, "mapping %q", raw)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileMapping))
		assert.Equal(t, raw, errors.GetErrorDetails(err)["mapping"])
	}
}
