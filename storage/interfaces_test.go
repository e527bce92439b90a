package storage

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFSType_String(t *testing.T) {
	tests := []struct {
		fsType FSType
		want   string
	}{
		{FSTypeUnknown, "unknown"},
		{FSTypeLocal, "local"},
		{FSTypeMemory, "memory"},
		{FSType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.fsType.String())
		})
	}
}

func TestErrors_MatchStdlib(t *testing.T) {
	require.ErrorIs(t, ErrNotExist, fs.ErrNotExist)
	require.ErrorIs(t, ErrExist, fs.ErrExist)
	require.ErrorIs(t, ErrPermission, fs.ErrPermission)
	require.EqualError(t, ErrUnsupported, "operation not supported")
}
