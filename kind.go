package steward

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/steward/errors"
)

// Kind classifies a filesystem entry.
type Kind int

const (
	// KindUnknown is an entry whose mode matches no other kind.
	KindUnknown Kind = iota
	// KindBlockDevice is a block device.
	KindBlockDevice
	// KindCharDevice is a character device.
	KindCharDevice
	// KindDirectory is a directory.
	KindDirectory
	// KindFIFO is a named pipe.
	KindFIFO
	// KindFile is a regular file.
	KindFile
	// KindSocket is a Unix domain socket.
	KindSocket
	// KindSymlink is a symbolic link.
	KindSymlink
)

var kindNames = map[Kind]string{
	KindUnknown:     "unknown",
	KindBlockDevice: "block-device",
	KindCharDevice:  "char-device",
	KindDirectory:   "directory",
	KindFIFO:        "fifo",
	KindFile:        "file",
	KindSocket:      "socket",
	KindSymlink:     "symlink",
}

// KindOf classifies an entry from its lstat mode. The kinds are mutually
// exclusive; a symbolic link is always KindSymlink regardless of its target.
func KindOf(mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeNamedPipe != 0:
		return KindFIFO
	case mode&fs.ModeSocket != 0:
		return KindSocket
	case mode&fs.ModeCharDevice != 0:
		return KindCharDevice
	case mode&fs.ModeDevice != 0:
		return KindBlockDevice
	case mode.IsRegular():
		return KindFile
	default:
		return KindUnknown
	}
}

// String returns the kind's name, e.g. "directory" or "char-device".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind returns the kind with the given name. "dir" is accepted as an
// alias for "directory".
func ParseKind(name string) (Kind, error) {
	if name == "dir" {
		return KindDirectory, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindUnknown, errors.WithContext(
		errors.Newf(errors.CodeInvalidArgument, "unknown entry kind %q", name),
		"kind", name,
	)
}
