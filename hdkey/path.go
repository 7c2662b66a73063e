package hdkey

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePath converts an absolute derivation path into child indexes.
// A trailing apostrophe marks a hardened segment:
// "m/44'/1397'/0'/0" -> [0x8000002c, 0x80000575, 0x80000000, 0].
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if len(segments) < 2 || segments[0] != "m" {
		return nil, errors.Wrapf(ErrInvalidDerivationPath, "parsing %q", path)
	}

	indexes := make([]uint32, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		hardened := strings.HasSuffix(segment, "'")
		if hardened {
			segment = strings.TrimSuffix(segment, "'")
		}

		value, err := strconv.ParseUint(segment, 10, 32)
		if err != nil || value >= uint64(HardenedOffset) {
			return nil, errors.Wrapf(ErrInvalidDerivationPath, "segment %q in %q", segment, path)
		}

		index := uint32(value)
		if hardened {
			index += HardenedOffset
		}
		indexes = append(indexes, index)
	}
	return indexes, nil
}
