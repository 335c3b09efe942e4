package typyconfigs

import (
	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/configs"
)

// MaxSourceBytes limits the size of a source file. Zero means no limit.
type MaxSourceBytes int

const DefaultMaxSourceBytes = 16 << 20

var maxSourceBytesFlag = cmds.Var[int]("-max-source-bytes", "reject sources larger than this")

func (Module) MaxSourceBytes(
	loader configs.Loader,
) MaxSourceBytes {
	n := configs.First(loader, "max_source_bytes", DefaultMaxSourceBytes)
	// the flag can only tighten the limit
	if flag := *maxSourceBytesFlag; flag > 0 && (n == 0 || flag < n) {
		n = flag
	}
	return MaxSourceBytes(n)
}
