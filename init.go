package cm256

import "sync"

// Version is the table/algorithm version this build implements. InitVersion
// accepts it (and its own zero value, meaning "current") so a future
// incompatible table change can be detected by older callers instead of
// silently producing non-interoperable recovery blocks.
const Version = 1

var (
	initOnce sync.Once
	initErr  error
)

// Init builds the GF(256) tables and selects the bulk-op capability set.
// Idempotent and safe to call from multiple goroutines; the tables and
// selected ops are read-only after the first successful call. Encode and
// Decode call Init themselves, so most callers never need to call it
// directly — it is exported for callers that want to pay its (tiny,
// one-time) cost up front, e.g. at process startup.
func Init() error {
	initOnce.Do(func() {
		buildFieldTables()
		selectBulkOps()
	})
	return initErr
}

// InitVersion is like Init but rejects a version token the build does not
// recognize, returning ErrVersionMismatch without touching any state.
func InitVersion(version int) error {
	if version != 0 && version != Version {
		return wrapf(ErrVersionMismatch, "requested version %d, build implements %d", version, Version)
	}
	return Init()
}
