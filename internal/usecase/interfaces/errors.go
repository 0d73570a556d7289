package interfaces

import "errors"

// ErrStorageUnavailable wraps adapter-level failures (network, throttling,
// endpoint down). Transient: callers may retry and must assume the
// operation did not happen. "Not found" is never this error; repositories
// report missing documents as zero values.
var ErrStorageUnavailable = errors.New("storage unavailable")
