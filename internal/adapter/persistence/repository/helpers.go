package repository

import (
	"fmt"
	"os"
	"strconv"

	"brightworks/internal/usecase/interfaces"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// storageErr folds SDK failures into the transient storage sentinel so
// callers can errors.Is without knowing the AWS error taxonomy.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", interfaces.ErrStorageUnavailable, err)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
