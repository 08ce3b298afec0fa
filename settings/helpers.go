package settings

import (
	"github.com/bsv-blockchain/txwire/util/bytesize"
	"github.com/ordishs/gocore"
)

func getString(key, defaultValue string) string {
	value, found := gocore.Config().Get(key)
	if !found {
		return defaultValue
	}

	return value
}

func getInt(key string, defaultValue int) int {
	value, found := gocore.Config().GetInt(key)
	if !found {
		return defaultValue
	}

	return value
}

func getBool(key string, defaultValue bool) bool {
	return gocore.Config().GetBool(key, defaultValue)
}

// getByteSize accepts a plain byte count or a size with a unit, e.g. "10KB".
// A value that does not parse is returned as -1 so Validate rejects it.
func getByteSize(key string, defaultValue int) int {
	value, found := gocore.Config().Get(key)
	if !found || value == "" {
		return defaultValue
	}

	size, err := bytesize.Parse(value)
	if err != nil {
		return -1
	}

	return size.Int()
}
