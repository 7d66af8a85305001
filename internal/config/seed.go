package config

import (
	"fmt"
	"os"
	"strconv"
)

// Seed returns the MINES_SEED value, if set, used to make mine placement
// reproducible.
func Seed() (seed uint64, ok bool, err error) {
	str, ok := os.LookupEnv("MINES_SEED")
	if !ok {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("unable to convert MINES_SEED to uint: %w", err)
	}
	return seed, true, nil
}
