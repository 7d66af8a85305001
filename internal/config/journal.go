package config

import (
	"fmt"
	"os"
	"strconv"
)

type Journal struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func (j Journal) Enabled() bool {
	return j.Filename != ""
}

func lookupInt(key string, fallback int) (int, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return n, nil
}

// NewJournal reads the game journal settings. An unset MINES_JOURNAL_FILE
// leaves the journal disabled.
func NewJournal() (*Journal, error) {
	maxSize, err := lookupInt("MINES_JOURNAL_MAX_SIZE", 10)
	if err != nil {
		return nil, err
	}

	maxBackups, err := lookupInt("MINES_JOURNAL_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}

	maxAge, err := lookupInt("MINES_JOURNAL_MAX_AGE", 28)
	if err != nil {
		return nil, err
	}

	journal := &Journal{
		Filename:   os.Getenv("MINES_JOURNAL_FILE"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}

	return journal, nil
}
