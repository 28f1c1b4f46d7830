package repository

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/ArtytL/loh2-site/internal/infrastructure/kvstore"
)

var idSuffixPattern = regexp.MustCompile(`(\d+)$`)

// nextSequence reads the counter, increments it and writes it back. A counter
// that is absent, unreadable or behind floor (the highest numeric id suffix
// already in the collection) resumes counting above floor instead. The
// read-increment-write cycle is not atomic; concurrent creations can race,
// and a later repair pass resolves any resulting duplicate suffix.
func nextSequence(ctx context.Context, store kvstore.Store, counterKey string, floor int64) (int64, error) {
	raw, err := store.Get(ctx, counterKey)
	if err != nil {
		return 0, err
	}

	current, _ := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	next := current + 1
	if next <= floor {
		next = floor + 1
	}

	if err := store.Set(ctx, counterKey, strconv.FormatInt(next, 10)); err != nil {
		return 0, err
	}
	return next, nil
}

// idSuffix extracts the trailing numeric run of an id, or 0 when there is
// none.
func idSuffix(id string) int64 {
	match := idSuffixPattern.FindStringSubmatch(id)
	if match == nil {
		return 0
	}
	n, _ := strconv.ParseInt(match[1], 10, 64)
	return n
}

// syncSequence bumps a counter that has fallen behind floor. It never moves a
// counter backwards.
func syncSequence(ctx context.Context, store kvstore.Store, counterKey string, floor int64) error {
	raw, err := store.Get(ctx, counterKey)
	if err != nil {
		return err
	}

	current, _ := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if current >= floor {
		return nil
	}
	return store.Set(ctx, counterKey, strconv.FormatInt(floor, 10))
}
