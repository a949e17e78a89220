package cache

import (
	"github.com/dgraph-io/ristretto"
	ristrettoStore "github.com/eko/gocache/store/ristretto/v4"
)

// NewStore builds the in-process cache backing short-lived lookups such as
// like-status reads. Sized small on purpose; everything in it can be
// recomputed from the database.
func NewStore() (*ristrettoStore.RistrettoStore, error) {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return ristrettoStore.NewRistretto(inner), nil
}
