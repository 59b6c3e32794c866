package cache

import (
	"github.com/dgraph-io/ristretto"
	ristrettoStore "github.com/eko/gocache/store/ristretto/v4"
	"github.com/rs/zerolog/log"
)

var S *ristrettoStore.RistrettoStore

func NewStore() error {
	inner, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     1 << 30,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristrettoStore.NewRistretto(inner)
	log.Info().Msg("In-memory cache store is ready.")

	return nil
}
