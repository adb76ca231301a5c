// Copyright (c) 2013-2018 The btcsuite developers
// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cryptoadapt

import (
	"crypto/sha256"

	"github.com/dgraph-io/badger/v2"
)

// SigCache memoizes the outcome of previously-verified (message, public
// key, signature) triples so a host re-checking the same signed artifact
// does not pay for Ed25519 verification twice. It generalizes the
// process-local signature cache pattern to a durable, embedded store so
// the memoization survives across Machine executions in a long-lived
// host process.
type SigCache struct {
	db *badger.DB
}

// NewSigCache opens (or creates) a signature cache backed by Badger at
// dir. Passing an empty dir opens an in-memory store, useful for tests
// and for hosts that only want memoization within a single process
// lifetime.
func NewSigCache(dir string) (*SigCache, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &SigCache{db: db}, nil
}

// Close releases the underlying Badger store.
func (c *SigCache) Close() error {
	return c.db.Close()
}

func sigCacheKey(message, publicKey, signature []byte) []byte {
	h := sha256.New()
	h.Write(message)
	h.Write(publicKey)
	h.Write(signature)
	return h.Sum(nil)
}

// Exists reports whether (message, publicKey, signature) was previously
// recorded as a successful verification.
func (c *SigCache) Exists(message, publicKey, signature []byte) bool {
	key := sigCacheKey(message, publicKey, signature)
	found := false
	_ = c.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		found = err == nil
		return nil
	})
	return found
}

// Add records (message, publicKey, signature) as a successful
// verification.
func (c *SigCache) Add(message, publicKey, signature []byte) {
	key := sigCacheKey(message, publicKey, signature)
	_ = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, []byte{1})
	})
}
