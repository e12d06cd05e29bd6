package cartstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/peekay08/storefront/internal/domain"
	log "github.com/sirupsen/logrus"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// LevelDBStore keeps the cart in an on-disk LevelDB database, the local durable store
// the storefront uses by default.
type LevelDBStore struct {
	db *leveldb.DB
}

// NewLevelDBStore opens (or creates) a LevelDB database at path
func NewLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: open leveldb at %s: %v", domain.ErrCartStoreUnavailable, path, err)
	}

	log.Infof("[CartStore] LevelDB opened at %s", path)
	return &LevelDBStore{db: db}, nil
}

// NewLevelDBStoreWithStorage opens a LevelDB database on an arbitrary storage backend,
// e.g. storage.NewMemStorage() in tests.
func NewLevelDBStoreWithStorage(stor storage.Storage) (*LevelDBStore, error) {
	db, err := leveldb.Open(stor, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: open leveldb: %v", domain.ErrCartStoreUnavailable, err)
	}
	return &LevelDBStore{db: db}, nil
}

// Get reads the value stored under key
func (s *LevelDBStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, domain.ErrCartKeyNotFound
		}
		return nil, fmt.Errorf("%w: get %q: %v", domain.ErrCartStoreUnavailable, key, err)
	}

	return value, nil
}

// Set overwrites key with value. Writes are synced so a crash after Set returns keeps the cart.
func (s *LevelDBStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.db.Put([]byte(key), value, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("%w: put %q: %v", domain.ErrCartStoreUnavailable, key, err)
	}
	return nil
}

// Close releases the database
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
