// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"path"

	"github.com/dgraph-io/badger"
)

func init() {
	dbCreator := func(name string, dir string) (DB, error) {
		return NewGoBadgerDB(name, dir)
	}
	registerDBCreator(goBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB badger 存储
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB 打开一个 badger 库
func NewGoBadgerDB(name string, dir string) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

func (db *GoBadgerDB) Delete(key []byte) error {
	return db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

func (db *GoBadgerDB) Close() {
	db.db.Close()
}

func (db *GoBadgerDB) PrefixScan(prefix []byte) (values [][]byte) {
	db.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				continue
			}
			values = append(values, value)
		}
		return nil
	})
	return values
}

func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db.db, wb: db.db.NewWriteBatch()}
}

type goBadgerDBBatch struct {
	db *badger.DB
	wb *badger.WriteBatch
}

func (b *goBadgerDBBatch) Set(key, value []byte) {
	b.wb.Set(key, value)
}

func (b *goBadgerDBBatch) Delete(key []byte) {
	b.wb.Delete(key)
}

func (b *goBadgerDBBatch) Write() error {
	return b.wb.Flush()
}
