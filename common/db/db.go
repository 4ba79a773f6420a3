// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"fmt"

	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// KV is the view an executor gets of the state store.
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

// DB is a full storage backend.
type DB interface {
	KV
	SetSync(key []byte, value []byte) error
	Delete(key []byte) error
	DeleteSync(key []byte) error
	Close()
	NewBatch(sync bool) Batch
	PrefixScan(prefix []byte) (values [][]byte)
}

// Batch groups writes that land together.
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

// ErrNotFoundInDb 数据库中没有对应的 key
var ErrNotFoundInDb = types.ErrNotFound

const (
	levelDBBackendStr  = "leveldb"
	goLevelDBBackendStr = "goleveldb"
	goBadgerDBBackendStr = "gobadgerdb"
	memDBBackendStr    = "memdb"
)

type dbCreator func(name string, dir string) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB opens a backend by name; unknown backends are a startup error.
func NewDB(name string, backend string, dir string) DB {
	creator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := creator(name, dir)
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}
