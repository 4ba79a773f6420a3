// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"strings"
	"sync"
)

func init() {
	dbCreator := func(name string, dir string) (DB, error) {
		return NewGoMemDB(name, dir)
	}
	registerDBCreator(memDBBackendStr, dbCreator, false)
}

//GoMemDB 内存存储, 测试与执行器单测使用
type GoMemDB struct {
	mu sync.RWMutex
	db map[string][]byte
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string) (*GoMemDB, error) {
	return &GoMemDB{db: make(map[string][]byte)}, nil
}

func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	value, ok := db.db[string(key)]
	if !ok || value == nil {
		return nil, ErrNotFoundInDb
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if value == nil {
		delete(db.db, string(key))
		return nil
	}
	v := make([]byte, len(value))
	copy(v, value)
	db.db[string(key)] = v
	return nil
}

func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

func (db *GoMemDB) Delete(key []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.db, string(key))
	return nil
}

func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

func (db *GoMemDB) Close() {
}

func (db *GoMemDB) PrefixScan(prefix []byte) (values [][]byte) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var keys []string
	for key := range db.db {
		if strings.HasPrefix(key, string(prefix)) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := make([]byte, len(db.db[key]))
		copy(value, db.db[key])
		values = append(values, value)
	}
	return values
}

func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type memBatch struct {
	db     *GoMemDB
	writes []*struct {
		key   string
		value []byte
	}
}

func (b *memBatch) Set(key, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	b.writes = append(b.writes, &struct {
		key   string
		value []byte
	}{string(key), v})
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, &struct {
		key   string
		value []byte
	}{string(key), nil})
}

func (b *memBatch) Write() error {
	b.db.mu.Lock()
	defer b.db.mu.Unlock()
	for _, w := range b.writes {
		if w.value == nil {
			delete(b.db.db, w.key)
			continue
		}
		b.db.db[w.key] = w.value
	}
	return nil
}
