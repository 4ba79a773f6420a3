// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	log "github.com/inconshreveable/log15"

	"github.com/hey-its-slowly/fee-governance-hub/account"
	"github.com/hey-its-slowly/fee-governance-hub/common/address"
	dbm "github.com/hey-its-slowly/fee-governance-hub/common/db"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

var blog = log.New("module", "execs.base")

// Driver is one executor: a set of state-transition handlers over the
// records it owns. The host serializes all access to those records, so
// an Exec call never races another Exec touching the same keys.
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	GetName() string
	SetEnv(height, blocktime int64)
	GetHeight() int64
	GetBlockTime() int64
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
}

// DriverBase carries the per-block context every executor needs.
type DriverBase struct {
	statedb      dbm.KV
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	child        Driver
}

func (d *DriverBase) SetChild(c Driver) {
	d.child = c
}

func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

func (d *DriverBase) GetHeight() int64 {
	return d.height
}

func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// GetCoinsAccount 原生资产账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}

func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

func (d *DriverBase) SetName(name string) {
	d.name = name
}

// CheckTx 默认不做额外检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// ExecAddress 执行器合约地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
