// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"crypto/sha256"
	"encoding/json"
)

// Coin is the base denomination of the native asset.
const (
	Coin    int64 = 1e8
	MaxCoin int64 = 1e8 * 1e10
)

// receipt execution status
const (
	ExecErr = int32(iota)
	ExecPack
	ExecOk
)

// receipt log types shared by the account layer
const (
	TyLogErr = int32(iota + 1)
	TyLogTransfer
	TyLogDeposit
	TyLogExecTransfer
	TyLogExecWithdraw
	TyLogExecDeposit
	TyLogExecFrozen
	TyLogExecActive
	TyLogBurn
)

// Account is one balance slot of one asset for one address.
// Frozen funds stay owned by Addr but cannot be spent until activated.
type Account struct {
	Currency int32  `json:"currency"`
	Balance  int64  `json:"balance"`
	Frozen   int64  `json:"frozen"`
	Addr     string `json:"addr"`
}

func (acc *Account) GetBalance() int64 {
	if acc == nil {
		return 0
	}
	return acc.Balance
}

func (acc *Account) GetFrozen() int64 {
	if acc == nil {
		return 0
	}
	return acc.Frozen
}

// KeyValue is one pending state write.
type KeyValue struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

func (kv *KeyValue) GetKey() []byte {
	if kv == nil {
		return nil
	}
	return kv.Key
}

// ReceiptLog is one typed event produced by an executed action.
type ReceiptLog struct {
	Ty  int32  `json:"ty"`
	Log []byte `json:"log"`
}

/// Receipt is the full effect of one executed action: the state writes
// plus the logs. The host applies KV atomically after Exec returns ok.
type Receipt struct {
	Ty   int32         `json:"ty"`
	KV   []*KeyValue   `json:"kv"`
	Logs []*ReceiptLog `json:"logs"`
}

// ReceiptAccountTransfer records a balance move on a plain account.
type ReceiptAccountTransfer struct {
	Prev    *Account `json:"prev"`
	Current *Account `json:"current"`
}

// ReceiptExecAccountTransfer records a balance move inside an executor's
// sub-account space.
type ReceiptExecAccountTransfer struct {
	ExecAddr string   `json:"execAddr"`
	Prev     *Account `json:"prev"`
	Current  *Account `json:"current"`
}

// Transaction is the unit the host schedules. Signature checking belongs
// to the host; From is the authenticated sender it hands us.
type Transaction struct {
	Execer  []byte `json:"execer"`
	Payload []byte `json:"payload"`
	From    string `json:"from"`
	Nonce   int64  `json:"nonce"`
}

// Hash identifies the transaction. Used to derive record ids.
func (tx *Transaction) Hash() []byte {
	data := Encode(tx)
	h := sha256.Sum256(data)
	return h[:]
}

// Encode marshals a record or payload for state storage.
func Encode(data interface{}) []byte {
	v, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return v
}

// Decode unmarshals a stored record.
func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// CheckAmount bounds every balance movement.
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}
