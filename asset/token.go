// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/hey-its-slowly/fee-governance-hub/account"
	dbm "github.com/hey-its-slowly/fee-governance-hub/common/db"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// tokenVault 单枚 token 作为奖品, 在 (execer, symbol) 账户的合约子账户之间转移
type tokenVault struct {
	acc      *account.DB
	execaddr string
	vault    string
	symbol   string
}

// NewTokenVault 创建 token 托管, vault 为派生的托管地址
func NewTokenVault(execer, symbol string, statedb dbm.KV, execaddr, vault string) (Vault, error) {
	acc, err := account.NewAccountDB(execer, symbol, statedb)
	if err != nil {
		return nil, err
	}
	return &tokenVault{acc: acc, execaddr: execaddr, vault: vault, symbol: symbol}, nil
}

func (v *tokenVault) Lock(from string) (*types.Receipt, error) {
	receipt, err := v.acc.ExecTransfer(from, v.vault, v.execaddr, 1)
	if err != nil {
		return nil, err
	}
	log := assetReceipt(TyLogAssetLock, ClassToken, v.symbol, from, v.vault, nil)
	receipt.Logs = append(receipt.Logs, log.Logs...)
	return receipt, nil
}

func (v *tokenVault) Release(to string) (*types.Receipt, error) {
	receipt, err := v.acc.ExecTransfer(v.vault, to, v.execaddr, 1)
	if err != nil {
		return nil, err
	}
	log := assetReceipt(TyLogAssetRelease, ClassToken, v.symbol, v.vault, to, nil)
	receipt.Logs = append(receipt.Logs, log.Logs...)
	return receipt, nil
}
