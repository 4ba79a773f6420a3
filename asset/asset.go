// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset 提供奖品托管后端: 同质化 token, 托管登记 (core), 压缩资产 (merkle)
package asset

import (
	"errors"

	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// 资产类别
const (
	ClassToken int32 = iota + 1
	ClassCore
	ClassCompressed
)

// 资产托管相关的 receipt log 类型
const (
	TyLogAssetLock    = 601
	TyLogAssetRelease = 602
)

var (
	// ErrAssetClass 未知的资产类别
	ErrAssetClass = errors.New("ErrAssetClass")
	// ErrAssetOwner 持有人不匹配
	ErrAssetOwner = errors.New("ErrAssetOwner")
	// ErrCollectionMismatch 合集不匹配
	ErrCollectionMismatch = errors.New("ErrCollectionMismatch")
	// ErrProofInvalid merkle 证明无效
	ErrProofInvalid = errors.New("ErrProofInvalid")
)

// Vault 以派生地址为托管人保管单个奖品
// Lock 把奖品从持有人转入托管地址, Release 把奖品从托管地址转给领取人
type Vault interface {
	Lock(from string) (*types.Receipt, error)
	Release(to string) (*types.Receipt, error)
}

// ReceiptAsset 托管转移的执行日志
type ReceiptAsset struct {
	Class int32  `json:"class"`
	ID    string `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
}

func assetReceipt(logTy, class int32, id, from, to string, kv []*types.KeyValue) *types.Receipt {
	log := &types.ReceiptLog{
		Ty:  logTy,
		Log: types.Encode(&ReceiptAsset{Class: class, ID: id, From: from, To: to}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}
}
