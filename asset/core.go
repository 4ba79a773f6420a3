// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	dbm "github.com/hey-its-slowly/fee-governance-hub/common/db"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// CoreAsset 托管登记的单件资产, 按 id 记录当前持有人
type CoreAsset struct {
	ID         string `json:"id"`
	Owner      string `json:"owner"`
	Collection string `json:"collection,omitempty"`
}

// CoreAssetKey 登记记录的状态数据库 key
func CoreAssetKey(id string) []byte {
	return []byte("mavl-asset-core-" + id)
}

type coreVault struct {
	db         dbm.KV
	id         string
	collection string
	vault      string
}

// NewCoreVault 创建登记资产托管, collection 非空时转移前校验合集
func NewCoreVault(statedb dbm.KV, id, collection, vault string) Vault {
	return &coreVault{db: statedb, id: id, collection: collection, vault: vault}
}

func (v *coreVault) Lock(from string) (*types.Receipt, error) {
	return v.transfer(TyLogAssetLock, from, v.vault)
}

func (v *coreVault) Release(to string) (*types.Receipt, error) {
	return v.transfer(TyLogAssetRelease, v.vault, to)
}

func (v *coreVault) transfer(logTy int32, from, to string) (*types.Receipt, error) {
	value, err := v.db.Get(CoreAssetKey(v.id))
	if err != nil {
		return nil, err
	}
	var asset CoreAsset
	if err := types.Decode(value, &asset); err != nil {
		return nil, err
	}
	if asset.Owner != from {
		return nil, ErrAssetOwner
	}
	if v.collection != "" && asset.Collection != v.collection {
		return nil, ErrCollectionMismatch
	}
	asset.Owner = to
	v.db.Set(CoreAssetKey(v.id), types.Encode(&asset))
	kv := []*types.KeyValue{{Key: CoreAssetKey(v.id), Value: types.Encode(&asset)}}
	return assetReceipt(logTy, ClassCore, v.id, from, to, kv), nil
}
