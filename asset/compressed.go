// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"encoding/binary"

	"github.com/hey-its-slowly/fee-governance-hub/common"
	dbm "github.com/hey-its-slowly/fee-governance-hub/common/db"
	"github.com/hey-its-slowly/fee-governance-hub/common/merkle"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// CompressedTree 记录一棵压缩资产树当前的 merkle root
type CompressedTree struct {
	TreeID string `json:"treeId"`
	Root   []byte `json:"root"`
}

// Proof 定位压缩树上的一个叶子并携带 merkle path
type Proof struct {
	TreeID      string   `json:"treeId"`
	Root        []byte   `json:"root"`
	DataHash    []byte   `json:"dataHash"`
	CreatorHash []byte   `json:"creatorHash"`
	Nonce       uint64   `json:"nonce"`
	Index       uint32   `json:"index"`
	Path        [][]byte `json:"path"`
}

// CompressedTreeKey 树记录的状态数据库 key
func CompressedTreeKey(treeID string) []byte {
	return []byte("mavl-asset-ctree-" + treeID)
}

// LeafHash 计算叶子哈希, 持有人参与哈希, 转移即重写叶子
func LeafHash(dataHash, creatorHash []byte, nonce uint64, owner string) []byte {
	var buf bytes.Buffer
	buf.Write(dataHash)
	buf.Write(creatorHash)
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], nonce)
	buf.Write(n[:])
	buf.WriteString(owner)
	h := common.Sha2Sum(buf.Bytes())
	return h[:]
}

type compressedVault struct {
	db    dbm.KV
	proof *Proof
	vault string
}

// NewCompressedVault 创建压缩资产托管
// 树记录不存在时以 proof 自带的 root 初始化, 之后以链上记录为准
func NewCompressedVault(statedb dbm.KV, proof *Proof, vault string) Vault {
	return &compressedVault{db: statedb, proof: proof, vault: vault}
}

func (v *compressedVault) Lock(from string) (*types.Receipt, error) {
	return v.transfer(TyLogAssetLock, from, v.vault)
}

func (v *compressedVault) Release(to string) (*types.Receipt, error) {
	return v.transfer(TyLogAssetRelease, v.vault, to)
}

func (v *compressedVault) transfer(logTy int32, from, to string) (*types.Receipt, error) {
	p := v.proof
	tree, err := v.loadTree()
	if err != nil {
		return nil, err
	}
	oldLeaf := LeafHash(p.DataHash, p.CreatorHash, p.Nonce, from)
	if !bytes.Equal(merkle.GetMerkleRootFromBranch(p.Path, oldLeaf, p.Index), tree.Root) {
		return nil, ErrProofInvalid
	}
	newLeaf := LeafHash(p.DataHash, p.CreatorHash, p.Nonce, to)
	tree.Root = merkle.GetMerkleRootFromBranch(p.Path, newLeaf, p.Index)
	v.db.Set(CompressedTreeKey(p.TreeID), types.Encode(tree))
	kv := []*types.KeyValue{{Key: CompressedTreeKey(p.TreeID), Value: types.Encode(tree)}}
	return assetReceipt(logTy, ClassCompressed, p.TreeID, from, to, kv), nil
}

func (v *compressedVault) loadTree() (*CompressedTree, error) {
	value, err := v.db.Get(CompressedTreeKey(v.proof.TreeID))
	if err == dbm.ErrNotFoundInDb {
		return &CompressedTree{TreeID: v.proof.TreeID, Root: v.proof.Root}, nil
	}
	if err != nil {
		return nil, err
	}
	var tree CompressedTree
	if err := types.Decode(value, &tree); err != nil {
		return nil, err
	}
	return &tree, nil
}
