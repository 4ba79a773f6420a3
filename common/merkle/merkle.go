// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merkle

import "crypto/sha256"

//计算左右节点hash的父hash
func GetHashFromTwoHash(left []byte, right []byte) []byte {
	if left == nil || right == nil {
		return nil
	}
	parent := make([]byte, len(left)+len(right))
	copy(parent, left)
	copy(parent[len(left):], right)
	hash := sha256.Sum256(parent)
	parenthash := sha256.Sum256(hash[:])
	return parenthash[:]
}

//GetMerkleRoot 获取merkle roothash. 奇数个叶子时最后一个与自身配对.
func GetMerkleRoot(leaves [][]byte) []byte {
	if len(leaves) == 0 {
		return nil
	}
	level := make([][]byte, len(leaves))
	copy(level, leaves)
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([][]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, GetHashFromTwoHash(level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}

//GetMerkleBranch 获取指定position的branch, position从0开始
func GetMerkleBranch(leaves [][]byte, position uint32) [][]byte {
	if len(leaves) == 0 || position >= uint32(len(leaves)) {
		return nil
	}
	var branch [][]byte
	level := make([][]byte, len(leaves))
	copy(level, leaves)
	index := position
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		sibling := index ^ 1
		branch = append(branch, level[sibling])
		next := make([][]byte, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, GetHashFromTwoHash(level[i], level[i+1]))
		}
		level = next
		index >>= 1
	}
	return branch
}

// GetMerkleRootFromBranch 通过branch和leaf还原roothash, 用于proof证明
func GetMerkleRootFromBranch(merkleBranch [][]byte, leaf []byte, index uint32) []byte {
	hash := leaf
	for _, branch := range merkleBranch {
		if (index & 1) != 0 {
			hash = GetHashFromTwoHash(branch, hash)
		} else {
			hash = GetHashFromTwoHash(hash, branch)
		}
		index >>= 1
	}
	return hash
}
