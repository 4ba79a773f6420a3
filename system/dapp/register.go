// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import "sync"

// DriverCreate 构造一个执行器实例
type DriverCreate func() Driver

var (
	regmu          sync.Mutex
	registedDriver = make(map[string]DriverCreate)
)

// Register 注册执行器. 同名注册是编程错误, 直接panic.
func Register(name string, create DriverCreate) {
	regmu.Lock()
	defer regmu.Unlock()
	if create == nil {
		panic("dapp: register driver is nil")
	}
	if _, dup := registedDriver[name]; dup {
		panic("dapp: register called twice for driver " + name)
	}
	registedDriver[name] = create
}

// LoadDriver 取一个新的执行器实例
func LoadDriver(name string) (Driver, bool) {
	regmu.Lock()
	defer regmu.Unlock()
	create, ok := registedDriver[name]
	if !ok {
		return nil, false
	}
	return create(), true
}
