// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"sync"

	tml "github.com/BurntSushi/toml"
)

// GlobalFeeWallet is one entry of the process-wide fallback payout table.
// Percent is expressed over the fee-split denominator (1000 == 100%).
type GlobalFeeWallet struct {
	Addr    string `json:"addr"`
	Percent int64  `json:"percent"`
}

// Log holds the logging file configuration.
type Log struct {
	LogFile         string `json:"logFile"`
	LogConsoleLevel string `json:"logConsoleLevel"`
	LogFileLevel    string `json:"logFileLevel"`
	MaxFileSize     int    `json:"maxFileSize"`
	MaxBackups      int    `json:"maxBackups"`
	MaxAge          int    `json:"maxAge"`
}

// Config is the process-wide configuration loaded once at startup.
// The admin allow-lists and the global fee-wallet table have no runtime
// mutation path: changing them means restarting with a new file.
type Config struct {
	Title            string
	SuperAdmin       string
	FeeHubAdmins     []string
	GlobalFeeWallets []GlobalFeeWallet
	Log              *Log
}

var (
	mu       sync.RWMutex
	chainCfg *Config
)

// InitCfg parses the TOML configuration file and installs it.
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	SetConfig(&cfg)
	return &cfg, nil
}

// SetConfig installs an already-built configuration (tests use this).
func SetConfig(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	chainCfg = cfg
}

// GetConfig returns the installed configuration, never nil.
func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if chainCfg == nil {
		return &Config{}
	}
	return chainCfg
}

// IsSuperAdmin reports whether addr is the configured super admin.
func IsSuperAdmin(addr string) bool {
	cfg := GetConfig()
	return cfg.SuperAdmin != "" && cfg.SuperAdmin == addr
}

// IsFeeHubAdmin reports whether addr may create or update fee configs.
func IsFeeHubAdmin(addr string) bool {
	for _, admin := range GetConfig().FeeHubAdmins {
		if admin == addr {
			return true
		}
	}
	return false
}

// GetGlobalFeeWallets returns the fallback payout table.
func GetGlobalFeeWallets() []GlobalFeeWallet {
	return GetConfig().GlobalFeeWallets
}
