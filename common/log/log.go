// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log 日志初始化: 控制台 + 滚动文件
package log

import (
	"os"

	log15 "github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hey-its-slowly/fee-governance-hub/types"
)

//SetLogLevel 设置控制台日志输出级别
func SetLogLevel(logLevel string) {
	handler := log15.LvlFilterHandler(getLevel(logLevel), log15.StreamHandler(os.Stdout, log15.TerminalFormat()))
	log15.Root().SetHandler(handler)
}

//SetFileLog 设置文件日志和控制台日志
func SetFileLog(cfg *types.Log) {
	if cfg == nil {
		cfg = &types.Log{LogFile: "logs/feehub.log"}
	}
	if cfg.LogFile == "" {
		SetLogLevel(cfg.LogConsoleLevel)
		return
	}
	fillDefaultValue(cfg)
	fileWriter := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxFileSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
	}
	fileHandler := log15.LvlFilterHandler(getLevel(cfg.LogFileLevel), log15.StreamHandler(fileWriter, log15.LogfmtFormat()))
	consoleHandler := log15.LvlFilterHandler(getLevel(cfg.LogConsoleLevel), log15.StreamHandler(os.Stdout, log15.TerminalFormat()))
	log15.Root().SetHandler(log15.MultiHandler(consoleHandler, fileHandler))
}

func fillDefaultValue(cfg *types.Log) {
	if cfg.LogConsoleLevel == "" {
		cfg.LogConsoleLevel = "info"
	}
	if cfg.LogFileLevel == "" {
		cfg.LogFileLevel = "debug"
	}
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = 300
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 100
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = 28
	}
}

func getLevel(level string) log15.Lvl {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return log15.LvlInfo
	}
	return lvl
}
