package types

import "errors"

var (
	ErrFeeHubNotAdmin         = errors.New("address is not on the fee hub admin list")
	ErrFeeConfigExists        = errors.New("fee config for this target and instruction already exists")
	ErrFeeConfigNotFound      = errors.New("fee config for this target and instruction does not exist")
	ErrFeeWalletCount         = errors.New("too many fee wallets in one config")
	ErrInstructionNameTooLong = errors.New("instruction name exceeds the maximum length")
	ErrFeeWalletMismatch      = errors.New("supplied payee does not match the configured wallet at this position")
	ErrFeePercentSum          = errors.New("fee wallet percentages do not sum to the full denominator")
)
