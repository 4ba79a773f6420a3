package executor

import (
	"fmt"

	"github.com/hey-its-slowly/fee-governance-hub/account"
	dbm "github.com/hey-its-slowly/fee-governance-hub/common/db"
	ft "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/feehub/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// ConfigKey 分账配置的状态数据库key
func ConfigKey(targetExec string, instructionIndex int64) []byte {
	return []byte(fmt.Sprintf("mavl-feehub-config-%s-%d", targetExec, instructionIndex))
}

// LoadConfig 读取一条分账配置, 其他执行器嵌套分账时也从这里读
func LoadConfig(db dbm.KV, targetExec string, instructionIndex int64) (*ft.FeeConfig, error) {
	value, err := db.Get(ConfigKey(targetExec, instructionIndex))
	if err == dbm.ErrNotFoundInDb {
		return nil, ft.ErrFeeConfigNotFound
	}
	if err != nil {
		return nil, err
	}
	var config ft.FeeConfig
	if err := types.Decode(value, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Distribute 在 execaddr 的子账户内把 config.FeeAmount 从 from 按配置分给 payees.
// payees 必须逐项等于配置的钱包地址, 比例累加必须恰好等于 PercentDenominator.
// 其他执行器在同一笔交易里嵌套调用, 任何一步失败整体回滚.
func Distribute(config *ft.FeeConfig, coins *account.DB, execaddr, from string, payees []string) (*types.Receipt, error) {
	wallets := config.Wallets
	if config.IsUsingGlobalWallets {
		wallets = nil
		for _, w := range types.GetGlobalFeeWallets() {
			wallets = append(wallets, &ft.FeeWallet{Addr: w.Addr, Percent: w.Percent})
		}
	}
	if len(payees) != len(wallets) {
		return nil, ft.ErrFeeWalletMismatch
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	var percentSum int64
	for i, wallet := range wallets {
		if payees[i] != wallet.Addr {
			return nil, ft.ErrFeeWalletMismatch
		}
		share, err := feeShare(wallet.Percent, config.FeeAmount)
		if err != nil {
			return nil, err
		}
		if share > 0 {
			transfer, err := coins.ExecTransfer(from, wallet.Addr, execaddr, share)
			if err != nil {
				return nil, err
			}
			receipt.KV = append(receipt.KV, transfer.KV...)
			receipt.Logs = append(receipt.Logs, transfer.Logs...)
		}
		percentSum += wallet.Percent
	}
	if percentSum != ft.PercentDenominator {
		return nil, ft.ErrFeePercentSum
	}
	log := &types.ReceiptLog{
		Ty: ft.TyLogFeeTransfer,
		Log: types.Encode(&ft.ReceiptFeeTransfer{
			TargetExec:       config.TargetExec,
			InstructionIndex: config.InstructionIndex,
			From:             from,
			FeeAmount:        config.FeeAmount,
		}),
	}
	receipt.Logs = append(receipt.Logs, log)
	return receipt, nil
}

//checked乘法, 溢出则整笔失败
func feeShare(percent, feeAmount int64) (int64, error) {
	if percent == 0 || feeAmount == 0 {
		return 0, nil
	}
	product := percent * feeAmount
	if product/percent != feeAmount {
		return 0, types.ErrOverflow
	}
	return product / ft.PercentDenominator, nil
}

// Action 捕获一笔交易的上下文
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
}

func NewAction(f *FeeHub, tx *types.Transaction) *Action {
	return &Action{
		coinsAccount: f.GetCoinsAccount(),
		db:           f.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		blocktime:    f.GetBlockTime(),
		height:       f.GetHeight(),
		execaddr:     drivers.ExecAddress(ft.FeeHubX),
	}
}

func (action *Action) CreateConfig(create *ft.FeeHubCreateConfig) (*types.Receipt, error) {
	if !types.IsFeeHubAdmin(action.fromaddr) {
		return nil, ft.ErrFeeHubNotAdmin
	}
	if err := checkConfig(create.Wallets, create.InstructionName); err != nil {
		return nil, err
	}
	if _, err := LoadConfig(action.db, create.TargetExec, create.InstructionIndex); err == nil {
		return nil, ft.ErrFeeConfigExists
	} else if err != ft.ErrFeeConfigNotFound {
		return nil, err
	}
	config := &ft.FeeConfig{
		TargetExec:           create.TargetExec,
		InstructionIndex:     create.InstructionIndex,
		FeeAmount:            create.FeeAmount,
		IsUsingGlobalWallets: create.IsUsingGlobalWallets,
		Wallets:              create.Wallets,
		InstructionName:      create.InstructionName,
		CreatedAt:            action.blocktime,
	}
	return action.configReceipt(ft.TyLogFeeConfigCreate, config), nil
}

func (action *Action) UpdateConfig(update *ft.FeeHubUpdateConfig) (*types.Receipt, error) {
	if !types.IsFeeHubAdmin(action.fromaddr) {
		return nil, ft.ErrFeeHubNotAdmin
	}
	if err := checkConfig(update.Wallets, update.InstructionName); err != nil {
		return nil, err
	}
	old, err := LoadConfig(action.db, update.TargetExec, update.InstructionIndex)
	if err != nil {
		return nil, err
	}
	config := &ft.FeeConfig{
		TargetExec:           update.TargetExec,
		InstructionIndex:     update.InstructionIndex,
		FeeAmount:            update.FeeAmount,
		IsUsingGlobalWallets: update.IsUsingGlobalWallets,
		Wallets:              update.Wallets,
		InstructionName:      update.InstructionName,
		CreatedAt:            old.CreatedAt,
	}
	return action.configReceipt(ft.TyLogFeeConfigUpdate, config), nil
}

func (action *Action) TransferFees(transfer *ft.FeeHubTransferFees) (*types.Receipt, error) {
	config, err := LoadConfig(action.db, transfer.TargetExec, transfer.InstructionIndex)
	if err != nil {
		return nil, err
	}
	return Distribute(config, action.coinsAccount, action.execaddr, action.fromaddr, transfer.Payees)
}

func checkConfig(wallets []*ft.FeeWallet, name string) error {
	if len(wallets) > ft.MaxFeeWallets {
		return ft.ErrFeeWalletCount
	}
	if len(name) > ft.MaxInstructionNameLen {
		return ft.ErrInstructionNameTooLong
	}
	return nil
}

func (action *Action) saveStateDB(config *ft.FeeConfig) {
	action.db.Set(ConfigKey(config.TargetExec, config.InstructionIndex), types.Encode(config))
}

func (action *Action) configReceipt(logTy int32, config *ft.FeeConfig) *types.Receipt {
	action.saveStateDB(config)
	kv := []*types.KeyValue{
		{Key: ConfigKey(config.TargetExec, config.InstructionIndex), Value: types.Encode(config)},
	}
	log := &types.ReceiptLog{
		Ty: logTy,
		Log: types.Encode(&ft.ReceiptFeeConfig{
			TargetExec:       config.TargetExec,
			InstructionIndex: config.InstructionIndex,
			Addr:             action.fromaddr,
		}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}
}
