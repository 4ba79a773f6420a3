package executor

import (
	"testing"

	"github.com/hey-its-slowly/fee-governance-hub/common/db"
	ft "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/feehub/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin   = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	payer   = "1PUiGcbsccfxW3zuvHXZBJfznziph5miAo"
	wallet1 = "1MaP3rrwiLV1wrxPhDwAfHggtei1ByaKrP"
	wallet2 = "16htvcBNSEA7fZhAdLJphDwQRQJaHpyHTp"
	wallet3 = "1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj"
)

func initTestConfig() {
	types.SetConfig(&types.Config{
		Title:        "test",
		SuperAdmin:   admin,
		FeeHubAdmins: []string{admin},
		GlobalFeeWallets: []types.GlobalFeeWallet{
			{Addr: wallet1, Percent: 600},
			{Addr: wallet2, Percent: 400},
		},
	})
}

func newTestFeeHub(t *testing.T) (*FeeHub, db.KV) {
	initTestConfig()
	statedb, err := db.NewGoMemDB("feehub-test", "")
	require.NoError(t, err)
	f := newFeeHub().(*FeeHub)
	f.SetStateDB(statedb)
	f.SetEnv(100, 1700000000)
	return f, statedb
}

func execFeeHub(f *FeeHub, from string, action *ft.FeeHubAction) (*types.Receipt, error) {
	tx := &types.Transaction{
		Execer:  ft.ExecerFeeHub,
		Payload: types.Encode(action),
		From:    from,
		Nonce:   1,
	}
	return f.Exec(tx, 0)
}

func createConfigAction(wallets []*ft.FeeWallet, feeAmount int64, global bool) *ft.FeeHubAction {
	return &ft.FeeHubAction{
		Ty: ft.FeeHubActionCreateConfig,
		CreateConfig: &ft.FeeHubCreateConfig{
			TargetExec:           "fishing",
			InstructionIndex:     1,
			FeeAmount:            feeAmount,
			IsUsingGlobalWallets: global,
			Wallets:              wallets,
			InstructionName:      "create_game",
		},
	}
}

func TestCreateConfigAuth(t *testing.T) {
	f, _ := newTestFeeHub(t)
	action := createConfigAction([]*ft.FeeWallet{{Addr: wallet1, Percent: 1000}}, 1000, false)

	_, err := execFeeHub(f, payer, action)
	assert.Equal(t, ft.ErrFeeHubNotAdmin, err)

	receipt, err := execFeeHub(f, admin, action)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)

	//同一个 (target, index) 不允许重复创建
	_, err = execFeeHub(f, admin, action)
	assert.Equal(t, ft.ErrFeeConfigExists, err)
}

func TestCreateConfigLimits(t *testing.T) {
	f, _ := newTestFeeHub(t)

	tooMany := []*ft.FeeWallet{
		{Addr: wallet1, Percent: 250}, {Addr: wallet2, Percent: 250},
		{Addr: wallet3, Percent: 250}, {Addr: payer, Percent: 250},
	}
	_, err := execFeeHub(f, admin, createConfigAction(tooMany, 1000, false))
	assert.Equal(t, ft.ErrFeeWalletCount, err)

	action := createConfigAction([]*ft.FeeWallet{{Addr: wallet1, Percent: 1000}}, 1000, false)
	action.CreateConfig.InstructionName = "this_name_is_way_too_long_for_a_config"
	_, err = execFeeHub(f, admin, action)
	assert.Equal(t, ft.ErrInstructionNameTooLong, err)
}

func TestUpdateConfig(t *testing.T) {
	f, statedb := newTestFeeHub(t)

	update := &ft.FeeHubAction{
		Ty: ft.FeeHubActionUpdateConfig,
		UpdateConfig: &ft.FeeHubUpdateConfig{
			TargetExec:       "fishing",
			InstructionIndex: 1,
			FeeAmount:        2000,
			Wallets:          []*ft.FeeWallet{{Addr: wallet2, Percent: 1000}},
			InstructionName:  "create_game",
		},
	}
	_, err := execFeeHub(f, admin, update)
	assert.Equal(t, ft.ErrFeeConfigNotFound, err)

	_, err = execFeeHub(f, admin, createConfigAction([]*ft.FeeWallet{{Addr: wallet1, Percent: 1000}}, 1000, false))
	require.NoError(t, err)
	_, err = execFeeHub(f, admin, update)
	require.NoError(t, err)

	config, err := LoadConfig(statedb, "fishing", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), config.FeeAmount)
	assert.Equal(t, wallet2, config.Wallets[0].Addr)
}

func transferAction(payees []string) *ft.FeeHubAction {
	return &ft.FeeHubAction{
		Ty: ft.FeeHubActionTransferFees,
		TransferFees: &ft.FeeHubTransferFees{
			TargetExec:       "fishing",
			InstructionIndex: 1,
			Payees:           payees,
		},
	}
}

func TestTransferFees(t *testing.T) {
	f, _ := newTestFeeHub(t)
	execaddr := drivers.ExecAddress(ft.FeeHubX)
	coins := f.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: payer, Balance: 10000})

	wallets := []*ft.FeeWallet{{Addr: wallet1, Percent: 500}, {Addr: wallet2, Percent: 500}}
	_, err := execFeeHub(f, admin, createConfigAction(wallets, 1000, false))
	require.NoError(t, err)

	//顺序错误
	_, err = execFeeHub(f, payer, transferAction([]string{wallet2, wallet1}))
	assert.Equal(t, ft.ErrFeeWalletMismatch, err)

	//数量不符
	_, err = execFeeHub(f, payer, transferAction([]string{wallet1}))
	assert.Equal(t, ft.ErrFeeWalletMismatch, err)

	receipt, err := execFeeHub(f, payer, transferAction([]string{wallet1, wallet2}))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int64(9000), coins.LoadExecAccount(payer, execaddr).Balance)
	assert.Equal(t, int64(500), coins.LoadExecAccount(wallet1, execaddr).Balance)
	assert.Equal(t, int64(500), coins.LoadExecAccount(wallet2, execaddr).Balance)
}

func TestTransferFeesPercentSum(t *testing.T) {
	f, _ := newTestFeeHub(t)
	execaddr := drivers.ExecAddress(ft.FeeHubX)
	coins := f.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: payer, Balance: 10000})

	wallets := []*ft.FeeWallet{{Addr: wallet1, Percent: 999}}
	_, err := execFeeHub(f, admin, createConfigAction(wallets, 1000, false))
	require.NoError(t, err)

	_, err = execFeeHub(f, payer, transferAction([]string{wallet1}))
	assert.Equal(t, ft.ErrFeePercentSum, err)
}

func TestTransferFeesGlobalWallets(t *testing.T) {
	f, _ := newTestFeeHub(t)
	execaddr := drivers.ExecAddress(ft.FeeHubX)
	coins := f.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: payer, Balance: 10000})

	_, err := execFeeHub(f, admin, createConfigAction(nil, 1000, true))
	require.NoError(t, err)

	receipt, err := execFeeHub(f, payer, transferAction([]string{wallet1, wallet2}))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int64(600), coins.LoadExecAccount(wallet1, execaddr).Balance)
	assert.Equal(t, int64(400), coins.LoadExecAccount(wallet2, execaddr).Balance)
}

func TestFeeShareOverflow(t *testing.T) {
	_, err := feeShare(1000, int64(1)<<62)
	assert.Equal(t, types.ErrOverflow, err)

	share, err := feeShare(250, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(250), share)
}
