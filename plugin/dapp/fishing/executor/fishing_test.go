package executor

import (
	"testing"

	"github.com/hey-its-slowly/fee-governance-hub/account"
	"github.com/hey-its-slowly/fee-governance-hub/common/db"
	feehub "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/feehub/executor"
	ft "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/feehub/types"
	pt "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/fishing/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	superAdmin = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	authority  = "1PUiGcbsccfxW3zuvHXZBJfznziph5miAo"
	feeWallet  = "1MaP3rrwiLV1wrxPhDwAfHggtei1ByaKrP"
	player1    = "16htvcBNSEA7fZhAdLJphDwQRQJaHpyHTp"
	player2    = "1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj"
	player3    = "1JmFaA6unrCFYEWPGRi7uuXY1KthTJxJEP"
)

func newTestFishing(t *testing.T) (*Fishing, db.KV) {
	types.SetConfig(&types.Config{Title: "test", SuperAdmin: superAdmin})
	statedb, err := db.NewGoMemDB("fishing-test", "")
	require.NoError(t, err)
	f := newFishing().(*Fishing)
	f.SetStateDB(statedb)
	f.SetEnv(100, 1000)

	//feehub 里的两条 fishing 配置: 建游戏费 100, 单次参与费 10
	seedFeeConfig(t, statedb, pt.FeeInstructionCreateGame, 100)
	seedFeeConfig(t, statedb, pt.FeeInstructionFlip, 10)
	return f, statedb
}

func seedFeeConfig(t *testing.T, statedb db.KV, instruction, feeAmount int64) {
	config := &ft.FeeConfig{
		TargetExec:       pt.FishingX,
		InstructionIndex: instruction,
		FeeAmount:        feeAmount,
		Wallets:          []*ft.FeeWallet{{Addr: feeWallet, Percent: 1000}},
	}
	require.NoError(t, statedb.Set(feehub.ConfigKey(pt.FishingX, instruction), types.Encode(config)))
}

func execFishing(f *Fishing, from string, action *pt.FishingAction) (*types.Receipt, error) {
	tx := &types.Transaction{
		Execer:  pt.ExecerFishing,
		Payload: types.Encode(action),
		From:    from,
		Nonce:   1,
	}
	return f.Exec(tx, 0)
}

func createGameAction(gameID string, unitValue int64) *pt.FishingAction {
	return &pt.FishingAction{
		Ty: pt.FishingActionCreateGame,
		CreateGame: &pt.FishingCreateGame{
			GameID:      gameID,
			PaymentExec: "coins",
			UnitValue:   unitValue,
			Payees:      []string{feeWallet},
		},
	}
}

func setupGame(t *testing.T, f *Fishing) {
	execaddr := drivers.ExecAddress(pt.FishingX)
	coins := f.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: authority, Balance: 10000})
	_, err := execFishing(f, authority, createGameAction("g1", 50))
	require.NoError(t, err)
}

func addRewardAction(gameID, symbol string, unitValue int64, rarity int32) *pt.FishingAction {
	return &pt.FishingAction{
		Ty: pt.FishingActionAddReward,
		AddReward: &pt.FishingAddReward{
			GameID:    gameID,
			Symbol:    symbol,
			Decimals:  8,
			UnitValue: unitValue,
			Rarity:    rarity,
		},
	}
}

func TestCreateGame(t *testing.T) {
	f, statedb := newTestFishing(t)
	execaddr := drivers.ExecAddress(pt.FishingX)
	coins := f.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: authority, Balance: 1000})

	_, err := execFishing(f, authority, createGameAction("g1", 50))
	require.NoError(t, err)

	//建游戏费走了 feehub 分账
	assert.Equal(t, int64(900), coins.LoadExecAccount(authority, execaddr).Balance)
	assert.Equal(t, int64(100), coins.LoadExecAccount(feeWallet, execaddr).Balance)

	game, err := loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), game.PaymentUnitValue)

	_, err = execFishing(f, authority, createGameAction("g1", 50))
	assert.Equal(t, pt.ErrGameExists, err)
}

func TestCreateGameColleagueExempt(t *testing.T) {
	f, statedb := newTestFishing(t)
	execaddr := drivers.ExecAddress(pt.FishingX)
	coins := f.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: authority, Balance: 1000})

	addColleague := &pt.FishingAction{
		Ty:              pt.FishingActionCreateColleague,
		CreateColleague: &pt.FishingCreateColleague{Wallet: authority},
	}
	_, err := execFishing(f, authority, addColleague)
	assert.Equal(t, pt.ErrNotSuperAdmin, err)
	_, err = execFishing(f, superAdmin, addColleague)
	require.NoError(t, err)
	_, err = execFishing(f, superAdmin, addColleague)
	assert.Equal(t, pt.ErrColleagueExists, err)

	_, err = execFishing(f, authority, createGameAction("g1", 50))
	require.NoError(t, err)

	//合作者不收建游戏费, 只累计场次
	assert.Equal(t, int64(1000), coins.LoadExecAccount(authority, execaddr).Balance)
	colleague, err := loadColleague(statedb, authority)
	require.NoError(t, err)
	assert.Equal(t, int64(1), colleague.NumGames)
}

func TestRewardBuckets(t *testing.T) {
	f, statedb := newTestFishing(t)
	setupGame(t, f)

	_, err := execFishing(f, authority, addRewardAction("g1", "FISH", 10, 2))
	require.NoError(t, err)
	//普通档位允许重复
	_, err = execFishing(f, authority, addRewardAction("g1", "FISH", 10, pt.RarityCommon))
	require.NoError(t, err)
	_, err = execFishing(f, authority, addRewardAction("g1", "FISH", 10, pt.RarityCommon))
	require.NoError(t, err)
	//非普通稀有度全局唯一
	_, err = execFishing(f, authority, addRewardAction("g1", "FISH", 10, 2))
	assert.Equal(t, pt.ErrDuplicateRarity, err)

	game, err := loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	require.Len(t, game.Rewards, 3)
	//id 依次递增
	assert.Equal(t, int64(1), game.Rewards[0].ID)
	assert.Equal(t, int64(3), game.Rewards[2].ID)

	//到达档位上限
	for i := 0; i < pt.MaxRewards-3; i++ {
		_, err = execFishing(f, authority, addRewardAction("g1", "FISH", 10, pt.RarityCommon))
		require.NoError(t, err)
	}
	_, err = execFishing(f, authority, addRewardAction("g1", "FISH", 10, pt.RarityCommon))
	assert.Equal(t, pt.ErrRewardCount, err)
}

func TestRewardStock(t *testing.T) {
	f, statedb := newTestFishing(t)
	setupGame(t, f)
	execaddr := drivers.ExecAddress(pt.FishingX)
	vaultAddr := VaultAddress(authority, "g1")

	rewardAcc, err := account.NewAccountDB("token", "FISH", statedb)
	require.NoError(t, err)
	rewardAcc.SaveExecAccount(execaddr, &types.Account{Addr: authority, Balance: 1000})

	_, err = execFishing(f, authority, addRewardAction("g1", "FISH", 10, 2))
	require.NoError(t, err)

	deposit := &pt.FishingAction{
		Ty:            pt.FishingActionDepositReward,
		DepositReward: &pt.FishingDepositReward{GameID: "g1", RewardID: 1, NumUnits: 5},
	}
	_, err = execFishing(f, authority, deposit)
	require.NoError(t, err)
	assert.Equal(t, int64(50), rewardAcc.LoadExecAccount(vaultAddr, execaddr).Balance)

	game, err := loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), game.Rewards[0].NumUnits)

	//库存未清空不可删除
	remove := &pt.FishingAction{
		Ty:           pt.FishingActionRemoveReward,
		RemoveReward: &pt.FishingRemoveReward{GameID: "g1", RewardID: 1},
	}
	_, err = execFishing(f, authority, remove)
	assert.Equal(t, pt.ErrRewardNotEmpty, err)

	//超出库存的提取被拒绝
	withdraw := &pt.FishingAction{
		Ty:             pt.FishingActionWithdrawReward,
		WithdrawReward: &pt.FishingWithdrawReward{GameID: "g1", RewardID: 1, NumUnits: 6},
	}
	_, err = execFishing(f, authority, withdraw)
	assert.Equal(t, pt.ErrRewardStock, err)

	withdraw.WithdrawReward.NumUnits = 5
	_, err = execFishing(f, authority, withdraw)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rewardAcc.LoadExecAccount(vaultAddr, execaddr).Balance)

	_, err = execFishing(f, authority, remove)
	require.NoError(t, err)
	game, err = loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	assert.Len(t, game.Rewards, 0)
}

func TestEditRewardCustodyDelta(t *testing.T) {
	f, statedb := newTestFishing(t)
	setupGame(t, f)
	execaddr := drivers.ExecAddress(pt.FishingX)
	vaultAddr := VaultAddress(authority, "g1")

	rewardAcc, err := account.NewAccountDB("token", "FISH", statedb)
	require.NoError(t, err)
	rewardAcc.SaveExecAccount(execaddr, &types.Account{Addr: authority, Balance: 1000})

	_, err = execFishing(f, authority, addRewardAction("g1", "FISH", 10, 2))
	require.NoError(t, err)
	deposit := &pt.FishingAction{
		Ty:            pt.FishingActionDepositReward,
		DepositReward: &pt.FishingDepositReward{GameID: "g1", RewardID: 1, NumUnits: 5},
	}
	_, err = execFishing(f, authority, deposit)
	require.NoError(t, err)

	//单份 10 -> 15, 差额 5*5=25 由管理者补进托管
	edit := &pt.FishingAction{
		Ty:         pt.FishingActionEditReward,
		EditReward: &pt.FishingEditReward{GameID: "g1", RewardID: 1, UnitValue: 15, Rarity: 2},
	}
	_, err = execFishing(f, authority, edit)
	require.NoError(t, err)
	assert.Equal(t, int64(75), rewardAcc.LoadExecAccount(vaultAddr, execaddr).Balance)

	//15 -> 8, 差额 7*5=35 退回管理者
	edit.EditReward.UnitValue = 8
	_, err = execFishing(f, authority, edit)
	require.NoError(t, err)
	assert.Equal(t, int64(40), rewardAcc.LoadExecAccount(vaultAddr, execaddr).Balance)
	assert.Equal(t, int64(960), rewardAcc.LoadExecAccount(authority, execaddr).Balance)
}

func setupFlippableGame(t *testing.T, f *Fishing, statedb db.KV, stock int64) *account.DB {
	setupGame(t, f)
	execaddr := drivers.ExecAddress(pt.FishingX)

	rewardAcc, err := account.NewAccountDB("token", "FISH", statedb)
	require.NoError(t, err)
	rewardAcc.SaveExecAccount(execaddr, &types.Account{Addr: authority, Balance: 1000})
	_, err = execFishing(f, authority, addRewardAction("g1", "FISH", 10, 2))
	require.NoError(t, err)
	deposit := &pt.FishingAction{
		Ty:            pt.FishingActionDepositReward,
		DepositReward: &pt.FishingDepositReward{GameID: "g1", RewardID: 1, NumUnits: stock},
	}
	_, err = execFishing(f, authority, deposit)
	require.NoError(t, err)

	coins := f.GetCoinsAccount()
	for _, player := range []string{player1, player2, player3} {
		coins.SaveExecAccount(execaddr, &types.Account{Addr: player, Balance: 1000})
	}
	return rewardAcc
}

func flipAction() *pt.FishingAction {
	return &pt.FishingAction{
		Ty:   pt.FishingActionFlip,
		Flip: &pt.FishingFlip{Authority: authority, GameID: "g1", Payees: []string{feeWallet}},
	}
}

func TestFlipGuards(t *testing.T) {
	f, statedb := newTestFishing(t)
	setupFlippableGame(t, f, statedb, 2)
	execaddr := drivers.ExecAddress(pt.FishingX)
	vaultAddr := VaultAddress(authority, "g1")
	coins := f.GetCoinsAccount()

	_, err := execFishing(f, player1, flipAction())
	require.NoError(t, err)
	//参与费 10 + 单次价格 50
	assert.Equal(t, int64(940), coins.LoadExecAccount(player1, execaddr).Balance)
	assert.Equal(t, int64(50), coins.LoadExecAccount(vaultAddr, execaddr).Balance)

	//同一个玩家只能有一笔未开奖的参与
	_, err = execFishing(f, player1, flipAction())
	assert.Equal(t, pt.ErrAlreadyPending, err)

	_, err = execFishing(f, player2, flipAction())
	require.NoError(t, err)

	//库存 2, 未开奖 2, 不够覆盖新玩家
	_, err = execFishing(f, player3, flipAction())
	assert.Equal(t, pt.ErrFlipStarvation, err)

	game, err := loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), game.NumFlips)
	assert.Equal(t, int64(100), game.PaymentAmount)
	assert.Equal(t, []string{player1, player2}, game.PendingPlayers)
}

func payoutAction(player string, rewardID int64, rarity int32) *pt.FishingAction {
	return &pt.FishingAction{
		Ty: pt.FishingActionSendPayout,
		SendPayout: &pt.FishingSendPayout{
			Authority: authority,
			GameID:    "g1",
			Player:    player,
			RewardID:  rewardID,
			Symbol:    "FISH",
			Rarity:    rarity,
		},
	}
}

func TestSendPayout(t *testing.T) {
	f, statedb := newTestFishing(t)
	rewardAcc := setupFlippableGame(t, f, statedb, 3)
	execaddr := drivers.ExecAddress(pt.FishingX)

	_, err := execFishing(f, player1, flipAction())
	require.NoError(t, err)
	_, err = execFishing(f, player2, flipAction())
	require.NoError(t, err)

	//只有超级管理员可以开奖
	_, err = execFishing(f, authority, payoutAction(player1, 1, 2))
	assert.Equal(t, pt.ErrNotSuperAdmin, err)

	//没有参与记录的玩家不能开奖
	_, err = execFishing(f, superAdmin, payoutAction(player3, 1, 2))
	assert.Equal(t, pt.ErrPlayerNotPending, err)

	//不存在的档位
	_, err = execFishing(f, superAdmin, payoutAction(player1, 99, 2))
	assert.Equal(t, pt.ErrRewardNotFound, err)

	//奖励资产必须和档位登记的一致
	wrongSymbol := payoutAction(player1, 1, 2)
	wrongSymbol.SendPayout.Symbol = "TUNA"
	_, err = execFishing(f, superAdmin, wrongSymbol)
	assert.Equal(t, pt.ErrRewardSymbol, err)

	//中奖: 一份奖励给玩家, 库存减一
	_, err = execFishing(f, superAdmin, payoutAction(player1, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(10), rewardAcc.LoadExecAccount(player1, execaddr).Balance)

	game, err := loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), game.Rewards[0].NumUnits)
	assert.Equal(t, int64(1), game.Rewards[0].NumWinners)
	assert.Equal(t, []string{player2}, game.PendingPlayers)

	//未中奖: 不动库存, 只移出等待队列
	_, err = execFishing(f, superAdmin, payoutAction(player2, 0, 0))
	require.NoError(t, err)
	game, err = loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), game.Rewards[0].NumUnits)
	assert.Len(t, game.PendingPlayers, 0)

	//同一个玩家不能重复开奖
	_, err = execFishing(f, superAdmin, payoutAction(player2, 0, 0))
	assert.Equal(t, pt.ErrPlayerNotPending, err)
}

func TestWithdrawPayment(t *testing.T) {
	f, statedb := newTestFishing(t)
	setupFlippableGame(t, f, statedb, 3)
	execaddr := drivers.ExecAddress(pt.FishingX)
	coins := f.GetCoinsAccount()

	_, err := execFishing(f, player1, flipAction())
	require.NoError(t, err)
	_, err = execFishing(f, player2, flipAction())
	require.NoError(t, err)

	before := coins.LoadExecAccount(authority, execaddr).Balance
	withdraw := &pt.FishingAction{
		Ty:              pt.FishingActionWithdrawPayment,
		WithdrawPayment: &pt.FishingWithdrawPayment{GameID: "g1"},
	}
	_, err = execFishing(f, authority, withdraw)
	require.NoError(t, err)
	assert.Equal(t, before+100, coins.LoadExecAccount(authority, execaddr).Balance)

	game, err := loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), game.PaymentAmount)

	//已清零后再次提取失败
	_, err = execFishing(f, authority, withdraw)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestEditGame(t *testing.T) {
	f, statedb := newTestFishing(t)
	setupGame(t, f)

	edit := &pt.FishingAction{
		Ty:       pt.FishingActionEditGame,
		EditGame: &pt.FishingEditGame{GameID: "g1", UnitValue: 80},
	}
	//只有创建者能改自己的游戏
	_, err := execFishing(f, player1, edit)
	assert.Equal(t, pt.ErrGameNotFound, err)

	_, err = execFishing(f, authority, edit)
	require.NoError(t, err)
	game, err := loadGame(statedb, authority, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(80), game.PaymentUnitValue)
}
