package executor

import (
	"github.com/hey-its-slowly/fee-governance-hub/account"
	"github.com/hey-its-slowly/fee-governance-hub/common/address"
	dbm "github.com/hey-its-slowly/fee-governance-hub/common/db"
	feehub "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/feehub/executor"
	pt "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/fishing/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// Key 游戏记录的状态数据库key
func Key(authority, gameID string) (key []byte) {
	key = append(key, []byte("mavl-"+pt.FishingX+"-")...)
	key = append(key, []byte(authority+":"+gameID)...)
	return key
}

// ColleagueKey 合作者记录的状态数据库key
func ColleagueKey(wallet string) (key []byte) {
	key = append(key, []byte("mavl-"+pt.FishingX+"-colleague-")...)
	key = append(key, []byte(wallet)...)
	return key
}

// VaultAddress 一个游戏的托管地址
func VaultAddress(authority, gameID string) string {
	return address.DeriveAddress(pt.FishingX, authority, gameID)
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

func NewAction(f *Fishing, tx *types.Transaction) *Action {
	return &Action{
		coinsAccount: f.GetCoinsAccount(),
		db:           f.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		blocktime:    f.GetBlockTime(),
		height:       f.GetHeight(),
		execaddr:     drivers.ExecAddress(pt.FishingX),
	}
}

func loadGame(db dbm.KV, authority, gameID string) (*pt.Game, error) {
	value, err := db.Get(Key(authority, gameID))
	if err == dbm.ErrNotFoundInDb || (err == nil && value == nil) {
		return nil, pt.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	var game pt.Game
	if err := types.Decode(value, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func loadColleague(db dbm.KV, wallet string) (*pt.Colleague, error) {
	value, err := db.Get(ColleagueKey(wallet))
	if err == dbm.ErrNotFoundInDb || (err == nil && value == nil) {
		return nil, pt.ErrColleagueMissing
	}
	if err != nil {
		return nil, err
	}
	var colleague pt.Colleague
	if err := types.Decode(value, &colleague); err != nil {
		return nil, err
	}
	return &colleague, nil
}

func (action *Action) CreateGame(create *pt.FishingCreateGame) (*types.Receipt, error) {
	if _, err := loadGame(action.db, action.fromaddr, create.GameID); err == nil {
		return nil, pt.ErrGameExists
	} else if err != pt.ErrGameNotFound {
		return nil, err
	}
	if !types.CheckAmount(create.UnitValue) {
		return nil, types.ErrAmount
	}
	paymentExec := create.PaymentExec
	if paymentExec == "" {
		paymentExec = "coins"
	}

	receipt := &types.Receipt{Ty: types.ExecOk}
	colleague, err := loadColleague(action.db, action.fromaddr)
	if err == nil {
		//合作者免创建费, 只累计场次
		colleague.NumGames++
		action.db.Set(ColleagueKey(colleague.Wallet), types.Encode(colleague))
		receipt.KV = append(receipt.KV, &types.KeyValue{
			Key:   ColleagueKey(colleague.Wallet),
			Value: types.Encode(colleague),
		})
	} else if err == pt.ErrColleagueMissing {
		config, err := feehub.LoadConfig(action.db, pt.FishingX, pt.FeeInstructionCreateGame)
		if err != nil {
			return nil, err
		}
		fees, err := feehub.Distribute(config, action.coinsAccount, action.execaddr, action.fromaddr, create.Payees)
		if err != nil {
			return nil, err
		}
		appendReceipt(receipt, fees)
	} else {
		return nil, err
	}

	game := &pt.Game{
		Authority:        action.fromaddr,
		GameID:           create.GameID,
		PaymentExec:      paymentExec,
		PaymentSymbol:    create.PaymentSymbol,
		PaymentDecimals:  create.PaymentDecimals,
		PaymentUnitValue: create.UnitValue,
		CreatedAt:        action.blocktime,
	}
	appendReceipt(receipt, action.gameReceipt(pt.TyLogGameCreate, game, 0, 0, 0))
	return receipt, nil
}

func (action *Action) EditGame(edit *pt.FishingEditGame) (*types.Receipt, error) {
	game, err := loadGame(action.db, action.fromaddr, edit.GameID)
	if err != nil {
		return nil, err
	}
	if !types.CheckAmount(edit.UnitValue) {
		return nil, types.ErrAmount
	}
	game.PaymentUnitValue = edit.UnitValue
	return action.gameReceipt(pt.TyLogGameEdit, game, 0, 0, 0), nil
}

func (action *Action) AddReward(add *pt.FishingAddReward) (*types.Receipt, error) {
	game, err := loadGame(action.db, action.fromaddr, add.GameID)
	if err != nil {
		return nil, err
	}
	if len(game.Rewards) >= pt.MaxRewards {
		return nil, pt.ErrRewardCount
	}
	if err := checkRarity(game, add.Rarity, 0); err != nil {
		return nil, err
	}
	if !types.CheckAmount(add.UnitValue) {
		return nil, types.ErrAmount
	}
	id := int64(1)
	if n := len(game.Rewards); n > 0 {
		id = game.Rewards[n-1].ID + 1
	}
	game.Rewards = append(game.Rewards, &pt.RewardToken{
		ID:        id,
		Symbol:    add.Symbol,
		UnitValue: add.UnitValue,
		Decimals:  add.Decimals,
		Rarity:    add.Rarity,
	})
	return action.gameReceipt(pt.TyLogRewardAdd, game, id, add.Rarity, 0), nil
}

func (action *Action) EditReward(edit *pt.FishingEditReward) (*types.Receipt, error) {
	game, err := loadGame(action.db, action.fromaddr, edit.GameID)
	if err != nil {
		return nil, err
	}
	reward := findReward(game, edit.RewardID)
	if reward == nil {
		return nil, pt.ErrRewardNotFound
	}
	if err := checkRarity(game, edit.Rarity, edit.RewardID); err != nil {
		return nil, err
	}
	if !types.CheckAmount(edit.UnitValue) {
		return nil, types.ErrAmount
	}

	receipt := &types.Receipt{Ty: types.ExecOk}
	//单份价值变化时, 按差额乘以库存补足或退还托管
	if reward.NumUnits > 0 && edit.UnitValue != reward.UnitValue {
		rewardAcc, err := account.NewAccountDB("token", reward.Symbol, action.db)
		if err != nil {
			return nil, err
		}
		vaultAddr := VaultAddress(game.Authority, game.GameID)
		var delta int64
		var from, to string
		if edit.UnitValue > reward.UnitValue {
			delta, err = checkedMul(edit.UnitValue-reward.UnitValue, reward.NumUnits)
			from, to = action.fromaddr, vaultAddr
		} else {
			delta, err = checkedMul(reward.UnitValue-edit.UnitValue, reward.NumUnits)
			from, to = vaultAddr, action.fromaddr
		}
		if err != nil {
			return nil, err
		}
		transfer, err := rewardAcc.ExecTransfer(from, to, action.execaddr, delta)
		if err != nil {
			return nil, err
		}
		appendReceipt(receipt, transfer)
	}

	reward.UnitValue = edit.UnitValue
	reward.Rarity = edit.Rarity
	appendReceipt(receipt, action.gameReceipt(pt.TyLogRewardEdit, game, reward.ID, reward.Rarity, 0))
	return receipt, nil
}

func (action *Action) RemoveReward(remove *pt.FishingRemoveReward) (*types.Receipt, error) {
	game, err := loadGame(action.db, action.fromaddr, remove.GameID)
	if err != nil {
		return nil, err
	}
	reward := findReward(game, remove.RewardID)
	if reward == nil {
		return nil, pt.ErrRewardNotFound
	}
	if reward.NumUnits > 0 {
		return nil, pt.ErrRewardNotEmpty
	}
	rewards := game.Rewards[:0]
	for _, r := range game.Rewards {
		if r.ID != remove.RewardID {
			rewards = append(rewards, r)
		}
	}
	game.Rewards = rewards
	return action.gameReceipt(pt.TyLogRewardRemove, game, remove.RewardID, 0, 0), nil
}

func (action *Action) DepositReward(deposit *pt.FishingDepositReward) (*types.Receipt, error) {
	return action.moveRewardStock(deposit.GameID, deposit.RewardID, deposit.NumUnits, true)
}

func (action *Action) WithdrawReward(withdraw *pt.FishingWithdrawReward) (*types.Receipt, error) {
	return action.moveRewardStock(withdraw.GameID, withdraw.RewardID, withdraw.NumUnits, false)
}

func (action *Action) moveRewardStock(gameID string, rewardID, numUnits int64, deposit bool) (*types.Receipt, error) {
	game, err := loadGame(action.db, action.fromaddr, gameID)
	if err != nil {
		return nil, err
	}
	reward := findReward(game, rewardID)
	if reward == nil {
		return nil, pt.ErrRewardNotFound
	}
	if numUnits <= 0 {
		return nil, types.ErrAmount
	}
	amount, err := checkedMul(numUnits, reward.UnitValue)
	if err != nil {
		return nil, err
	}
	rewardAcc, err := account.NewAccountDB("token", reward.Symbol, action.db)
	if err != nil {
		return nil, err
	}
	vaultAddr := VaultAddress(game.Authority, game.GameID)

	receipt := &types.Receipt{Ty: types.ExecOk}
	logTy := int32(pt.TyLogRewardDeposit)
	if deposit {
		transfer, err := rewardAcc.ExecTransfer(action.fromaddr, vaultAddr, action.execaddr, amount)
		if err != nil {
			return nil, err
		}
		appendReceipt(receipt, transfer)
		reward.NumUnits, err = checkedAdd(reward.NumUnits, numUnits)
		if err != nil {
			return nil, err
		}
	} else {
		if numUnits > reward.NumUnits {
			return nil, pt.ErrRewardStock
		}
		transfer, err := rewardAcc.ExecTransfer(vaultAddr, action.fromaddr, action.execaddr, amount)
		if err != nil {
			return nil, err
		}
		appendReceipt(receipt, transfer)
		reward.NumUnits -= numUnits
		logTy = pt.TyLogRewardWithdraw
	}
	appendReceipt(receipt, action.gameReceipt(logTy, game, rewardID, reward.Rarity, amount))
	return receipt, nil
}

func (action *Action) WithdrawPayment(withdraw *pt.FishingWithdrawPayment) (*types.Receipt, error) {
	game, err := loadGame(action.db, action.fromaddr, withdraw.GameID)
	if err != nil {
		return nil, err
	}
	if game.PaymentAmount <= 0 {
		return nil, types.ErrNoBalance
	}
	payAcc, err := action.paymentAccount(game)
	if err != nil {
		return nil, err
	}
	vaultAddr := VaultAddress(game.Authority, game.GameID)
	transfer, err := payAcc.ExecTransfer(vaultAddr, game.Authority, action.execaddr, game.PaymentAmount)
	if err != nil {
		return nil, err
	}
	amount := game.PaymentAmount
	game.PaymentAmount = 0

	receipt := &types.Receipt{Ty: types.ExecOk}
	appendReceipt(receipt, transfer)
	appendReceipt(receipt, action.gameReceipt(pt.TyLogPaymentWithdraw, game, 0, 0, amount))
	return receipt, nil
}

func (action *Action) Flip(flip *pt.FishingFlip) (*types.Receipt, error) {
	game, err := loadGame(action.db, flip.Authority, flip.GameID)
	if err != nil {
		return nil, err
	}
	if len(game.PendingPlayers) >= pt.MaxPendingPlayers {
		return nil, pt.ErrPendingFull
	}
	for _, pending := range game.PendingPlayers {
		if pending == action.fromaddr {
			return nil, pt.ErrAlreadyPending
		}
	}
	//每个档位的库存都要能覆盖所有未开奖的玩家, 否则停止接新
	for _, reward := range game.Rewards {
		if reward.NumUnits <= int64(len(game.PendingPlayers)) {
			return nil, pt.ErrFlipStarvation
		}
	}

	receipt := &types.Receipt{Ty: types.ExecOk}
	config, err := feehub.LoadConfig(action.db, pt.FishingX, pt.FeeInstructionFlip)
	if err != nil {
		return nil, err
	}
	fees, err := feehub.Distribute(config, action.coinsAccount, action.execaddr, action.fromaddr, flip.Payees)
	if err != nil {
		return nil, err
	}
	appendReceipt(receipt, fees)

	payAcc, err := action.paymentAccount(game)
	if err != nil {
		return nil, err
	}
	vaultAddr := VaultAddress(game.Authority, game.GameID)
	payment, err := payAcc.ExecTransfer(action.fromaddr, vaultAddr, action.execaddr, game.PaymentUnitValue)
	if err != nil {
		return nil, err
	}
	appendReceipt(receipt, payment)

	game.NumFlips++
	game.PaymentAmount, err = checkedAdd(game.PaymentAmount, game.PaymentUnitValue)
	if err != nil {
		return nil, err
	}
	game.PendingPlayers = append(game.PendingPlayers, action.fromaddr)

	appendReceipt(receipt, action.gameReceipt(pt.TyLogFlip, game, 0, 0, game.PaymentUnitValue))
	return receipt, nil
}

func (action *Action) SendPayout(payout *pt.FishingSendPayout) (*types.Receipt, error) {
	if !types.IsSuperAdmin(action.fromaddr) {
		return nil, pt.ErrNotSuperAdmin
	}
	game, err := loadGame(action.db, payout.Authority, payout.GameID)
	if err != nil {
		return nil, err
	}
	//没有记录的参与不能开奖
	found := false
	pending := game.PendingPlayers[:0]
	for _, player := range game.PendingPlayers {
		if player == payout.Player && !found {
			found = true
			continue
		}
		pending = append(pending, player)
	}
	if !found {
		return nil, pt.ErrPlayerNotPending
	}
	game.PendingPlayers = pending

	receipt := &types.Receipt{Ty: types.ExecOk}
	if payout.Rarity > 0 {
		reward := findReward(game, payout.RewardID)
		if reward == nil {
			return nil, pt.ErrRewardNotFound
		}
		if reward.NumUnits <= 0 {
			return nil, pt.ErrRewardStock
		}
		if payout.Symbol != reward.Symbol {
			return nil, pt.ErrRewardSymbol
		}
		rewardAcc, err := account.NewAccountDB("token", reward.Symbol, action.db)
		if err != nil {
			return nil, err
		}
		vaultAddr := VaultAddress(game.Authority, game.GameID)
		transfer, err := rewardAcc.ExecTransfer(vaultAddr, payout.Player, action.execaddr, reward.UnitValue)
		if err != nil {
			return nil, err
		}
		appendReceipt(receipt, transfer)
		reward.NumUnits--
		reward.NumWinners++
	}
	appendReceipt(receipt, action.gameReceipt(pt.TyLogPayout, game, payout.RewardID, payout.Rarity, 0))
	return receipt, nil
}

func (action *Action) CreateColleague(create *pt.FishingCreateColleague) (*types.Receipt, error) {
	if !types.IsSuperAdmin(action.fromaddr) {
		return nil, pt.ErrNotSuperAdmin
	}
	if _, err := loadColleague(action.db, create.Wallet); err == nil {
		return nil, pt.ErrColleagueExists
	} else if err != pt.ErrColleagueMissing {
		return nil, err
	}
	colleague := &pt.Colleague{Wallet: create.Wallet, CreatedAt: action.blocktime}
	return action.colleagueReceipt(pt.TyLogColleagueAdd, colleague), nil
}

func (action *Action) RemoveColleague(remove *pt.FishingRemoveColleague) (*types.Receipt, error) {
	if !types.IsSuperAdmin(action.fromaddr) {
		return nil, pt.ErrNotSuperAdmin
	}
	if _, err := loadColleague(action.db, remove.Wallet); err != nil {
		return nil, err
	}
	action.db.Set(ColleagueKey(remove.Wallet), nil)
	kv := []*types.KeyValue{{Key: ColleagueKey(remove.Wallet), Value: nil}}
	log := &types.ReceiptLog{
		Ty:  pt.TyLogColleagueRemove,
		Log: types.Encode(&pt.ReceiptColleague{Wallet: remove.Wallet, Addr: action.fromaddr}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}, nil
}

func (action *Action) paymentAccount(game *pt.Game) (*account.DB, error) {
	if game.PaymentExec == "coins" {
		return action.coinsAccount, nil
	}
	return account.NewAccountDB(game.PaymentExec, game.PaymentSymbol, action.db)
}

func findReward(game *pt.Game, rewardID int64) *pt.RewardToken {
	for _, reward := range game.Rewards {
		if reward.ID == rewardID {
			return reward
		}
	}
	return nil
}

//普通档位允许重复, 其余稀有度全局唯一. self 是编辑时被豁免的档位id.
func checkRarity(game *pt.Game, rarity int32, self int64) error {
	if rarity <= pt.RarityCommon {
		return nil
	}
	for _, reward := range game.Rewards {
		if reward.ID != self && reward.Rarity == rarity {
			return pt.ErrDuplicateRarity
		}
	}
	return nil
}

func appendReceipt(dst, src *types.Receipt) {
	dst.KV = append(dst.KV, src.KV...)
	dst.Logs = append(dst.Logs, src.Logs...)
}

func (action *Action) saveStateDB(game *pt.Game) {
	action.db.Set(Key(game.Authority, game.GameID), types.Encode(game))
}

func (action *Action) gameReceipt(logTy int32, game *pt.Game, rewardID int64, rarity int32, amount int64) *types.Receipt {
	action.saveStateDB(game)
	kv := []*types.KeyValue{{Key: Key(game.Authority, game.GameID), Value: types.Encode(game)}}
	log := &types.ReceiptLog{
		Ty: logTy,
		Log: types.Encode(&pt.ReceiptGame{
			Authority: game.Authority,
			GameID:    game.GameID,
			Addr:      action.fromaddr,
			RewardID:  rewardID,
			Rarity:    rarity,
			Amount:    amount,
		}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}
}

func (action *Action) colleagueReceipt(logTy int32, colleague *pt.Colleague) *types.Receipt {
	action.db.Set(ColleagueKey(colleague.Wallet), types.Encode(colleague))
	kv := []*types.KeyValue{{Key: ColleagueKey(colleague.Wallet), Value: types.Encode(colleague)}}
	log := &types.ReceiptLog{
		Ty:  logTy,
		Log: types.Encode(&pt.ReceiptColleague{Wallet: colleague.Wallet, Addr: action.fromaddr}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}
}
