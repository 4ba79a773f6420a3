package executor

import (
	"github.com/hey-its-slowly/fee-governance-hub/account"
	"github.com/hey-its-slowly/fee-governance-hub/asset"
	"github.com/hey-its-slowly/fee-governance-hub/common/address"
	dbm "github.com/hey-its-slowly/fee-governance-hub/common/db"
	at "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/auction/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// Key 拍卖记录的状态数据库key
func Key(prizeID string) (key []byte) {
	key = append(key, []byte("mavl-"+at.AuctionX+"-")...)
	key = append(key, []byte(prizeID)...)
	return key
}

// CreatorKey 创建者记录的状态数据库key
func CreatorKey(wallet string) (key []byte) {
	key = append(key, []byte("mavl-"+at.AuctionX+"-creator-")...)
	key = append(key, []byte(wallet)...)
	return key
}

// VaultAddress 一个拍卖的托管地址, 由奖品id派生, 没有对应私钥
func VaultAddress(prizeID string) string {
	return address.DeriveAddress(at.AuctionX, prizeID)
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

func NewAction(a *Auction, tx *types.Transaction) *Action {
	return &Action{
		coinsAccount: a.GetCoinsAccount(),
		db:           a.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From,
		blocktime:    a.GetBlockTime(),
		height:       a.GetHeight(),
		execaddr:     drivers.ExecAddress(at.AuctionX),
	}
}

func loadAuction(db dbm.KV, prizeID string) (*at.Auction, error) {
	value, err := db.Get(Key(prizeID))
	if err == dbm.ErrNotFoundInDb || (err == nil && value == nil) {
		return nil, at.ErrAuctionNotFound
	}
	if err != nil {
		return nil, err
	}
	var auction at.Auction
	if err := types.Decode(value, &auction); err != nil {
		return nil, err
	}
	return &auction, nil
}

func loadCreator(db dbm.KV, wallet string) (*at.Creator, error) {
	value, err := db.Get(CreatorKey(wallet))
	if err == dbm.ErrNotFoundInDb || (err == nil && value == nil) {
		return nil, at.ErrCreatorNotFound
	}
	if err != nil {
		return nil, err
	}
	var creator at.Creator
	if err := types.Decode(value, &creator); err != nil {
		return nil, err
	}
	return &creator, nil
}

func (action *Action) AddCreator(add *at.AuctionAddCreator) (*types.Receipt, error) {
	if !types.IsSuperAdmin(action.fromaddr) {
		return nil, at.ErrNotSuperAdmin
	}
	if _, err := loadCreator(action.db, add.Wallet); err == nil {
		return nil, at.ErrCreatorExists
	} else if err != at.ErrCreatorNotFound {
		return nil, err
	}
	creator := &at.Creator{
		Wallet:        add.Wallet,
		FeeType:       add.FeeType,
		FeeAmount:     add.FeeAmount,
		FeeWallet:     add.FeeWallet,
		BackendWallet: add.BackendWallet,
		CreatedAt:     action.blocktime,
	}
	if creator.FeeWallet == "" {
		creator.FeeWallet = creator.Wallet
	}
	return action.creatorReceipt(at.TyLogCreatorAdd, creator), nil
}

func (action *Action) EditCreator(edit *at.AuctionEditCreator) (*types.Receipt, error) {
	if !types.IsSuperAdmin(action.fromaddr) {
		return nil, at.ErrNotSuperAdmin
	}
	creator, err := loadCreator(action.db, edit.Wallet)
	if err != nil {
		return nil, err
	}
	creator.FeeType = edit.FeeType
	creator.FeeAmount = edit.FeeAmount
	creator.FeeWallet = edit.FeeWallet
	creator.BackendWallet = edit.BackendWallet
	if creator.FeeWallet == "" {
		creator.FeeWallet = creator.Wallet
	}
	return action.creatorReceipt(at.TyLogCreatorEdit, creator), nil
}

func (action *Action) RemoveCreator(remove *at.AuctionRemoveCreator) (*types.Receipt, error) {
	if !types.IsSuperAdmin(action.fromaddr) {
		return nil, at.ErrNotSuperAdmin
	}
	if _, err := loadCreator(action.db, remove.Wallet); err != nil {
		return nil, err
	}
	action.db.Set(CreatorKey(remove.Wallet), nil)
	kv := []*types.KeyValue{{Key: CreatorKey(remove.Wallet), Value: nil}}
	log := &types.ReceiptLog{
		Ty:  at.TyLogCreatorRemove,
		Log: types.Encode(&at.ReceiptCreator{Wallet: remove.Wallet, Addr: action.fromaddr}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}, nil
}

func (action *Action) CreateAuction(create *at.AuctionCreate) (*types.Receipt, error) {
	if _, err := loadCreator(action.db, action.fromaddr); err != nil {
		if err != at.ErrCreatorNotFound || !types.IsSuperAdmin(action.fromaddr) {
			return nil, err
		}
	}
	if create.StartTime <= action.blocktime || create.EndTime <= create.StartTime {
		return nil, at.ErrAuctionTimes
	}
	if create.TickOption != at.TickOptionPercentage && create.TickOption != at.TickOptionFlat {
		return nil, at.ErrTickOption
	}
	//负的加价幅度会让最低出价下降
	if create.TickAmount < 0 {
		return nil, types.ErrAmount
	}
	if !types.CheckAmount(create.StartPrice) {
		return nil, types.ErrAmount
	}
	acceptedExec := create.AcceptedExec
	if acceptedExec == "" {
		acceptedExec = "coins"
	}
	if acceptedExec == "coins" && create.BurnProceeds {
		return nil, types.ErrBurnNativeAsset
	}
	if _, err := loadAuction(action.db, create.PrizeID); err == nil {
		return nil, at.ErrAuctionExists
	} else if err != at.ErrAuctionNotFound {
		return nil, err
	}

	auction := &at.Auction{
		Creator:          action.fromaddr,
		PrizeID:          create.PrizeID,
		PrizeType:        create.PrizeType,
		Collection:       create.Collection,
		AcceptedExec:     acceptedExec,
		AcceptedSymbol:   create.AcceptedSymbol,
		AcceptedDecimals: create.AcceptedDecimals,
		Tag:              create.Tag,
		StartPrice:       create.StartPrice,
		StartTime:        create.StartTime,
		EndTime:          create.EndTime,
		Destination:      create.Destination,
		BurnProceeds:     create.BurnProceeds,
		TickOption:       create.TickOption,
		TickAmount:       create.TickAmount,
		CreatedAt:        action.blocktime,
	}
	if auction.Destination == "" {
		auction.Destination = action.fromaddr
	}

	vault, err := action.prizeVault(auction, create.Proof)
	if err != nil {
		return nil, err
	}
	lock, err := vault.Lock(action.fromaddr)
	if err != nil {
		return nil, err
	}

	receipt := action.auctionReceipt(at.TyLogAuctionCreate, auction)
	receipt.KV = append(receipt.KV, lock.KV...)
	receipt.Logs = append(receipt.Logs, lock.Logs...)
	return receipt, nil
}

func (action *Action) PlaceBid(bid *at.AuctionBid) (*types.Receipt, error) {
	auction, err := loadAuction(action.db, bid.PrizeID)
	if err != nil {
		return nil, err
	}
	if auction.Ended {
		return nil, at.ErrAuctionEnded
	}
	if action.blocktime < auction.StartTime {
		return nil, at.ErrAuctionNotStarted
	}
	if action.blocktime >= auction.EndTime {
		return nil, at.ErrAuctionEnded
	}
	creator, err := loadCreator(action.db, auction.Creator)
	if err == nil && creator.BackendWallet != "" && bid.BackendAuth != creator.BackendWallet {
		return nil, at.ErrBackendAuth
	}
	minimum, err := minimumBid(auction)
	if err != nil {
		return nil, err
	}
	if bid.Amount < minimum {
		return nil, at.ErrBidTooLow
	}
	if auction.CurrentWinner != "" && bid.PrevBidder != auction.CurrentWinner {
		return nil, at.ErrPrevBidder
	}

	payAcc, err := action.paymentAccount(auction)
	if err != nil {
		return nil, err
	}
	vaultAddr := VaultAddress(auction.PrizeID)
	receipt := &types.Receipt{Ty: types.ExecOk}

	//先退还前一个领先者, 再收取新的出价, 两笔独立转账在同一笔交易内完成
	if auction.CurrentWinner != "" {
		refund, err := payAcc.ExecTransfer(vaultAddr, auction.CurrentWinner, action.execaddr, auction.CurrentBid)
		if err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, refund.KV...)
		receipt.Logs = append(receipt.Logs, refund.Logs...)
	}
	accept, err := payAcc.ExecTransfer(action.fromaddr, vaultAddr, action.execaddr, bid.Amount)
	if err != nil {
		return nil, err
	}
	receipt.KV = append(receipt.KV, accept.KV...)
	receipt.Logs = append(receipt.Logs, accept.Logs...)

	//临近结束的出价自动延时
	extended := false
	if auction.EndTime-action.blocktime < at.BidExtension {
		auction.EndTime = action.blocktime + at.BidExtension
		extended = true
	}
	auction.CurrentBid = bid.Amount
	auction.CurrentWinner = action.fromaddr
	auction.NumBids++

	update := action.auctionReceipt(at.TyLogAuctionBid, auction)
	receipt.KV = append(receipt.KV, update.KV...)
	receipt.Logs = append(receipt.Logs, update.Logs...)
	if extended {
		receipt.Logs = append(receipt.Logs, &types.ReceiptLog{
			Ty:  at.TyLogAuctionExtend,
			Log: types.Encode(&at.ReceiptAuction{PrizeID: auction.PrizeID, Addr: action.fromaddr, EndTime: auction.EndTime}),
		})
	}
	return receipt, nil
}

//最低出价: 首次为起拍价, 之后按加价方式累加.
//没有配置加价方式的历史记录按 1% 处理.
func minimumBid(auction *at.Auction) (int64, error) {
	if auction.NumBids == 0 {
		return auction.StartPrice, nil
	}
	var increment int64
	var err error
	switch auction.TickOption {
	case at.TickOptionPercentage:
		increment, err = checkedMul(auction.CurrentBid/100, auction.TickAmount)
		if err != nil {
			return 0, err
		}
	case at.TickOptionFlat:
		increment = auction.TickAmount
	default:
		increment = auction.CurrentBid / 100
	}
	return checkedAdd(auction.CurrentBid, increment)
}

func (action *Action) ClaimPrize(claim *at.AuctionClaim) (*types.Receipt, error) {
	auction, err := loadAuction(action.db, claim.PrizeID)
	if err != nil {
		return nil, err
	}
	if auction.Ended {
		return nil, at.ErrAuctionEnded
	}
	if action.blocktime < auction.EndTime {
		return nil, at.ErrAuctionNotEnded
	}
	claimer := auction.CurrentWinner
	if claimer == "" {
		claimer = auction.Creator
	}
	if claim.Claimer != "" && claim.Claimer != claimer {
		return nil, at.ErrNotWinner
	}
	if action.fromaddr != claimer && !types.IsSuperAdmin(action.fromaddr) {
		return nil, at.ErrNotWinner
	}

	vault, err := action.prizeVault(auction, claim.Proof)
	if err != nil {
		return nil, err
	}
	release, err := vault.Release(claimer)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.KV = append(receipt.KV, release.KV...)
	receipt.Logs = append(receipt.Logs, release.Logs...)

	if auction.CurrentBid > 0 {
		settle, err := action.settleProceeds(auction)
		if err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, settle.KV...)
		receipt.Logs = append(receipt.Logs, settle.Logs...)
	}

	closed := action.closeAuction(at.TyLogAuctionClaim, auction)
	receipt.KV = append(receipt.KV, closed.KV...)
	receipt.Logs = append(receipt.Logs, closed.Logs...)
	return receipt, nil
}

//按创建者的策略分配成交价款: 全额销毁, 或 destination 与手续费钱包分账
func (action *Action) settleProceeds(auction *at.Auction) (*types.Receipt, error) {
	creator, err := loadCreator(action.db, auction.Creator)
	if err == at.ErrCreatorNotFound {
		//创建者已注销, 价款全额给 destination
		creator = &at.Creator{Wallet: auction.Creator, FeeWallet: auction.Creator}
	} else if err != nil {
		return nil, err
	}
	payAcc, err := action.paymentAccount(auction)
	if err != nil {
		return nil, err
	}
	vaultAddr := VaultAddress(auction.PrizeID)

	if auction.BurnProceeds {
		return payAcc.ExecBurn(vaultAddr, action.execaddr, auction.CurrentBid)
	}

	fee := CalcFee(creator.FeeType, creator.FeeAmount, auction.CurrentBid, auction.AcceptedDecimals)
	proceeds, err := checkedSub(auction.CurrentBid, fee)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	if proceeds > 0 {
		transfer, err := payAcc.ExecTransfer(vaultAddr, auction.Destination, action.execaddr, proceeds)
		if err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, transfer.KV...)
		receipt.Logs = append(receipt.Logs, transfer.Logs...)
	}
	if fee > 0 {
		transfer, err := payAcc.ExecTransfer(vaultAddr, creator.FeeWallet, action.execaddr, fee)
		if err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, transfer.KV...)
		receipt.Logs = append(receipt.Logs, transfer.Logs...)
	}
	return receipt, nil
}

func (action *Action) CancelAuction(cancel *at.AuctionCancel) (*types.Receipt, error) {
	auction, err := loadAuction(action.db, cancel.PrizeID)
	if err != nil {
		return nil, err
	}
	if action.fromaddr != auction.Creator {
		return nil, at.ErrNotCreator
	}
	if auction.NumBids > 0 {
		return nil, at.ErrAuctionHasBids
	}
	vault, err := action.prizeVault(auction, cancel.Proof)
	if err != nil {
		return nil, err
	}
	release, err := vault.Release(auction.Creator)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	receipt.KV = append(receipt.KV, release.KV...)
	receipt.Logs = append(receipt.Logs, release.Logs...)

	closed := action.closeAuction(at.TyLogAuctionCancel, auction)
	receipt.KV = append(receipt.KV, closed.KV...)
	receipt.Logs = append(receipt.Logs, closed.Logs...)
	return receipt, nil
}

func (action *Action) prizeVault(auction *at.Auction, proof *asset.Proof) (asset.Vault, error) {
	vaultAddr := VaultAddress(auction.PrizeID)
	switch auction.PrizeType {
	case at.PrizeTypeToken:
		return asset.NewTokenVault("token", auction.PrizeID, action.db, action.execaddr, vaultAddr)
	case at.PrizeTypeCore:
		return asset.NewCoreVault(action.db, auction.PrizeID, auction.Collection, vaultAddr), nil
	case at.PrizeTypeCompressed:
		if proof == nil {
			return nil, at.ErrPrizeProof
		}
		return asset.NewCompressedVault(action.db, proof, vaultAddr), nil
	}
	return nil, at.ErrPrizeType
}

func (action *Action) paymentAccount(auction *at.Auction) (*account.DB, error) {
	if auction.AcceptedExec == "coins" {
		return action.coinsAccount, nil
	}
	return account.NewAccountDB(auction.AcceptedExec, auction.AcceptedSymbol, action.db)
}

func (action *Action) saveStateDB(auction *at.Auction) {
	action.db.Set(Key(auction.PrizeID), types.Encode(auction))
}

func (action *Action) auctionReceipt(logTy int32, auction *at.Auction) *types.Receipt {
	action.saveStateDB(auction)
	kv := []*types.KeyValue{{Key: Key(auction.PrizeID), Value: types.Encode(auction)}}
	log := &types.ReceiptLog{
		Ty: logTy,
		Log: types.Encode(&at.ReceiptAuction{
			PrizeID:       auction.PrizeID,
			Addr:          action.fromaddr,
			CurrentBid:    auction.CurrentBid,
			CurrentWinner: auction.CurrentWinner,
			NumBids:       auction.NumBids,
			EndTime:       auction.EndTime,
		}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}
}

//记录是终态的: 领奖或撤销后直接删除
func (action *Action) closeAuction(logTy int32, auction *at.Auction) *types.Receipt {
	auction.Ended = true
	action.db.Set(Key(auction.PrizeID), nil)
	kv := []*types.KeyValue{{Key: Key(auction.PrizeID), Value: nil}}
	log := &types.ReceiptLog{
		Ty: logTy,
		Log: types.Encode(&at.ReceiptAuction{
			PrizeID:       auction.PrizeID,
			Addr:          action.fromaddr,
			CurrentBid:    auction.CurrentBid,
			CurrentWinner: auction.CurrentWinner,
			NumBids:       auction.NumBids,
			EndTime:       auction.EndTime,
		}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}
}

func (action *Action) creatorReceipt(logTy int32, creator *at.Creator) *types.Receipt {
	action.db.Set(CreatorKey(creator.Wallet), types.Encode(creator))
	kv := []*types.KeyValue{{Key: CreatorKey(creator.Wallet), Value: types.Encode(creator)}}
	log := &types.ReceiptLog{
		Ty:  logTy,
		Log: types.Encode(&at.ReceiptCreator{Wallet: creator.Wallet, Addr: action.fromaddr}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: []*types.ReceiptLog{log}}
}
