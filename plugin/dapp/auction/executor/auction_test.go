package executor

import (
	"testing"

	"github.com/hey-its-slowly/fee-governance-hub/account"
	"github.com/hey-its-slowly/fee-governance-hub/asset"
	"github.com/hey-its-slowly/fee-governance-hub/common"
	"github.com/hey-its-slowly/fee-governance-hub/common/db"
	"github.com/hey-its-slowly/fee-governance-hub/common/merkle"
	at "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/auction/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	superAdmin  = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	creatorAddr = "1PUiGcbsccfxW3zuvHXZBJfznziph5miAo"
	feeWallet   = "1MaP3rrwiLV1wrxPhDwAfHggtei1ByaKrP"
	bidder1     = "16htvcBNSEA7fZhAdLJphDwQRQJaHpyHTp"
	bidder2     = "1Ka7EPFRqs3v9yreXG6qA4RQbNmbPJCZPj"
)

func newTestAuction(t *testing.T) (*Auction, db.KV) {
	types.SetConfig(&types.Config{Title: "test", SuperAdmin: superAdmin})
	statedb, err := db.NewGoMemDB("auction-test", "")
	require.NoError(t, err)
	a := newAuction().(*Auction)
	a.SetStateDB(statedb)
	a.SetEnv(100, 1000)
	return a, statedb
}

func execAuction(a *Auction, from string, action *at.AuctionAction) (*types.Receipt, error) {
	tx := &types.Transaction{
		Execer:  at.ExecerAuction,
		Payload: types.Encode(action),
		From:    from,
		Nonce:   1,
	}
	return a.Exec(tx, 0)
}

func registerCreator(t *testing.T, a *Auction, feeType int32, feeAmount int64) {
	action := &at.AuctionAction{
		Ty: at.AuctionActionAddCreator,
		AddCreator: &at.AuctionAddCreator{
			Wallet:    creatorAddr,
			FeeType:   feeType,
			FeeAmount: feeAmount,
			FeeWallet: feeWallet,
		},
	}
	_, err := execAuction(a, superAdmin, action)
	require.NoError(t, err)
}

//奖品是一枚 (token, prizeID) 下的单位token, 先放进创建者的合约子账户
func seedPrize(t *testing.T, statedb db.KV, prizeID string) *account.DB {
	prizeAcc, err := account.NewAccountDB("token", prizeID, statedb)
	require.NoError(t, err)
	prizeAcc.SaveExecAccount(drivers.ExecAddress(at.AuctionX), &types.Account{Addr: creatorAddr, Balance: 1})
	return prizeAcc
}

func createAction(prizeID string, startTime, endTime int64) *at.AuctionAction {
	return &at.AuctionAction{
		Ty: at.AuctionActionCreate,
		Create: &at.AuctionCreate{
			PrizeID:      prizeID,
			PrizeType:    at.PrizeTypeToken,
			AcceptedExec: "coins",
			StartPrice:   100,
			StartTime:    startTime,
			EndTime:      endTime,
			TickOption:   at.TickOptionFlat,
			TickAmount:   10,
		},
	}
}

func bidAction(prizeID string, amount int64, prevBidder string) *at.AuctionAction {
	return &at.AuctionAction{
		Ty:  at.AuctionActionBid,
		Bid: &at.AuctionBid{PrizeID: prizeID, Amount: amount, PrevBidder: prevBidder},
	}
}

func TestCreatorManagement(t *testing.T) {
	a, statedb := newTestAuction(t)

	add := &at.AuctionAction{
		Ty:         at.AuctionActionAddCreator,
		AddCreator: &at.AuctionAddCreator{Wallet: creatorAddr, FeeType: at.FeeTypePercentage, FeeAmount: 10},
	}
	_, err := execAuction(a, creatorAddr, add)
	assert.Equal(t, at.ErrNotSuperAdmin, err)

	_, err = execAuction(a, superAdmin, add)
	require.NoError(t, err)
	_, err = execAuction(a, superAdmin, add)
	assert.Equal(t, at.ErrCreatorExists, err)

	creator, err := loadCreator(statedb, creatorAddr)
	require.NoError(t, err)
	//手续费钱包缺省回落到创建者自己
	assert.Equal(t, creatorAddr, creator.FeeWallet)

	edit := &at.AuctionAction{
		Ty:          at.AuctionActionEditCreator,
		EditCreator: &at.AuctionEditCreator{Wallet: creatorAddr, FeeType: at.FeeTypeFlat, FeeAmount: 5, FeeWallet: feeWallet},
	}
	_, err = execAuction(a, superAdmin, edit)
	require.NoError(t, err)
	creator, err = loadCreator(statedb, creatorAddr)
	require.NoError(t, err)
	assert.Equal(t, at.FeeTypeFlat, creator.FeeType)
	assert.Equal(t, feeWallet, creator.FeeWallet)

	remove := &at.AuctionAction{
		Ty:            at.AuctionActionRemoveCreator,
		RemoveCreator: &at.AuctionRemoveCreator{Wallet: creatorAddr},
	}
	_, err = execAuction(a, superAdmin, remove)
	require.NoError(t, err)
	_, err = loadCreator(statedb, creatorAddr)
	assert.Equal(t, at.ErrCreatorNotFound, err)
}

func TestCreateAuctionValidation(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypePercentage, 10)
	seedPrize(t, statedb, "PRIZE1")

	//未注册的创建者
	_, err := execAuction(a, bidder1, createAction("PRIZE1", 1100, 2000))
	assert.Equal(t, at.ErrCreatorNotFound, err)

	//开始时间必须在未来
	_, err = execAuction(a, creatorAddr, createAction("PRIZE1", 1000, 2000))
	assert.Equal(t, at.ErrAuctionTimes, err)

	//结束必须晚于开始
	_, err = execAuction(a, creatorAddr, createAction("PRIZE1", 1100, 1100))
	assert.Equal(t, at.ErrAuctionTimes, err)

	//加价方式必须显式指定
	badTick := createAction("PRIZE1", 1100, 2000)
	badTick.Create.TickOption = 0
	_, err = execAuction(a, creatorAddr, badTick)
	assert.Equal(t, at.ErrTickOption, err)

	//原生资产不可销毁
	badBurn := createAction("PRIZE1", 1100, 2000)
	badBurn.Create.BurnProceeds = true
	_, err = execAuction(a, creatorAddr, badBurn)
	assert.Equal(t, types.ErrBurnNativeAsset, err)

	_, err = execAuction(a, creatorAddr, createAction("PRIZE1", 1100, 2000))
	require.NoError(t, err)

	//同一个奖品不允许重复拍卖
	_, err = execAuction(a, creatorAddr, createAction("PRIZE1", 1100, 2000))
	assert.Equal(t, at.ErrAuctionExists, err)
}

func TestAuctionLifecycle(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypePercentage, 10)
	prizeAcc := seedPrize(t, statedb, "PRIZE1")
	execaddr := drivers.ExecAddress(at.AuctionX)
	vaultAddr := VaultAddress("PRIZE1")

	coins := a.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: bidder1, Balance: 500})
	coins.SaveExecAccount(execaddr, &types.Account{Addr: bidder2, Balance: 500})

	_, err := execAuction(a, creatorAddr, createAction("PRIZE1", 1100, 2000))
	require.NoError(t, err)
	//奖品已锁入托管
	assert.Equal(t, int64(1), prizeAcc.LoadExecAccount(vaultAddr, execaddr).Balance)

	//未开始
	a.SetEnv(101, 1050)
	_, err = execAuction(a, bidder1, bidAction("PRIZE1", 100, ""))
	assert.Equal(t, at.ErrAuctionNotStarted, err)

	a.SetEnv(102, 1200)
	//低于起拍价
	_, err = execAuction(a, bidder1, bidAction("PRIZE1", 99, ""))
	assert.Equal(t, at.ErrBidTooLow, err)

	_, err = execAuction(a, bidder1, bidAction("PRIZE1", 100, ""))
	require.NoError(t, err)
	assert.Equal(t, int64(100), coins.LoadExecAccount(vaultAddr, execaddr).Balance)
	assert.Equal(t, int64(400), coins.LoadExecAccount(bidder1, execaddr).Balance)

	//低于当前价加固定加价幅度 (100+10)
	_, err = execAuction(a, bidder2, bidAction("PRIZE1", 105, bidder1))
	assert.Equal(t, at.ErrBidTooLow, err)

	//前一个领先者对不上
	_, err = execAuction(a, bidder2, bidAction("PRIZE1", 110, bidder2))
	assert.Equal(t, at.ErrPrevBidder, err)

	_, err = execAuction(a, bidder2, bidAction("PRIZE1", 110, bidder1))
	require.NoError(t, err)
	//前一个领先者已退款, 托管余额始终等于当前价
	assert.Equal(t, int64(500), coins.LoadExecAccount(bidder1, execaddr).Balance)
	assert.Equal(t, int64(390), coins.LoadExecAccount(bidder2, execaddr).Balance)
	assert.Equal(t, int64(110), coins.LoadExecAccount(vaultAddr, execaddr).Balance)

	auction, err := loadAuction(statedb, "PRIZE1")
	require.NoError(t, err)
	assert.Equal(t, int64(110), auction.CurrentBid)
	assert.Equal(t, bidder2, auction.CurrentWinner)
	assert.Equal(t, int64(2), auction.NumBids)

	//已有出价不可撤销
	cancel := &at.AuctionAction{Ty: at.AuctionActionCancel, Cancel: &at.AuctionCancel{PrizeID: "PRIZE1"}}
	_, err = execAuction(a, creatorAddr, cancel)
	assert.Equal(t, at.ErrAuctionHasBids, err)

	//未到结束时间不可领奖
	claim := &at.AuctionAction{Ty: at.AuctionActionClaim, Claim: &at.AuctionClaim{PrizeID: "PRIZE1"}}
	_, err = execAuction(a, bidder2, claim)
	assert.Equal(t, at.ErrAuctionNotEnded, err)

	a.SetEnv(103, 2100)
	//只有赢家或超级管理员可以领奖
	_, err = execAuction(a, bidder1, claim)
	assert.Equal(t, at.ErrNotWinner, err)

	_, err = execAuction(a, bidder2, claim)
	require.NoError(t, err)
	//奖品给赢家
	assert.Equal(t, int64(1), prizeAcc.LoadExecAccount(bidder2, execaddr).Balance)
	assert.Equal(t, int64(0), prizeAcc.LoadExecAccount(vaultAddr, execaddr).Balance)
	//110 按 10% 分成手续费 11 和价款 99
	assert.Equal(t, int64(99), coins.LoadExecAccount(creatorAddr, execaddr).Balance)
	assert.Equal(t, int64(11), coins.LoadExecAccount(feeWallet, execaddr).Balance)
	assert.Equal(t, int64(0), coins.LoadExecAccount(vaultAddr, execaddr).Balance)

	//记录是终态的
	_, err = loadAuction(statedb, "PRIZE1")
	assert.Equal(t, at.ErrAuctionNotFound, err)
	_, err = execAuction(a, bidder2, claim)
	assert.Equal(t, at.ErrAuctionNotFound, err)
}

func TestAntiSnipeExtension(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypeNone, 0)
	seedPrize(t, statedb, "PRIZE2")
	execaddr := drivers.ExecAddress(at.AuctionX)

	coins := a.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: bidder1, Balance: 500})

	_, err := execAuction(a, creatorAddr, createAction("PRIZE2", 1100, 1500))
	require.NoError(t, err)

	//距结束不足 300 的出价把结束时间顺延到 now+300
	a.SetEnv(101, 1400)
	_, err = execAuction(a, bidder1, bidAction("PRIZE2", 100, ""))
	require.NoError(t, err)

	auction, err := loadAuction(statedb, "PRIZE2")
	require.NoError(t, err)
	assert.Equal(t, int64(1700), auction.EndTime)

	//原定结束时间已过, 但延时后的拍卖仍在进行
	a.SetEnv(102, 1600)
	claim := &at.AuctionAction{Ty: at.AuctionActionClaim, Claim: &at.AuctionClaim{PrizeID: "PRIZE2"}}
	_, err = execAuction(a, bidder1, claim)
	assert.Equal(t, at.ErrAuctionNotEnded, err)
}

func TestCancelAuction(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypeNone, 0)
	prizeAcc := seedPrize(t, statedb, "PRIZE3")
	execaddr := drivers.ExecAddress(at.AuctionX)
	vaultAddr := VaultAddress("PRIZE3")

	_, err := execAuction(a, creatorAddr, createAction("PRIZE3", 1100, 2000))
	require.NoError(t, err)
	assert.Equal(t, int64(1), prizeAcc.LoadExecAccount(vaultAddr, execaddr).Balance)

	cancel := &at.AuctionAction{Ty: at.AuctionActionCancel, Cancel: &at.AuctionCancel{PrizeID: "PRIZE3"}}
	_, err = execAuction(a, bidder1, cancel)
	assert.Equal(t, at.ErrNotCreator, err)

	_, err = execAuction(a, creatorAddr, cancel)
	require.NoError(t, err)
	//奖品退回创建者, 记录删除
	assert.Equal(t, int64(1), prizeAcc.LoadExecAccount(creatorAddr, execaddr).Balance)
	_, err = loadAuction(statedb, "PRIZE3")
	assert.Equal(t, at.ErrAuctionNotFound, err)
}

func TestClaimNoBidsReturnsPrize(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypePercentage, 10)
	prizeAcc := seedPrize(t, statedb, "PRIZE4")
	execaddr := drivers.ExecAddress(at.AuctionX)

	_, err := execAuction(a, creatorAddr, createAction("PRIZE4", 1100, 2000))
	require.NoError(t, err)

	//无人出价时到期由创建者收回, 不产生任何价款分配
	a.SetEnv(101, 2100)
	claim := &at.AuctionAction{Ty: at.AuctionActionClaim, Claim: &at.AuctionClaim{PrizeID: "PRIZE4"}}
	_, err = execAuction(a, creatorAddr, claim)
	require.NoError(t, err)
	assert.Equal(t, int64(1), prizeAcc.LoadExecAccount(creatorAddr, execaddr).Balance)
}

func TestBurnProceeds(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypePercentage, 10)
	seedPrize(t, statedb, "PRIZE5")
	execaddr := drivers.ExecAddress(at.AuctionX)
	vaultAddr := VaultAddress("PRIZE5")

	payAcc, err := account.NewAccountDB("token", "USDT", statedb)
	require.NoError(t, err)
	payAcc.SaveExecAccount(execaddr, &types.Account{Addr: bidder1, Balance: 500})

	action := createAction("PRIZE5", 1100, 2000)
	action.Create.AcceptedExec = "token"
	action.Create.AcceptedSymbol = "USDT"
	action.Create.BurnProceeds = true
	_, err = execAuction(a, creatorAddr, action)
	require.NoError(t, err)

	a.SetEnv(101, 1200)
	_, err = execAuction(a, bidder1, bidAction("PRIZE5", 100, ""))
	require.NoError(t, err)

	a.SetEnv(102, 2100)
	claim := &at.AuctionAction{Ty: at.AuctionActionClaim, Claim: &at.AuctionClaim{PrizeID: "PRIZE5"}}
	_, err = execAuction(a, bidder1, claim)
	require.NoError(t, err)
	//价款全额销毁, 不给任何人
	assert.Equal(t, int64(0), payAcc.LoadExecAccount(vaultAddr, execaddr).Balance)
	assert.Equal(t, int64(0), payAcc.LoadExecAccount(creatorAddr, execaddr).Balance)
	assert.Equal(t, int64(0), payAcc.LoadExecAccount(feeWallet, execaddr).Balance)
}

func TestBackendWalletAuth(t *testing.T) {
	a, statedb := newTestAuction(t)
	backend := "1JmFaA6unrCFYEWPGRi7uuXY1KthTJxJEP"
	add := &at.AuctionAction{
		Ty: at.AuctionActionAddCreator,
		AddCreator: &at.AuctionAddCreator{
			Wallet:        creatorAddr,
			FeeType:       at.FeeTypeNone,
			BackendWallet: backend,
		},
	}
	_, err := execAuction(a, superAdmin, add)
	require.NoError(t, err)

	seedPrize(t, statedb, "PRIZE6")
	execaddr := drivers.ExecAddress(at.AuctionX)
	coins := a.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: bidder1, Balance: 500})

	_, err = execAuction(a, creatorAddr, createAction("PRIZE6", 1100, 2000))
	require.NoError(t, err)

	a.SetEnv(101, 1200)
	_, err = execAuction(a, bidder1, bidAction("PRIZE6", 100, ""))
	assert.Equal(t, at.ErrBackendAuth, err)

	authorized := bidAction("PRIZE6", 100, "")
	authorized.Bid.BackendAuth = backend
	_, err = execAuction(a, bidder1, authorized)
	require.NoError(t, err)
}

func TestNegativeTickRejected(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypeNone, 0)
	seedPrize(t, statedb, "PRIZE7")
	execaddr := drivers.ExecAddress(at.AuctionX)
	coins := a.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: bidder1, Balance: 500})
	coins.SaveExecAccount(execaddr, &types.Account{Addr: bidder2, Balance: 500})

	//负的加价幅度在创建时就被拒绝
	negative := createAction("PRIZE7", 1100, 2000)
	negative.Create.TickAmount = -50
	_, err := execAuction(a, creatorAddr, negative)
	assert.Equal(t, types.ErrAmount, err)

	_, err = execAuction(a, creatorAddr, createAction("PRIZE7", 1100, 2000))
	require.NoError(t, err)

	a.SetEnv(101, 1200)
	_, err = execAuction(a, bidder1, bidAction("PRIZE7", 100, ""))
	require.NoError(t, err)

	//当前价只升不降
	_, err = execAuction(a, bidder2, bidAction("PRIZE7", 60, bidder1))
	assert.Equal(t, at.ErrBidTooLow, err)
	auction, err := loadAuction(statedb, "PRIZE7")
	require.NoError(t, err)
	assert.Equal(t, int64(100), auction.CurrentBid)
}

func TestCorePrizeAuction(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypeNone, 0)
	execaddr := drivers.ExecAddress(at.AuctionX)
	vaultAddr := VaultAddress("CORE1")
	coins := a.GetCoinsAccount()
	coins.SaveExecAccount(execaddr, &types.Account{Addr: bidder1, Balance: 500})

	record := &asset.CoreAsset{ID: "CORE1", Owner: creatorAddr, Collection: "col-1"}
	require.NoError(t, statedb.Set(asset.CoreAssetKey("CORE1"), types.Encode(record)))

	create := createAction("CORE1", 1100, 2000)
	create.Create.PrizeType = at.PrizeTypeCore
	create.Create.Collection = "col-1"
	_, err := execAuction(a, creatorAddr, create)
	require.NoError(t, err)

	//登记记录落库, 持有人已经是托管地址
	assert.Equal(t, vaultAddr, loadCoreOwner(t, statedb, "CORE1"))

	//无人出价时撤销, 奖品回到创建者
	cancel := &at.AuctionAction{Ty: at.AuctionActionCancel, Cancel: &at.AuctionCancel{PrizeID: "CORE1"}}
	_, err = execAuction(a, creatorAddr, cancel)
	require.NoError(t, err)
	assert.Equal(t, creatorAddr, loadCoreOwner(t, statedb, "CORE1"))

	//重新上拍, 有出价后由赢家领走
	_, err = execAuction(a, creatorAddr, create)
	require.NoError(t, err)
	a.SetEnv(101, 1200)
	_, err = execAuction(a, bidder1, bidAction("CORE1", 100, ""))
	require.NoError(t, err)
	a.SetEnv(102, 2100)
	claim := &at.AuctionAction{Ty: at.AuctionActionClaim, Claim: &at.AuctionClaim{PrizeID: "CORE1"}}
	_, err = execAuction(a, bidder1, claim)
	require.NoError(t, err)
	assert.Equal(t, bidder1, loadCoreOwner(t, statedb, "CORE1"))
	_, err = loadAuction(statedb, "CORE1")
	assert.Equal(t, at.ErrAuctionNotFound, err)
}

func loadCoreOwner(t *testing.T, statedb db.KV, id string) string {
	value, err := statedb.Get(asset.CoreAssetKey(id))
	require.NoError(t, err)
	var record asset.CoreAsset
	require.NoError(t, types.Decode(value, &record))
	return record.Owner
}

func TestCompressedPrizeAuction(t *testing.T) {
	a, statedb := newTestAuction(t)
	registerCreator(t, a, at.FeeTypeNone, 0)
	vaultAddr := VaultAddress("CTREE1")

	dataHash := common.Sha256([]byte("data"))
	creatorHash := common.Sha256([]byte("creator"))
	leaves := [][]byte{
		asset.LeafHash(dataHash, creatorHash, 0, "other-0"),
		asset.LeafHash(dataHash, creatorHash, 1, creatorAddr),
	}
	root := merkle.GetMerkleRoot(leaves)
	proof := &asset.Proof{
		TreeID:      "CTREE1",
		Root:        root,
		DataHash:    dataHash,
		CreatorHash: creatorHash,
		Nonce:       1,
		Index:       1,
		Path:        merkle.GetMerkleBranch(leaves, 1),
	}

	//压缩奖品必须携带证明
	create := createAction("CTREE1", 1100, 2000)
	create.Create.PrizeType = at.PrizeTypeCompressed
	_, err := execAuction(a, creatorAddr, create)
	assert.Equal(t, at.ErrPrizeProof, err)

	create.Create.Proof = proof
	_, err = execAuction(a, creatorAddr, create)
	require.NoError(t, err)

	//树记录落库, 叶子持有人重写为托管地址
	leaves[1] = asset.LeafHash(dataHash, creatorHash, 1, vaultAddr)
	assert.Equal(t, merkle.GetMerkleRoot(leaves), loadTreeRoot(t, statedb, "CTREE1"))

	//流拍后创建者凭同一条路径领回, 树回到原状
	a.SetEnv(101, 2100)
	claim := &at.AuctionAction{
		Ty:    at.AuctionActionClaim,
		Claim: &at.AuctionClaim{PrizeID: "CTREE1", Proof: proof},
	}
	_, err = execAuction(a, creatorAddr, claim)
	require.NoError(t, err)
	assert.Equal(t, root, loadTreeRoot(t, statedb, "CTREE1"))
	_, err = loadAuction(statedb, "CTREE1")
	assert.Equal(t, at.ErrAuctionNotFound, err)
}

func loadTreeRoot(t *testing.T, statedb db.KV, treeID string) []byte {
	value, err := statedb.Get(asset.CompressedTreeKey(treeID))
	require.NoError(t, err)
	var tree asset.CompressedTree
	require.NoError(t, types.Decode(value, &tree))
	return tree.Root
}
