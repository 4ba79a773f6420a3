package types

//auction action ty
const (
	AuctionActionAddCreator = iota + 1
	AuctionActionEditCreator
	AuctionActionRemoveCreator
	AuctionActionCreate
	AuctionActionBid
	AuctionActionClaim
	AuctionActionCancel
)

//auction 的receipt log 类型
const (
	TyLogCreatorAdd    = 801
	TyLogCreatorEdit   = 802
	TyLogCreatorRemove = 803
	TyLogAuctionCreate = 804
	TyLogAuctionBid    = 805
	TyLogAuctionClaim  = 806
	TyLogAuctionCancel = 807
	TyLogAuctionExtend = 808
)

const (
	// AuctionX 执行器名称
	AuctionX = "auction"

	// 加价方式
	TickOptionPercentage = int32(1)
	TickOptionFlat       = int32(2)

	// 创建者手续费方式
	FeeTypeNone       = int32(0)
	FeeTypePercentage = int32(1)
	FeeTypeFlat       = int32(2)

	// 奖品类别
	PrizeTypeToken      = int32(1)
	PrizeTypeCore       = int32(2)
	PrizeTypeCompressed = int32(3)

	// FeeDenominator 固定手续费的缩放分母
	FeeDenominator = int64(1000)
	// BidExtension 临近结束时的自动延时, 单位秒
	BidExtension = int64(300)
)

var (
	// ExecerAuction bytes形式的执行器名
	ExecerAuction = []byte(AuctionX)
)
