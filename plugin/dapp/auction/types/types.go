package types

import (
	"github.com/hey-its-slowly/fee-governance-hub/asset"
)

// Auction 一个奖品对应一条拍卖记录, 领奖或撤销后记录删除
type Auction struct {
	Creator          string `json:"creator"`
	PrizeID          string `json:"prizeId"`
	PrizeType        int32  `json:"prizeType"`
	Collection       string `json:"collection,omitempty"`
	AcceptedExec     string `json:"acceptedExec"`
	AcceptedSymbol   string `json:"acceptedSymbol"`
	AcceptedDecimals int32  `json:"acceptedDecimals"`
	Tag              string `json:"tag,omitempty"`
	Ended            bool   `json:"ended"`
	StartPrice       int64  `json:"startPrice"`
	CurrentBid       int64  `json:"currentBid"`
	CurrentWinner    string `json:"currentWinner,omitempty"`
	StartTime        int64  `json:"startTime"`
	EndTime          int64  `json:"endTime"`
	Destination      string `json:"destination"`
	BurnProceeds     bool   `json:"burnProceeds"`
	NumBids          int64  `json:"numBids"`
	TickOption       int32  `json:"tickOption"`
	TickAmount       int64  `json:"tickAmount"`
	CreatedAt        int64  `json:"createdAt"`
}

// Creator 经超级管理员注册的拍卖创建者及其手续费策略
// BackendWallet 非空时, 出价需要携带与之相同的后端授权
type Creator struct {
	Wallet        string `json:"wallet"`
	FeeType       int32  `json:"feeType"`
	FeeAmount     int64  `json:"feeAmount"`
	FeeWallet     string `json:"feeWallet,omitempty"`
	BackendWallet string `json:"backendWallet,omitempty"`
	CreatedAt     int64  `json:"createdAt"`
}

// AuctionAddCreator 注册创建者
type AuctionAddCreator struct {
	Wallet        string `json:"wallet"`
	FeeType       int32  `json:"feeType"`
	FeeAmount     int64  `json:"feeAmount"`
	FeeWallet     string `json:"feeWallet,omitempty"`
	BackendWallet string `json:"backendWallet,omitempty"`
}

// AuctionEditCreator 修改创建者的手续费策略
type AuctionEditCreator struct {
	Wallet        string `json:"wallet"`
	FeeType       int32  `json:"feeType"`
	FeeAmount     int64  `json:"feeAmount"`
	FeeWallet     string `json:"feeWallet,omitempty"`
	BackendWallet string `json:"backendWallet,omitempty"`
}

// AuctionRemoveCreator 注销创建者
type AuctionRemoveCreator struct {
	Wallet string `json:"wallet"`
}

// AuctionCreate 创建拍卖并把奖品锁入托管
type AuctionCreate struct {
	PrizeID          string       `json:"prizeId"`
	PrizeType        int32        `json:"prizeType"`
	Collection       string       `json:"collection,omitempty"`
	AcceptedExec     string       `json:"acceptedExec"`
	AcceptedSymbol   string       `json:"acceptedSymbol"`
	AcceptedDecimals int32        `json:"acceptedDecimals"`
	StartPrice       int64        `json:"startPrice"`
	StartTime        int64        `json:"startTime"`
	EndTime          int64        `json:"endTime"`
	Destination      string       `json:"destination,omitempty"`
	BurnProceeds     bool         `json:"burnProceeds"`
	Tag              string       `json:"tag,omitempty"`
	TickOption       int32        `json:"tickOption"`
	TickAmount       int64        `json:"tickAmount"`
	Proof            *asset.Proof `json:"proof,omitempty"`
}

// AuctionBid 出价. PrevBidder 必须等于记录中的当前领先者
type AuctionBid struct {
	PrizeID     string `json:"prizeId"`
	Amount      int64  `json:"amount"`
	PrevBidder  string `json:"prevBidder,omitempty"`
	BackendAuth string `json:"backendAuth,omitempty"`
}

// AuctionClaim 结算: 奖品给赢家, 价款按手续费策略分配
type AuctionClaim struct {
	PrizeID string       `json:"prizeId"`
	Claimer string       `json:"claimer,omitempty"`
	Proof   *asset.Proof `json:"proof,omitempty"`
}

// AuctionCancel 无人出价时撤销拍卖, 奖品退回创建者
type AuctionCancel struct {
	PrizeID string       `json:"prizeId"`
	Proof   *asset.Proof `json:"proof,omitempty"`
}

// AuctionAction auction 的action封装
type AuctionAction struct {
	Ty            int32                 `json:"ty"`
	AddCreator    *AuctionAddCreator    `json:"addCreator,omitempty"`
	EditCreator   *AuctionEditCreator   `json:"editCreator,omitempty"`
	RemoveCreator *AuctionRemoveCreator `json:"removeCreator,omitempty"`
	Create        *AuctionCreate        `json:"create,omitempty"`
	Bid           *AuctionBid           `json:"bid,omitempty"`
	Claim         *AuctionClaim         `json:"claim,omitempty"`
	Cancel        *AuctionCancel        `json:"cancel,omitempty"`
}

func (a *AuctionAction) GetAddCreator() *AuctionAddCreator {
	if a == nil {
		return nil
	}
	return a.AddCreator
}

func (a *AuctionAction) GetEditCreator() *AuctionEditCreator {
	if a == nil {
		return nil
	}
	return a.EditCreator
}

func (a *AuctionAction) GetRemoveCreator() *AuctionRemoveCreator {
	if a == nil {
		return nil
	}
	return a.RemoveCreator
}

func (a *AuctionAction) GetCreate() *AuctionCreate {
	if a == nil {
		return nil
	}
	return a.Create
}

func (a *AuctionAction) GetBid() *AuctionBid {
	if a == nil {
		return nil
	}
	return a.Bid
}

func (a *AuctionAction) GetClaim() *AuctionClaim {
	if a == nil {
		return nil
	}
	return a.Claim
}

func (a *AuctionAction) GetCancel() *AuctionCancel {
	if a == nil {
		return nil
	}
	return a.Cancel
}

// ReceiptCreator 创建者管理日志
type ReceiptCreator struct {
	Wallet string `json:"wallet"`
	Addr   string `json:"addr"`
}

// ReceiptAuction 拍卖状态变化日志
type ReceiptAuction struct {
	PrizeID       string `json:"prizeId"`
	Addr          string `json:"addr"`
	CurrentBid    int64  `json:"currentBid"`
	CurrentWinner string `json:"currentWinner,omitempty"`
	NumBids       int64  `json:"numBids"`
	EndTime       int64  `json:"endTime"`
}
