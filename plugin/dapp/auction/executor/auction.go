package executor

import (
	log "github.com/inconshreveable/log15"

	at "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/auction/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

var alog = log.New("module", "execs.auction")

func init() {
	drivers.Register(at.AuctionX, newAuction)
}

// Auction 拍卖执行器
type Auction struct {
	drivers.DriverBase
}

func newAuction() drivers.Driver {
	a := &Auction{}
	a.SetChild(a)
	return a
}

func (a *Auction) GetDriverName() string {
	return at.AuctionX
}

func (a *Auction) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action at.AuctionAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	alog.Debug("exec auction tx", "ty", action.Ty, "from", tx.From)
	actiondb := NewAction(a, tx)
	if action.Ty == at.AuctionActionAddCreator && action.GetAddCreator() != nil {
		return actiondb.AddCreator(action.GetAddCreator())
	} else if action.Ty == at.AuctionActionEditCreator && action.GetEditCreator() != nil {
		return actiondb.EditCreator(action.GetEditCreator())
	} else if action.Ty == at.AuctionActionRemoveCreator && action.GetRemoveCreator() != nil {
		return actiondb.RemoveCreator(action.GetRemoveCreator())
	} else if action.Ty == at.AuctionActionCreate && action.GetCreate() != nil {
		return actiondb.CreateAuction(action.GetCreate())
	} else if action.Ty == at.AuctionActionBid && action.GetBid() != nil {
		return actiondb.PlaceBid(action.GetBid())
	} else if action.Ty == at.AuctionActionClaim && action.GetClaim() != nil {
		return actiondb.ClaimPrize(action.GetClaim())
	} else if action.Ty == at.AuctionActionCancel && action.GetCancel() != nil {
		return actiondb.CancelAuction(action.GetCancel())
	}
	return nil, types.ErrActionNotSupport
}
