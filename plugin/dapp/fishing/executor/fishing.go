package executor

import (
	log "github.com/inconshreveable/log15"

	pt "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/fishing/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

var flog = log.New("module", "execs.fishing")

func init() {
	drivers.Register(pt.FishingX, newFishing)
}

// Fishing 钓鱼游戏执行器
type Fishing struct {
	drivers.DriverBase
}

func newFishing() drivers.Driver {
	f := &Fishing{}
	f.SetChild(f)
	return f
}

func (f *Fishing) GetDriverName() string {
	return pt.FishingX
}

func (f *Fishing) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action pt.FishingAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	flog.Debug("exec fishing tx", "ty", action.Ty, "from", tx.From)
	actiondb := NewAction(f, tx)
	switch {
	case action.Ty == pt.FishingActionCreateGame && action.GetCreateGame() != nil:
		return actiondb.CreateGame(action.GetCreateGame())
	case action.Ty == pt.FishingActionEditGame && action.GetEditGame() != nil:
		return actiondb.EditGame(action.GetEditGame())
	case action.Ty == pt.FishingActionAddReward && action.GetAddReward() != nil:
		return actiondb.AddReward(action.GetAddReward())
	case action.Ty == pt.FishingActionEditReward && action.GetEditReward() != nil:
		return actiondb.EditReward(action.GetEditReward())
	case action.Ty == pt.FishingActionRemoveReward && action.GetRemoveReward() != nil:
		return actiondb.RemoveReward(action.GetRemoveReward())
	case action.Ty == pt.FishingActionDepositReward && action.GetDepositReward() != nil:
		return actiondb.DepositReward(action.GetDepositReward())
	case action.Ty == pt.FishingActionWithdrawReward && action.GetWithdrawReward() != nil:
		return actiondb.WithdrawReward(action.GetWithdrawReward())
	case action.Ty == pt.FishingActionWithdrawPayment && action.GetWithdrawPayment() != nil:
		return actiondb.WithdrawPayment(action.GetWithdrawPayment())
	case action.Ty == pt.FishingActionFlip && action.GetFlip() != nil:
		return actiondb.Flip(action.GetFlip())
	case action.Ty == pt.FishingActionSendPayout && action.GetSendPayout() != nil:
		return actiondb.SendPayout(action.GetSendPayout())
	case action.Ty == pt.FishingActionCreateColleague && action.GetCreateColleague() != nil:
		return actiondb.CreateColleague(action.GetCreateColleague())
	case action.Ty == pt.FishingActionRemoveColleague && action.GetRemoveColleague() != nil:
		return actiondb.RemoveColleague(action.GetRemoveColleague())
	}
	return nil, types.ErrActionNotSupport
}
