package executor

import (
	log "github.com/inconshreveable/log15"

	ft "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/feehub/types"
	drivers "github.com/hey-its-slowly/fee-governance-hub/system/dapp"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

var flog = log.New("module", "execs.feehub")

func init() {
	drivers.Register(ft.FeeHubX, newFeeHub)
}

// FeeHub 分账配置执行器
type FeeHub struct {
	drivers.DriverBase
}

func newFeeHub() drivers.Driver {
	f := &FeeHub{}
	f.SetChild(f)
	return f
}

func (f *FeeHub) GetDriverName() string {
	return ft.FeeHubX
}

func (f *FeeHub) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action ft.FeeHubAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	flog.Debug("exec feehub tx", "ty", action.Ty, "from", tx.From)
	actiondb := NewAction(f, tx)
	if action.Ty == ft.FeeHubActionCreateConfig && action.GetCreateConfig() != nil {
		return actiondb.CreateConfig(action.GetCreateConfig())
	} else if action.Ty == ft.FeeHubActionUpdateConfig && action.GetUpdateConfig() != nil {
		return actiondb.UpdateConfig(action.GetUpdateConfig())
	} else if action.Ty == ft.FeeHubActionTransferFees && action.GetTransferFees() != nil {
		return actiondb.TransferFees(action.GetTransferFees())
	}
	return nil, types.ErrActionNotSupport
}
