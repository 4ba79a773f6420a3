package types

// FeeWallet 一个收款钱包和它占用的比例 (以 PercentDenominator 为分母)
type FeeWallet struct {
	Addr    string `json:"addr"`
	Percent int64  `json:"percent"`
}

// FeeConfig 按 (目标执行器, 操作序号) 存储的分账配置
// 钱包比例在配置时不校验, 在分账时强制要求总和等于 PercentDenominator
type FeeConfig struct {
	TargetExec           string       `json:"targetExec"`
	InstructionIndex     int64        `json:"instructionIndex"`
	FeeAmount            int64        `json:"feeAmount"`
	IsUsingGlobalWallets bool         `json:"isUsingGlobalWallets"`
	Wallets              []*FeeWallet `json:"wallets,omitempty"`
	InstructionName      string       `json:"instructionName"`
	CreatedAt            int64        `json:"createdAt"`
}

// FeeHubCreateConfig 新建一条分账配置
type FeeHubCreateConfig struct {
	TargetExec           string       `json:"targetExec"`
	InstructionIndex     int64        `json:"instructionIndex"`
	FeeAmount            int64        `json:"feeAmount"`
	IsUsingGlobalWallets bool         `json:"isUsingGlobalWallets"`
	Wallets              []*FeeWallet `json:"wallets,omitempty"`
	InstructionName      string       `json:"instructionName"`
}

// FeeHubUpdateConfig 覆盖一条已存在的分账配置
type FeeHubUpdateConfig struct {
	TargetExec           string       `json:"targetExec"`
	InstructionIndex     int64        `json:"instructionIndex"`
	FeeAmount            int64        `json:"feeAmount"`
	IsUsingGlobalWallets bool         `json:"isUsingGlobalWallets"`
	Wallets              []*FeeWallet `json:"wallets,omitempty"`
	InstructionName      string       `json:"instructionName"`
}

// FeeHubTransferFees 按配置把费用从交易发起人分给 payees
// payees 必须与配置中的钱包顺序严格一致
type FeeHubTransferFees struct {
	TargetExec       string   `json:"targetExec"`
	InstructionIndex int64    `json:"instructionIndex"`
	Payees           []string `json:"payees"`
}

// FeeHubAction feehub 的action封装
type FeeHubAction struct {
	Ty           int32               `json:"ty"`
	CreateConfig *FeeHubCreateConfig `json:"createConfig,omitempty"`
	UpdateConfig *FeeHubUpdateConfig `json:"updateConfig,omitempty"`
	TransferFees *FeeHubTransferFees `json:"transferFees,omitempty"`
}

func (a *FeeHubAction) GetCreateConfig() *FeeHubCreateConfig {
	if a == nil {
		return nil
	}
	return a.CreateConfig
}

func (a *FeeHubAction) GetUpdateConfig() *FeeHubUpdateConfig {
	if a == nil {
		return nil
	}
	return a.UpdateConfig
}

func (a *FeeHubAction) GetTransferFees() *FeeHubTransferFees {
	if a == nil {
		return nil
	}
	return a.TransferFees
}

// ReceiptFeeConfig 配置变更日志
type ReceiptFeeConfig struct {
	TargetExec       string `json:"targetExec"`
	InstructionIndex int64  `json:"instructionIndex"`
	Addr             string `json:"addr"`
}

// ReceiptFeeTransfer 分账执行日志
type ReceiptFeeTransfer struct {
	TargetExec       string `json:"targetExec"`
	InstructionIndex int64  `json:"instructionIndex"`
	From             string `json:"from"`
	FeeAmount        int64  `json:"feeAmount"`
}
