package types

//feehub action ty
const (
	FeeHubActionCreateConfig = iota + 1
	FeeHubActionUpdateConfig
	FeeHubActionTransferFees
)

//feehub 的receipt log 类型
const (
	TyLogFeeConfigCreate = 701
	TyLogFeeConfigUpdate = 702
	TyLogFeeTransfer     = 703
)

const (
	// FeeHubX 执行器名称
	FeeHubX = "feehub"

	// PercentDenominator 比例分母, 1000 == 100%
	PercentDenominator = int64(1000)
	// MaxFeeWallets 单条配置最多的收款钱包数
	MaxFeeWallets = 3
	// MaxInstructionNameLen 操作名最大长度
	MaxInstructionNameLen = 30
)

var (
	// ExecerFeeHub bytes形式的执行器名
	ExecerFeeHub = []byte(FeeHubX)
)
