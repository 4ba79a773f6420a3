package types

//fishing action ty
const (
	FishingActionCreateGame = iota + 1
	FishingActionEditGame
	FishingActionAddReward
	FishingActionEditReward
	FishingActionRemoveReward
	FishingActionDepositReward
	FishingActionWithdrawReward
	FishingActionWithdrawPayment
	FishingActionFlip
	FishingActionSendPayout
	FishingActionCreateColleague
	FishingActionRemoveColleague
)

//fishing 的receipt log 类型
const (
	TyLogGameCreate      = 901
	TyLogGameEdit        = 902
	TyLogRewardAdd       = 903
	TyLogRewardEdit      = 904
	TyLogRewardRemove    = 905
	TyLogRewardDeposit   = 906
	TyLogRewardWithdraw  = 907
	TyLogPaymentWithdraw = 908
	TyLogFlip            = 909
	TyLogPayout          = 910
	TyLogColleagueAdd    = 911
	TyLogColleagueRemove = 912
)

const (
	// FishingX 执行器名称
	FishingX = "fishing"

	// MaxRewards 一个游戏最多的奖励档位数
	MaxRewards = 10
	// MaxPendingPlayers 最多同时等待开奖的玩家数
	MaxPendingPlayers = 10
	// RarityCommon 普通档位, 允许重复
	RarityCommon = int32(1)

	// feehub 里为 fishing 配置的操作序号
	FeeInstructionCreateGame = int64(1)
	FeeInstructionFlip       = int64(2)
)

var (
	// ExecerFishing bytes形式的执行器名
	ExecerFishing = []byte(FishingX)
)
