package types

// RewardToken 一个奖励档位: 何种资产, 每份多少, 稀有度和剩余库存
type RewardToken struct {
	ID         int64  `json:"id"`
	Symbol     string `json:"symbol"`
	UnitValue  int64  `json:"unitValue"`
	Decimals   int32  `json:"decimals"`
	Rarity     int32  `json:"rarity"`
	NumUnits   int64  `json:"numUnits"`
	NumWinners int64  `json:"numWinners"`
}

// Game 一个钓鱼游戏实例, 由 (authority, gameId) 定位
type Game struct {
	Authority        string         `json:"authority"`
	GameID           string         `json:"gameId"`
	PaymentExec      string         `json:"paymentExec"`
	PaymentSymbol    string         `json:"paymentSymbol"`
	PaymentDecimals  int32          `json:"paymentDecimals"`
	PaymentUnitValue int64          `json:"paymentUnitValue"`
	PaymentAmount    int64          `json:"paymentAmount"`
	NumFlips         int64          `json:"numFlips"`
	Rewards          []*RewardToken `json:"rewards,omitempty"`
	PendingPlayers   []string       `json:"pendingPlayers,omitempty"`
	CreatedAt        int64          `json:"createdAt"`
}

// Colleague 免创建费的合作者
type Colleague struct {
	Wallet    string `json:"wallet"`
	NumGames  int64  `json:"numGames"`
	CreatedAt int64  `json:"createdAt"`
}

// FishingCreateGame 创建游戏, 非合作者要走 feehub 分账
type FishingCreateGame struct {
	GameID          string   `json:"gameId"`
	PaymentExec     string   `json:"paymentExec"`
	PaymentSymbol   string   `json:"paymentSymbol"`
	PaymentDecimals int32    `json:"paymentDecimals"`
	UnitValue       int64    `json:"unitValue"`
	Payees          []string `json:"payees,omitempty"`
}

// FishingEditGame 调整单次付费价格
type FishingEditGame struct {
	GameID    string `json:"gameId"`
	UnitValue int64  `json:"unitValue"`
}

// FishingAddReward 新增奖励档位, id 自动分配
type FishingAddReward struct {
	GameID    string `json:"gameId"`
	Symbol    string `json:"symbol"`
	Decimals  int32  `json:"decimals"`
	UnitValue int64  `json:"unitValue"`
	Rarity    int32  `json:"rarity"`
}

// FishingEditReward 调整档位的单份价值和稀有度, 托管按差额补足或退还
type FishingEditReward struct {
	GameID    string `json:"gameId"`
	RewardID  int64  `json:"rewardId"`
	UnitValue int64  `json:"unitValue"`
	Rarity    int32  `json:"rarity"`
}

// FishingRemoveReward 删除一个已清空库存的档位
type FishingRemoveReward struct {
	GameID   string `json:"gameId"`
	RewardID int64  `json:"rewardId"`
}

// FishingDepositReward 向档位托管注入库存
type FishingDepositReward struct {
	GameID   string `json:"gameId"`
	RewardID int64  `json:"rewardId"`
	NumUnits int64  `json:"numUnits"`
}

// FishingWithdrawReward 从档位托管取回库存
type FishingWithdrawReward struct {
	GameID   string `json:"gameId"`
	RewardID int64  `json:"rewardId"`
	NumUnits int64  `json:"numUnits"`
}

// FishingWithdrawPayment 取走累计的付费
type FishingWithdrawPayment struct {
	GameID string `json:"gameId"`
}

// FishingFlip 付费参与一次, 进入等待开奖队列
type FishingFlip struct {
	Authority string   `json:"authority"`
	GameID    string   `json:"gameId"`
	Payees    []string `json:"payees,omitempty"`
}

// FishingSendPayout 链下摇出结果后由超级管理员结算一个玩家
// rarity 为 0 表示未中奖, 只把玩家移出等待队列
// 中奖时 symbol 必须和档位登记的奖励资产一致
type FishingSendPayout struct {
	Authority string `json:"authority"`
	GameID    string `json:"gameId"`
	Player    string `json:"player"`
	FlipIndex int64  `json:"flipIndex"`
	RewardID  int64  `json:"rewardId"`
	Symbol    string `json:"symbol,omitempty"`
	Rarity    int32  `json:"rarity"`
}

// FishingCreateColleague 注册免创建费的合作者
type FishingCreateColleague struct {
	Wallet string `json:"wallet"`
}

// FishingRemoveColleague 注销合作者
type FishingRemoveColleague struct {
	Wallet string `json:"wallet"`
}

// FishingAction fishing 的action封装
type FishingAction struct {
	Ty              int32                   `json:"ty"`
	CreateGame      *FishingCreateGame      `json:"createGame,omitempty"`
	EditGame        *FishingEditGame        `json:"editGame,omitempty"`
	AddReward       *FishingAddReward       `json:"addReward,omitempty"`
	EditReward      *FishingEditReward      `json:"editReward,omitempty"`
	RemoveReward    *FishingRemoveReward    `json:"removeReward,omitempty"`
	DepositReward   *FishingDepositReward   `json:"depositReward,omitempty"`
	WithdrawReward  *FishingWithdrawReward  `json:"withdrawReward,omitempty"`
	WithdrawPayment *FishingWithdrawPayment `json:"withdrawPayment,omitempty"`
	Flip            *FishingFlip            `json:"flip,omitempty"`
	SendPayout      *FishingSendPayout      `json:"sendPayout,omitempty"`
	CreateColleague *FishingCreateColleague `json:"createColleague,omitempty"`
	RemoveColleague *FishingRemoveColleague `json:"removeColleague,omitempty"`
}

func (a *FishingAction) GetCreateGame() *FishingCreateGame {
	if a == nil {
		return nil
	}
	return a.CreateGame
}

func (a *FishingAction) GetEditGame() *FishingEditGame {
	if a == nil {
		return nil
	}
	return a.EditGame
}

func (a *FishingAction) GetAddReward() *FishingAddReward {
	if a == nil {
		return nil
	}
	return a.AddReward
}

func (a *FishingAction) GetEditReward() *FishingEditReward {
	if a == nil {
		return nil
	}
	return a.EditReward
}

func (a *FishingAction) GetRemoveReward() *FishingRemoveReward {
	if a == nil {
		return nil
	}
	return a.RemoveReward
}

func (a *FishingAction) GetDepositReward() *FishingDepositReward {
	if a == nil {
		return nil
	}
	return a.DepositReward
}

func (a *FishingAction) GetWithdrawReward() *FishingWithdrawReward {
	if a == nil {
		return nil
	}
	return a.WithdrawReward
}

func (a *FishingAction) GetWithdrawPayment() *FishingWithdrawPayment {
	if a == nil {
		return nil
	}
	return a.WithdrawPayment
}

func (a *FishingAction) GetFlip() *FishingFlip {
	if a == nil {
		return nil
	}
	return a.Flip
}

func (a *FishingAction) GetSendPayout() *FishingSendPayout {
	if a == nil {
		return nil
	}
	return a.SendPayout
}

func (a *FishingAction) GetCreateColleague() *FishingCreateColleague {
	if a == nil {
		return nil
	}
	return a.CreateColleague
}

func (a *FishingAction) GetRemoveColleague() *FishingRemoveColleague {
	if a == nil {
		return nil
	}
	return a.RemoveColleague
}

// ReceiptGame 游戏状态变化日志
type ReceiptGame struct {
	Authority string `json:"authority"`
	GameID    string `json:"gameId"`
	Addr      string `json:"addr"`
	RewardID  int64  `json:"rewardId,omitempty"`
	Rarity    int32  `json:"rarity,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
}

// ReceiptColleague 合作者管理日志
type ReceiptColleague struct {
	Wallet string `json:"wallet"`
	Addr   string `json:"addr"`
}
