package commands

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hey-its-slowly/fee-governance-hub/common"
	pt "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/fishing/types"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// FishingCmd fishing 命令集
func FishingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fishing",
		Short: "Chance based fishing game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateRawCreateGameTxCmd(),
		CreateRawEditGameTxCmd(),
		CreateRawAddRewardTxCmd(),
		CreateRawEditRewardTxCmd(),
		CreateRawRemoveRewardTxCmd(),
		CreateRawDepositRewardTxCmd(),
		CreateRawWithdrawRewardTxCmd(),
		CreateRawWithdrawPaymentTxCmd(),
		CreateRawFlipTxCmd(),
		CreateRawSendPayoutTxCmd(),
		CreateRawCreateColleagueTxCmd(),
		CreateRawRemoveColleagueTxCmd(),
	)
	return cmd
}

// create raw create-game transaction
func CreateRawCreateGameTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_game",
		Short: "Create a fishing game",
		Run:   createGame,
	}
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().StringP("exec", "x", "coins", "payment executor")
	cmd.Flags().StringP("symbol", "s", "", "payment symbol")
	cmd.Flags().Int32P("decimals", "d", 8, "payment decimals")
	cmd.Flags().Int64P("price", "p", 0, "price of a single flip")
	cmd.MarkFlagRequired("price")
	cmd.Flags().StringP("payees", "e", "", "creation fee payees, comma separated")
	addFromFlag(cmd)
	return cmd
}

func createGame(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	exec, _ := cmd.Flags().GetString("exec")
	symbol, _ := cmd.Flags().GetString("symbol")
	decimals, _ := cmd.Flags().GetInt32("decimals")
	price, _ := cmd.Flags().GetInt64("price")
	payees, _ := cmd.Flags().GetString("payees")

	action := &pt.FishingAction{
		Ty: pt.FishingActionCreateGame,
		CreateGame: &pt.FishingCreateGame{
			GameID:          game,
			PaymentExec:     exec,
			PaymentSymbol:   symbol,
			PaymentDecimals: decimals,
			UnitValue:       price,
			Payees:          splitPayees(payees),
		},
	}
	printRawTx(cmd, action)
}

// create raw edit-game transaction
func CreateRawEditGameTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit_game",
		Short: "Change the flip price of a game",
		Run:   editGame,
	}
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().Int64P("price", "p", 0, "new price of a single flip")
	cmd.MarkFlagRequired("price")
	addFromFlag(cmd)
	return cmd
}

func editGame(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	price, _ := cmd.Flags().GetInt64("price")
	action := &pt.FishingAction{
		Ty:       pt.FishingActionEditGame,
		EditGame: &pt.FishingEditGame{GameID: game, UnitValue: price},
	}
	printRawTx(cmd, action)
}

// create raw add-reward transaction
func CreateRawAddRewardTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add_reward",
		Short: "Add a reward bucket to a game",
		Run:   addReward,
	}
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().StringP("symbol", "s", "", "reward token symbol")
	cmd.MarkFlagRequired("symbol")
	cmd.Flags().Int32P("decimals", "d", 8, "reward token decimals")
	cmd.Flags().Int64P("value", "v", 0, "value of a single reward unit")
	cmd.MarkFlagRequired("value")
	cmd.Flags().Int32P("rarity", "r", 1, "rarity tier, 1 is common")
	addFromFlag(cmd)
	return cmd
}

func addReward(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	symbol, _ := cmd.Flags().GetString("symbol")
	decimals, _ := cmd.Flags().GetInt32("decimals")
	value, _ := cmd.Flags().GetInt64("value")
	rarity, _ := cmd.Flags().GetInt32("rarity")

	action := &pt.FishingAction{
		Ty: pt.FishingActionAddReward,
		AddReward: &pt.FishingAddReward{
			GameID:    game,
			Symbol:    symbol,
			Decimals:  decimals,
			UnitValue: value,
			Rarity:    rarity,
		},
	}
	printRawTx(cmd, action)
}

// create raw edit-reward transaction
func CreateRawEditRewardTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit_reward",
		Short: "Change the unit value or rarity of a reward bucket",
		Run:   editReward,
	}
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().Int64P("reward", "i", 0, "reward bucket id")
	cmd.MarkFlagRequired("reward")
	cmd.Flags().Int64P("value", "v", 0, "new value of a single reward unit")
	cmd.MarkFlagRequired("value")
	cmd.Flags().Int32P("rarity", "r", 1, "new rarity tier")
	addFromFlag(cmd)
	return cmd
}

func editReward(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	reward, _ := cmd.Flags().GetInt64("reward")
	value, _ := cmd.Flags().GetInt64("value")
	rarity, _ := cmd.Flags().GetInt32("rarity")

	action := &pt.FishingAction{
		Ty: pt.FishingActionEditReward,
		EditReward: &pt.FishingEditReward{
			GameID:    game,
			RewardID:  reward,
			UnitValue: value,
			Rarity:    rarity,
		},
	}
	printRawTx(cmd, action)
}

// create raw remove-reward transaction
func CreateRawRemoveRewardTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove_reward",
		Short: "Remove an emptied reward bucket",
		Run:   removeReward,
	}
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().Int64P("reward", "i", 0, "reward bucket id")
	cmd.MarkFlagRequired("reward")
	addFromFlag(cmd)
	return cmd
}

func removeReward(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	reward, _ := cmd.Flags().GetInt64("reward")
	action := &pt.FishingAction{
		Ty:           pt.FishingActionRemoveReward,
		RemoveReward: &pt.FishingRemoveReward{GameID: game, RewardID: reward},
	}
	printRawTx(cmd, action)
}

// create raw deposit-reward transaction
func CreateRawDepositRewardTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit_reward",
		Short: "Deposit reward stock into escrow",
		Run:   depositReward,
	}
	addStockFlags(cmd)
	return cmd
}

func depositReward(cmd *cobra.Command, args []string) {
	game, reward, units := stockFlags(cmd)
	action := &pt.FishingAction{
		Ty:            pt.FishingActionDepositReward,
		DepositReward: &pt.FishingDepositReward{GameID: game, RewardID: reward, NumUnits: units},
	}
	printRawTx(cmd, action)
}

// create raw withdraw-reward transaction
func CreateRawWithdrawRewardTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw_reward",
		Short: "Withdraw reward stock from escrow",
		Run:   withdrawReward,
	}
	addStockFlags(cmd)
	return cmd
}

func withdrawReward(cmd *cobra.Command, args []string) {
	game, reward, units := stockFlags(cmd)
	action := &pt.FishingAction{
		Ty:             pt.FishingActionWithdrawReward,
		WithdrawReward: &pt.FishingWithdrawReward{GameID: game, RewardID: reward, NumUnits: units},
	}
	printRawTx(cmd, action)
}

// create raw withdraw-payment transaction
func CreateRawWithdrawPaymentTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw_payment",
		Short: "Withdraw accumulated flip payments",
		Run:   withdrawPayment,
	}
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	addFromFlag(cmd)
	return cmd
}

func withdrawPayment(cmd *cobra.Command, args []string) {
	game, _ := cmd.Flags().GetString("game")
	action := &pt.FishingAction{
		Ty:              pt.FishingActionWithdrawPayment,
		WithdrawPayment: &pt.FishingWithdrawPayment{GameID: game},
	}
	printRawTx(cmd, action)
}

// create raw flip transaction
func CreateRawFlipTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip",
		Short: "Pay for one flip and wait for the payout",
		Run:   flip,
	}
	cmd.Flags().StringP("authority", "a", "", "game authority address")
	cmd.MarkFlagRequired("authority")
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().StringP("payees", "e", "", "flip fee payees, comma separated")
	addFromFlag(cmd)
	return cmd
}

func flip(cmd *cobra.Command, args []string) {
	authority, _ := cmd.Flags().GetString("authority")
	game, _ := cmd.Flags().GetString("game")
	payees, _ := cmd.Flags().GetString("payees")

	action := &pt.FishingAction{
		Ty:   pt.FishingActionFlip,
		Flip: &pt.FishingFlip{Authority: authority, GameID: game, Payees: splitPayees(payees)},
	}
	printRawTx(cmd, action)
}

// create raw send-payout transaction
func CreateRawSendPayoutTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send_payout",
		Short: "Settle a pending flip for a player",
		Run:   sendPayout,
	}
	cmd.Flags().StringP("authority", "a", "", "game authority address")
	cmd.MarkFlagRequired("authority")
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().StringP("player", "p", "", "player to settle")
	cmd.MarkFlagRequired("player")
	cmd.Flags().Int64P("index", "x", 0, "flip index of the settled attempt")
	cmd.Flags().Int64P("reward", "i", 0, "reward bucket id, ignored on a miss")
	cmd.Flags().StringP("symbol", "s", "", "reward symbol of the won bucket, ignored on a miss")
	cmd.Flags().Int32P("rarity", "r", 0, "won rarity, 0 means a miss")
	addFromFlag(cmd)
	return cmd
}

func sendPayout(cmd *cobra.Command, args []string) {
	authority, _ := cmd.Flags().GetString("authority")
	game, _ := cmd.Flags().GetString("game")
	player, _ := cmd.Flags().GetString("player")
	index, _ := cmd.Flags().GetInt64("index")
	reward, _ := cmd.Flags().GetInt64("reward")
	symbol, _ := cmd.Flags().GetString("symbol")
	rarity, _ := cmd.Flags().GetInt32("rarity")

	action := &pt.FishingAction{
		Ty: pt.FishingActionSendPayout,
		SendPayout: &pt.FishingSendPayout{
			Authority: authority,
			GameID:    game,
			Player:    player,
			FlipIndex: index,
			RewardID:  reward,
			Symbol:    symbol,
			Rarity:    rarity,
		},
	}
	printRawTx(cmd, action)
}

// create raw create-colleague transaction
func CreateRawCreateColleagueTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add_colleague",
		Short: "Register a fee exempt colleague",
		Run:   createColleague,
	}
	cmd.Flags().StringP("wallet", "w", "", "colleague wallet address")
	cmd.MarkFlagRequired("wallet")
	addFromFlag(cmd)
	return cmd
}

func createColleague(cmd *cobra.Command, args []string) {
	wallet, _ := cmd.Flags().GetString("wallet")
	action := &pt.FishingAction{
		Ty:              pt.FishingActionCreateColleague,
		CreateColleague: &pt.FishingCreateColleague{Wallet: wallet},
	}
	printRawTx(cmd, action)
}

// create raw remove-colleague transaction
func CreateRawRemoveColleagueTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove_colleague",
		Short: "Deregister a colleague",
		Run:   removeColleague,
	}
	cmd.Flags().StringP("wallet", "w", "", "colleague wallet address")
	cmd.MarkFlagRequired("wallet")
	addFromFlag(cmd)
	return cmd
}

func removeColleague(cmd *cobra.Command, args []string) {
	wallet, _ := cmd.Flags().GetString("wallet")
	action := &pt.FishingAction{
		Ty:              pt.FishingActionRemoveColleague,
		RemoveColleague: &pt.FishingRemoveColleague{Wallet: wallet},
	}
	printRawTx(cmd, action)
}

func addStockFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("game", "g", "", "game id")
	cmd.MarkFlagRequired("game")
	cmd.Flags().Int64P("reward", "i", 0, "reward bucket id")
	cmd.MarkFlagRequired("reward")
	cmd.Flags().Int64P("units", "n", 0, "number of reward units")
	cmd.MarkFlagRequired("units")
	addFromFlag(cmd)
}

func stockFlags(cmd *cobra.Command) (game string, reward, units int64) {
	game, _ = cmd.Flags().GetString("game")
	reward, _ = cmd.Flags().GetInt64("reward")
	units, _ = cmd.Flags().GetInt64("units")
	return
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "address sending the transaction")
	cmd.MarkFlagRequired("from")
}

func splitPayees(payees string) []string {
	if payees == "" {
		return nil
	}
	return strings.Split(payees, ",")
}

func printRawTx(cmd *cobra.Command, action *pt.FishingAction) {
	from, _ := cmd.Flags().GetString("from")
	tx := &types.Transaction{
		Execer:  pt.ExecerFishing,
		Payload: types.Encode(action),
		From:    from,
		Nonce:   rand.New(rand.NewSource(time.Now().UnixNano())).Int63(),
	}
	fmt.Println(common.ToHex(types.Encode(tx)))
}
