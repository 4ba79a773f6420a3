package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/hey-its-slowly/fee-governance-hub/common"
	at "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/auction/types"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// AuctionCmd auction 命令集
func AuctionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auction",
		Short: "Prize auction management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateRawAddCreatorTxCmd(),
		CreateRawEditCreatorTxCmd(),
		CreateRawRemoveCreatorTxCmd(),
		CreateRawAuctionCreateTxCmd(),
		CreateRawBidTxCmd(),
		CreateRawClaimTxCmd(),
		CreateRawCancelTxCmd(),
	)
	return cmd
}

// create raw add-creator transaction
func CreateRawAddCreatorTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add_creator",
		Short: "Register an auction creator",
		Run:   addCreator,
	}
	cmd.Flags().StringP("wallet", "w", "", "creator wallet address")
	cmd.MarkFlagRequired("wallet")
	cmd.Flags().Int32P("fee_type", "t", 0, "fee policy: 0 none, 1 percentage, 2 flat")
	cmd.Flags().Int64P("fee_amount", "a", 0, "fee amount for the chosen policy")
	cmd.Flags().StringP("fee_wallet", "e", "", "fee payout address, defaults to the creator")
	cmd.Flags().StringP("backend", "b", "", "backend wallet that must co-authorize bids")
	addFromFlag(cmd)
	return cmd
}

func addCreator(cmd *cobra.Command, args []string) {
	wallet, _ := cmd.Flags().GetString("wallet")
	feeType, _ := cmd.Flags().GetInt32("fee_type")
	feeAmount, _ := cmd.Flags().GetInt64("fee_amount")
	feeWallet, _ := cmd.Flags().GetString("fee_wallet")
	backend, _ := cmd.Flags().GetString("backend")

	action := &at.AuctionAction{
		Ty: at.AuctionActionAddCreator,
		AddCreator: &at.AuctionAddCreator{
			Wallet:        wallet,
			FeeType:       feeType,
			FeeAmount:     feeAmount,
			FeeWallet:     feeWallet,
			BackendWallet: backend,
		},
	}
	printRawTx(cmd, action)
}

// create raw edit-creator transaction
func CreateRawEditCreatorTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit_creator",
		Short: "Change the fee policy of a creator",
		Run:   editCreator,
	}
	cmd.Flags().StringP("wallet", "w", "", "creator wallet address")
	cmd.MarkFlagRequired("wallet")
	cmd.Flags().Int32P("fee_type", "t", 0, "fee policy: 0 none, 1 percentage, 2 flat")
	cmd.Flags().Int64P("fee_amount", "a", 0, "fee amount for the chosen policy")
	cmd.Flags().StringP("fee_wallet", "e", "", "fee payout address, defaults to the creator")
	cmd.Flags().StringP("backend", "b", "", "backend wallet that must co-authorize bids")
	addFromFlag(cmd)
	return cmd
}

func editCreator(cmd *cobra.Command, args []string) {
	wallet, _ := cmd.Flags().GetString("wallet")
	feeType, _ := cmd.Flags().GetInt32("fee_type")
	feeAmount, _ := cmd.Flags().GetInt64("fee_amount")
	feeWallet, _ := cmd.Flags().GetString("fee_wallet")
	backend, _ := cmd.Flags().GetString("backend")

	action := &at.AuctionAction{
		Ty: at.AuctionActionEditCreator,
		EditCreator: &at.AuctionEditCreator{
			Wallet:        wallet,
			FeeType:       feeType,
			FeeAmount:     feeAmount,
			FeeWallet:     feeWallet,
			BackendWallet: backend,
		},
	}
	printRawTx(cmd, action)
}

// create raw remove-creator transaction
func CreateRawRemoveCreatorTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove_creator",
		Short: "Deregister an auction creator",
		Run:   removeCreator,
	}
	cmd.Flags().StringP("wallet", "w", "", "creator wallet address")
	cmd.MarkFlagRequired("wallet")
	addFromFlag(cmd)
	return cmd
}

func removeCreator(cmd *cobra.Command, args []string) {
	wallet, _ := cmd.Flags().GetString("wallet")
	action := &at.AuctionAction{
		Ty:            at.AuctionActionRemoveCreator,
		RemoveCreator: &at.AuctionRemoveCreator{Wallet: wallet},
	}
	printRawTx(cmd, action)
}

// create raw auction-create transaction
func CreateRawAuctionCreateTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an auction and lock the prize",
		Run:   createAuction,
	}
	cmd.Flags().StringP("prize", "p", "", "prize id")
	cmd.MarkFlagRequired("prize")
	cmd.Flags().Int32P("prize_type", "y", 1, "prize class: 1 token, 2 core, 3 compressed")
	cmd.Flags().StringP("collection", "c", "", "expected collection for core prizes")
	cmd.Flags().StringP("exec", "x", "coins", "accepted payment executor")
	cmd.Flags().StringP("symbol", "s", "", "accepted payment symbol")
	cmd.Flags().Int32P("decimals", "d", 8, "accepted payment decimals")
	cmd.Flags().Int64P("price", "r", 0, "start price")
	cmd.MarkFlagRequired("price")
	cmd.Flags().Int64P("start", "b", 0, "start time, unix seconds")
	cmd.MarkFlagRequired("start")
	cmd.Flags().Int64P("end", "e", 0, "end time, unix seconds")
	cmd.MarkFlagRequired("end")
	cmd.Flags().StringP("dest", "o", "", "proceeds destination, defaults to the creator")
	cmd.Flags().BoolP("burn", "u", false, "burn the proceeds instead of paying them out")
	cmd.Flags().StringP("tag", "g", "", "opaque correlation tag")
	cmd.Flags().Int32P("tick_option", "k", 2, "bid increment rule: 1 percentage, 2 flat")
	cmd.Flags().Int64P("tick", "m", 0, "bid increment amount")
	addFromFlag(cmd)
	return cmd
}

func createAuction(cmd *cobra.Command, args []string) {
	prize, _ := cmd.Flags().GetString("prize")
	prizeType, _ := cmd.Flags().GetInt32("prize_type")
	collection, _ := cmd.Flags().GetString("collection")
	exec, _ := cmd.Flags().GetString("exec")
	symbol, _ := cmd.Flags().GetString("symbol")
	decimals, _ := cmd.Flags().GetInt32("decimals")
	price, _ := cmd.Flags().GetInt64("price")
	start, _ := cmd.Flags().GetInt64("start")
	end, _ := cmd.Flags().GetInt64("end")
	dest, _ := cmd.Flags().GetString("dest")
	burn, _ := cmd.Flags().GetBool("burn")
	tag, _ := cmd.Flags().GetString("tag")
	tickOption, _ := cmd.Flags().GetInt32("tick_option")
	tick, _ := cmd.Flags().GetInt64("tick")

	action := &at.AuctionAction{
		Ty: at.AuctionActionCreate,
		Create: &at.AuctionCreate{
			PrizeID:          prize,
			PrizeType:        prizeType,
			Collection:       collection,
			AcceptedExec:     exec,
			AcceptedSymbol:   symbol,
			AcceptedDecimals: decimals,
			StartPrice:       price,
			StartTime:        start,
			EndTime:          end,
			Destination:      dest,
			BurnProceeds:     burn,
			Tag:              tag,
			TickOption:       tickOption,
			TickAmount:       tick,
		},
	}
	printRawTx(cmd, action)
}

// create raw bid transaction
func CreateRawBidTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bid",
		Short: "Place a bid on an auction",
		Run:   placeBid,
	}
	cmd.Flags().StringP("prize", "p", "", "prize id")
	cmd.MarkFlagRequired("prize")
	cmd.Flags().Int64P("amount", "a", 0, "bid amount")
	cmd.MarkFlagRequired("amount")
	cmd.Flags().StringP("prev", "v", "", "current winner to refund, empty on the first bid")
	cmd.Flags().StringP("auth", "u", "", "backend wallet authorization when the creator requires one")
	addFromFlag(cmd)
	return cmd
}

func placeBid(cmd *cobra.Command, args []string) {
	prize, _ := cmd.Flags().GetString("prize")
	amount, _ := cmd.Flags().GetInt64("amount")
	prev, _ := cmd.Flags().GetString("prev")
	auth, _ := cmd.Flags().GetString("auth")

	action := &at.AuctionAction{
		Ty:  at.AuctionActionBid,
		Bid: &at.AuctionBid{PrizeID: prize, Amount: amount, PrevBidder: prev, BackendAuth: auth},
	}
	printRawTx(cmd, action)
}

// create raw claim transaction
func CreateRawClaimTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Settle an ended auction",
		Run:   claimPrize,
	}
	cmd.Flags().StringP("prize", "p", "", "prize id")
	cmd.MarkFlagRequired("prize")
	cmd.Flags().StringP("claimer", "c", "", "winning address, defaults to the sender")
	addFromFlag(cmd)
	return cmd
}

func claimPrize(cmd *cobra.Command, args []string) {
	prize, _ := cmd.Flags().GetString("prize")
	claimer, _ := cmd.Flags().GetString("claimer")
	action := &at.AuctionAction{
		Ty:    at.AuctionActionClaim,
		Claim: &at.AuctionClaim{PrizeID: prize, Claimer: claimer},
	}
	printRawTx(cmd, action)
}

// create raw cancel transaction
func CreateRawCancelTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an auction with no bids",
		Run:   cancelAuction,
	}
	cmd.Flags().StringP("prize", "p", "", "prize id")
	cmd.MarkFlagRequired("prize")
	addFromFlag(cmd)
	return cmd
}

func cancelAuction(cmd *cobra.Command, args []string) {
	prize, _ := cmd.Flags().GetString("prize")
	action := &at.AuctionAction{
		Ty:     at.AuctionActionCancel,
		Cancel: &at.AuctionCancel{PrizeID: prize},
	}
	printRawTx(cmd, action)
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "address sending the transaction")
	cmd.MarkFlagRequired("from")
}

func printRawTx(cmd *cobra.Command, action *at.AuctionAction) {
	from, _ := cmd.Flags().GetString("from")
	tx := &types.Transaction{
		Execer:  at.ExecerAuction,
		Payload: types.Encode(action),
		From:    from,
		Nonce:   rand.New(rand.NewSource(time.Now().UnixNano())).Int63(),
	}
	fmt.Println(common.ToHex(types.Encode(tx)))
}
