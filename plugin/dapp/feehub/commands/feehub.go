package commands

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hey-its-slowly/fee-governance-hub/common"
	ft "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/feehub/types"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

// FeeHubCmd feehub 命令集
func FeeHubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feehub",
		Short: "Fee split config management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		CreateRawCreateConfigTxCmd(),
		CreateRawUpdateConfigTxCmd(),
		CreateRawTransferFeesTxCmd(),
	)
	return cmd
}

// create raw create-config transaction
func CreateRawCreateConfigTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_config",
		Short: "Create a fee split config transaction",
		Run:   createConfig,
	}
	addConfigFlags(cmd)
	return cmd
}

// create raw update-config transaction
func CreateRawUpdateConfigTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update_config",
		Short: "Overwrite a fee split config transaction",
		Run:   updateConfig,
	}
	addConfigFlags(cmd)
	return cmd
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("target", "t", "", "target executor name")
	cmd.MarkFlagRequired("target")

	cmd.Flags().Int64P("index", "i", 0, "instruction index inside the target executor")
	cmd.MarkFlagRequired("index")

	cmd.Flags().Int64P("amount", "a", 0, "flat fee amount charged per call")
	cmd.MarkFlagRequired("amount")

	cmd.Flags().StringP("name", "n", "", "instruction name, max 30 chars")

	cmd.Flags().BoolP("global", "g", false, "use the global fee wallet table")
	cmd.Flags().StringP("wallets", "w", "", "payees as addr:percent, comma separated, percents over 1000")

	cmd.Flags().StringP("from", "f", "", "admin address sending the transaction")
	cmd.MarkFlagRequired("from")
}

func parseWallets(raw string) ([]*ft.FeeWallet, error) {
	if raw == "" {
		return nil, nil
	}
	var wallets []*ft.FeeWallet
	for _, item := range strings.Split(raw, ",") {
		parts := strings.Split(item, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad wallet %q, want addr:percent", item)
		}
		var percent int64
		if _, err := fmt.Sscanf(parts[1], "%d", &percent); err != nil {
			return nil, err
		}
		wallets = append(wallets, &ft.FeeWallet{Addr: parts[0], Percent: percent})
	}
	return wallets, nil
}

func configPayload(cmd *cobra.Command) (*ft.FeeHubCreateConfig, string, error) {
	target, _ := cmd.Flags().GetString("target")
	index, _ := cmd.Flags().GetInt64("index")
	amount, _ := cmd.Flags().GetInt64("amount")
	name, _ := cmd.Flags().GetString("name")
	global, _ := cmd.Flags().GetBool("global")
	rawWallets, _ := cmd.Flags().GetString("wallets")
	from, _ := cmd.Flags().GetString("from")

	wallets, err := parseWallets(rawWallets)
	if err != nil {
		return nil, "", err
	}
	return &ft.FeeHubCreateConfig{
		TargetExec:           target,
		InstructionIndex:     index,
		FeeAmount:            amount,
		IsUsingGlobalWallets: global,
		Wallets:              wallets,
		InstructionName:      name,
	}, from, nil
}

func createConfig(cmd *cobra.Command, args []string) {
	payload, from, err := configPayload(cmd)
	if err != nil {
		fmt.Println(err)
		return
	}
	action := &ft.FeeHubAction{Ty: ft.FeeHubActionCreateConfig, CreateConfig: payload}
	printRawTx(from, action)
}

func updateConfig(cmd *cobra.Command, args []string) {
	payload, from, err := configPayload(cmd)
	if err != nil {
		fmt.Println(err)
		return
	}
	update := &ft.FeeHubUpdateConfig{
		TargetExec:           payload.TargetExec,
		InstructionIndex:     payload.InstructionIndex,
		FeeAmount:            payload.FeeAmount,
		IsUsingGlobalWallets: payload.IsUsingGlobalWallets,
		Wallets:              payload.Wallets,
		InstructionName:      payload.InstructionName,
	}
	action := &ft.FeeHubAction{Ty: ft.FeeHubActionUpdateConfig, UpdateConfig: update}
	printRawTx(from, action)
}

// create raw transfer-fees transaction
func CreateRawTransferFeesTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer_fees",
		Short: "Distribute the configured fee from the sender",
		Run:   transferFees,
	}
	cmd.Flags().StringP("target", "t", "", "target executor name")
	cmd.MarkFlagRequired("target")
	cmd.Flags().Int64P("index", "i", 0, "instruction index inside the target executor")
	cmd.MarkFlagRequired("index")
	cmd.Flags().StringP("payees", "p", "", "payee addresses, comma separated, in config order")
	cmd.MarkFlagRequired("payees")
	cmd.Flags().StringP("from", "f", "", "paying address sending the transaction")
	cmd.MarkFlagRequired("from")
	return cmd
}

func transferFees(cmd *cobra.Command, args []string) {
	target, _ := cmd.Flags().GetString("target")
	index, _ := cmd.Flags().GetInt64("index")
	rawPayees, _ := cmd.Flags().GetString("payees")
	from, _ := cmd.Flags().GetString("from")

	action := &ft.FeeHubAction{
		Ty: ft.FeeHubActionTransferFees,
		TransferFees: &ft.FeeHubTransferFees{
			TargetExec:       target,
			InstructionIndex: index,
			Payees:           strings.Split(rawPayees, ","),
		},
	}
	printRawTx(from, action)
}

func printRawTx(from string, action *ft.FeeHubAction) {
	tx := &types.Transaction{
		Execer:  ft.ExecerFeeHub,
		Payload: types.Encode(action),
		From:    from,
		Nonce:   rand.New(rand.NewSource(time.Now().UnixNano())).Int63(),
	}
	fmt.Println(common.ToHex(types.Encode(tx)))
}
