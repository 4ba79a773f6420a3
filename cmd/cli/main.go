package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clog "github.com/hey-its-slowly/fee-governance-hub/common/log"
	auction "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/auction/commands"
	feehub "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/feehub/commands"
	fishing "github.com/hey-its-slowly/fee-governance-hub/plugin/dapp/fishing/commands"
	"github.com/hey-its-slowly/fee-governance-hub/types"
)

var rootCmd = &cobra.Command{
	Use:   "feehub-cli",
	Short: "Build raw transactions for the fee hub, auction and fishing executors",
}

func init() {
	rootCmd.PersistentFlags().String("conf", "", "configuration file")
	rootCmd.AddCommand(
		feehub.FeeHubCmd(),
		auction.AuctionCmd(),
		fishing.FishingCmd(),
	)
}

func main() {
	clog.SetLogLevel("error")
	cobra.OnInitialize(func() {
		conf, _ := rootCmd.PersistentFlags().GetString("conf")
		if conf == "" {
			return
		}
		cfg, err := types.InitCfg(conf)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if cfg.Log != nil {
			clog.SetFileLog(cfg.Log)
		}
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
