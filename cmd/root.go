package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	configs "github.com/chainlens/explorer/configs"
	"github.com/chainlens/explorer/internal/env"
	customLogger "github.com/chainlens/explorer/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "explorer",
		Short: "Account activity explorer",
		Long:  "Resolves on-chain account activity into transaction history and historical balance snapshots",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("rpc-url", "", "Ledger node RPC URL")
	rootCmd.PersistentFlags().Int("rpc-timeoutMs", 0, "Timeout in milliseconds for ledger node calls")
	rootCmd.PersistentFlags().String("scanner-url", "", "Indexing API base URL")
	rootCmd.PersistentFlags().String("scanner-apiKey", "", "Indexing API key")
	rootCmd.PersistentFlags().Int("scanner-timeoutMs", 0, "Timeout in milliseconds for indexing API calls")
	rootCmd.PersistentFlags().Int("scanner-callDelayMs", 0, "Milliseconds to wait between successive indexing API pages")
	rootCmd.PersistentFlags().Int("scanner-pageSize", 0, "Records per indexing API page")
	rootCmd.PersistentFlags().Int("scanner-maxPages", 0, "Hard ceiling on pages per aggregation")
	rootCmd.PersistentFlags().Int("scanner-maxTransactions", 0, "Hard ceiling on records per aggregation")
	rootCmd.PersistentFlags().String("prices-url", "", "Price feed base URL")
	rootCmd.PersistentFlags().Int("prices-freshnessSec", 0, "Seconds a price snapshot stays fresh")
	rootCmd.PersistentFlags().String("prices-currency", "", "Reference currency for prices")
	rootCmd.PersistentFlags().Uint64("chain-genesisTimestamp", 0, "Unix timestamp of the genesis block")
	rootCmd.PersistentFlags().String("chain-nativeSymbol", "", "Symbol of the chain's native asset")
	rootCmd.PersistentFlags().Int("chain-nativeDecimals", 0, "Decimals of the chain's native unit")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().String("api-host", "", "Host and port the API listens on")
	viper.BindPFlag("rpc.url", rootCmd.PersistentFlags().Lookup("rpc-url"))
	viper.BindPFlag("rpc.timeoutMs", rootCmd.PersistentFlags().Lookup("rpc-timeoutMs"))
	viper.BindPFlag("scanner.url", rootCmd.PersistentFlags().Lookup("scanner-url"))
	viper.BindPFlag("scanner.apiKey", rootCmd.PersistentFlags().Lookup("scanner-apiKey"))
	viper.BindPFlag("scanner.timeoutMs", rootCmd.PersistentFlags().Lookup("scanner-timeoutMs"))
	viper.BindPFlag("scanner.callDelayMs", rootCmd.PersistentFlags().Lookup("scanner-callDelayMs"))
	viper.BindPFlag("scanner.pageSize", rootCmd.PersistentFlags().Lookup("scanner-pageSize"))
	viper.BindPFlag("scanner.maxPages", rootCmd.PersistentFlags().Lookup("scanner-maxPages"))
	viper.BindPFlag("scanner.maxTransactions", rootCmd.PersistentFlags().Lookup("scanner-maxTransactions"))
	viper.BindPFlag("prices.url", rootCmd.PersistentFlags().Lookup("prices-url"))
	viper.BindPFlag("prices.freshnessSec", rootCmd.PersistentFlags().Lookup("prices-freshnessSec"))
	viper.BindPFlag("prices.currency", rootCmd.PersistentFlags().Lookup("prices-currency"))
	viper.BindPFlag("chain.genesisTimestamp", rootCmd.PersistentFlags().Lookup("chain-genesisTimestamp"))
	viper.BindPFlag("chain.nativeSymbol", rootCmd.PersistentFlags().Lookup("chain-nativeSymbol"))
	viper.BindPFlag("chain.nativeDecimals", rootCmd.PersistentFlags().Lookup("chain-nativeDecimals"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("api.host", rootCmd.PersistentFlags().Lookup("api-host"))
	rootCmd.AddCommand(apiCmd)
}

func initConfig() {
	env.Load()
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
