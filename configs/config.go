package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type RPCConfig struct {
	URL       string `mapstructure:"url"`
	TimeoutMs int    `mapstructure:"timeoutMs"`
}

type ScannerConfig struct {
	URL             string `mapstructure:"url"`
	APIKey          string `mapstructure:"apiKey"`
	TimeoutMs       int    `mapstructure:"timeoutMs"`
	CallDelayMs     int    `mapstructure:"callDelayMs"`
	PageSize        int    `mapstructure:"pageSize"`
	MaxPages        int    `mapstructure:"maxPages"`
	MaxTransactions int    `mapstructure:"maxTransactions"`
}

type PricesConfig struct {
	URL          string `mapstructure:"url"`
	TimeoutMs    int    `mapstructure:"timeoutMs"`
	FreshnessSec int    `mapstructure:"freshnessSec"`
	Currency     string `mapstructure:"currency"`
}

type ChainConfig struct {
	// Unix timestamp of the genesis block, the floor for date-based queries.
	GenesisTimestamp uint64 `mapstructure:"genesisTimestamp"`
	NativeSymbol     string `mapstructure:"nativeSymbol"`
	NativeDecimals   int    `mapstructure:"nativeDecimals"`
}

type AssetConfig struct {
	Symbol   string `mapstructure:"symbol"`
	Name     string `mapstructure:"name"`
	Contract string `mapstructure:"contract"`
	Decimals int    `mapstructure:"decimals"`
}

type BasicAuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type APIConfig struct {
	Host      string          `mapstructure:"host"`
	BasicAuth BasicAuthConfig `mapstructure:"basicAuth"`
}

type Config struct {
	RPC     RPCConfig     `mapstructure:"rpc"`
	Scanner ScannerConfig `mapstructure:"scanner"`
	Prices  PricesConfig  `mapstructure:"prices"`
	Chain   ChainConfig   `mapstructure:"chain"`
	Assets  []AssetConfig `mapstructure:"assets"`
	Log     LogConfig     `mapstructure:"log"`
	API     APIConfig     `mapstructure:"api"`
}

var Cfg Config

func LoadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	// sets e.g. RPC_URL to rpc.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}
