package scenario

import (
	"github.com/spf13/viper"
)

// Config controls how scenarios reach the cluster and which game instance
// they operate on.
type Config struct {
	// Endpoint is the JSON RPC endpoint of the cluster the scenarios run
	// against.
	Endpoint string `mapstructure:"solana_endpoint"`

	// AirdropLamports is the amount requested to fund the scenario payer.
	AirdropLamports uint64 `mapstructure:"airdrop_lamports"`

	// GameID selects the game instance. Scenario runs against a shared
	// cluster should pick distinct ids.
	GameID uint32 `mapstructure:"game_id"`
}

var defaultConfig = Config{
	Endpoint:        "http://127.0.0.1:8899",
	AirdropLamports: 10_000_000_000,
	GameID:          1,
}

func init() {
	viper.SetDefault("solana_endpoint", defaultConfig.Endpoint)
	viper.SetDefault("airdrop_lamports", defaultConfig.AirdropLamports)
	viper.SetDefault("game_id", defaultConfig.GameID)

	_ = viper.BindEnv("solana_endpoint", "SOLANA_ENDPOINT")
	_ = viper.BindEnv("airdrop_lamports", "AIRDROP_LAMPORTS")
	_ = viper.BindEnv("game_id", "GAME_ID")
}

// LoadConfig resolves the scenario configuration from the environment,
// falling back to defaults suitable for a local test validator.
func LoadConfig() (*Config, error) {
	config := defaultConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
