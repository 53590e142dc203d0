package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	curvetypes "github.com/paw-chain/amm/x/bondingcurve/types"
	dextypes "github.com/paw-chain/amm/x/dex/types"
)

// EnvPrefix is the prefix of environment overrides, e.g. AMM_DEX_OWNER.
const EnvPrefix = "AMM"

var (
	// DefaultNodeHome is the default home directory for the application data.
	DefaultNodeHome string
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		userHomeDir = os.TempDir()
	}

	DefaultNodeHome = filepath.Join(userHomeDir, ".amm")
}

// Config holds all application configuration
type Config struct {
	Home      string
	DBBackend string

	Log       LogConfig
	Ledger    LedgerConfig
	Dex       DexConfig
	Curve     CurveConfig
	Telemetry TelemetryConfig
}

// LogConfig selects the logger level and output format ("json" or "plain").
type LogConfig struct {
	Level  string
	Format string
}

// LedgerConfig configures the native currency.
type LedgerConfig struct {
	NativeDenom string
}

// DexConfig configures the pool factory. Amounts and fractions are decimal
// strings so that 256-bit values survive TOML and environment parsing.
type DexConfig struct {
	Owner          string
	CreationFee    string
	SwapFee        string
	RatioTolerance string
	BootstrapMode  string
}

// CurveConfig configures the bonding curves.
type CurveConfig struct {
	SellFee string
}

// TelemetryConfig toggles exposure of the Prometheus metrics.
type TelemetryConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration used when no file or environment
// override is present.
func DefaultConfig() Config {
	dexParams := dextypes.DefaultParams()
	curveParams := curvetypes.DefaultParams()
	return Config{
		Home:      DefaultNodeHome,
		DBBackend: string(dbm.MemDBBackend),
		Log: LogConfig{
			Level:  zerolog.InfoLevel.String(),
			Format: "json",
		},
		Ledger: LedgerConfig{
			NativeDenom: NativeDenom,
		},
		Dex: DexConfig{
			CreationFee:    dexParams.CreationFee.String(),
			SwapFee:        dexParams.SwapFee.String(),
			RatioTolerance: dexParams.RatioTolerance.String(),
			BootstrapMode:  dexParams.BootstrapMode,
		},
		Curve: CurveConfig{
			SellFee: curveParams.SellFee.String(),
		},
		Telemetry: TelemetryConfig{
			Enabled: true,
		},
	}
}

// LoadConfig reads configuration from an optional TOML file and AMM_*
// environment variables, falling back to DefaultConfig for missing values.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("home", def.Home)
	v.SetDefault("db-backend", def.DBBackend)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("ledger.native-denom", def.Ledger.NativeDenom)
	v.SetDefault("dex.owner", def.Dex.Owner)
	v.SetDefault("dex.creation-fee", def.Dex.CreationFee)
	v.SetDefault("dex.swap-fee", def.Dex.SwapFee)
	v.SetDefault("dex.ratio-tolerance", def.Dex.RatioTolerance)
	v.SetDefault("dex.bootstrap-mode", def.Dex.BootstrapMode)
	v.SetDefault("curve.sell-fee", def.Curve.SellFee)
	v.SetDefault("telemetry.enabled", def.Telemetry.Enabled)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigType("toml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// TOML may carry amounts as integers or floats; cast normalises them.
	creationFee, err := cast.ToStringE(v.Get("dex.creation-fee"))
	if err != nil {
		return Config{}, fmt.Errorf("dex.creation-fee: %w", err)
	}
	swapFee, err := cast.ToStringE(v.Get("dex.swap-fee"))
	if err != nil {
		return Config{}, fmt.Errorf("dex.swap-fee: %w", err)
	}
	tolerance, err := cast.ToStringE(v.Get("dex.ratio-tolerance"))
	if err != nil {
		return Config{}, fmt.Errorf("dex.ratio-tolerance: %w", err)
	}
	sellFee, err := cast.ToStringE(v.Get("curve.sell-fee"))
	if err != nil {
		return Config{}, fmt.Errorf("curve.sell-fee: %w", err)
	}
	enabled, err := cast.ToBoolE(v.Get("telemetry.enabled"))
	if err != nil {
		return Config{}, fmt.Errorf("telemetry.enabled: %w", err)
	}

	cfg := Config{
		Home:      v.GetString("home"),
		DBBackend: v.GetString("db-backend"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Ledger: LedgerConfig{
			NativeDenom: v.GetString("ledger.native-denom"),
		},
		Dex: DexConfig{
			Owner:          v.GetString("dex.owner"),
			CreationFee:    creationFee,
			SwapFee:        swapFee,
			RatioTolerance: tolerance,
			BootstrapMode:  v.GetString("dex.bootstrap-mode"),
		},
		Curve: CurveConfig{
			SellFee: sellFee,
		},
		Telemetry: TelemetryConfig{
			Enabled: enabled,
		},
	}
	return cfg, cfg.Validate()
}

// Validate validates the configuration
func (c Config) Validate() error {
	SetConfig()

	switch dbm.BackendType(c.DBBackend) {
	case dbm.MemDBBackend:
	case dbm.GoLevelDBBackend:
		if c.Home == "" {
			return errors.New("home is required for the goleveldb backend")
		}
	default:
		return fmt.Errorf("unsupported db-backend %q", c.DBBackend)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "plain" {
		return fmt.Errorf("log.format must be json or plain, got %q", c.Log.Format)
	}

	if c.Dex.Owner == "" {
		return errors.New("dex.owner is required")
	}
	if _, err := sdk.AccAddressFromBech32(c.Dex.Owner); err != nil {
		return fmt.Errorf("dex.owner: %w", err)
	}

	if _, err := c.DexParams(); err != nil {
		return err
	}
	if _, err := c.CurveParams(); err != nil {
		return err
	}
	return nil
}

// DexParams converts the dex section into module parameters.
func (c Config) DexParams() (dextypes.Params, error) {
	creationFee, ok := math.NewIntFromString(strings.TrimSpace(c.Dex.CreationFee))
	if !ok {
		return dextypes.Params{}, fmt.Errorf("dex.creation-fee: invalid integer %q", c.Dex.CreationFee)
	}
	swapFee, err := math.LegacyNewDecFromStr(strings.TrimSpace(c.Dex.SwapFee))
	if err != nil {
		return dextypes.Params{}, fmt.Errorf("dex.swap-fee: %w", err)
	}
	tolerance, err := math.LegacyNewDecFromStr(strings.TrimSpace(c.Dex.RatioTolerance))
	if err != nil {
		return dextypes.Params{}, fmt.Errorf("dex.ratio-tolerance: %w", err)
	}

	params := dextypes.Params{
		CreationFee:    creationFee,
		FeeDenom:       c.Ledger.NativeDenom,
		SwapFee:        swapFee,
		RatioTolerance: tolerance,
		BootstrapMode:  c.Dex.BootstrapMode,
	}
	return params, params.Validate()
}

// CurveParams converts the curve section into module parameters.
func (c Config) CurveParams() (curvetypes.Params, error) {
	sellFee, err := math.LegacyNewDecFromStr(strings.TrimSpace(c.Curve.SellFee))
	if err != nil {
		return curvetypes.Params{}, fmt.Errorf("curve.sell-fee: %w", err)
	}

	params := curvetypes.Params{
		NativeDenom: c.Ledger.NativeDenom,
		SellFee:     sellFee,
	}
	return params, params.Validate()
}
