package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"

	curvetypes "github.com/paw-chain/amm/x/bondingcurve/types"
	dextypes "github.com/paw-chain/amm/x/dex/types"
	ledgertypes "github.com/paw-chain/amm/x/ledger/types"
)

// GenesisState represents the genesis state of the application.
// It is a map from module name to module genesis state.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default genesis state, taking module
// parameters from the config.
func NewDefaultGenesisState(cfg Config) (GenesisState, error) {
	dexParams, err := cfg.DexParams()
	if err != nil {
		return nil, err
	}
	curveParams, err := cfg.CurveParams()
	if err != nil {
		return nil, err
	}

	genesis := make(GenesisState)

	// Ledger module - fungible balances, nothing minted by default
	ledgerGenesis := ledgertypes.DefaultGenesis()
	ledgerGenesis.Params.NativeDenom = cfg.Ledger.NativeDenom
	genesis[ledgertypes.ModuleName] = mustMarshalJSON(ledgerGenesis)

	// Dex module - pool factory and constant-product pools
	dexGenesis := dextypes.DefaultGenesis()
	dexGenesis.Params = dexParams
	genesis[dextypes.ModuleName] = mustMarshalJSON(dexGenesis)

	// Bonding curve module
	curveGenesis := curvetypes.DefaultGenesis()
	curveGenesis.Params = curveParams
	genesis[curvetypes.ModuleName] = mustMarshalJSON(curveGenesis)

	return genesis, nil
}

// LoadGenesisFile reads a genesis state from a JSON file.
func LoadGenesisFile(path string) (GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read genesis %s: %w", path, err)
	}

	var genesis GenesisState
	if err := json.Unmarshal(bz, &genesis); err != nil {
		return nil, fmt.Errorf("decode genesis %s: %w", path, err)
	}
	return genesis, nil
}

func (gs GenesisState) decode() (*ledgertypes.GenesisState, *dextypes.GenesisState, *curvetypes.GenesisState, error) {
	ledgerGenesis := ledgertypes.DefaultGenesis()
	dexGenesis := dextypes.DefaultGenesis()
	curveGenesis := curvetypes.DefaultGenesis()

	for name, target := range map[string]any{
		ledgertypes.ModuleName: ledgerGenesis,
		dextypes.ModuleName:    dexGenesis,
		curvetypes.ModuleName:  curveGenesis,
	} {
		raw, ok := gs[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return nil, nil, nil, fmt.Errorf("decode %s genesis: %w", name, err)
		}
	}
	return ledgerGenesis, dexGenesis, curveGenesis, nil
}

// Validate performs stateless validation of every module's genesis.
func (gs GenesisState) Validate() error {
	ledgerGenesis, dexGenesis, curveGenesis, err := gs.decode()
	if err != nil {
		return err
	}
	if err := ledgerGenesis.Validate(); err != nil {
		return fmt.Errorf("%s: %w", ledgertypes.ModuleName, err)
	}
	if err := dexGenesis.Validate(); err != nil {
		return fmt.Errorf("%s: %w", dextypes.ModuleName, err)
	}
	if err := curveGenesis.Validate(); err != nil {
		return fmt.Errorf("%s: %w", curvetypes.ModuleName, err)
	}
	return nil
}

// InitGenesis loads the genesis state, checks the invariants against it and
// commits the first version.
func (app *App) InitGenesis(ctx context.Context, genesis GenesisState) error {
	ledgerGenesis, dexGenesis, curveGenesis, err := genesis.decode()
	if err != nil {
		return err
	}

	_, err = app.Execute(ctx, func(sdkCtx sdk.Context) error {
		if err := app.LedgerKeeper.InitGenesis(sdkCtx, *ledgerGenesis); err != nil {
			return err
		}
		if err := app.DexKeeper.InitGenesis(sdkCtx, *dexGenesis); err != nil {
			return err
		}
		if err := app.CurveKeeper.InitGenesis(sdkCtx, *curveGenesis); err != nil {
			return err
		}
		return app.invariants.assert(sdkCtx)
	})
	if err != nil {
		return fmt.Errorf("init genesis: %w", err)
	}

	app.Commit()
	return nil
}

// ExportGenesis exports the current state of every module.
func (app *App) ExportGenesis(ctx context.Context) (GenesisState, error) {
	genesis := make(GenesisState)
	err := app.Query(ctx, func(sdkCtx sdk.Context) error {
		ledgerGenesis, err := app.LedgerKeeper.ExportGenesis(sdkCtx)
		if err != nil {
			return err
		}
		dexGenesis, err := app.DexKeeper.ExportGenesis(sdkCtx)
		if err != nil {
			return err
		}
		curveGenesis, err := app.CurveKeeper.ExportGenesis(sdkCtx)
		if err != nil {
			return err
		}

		genesis[ledgertypes.ModuleName] = mustMarshalJSON(ledgerGenesis)
		genesis[dextypes.ModuleName] = mustMarshalJSON(dexGenesis)
		genesis[curvetypes.ModuleName] = mustMarshalJSON(curveGenesis)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export genesis: %w", err)
	}
	return genesis, nil
}

func mustMarshalJSON(v any) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}
