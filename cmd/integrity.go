package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"xwing-inventory/core/database"
	"xwing-inventory/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// integrityCmd runs every check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check that the inputs are present and consistent",
	Long: `Checks that the expansion catalog, the collection and xwing-data2 exist, that
every expansion lists known cards and, when a database is reachable, that the snapshot
tables match their models. Exits non-zero when a check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, rt, err := integrityService(true)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var failed []string
		check := func(name string, matched bool, v any, err error) error {
			switch {
			case errors.Is(err, integrity.ErrNoDatabase):
				rt.log.Warn("Check skipped", zap.String("check", name), zap.Error(err))
				return nil
			case err != nil:
				rt.log.Error("Check could not run", zap.String("check", name), zap.Error(err))
				failed = append(failed, name)
				return nil
			case !matched:
				failed = append(failed, name)
			}
			return printJSON(cmd, name, v)
		}

		sources, err := svc.CheckSources(ctx)
		if err = check("sources", sources != nil && sources.Matched, sources, err); err != nil {
			return err
		}
		cardFiles, err := svc.CheckCardFiles(ctx)
		if err = check("cards", cardFiles != nil && cardFiles.Matched, cardFiles, err); err != nil {
			return err
		}
		cat, err := svc.CheckCatalog(ctx)
		if err = check("catalog", cat != nil && cat.Matched, cat, err); err != nil {
			return err
		}
		schema, err := svc.CheckSchema(ctx)
		if err = check("schema", schema != nil && schema.Matched, schema, err); err != nil {
			return err
		}

		if len(failed) > 0 {
			return fmt.Errorf("integrity checks failed: %v", failed)
		}
		rt.log.Info("All integrity checks passed")
		return nil
	},
}

var sourcesCheckCmd = &cobra.Command{
	Use:   "sources",
	Short: "Check that the input documents exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, false, func(ctx context.Context, svc *integrity.Service) (any, bool, error) {
			r, err := svc.CheckSources(ctx)
			return r, r != nil && r.Matched, err
		})
	},
}

var cardsCheckCmd = &cobra.Command{
	Use:   "cards",
	Short: "Check that every xwing-data2 file in the manifest exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, false, func(ctx context.Context, svc *integrity.Service) (any, bool, error) {
			r, err := svc.CheckCardFiles(ctx)
			return r, r != nil && r.Matched, err
		})
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check that every expansion lists known cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, false, func(ctx context.Context, svc *integrity.Service) (any, bool, error) {
			r, err := svc.CheckCatalog(ctx)
			return r, r != nil && r.Matched, err
		})
	},
}

var schemaCheckCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the snapshot tables against their models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, true, func(ctx context.Context, svc *integrity.Service) (any, bool, error) {
			r, err := svc.CheckSchema(ctx)
			return r, r != nil && r.Matched, err
		})
	},
}

func init() {
	integrityCmd.AddCommand(sourcesCheckCmd)
	integrityCmd.AddCommand(cardsCheckCmd)
	integrityCmd.AddCommand(catalogCheckCmd)
	integrityCmd.AddCommand(schemaCheckCmd)
	RootCmd.AddCommand(integrityCmd)
}

// integrityService builds the service. With withDB a failed connection leaves
// the schema check disabled rather than failing.
func integrityService(withDB bool) (*integrity.Service, *runtime, error) {
	rt, err := bootstrap(false)
	if err != nil {
		return nil, nil, err
	}

	var db *gorm.DB
	if withDB {
		if conn, err := database.Connect(rt.cfg.Database); err != nil {
			rt.log.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}
	return integrity.NewService(rt.src, rt.cfg.Sources, db, rt.log), rt, nil
}

func runCheck(cmd *cobra.Command, withDB bool, run func(context.Context, *integrity.Service) (any, bool, error)) error {
	svc, _, err := integrityService(withDB)
	if err != nil {
		return err
	}
	v, matched, err := run(cmd.Context(), svc)
	if err != nil {
		return err
	}
	if err := printJSON(cmd, cmd.Name(), v); err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%s check failed", cmd.Name())
	}
	return nil
}

func printJSON(cmd *cobra.Command, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s report: %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n%s\n", name, data)
	return nil
}
