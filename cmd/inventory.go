package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"xwing-inventory/core/database"
	"xwing-inventory/core/source"
	"xwing-inventory/core/storage"
	"xwing-inventory/feature/report"
	"xwing-inventory/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	contentTypeJSON = "application/json"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	jsonOutput    bool
	xlsxOutput    bool
	allExpansions bool
	takeSnapshot  bool
	snapshotLabel string
	uploadExports bool
)

// export is one generated output file.
type export struct {
	path        string
	contentType string
	data        []byte
}

// inventoryCmd builds the inventory from the configured sources.
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Build the owned inventory",
	Long: `Reads the expansion catalog, the collection export and xwing-data2, reconciles
them and prints a summary. Unresolved names and unknown cards are logged as warnings.

Examples:
  # Summary only
  inventory

  # Write inventory.json and the workbook, listing every known expansion
  inventory --json --xlsx --all

  # Store a snapshot and upload the outputs to the storage bucket
  inventory --json --snapshot --label weekly --upload`,
	RunE: runInventory,
}

func init() {
	inventoryCmd.Flags().BoolVar(&jsonOutput, "json", false, "Write the records as JSON to export.json_path")
	inventoryCmd.Flags().BoolVar(&xlsxOutput, "xlsx", false, "Write the workbook to export.xlsx_path")
	inventoryCmd.Flags().BoolVar(&allExpansions, "all", false, "List every known expansion in the workbook, owned or not")
	inventoryCmd.Flags().BoolVar(&takeSnapshot, "snapshot", false, "Store the inventory in the database and report changes since the last snapshot")
	inventoryCmd.Flags().StringVar(&snapshotLabel, "label", "", "Label of the stored snapshot")
	inventoryCmd.Flags().BoolVar(&uploadExports, "upload", false, "Upload written files to the storage bucket under export.upload_prefix")

	RootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()

	if uploadExports && !jsonOutput && !xlsxOutput {
		return errors.New("--upload needs --json or --xlsx")
	}

	rt, err := bootstrap(uploadExports)
	if err != nil {
		return err
	}
	defer rt.log.Sync()

	opts, err := rt.options()
	if err != nil {
		return err
	}

	rep, err := report.Build(ctx, rt.inputs(), opts)
	if err != nil {
		return fmt.Errorf("failed to build inventory: %w", err)
	}

	exports, err := writeExports(rep, rt.cfg.Export.JSONPath, rt.cfg.Export.XLSXPath)
	if err != nil {
		return err
	}
	for _, e := range exports {
		rt.log.Info("Export written", zap.String("file", e.path), zap.Int("bytes", len(e.data)))
	}

	if takeSnapshot {
		if err := storeSnapshot(ctx, rt, rep); err != nil {
			return err
		}
	}

	if uploadExports {
		if err := upload(ctx, rt, exports); err != nil {
			return err
		}
	}

	printSummary(rep, time.Since(startTime))
	return nil
}

func writeExports(rep *report.Report, jsonPath, xlsxPath string) ([]export, error) {
	var exports []export

	if jsonOutput {
		var buf bytes.Buffer
		if err := report.WriteJSON(&buf, rep.Records); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		exports = append(exports, export{path: jsonPath, contentType: contentTypeJSON, data: buf.Bytes()})
	}

	if xlsxOutput {
		var buf bytes.Buffer
		if err := report.WriteWorkbook(&buf, rep, report.WorkbookOptions{AllExpansions: allExpansions}); err != nil {
			return nil, fmt.Errorf("failed to build workbook: %w", err)
		}
		exports = append(exports, export{path: xlsxPath, contentType: contentTypeXLSX, data: buf.Bytes()})
	}

	for _, e := range exports {
		if err := os.WriteFile(e.path, e.data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", e.path, err)
		}
	}
	return exports, nil
}

func storeSnapshot(ctx context.Context, rt *runtime, rep *report.Report) error {
	db, err := database.Connect(rt.cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required for --snapshot: %w", err)
	}

	store := snapshot.NewStore(db, rt.log)
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	previous, err := store.Latest(ctx)
	switch {
	case errors.Is(err, snapshot.ErrNoSnapshot):
		rt.log.Info("No previous snapshot")
	case err != nil:
		return err
	default:
		before, err := store.Inventory(ctx, previous.ID)
		if err != nil {
			return err
		}
		changes := snapshot.Compare(before, rep.Inventory)
		rt.log.Info("Changes since last snapshot",
			zap.String("snapshot", previous.ID),
			zap.Time("taken", previous.CreatedAt),
			zap.Int("changed_items", len(changes)),
		)
		for _, c := range changes {
			rt.log.Info("Changed item", zap.Stringer("item", c.Item), zap.Uint32("before", c.Before), zap.Uint32("after", c.After))
		}
	}

	snap, err := store.Save(ctx, snapshotLabel, rep.Inventory, len(rep.Diagnostics))
	if err != nil {
		return err
	}
	rt.log.Info("Snapshot stored", zap.String("id", snap.ID), zap.String("label", snap.Label))
	return nil
}

func upload(ctx context.Context, rt *runtime, exports []export) error {
	if err := storage.EnsureBucket(ctx, rt.client, rt.cfg.Storage.Bucket); err != nil {
		return err
	}

	dest := &source.Bucket{Client: rt.client, Bucket: rt.cfg.Storage.Bucket, Prefix: rt.cfg.Export.UploadPrefix}
	for _, e := range exports {
		name := filepath.Base(e.path)
		if err := dest.Put(ctx, name, e.data, e.contentType); err != nil {
			return err
		}
		rt.log.Info("Export uploaded", zap.String("bucket", dest.Bucket), zap.String("key", dest.Key(name)))
	}
	return nil
}

func printSummary(rep *report.Report, took time.Duration) {
	s := rep.Summary
	fmt.Println("\n=== Inventory ===")
	fmt.Printf("Expansions: %d declared, %d resolved, %d unresolved, %d unknown SKUs\n",
		s.DeclaredExpansions, s.ResolvedExpansions, s.UnresolvedExpansions, s.UnknownSKUs)
	fmt.Printf("Singles: %d declared, %d resolved, %d duplicates\n",
		s.DeclaredSingles, s.ResolvedSingles, s.DuplicateSingles)
	fmt.Printf("Unique Ships: %d\n", s.Ships)
	fmt.Printf("Unique Pilots: %d\n", s.Pilots)
	fmt.Printf("Unique Upgrades: %d\n", s.Upgrades)
	fmt.Printf("Total Items: %d\n", s.TotalItems)
	fmt.Printf("Cards Not Found: %d\n", s.CardsNotFound)
	fmt.Printf("Diagnostics: %d\n", len(rep.Diagnostics))
	fmt.Printf("Execution Time: %s\n", took.String())
}
