package cmd

import (
	"fmt"
	"strings"

	"htmx-greeter/core/config"
	"htmx-greeter/core/database"
	"htmx-greeter/core/logger"
	"htmx-greeter/core/storage"
	"htmx-greeter/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	publishPrefix       string
	publishCreateBucket bool
	publishDryRun       bool
	publishPrune        bool
	publishOutput       string
)

// publishCmd mirrors the embedded bundle into the configured bucket.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Mirror the embedded assets into the configured S3/MinIO bucket",
	Long: `Uploads every embedded asset under its URL path (style.css, htmx.min.js,
static/...) to STORAGE_BUCKET. When DATABASE_DRIVER is set, a manifest of
uploaded digests is kept so unchanged assets are skipped on the next run.`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

func init() {
	f := publishCmd.Flags()
	f.StringVar(&publishPrefix, "prefix", "", "object key prefix (default STORAGE_PREFIX)")
	f.BoolVar(&publishCreateBucket, "create-bucket", false, "create the bucket when it does not exist")
	f.BoolVar(&publishDryRun, "dry-run", false, "report changes without writing")
	f.BoolVar(&publishPrune, "prune", false, "remove objects under the prefix that are no longer embedded (requires a prefix)")
	f.StringVarP(&publishOutput, "output", "o", outputTable, "output format: table, json or yaml")
	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return err
	}

	// Manifest (Optional)
	var manifest *publish.Manifest
	if cfg.Database.Enabled() {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, publishing without manifest", zap.Error(err))
		} else if manifest, err = publish.NewManifest(db); err != nil {
			logg.Warn("Manifest unavailable, publishing without it", zap.Error(err))
		}
	}

	store, err := loadBundle()
	if err != nil {
		return err
	}

	prefix := cfg.Storage.Prefix
	if cmd.Flags().Changed("prefix") {
		prefix = publishPrefix
	}

	svc := publish.NewService(client, store, manifest, logg)
	report, err := svc.Publish(commandContext(cmd), publish.Options{
		Bucket:       cfg.Storage.Bucket,
		Prefix:       prefix,
		CreateBucket: publishCreateBucket,
		DryRun:       publishDryRun,
		Prune:        publishPrune,
	})
	if report == nil {
		return err
	}

	if writeErr := writeReport(cmd, report); writeErr != nil {
		return multierr.Append(err, writeErr)
	}
	return err
}

func writeReport(cmd *cobra.Command, report *publish.Report) error {
	out := cmd.OutOrStdout()
	if ok, err := writeStructured(out, publishOutput, report); ok {
		return err
	}

	verb, created := "uploaded", "created"
	if report.DryRun {
		verb, created = "would upload", "would be created"
	}
	if report.CreatedBucket {
		fmt.Fprintf(out, "bucket %s %s\n", report.Bucket, created)
	}
	fmt.Fprintf(out, "bucket %s: %d %s, %d unchanged, %d failed, %d pruned\n",
		report.Bucket, len(report.Uploaded), verb, len(report.Skipped), len(report.Failed), len(report.Pruned))
	for _, section := range []struct {
		label string
		keys  []string
	}{
		{verb, report.Uploaded},
		{"failed", report.Failed},
		{"pruned", report.Pruned},
	} {
		if len(section.keys) > 0 {
			fmt.Fprintf(out, "  %s: %s\n", section.label, strings.Join(section.keys, ", "))
		}
	}
	return nil
}
