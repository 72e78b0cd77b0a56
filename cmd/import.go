package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voicethroughimage/vti/internal/audit"
	"github.com/voicethroughimage/vti/internal/importers"
	"github.com/voicethroughimage/vti/internal/mode"
	"github.com/voicethroughimage/vti/internal/progress"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Bulk-load data into the site",
}

var importResourcesCmd = &cobra.Command{
	Use:   "resources <file.yml>",
	Short: "Add community resources to the directory from a YAML or JSON file",
	Long: `Reads a list of organizations and adds each one to the directory the
same way the admin dashboard does. Entries already listed (same name and
location) are skipped. Without Firebase credentials the entries are stored
locally and shown as preview entries.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()

		resources, problems, err := importers.ParseResources(f)
		if err != nil {
			return err
		}
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "Skipping %s\n", p)
		}
		if importDryRun {
			fmt.Printf("%d valid resource(s), %d problem(s)\n", len(resources), len(problems))
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := openServices(cmd.Context(), cfg, newLogger(cfg))
		if err != nil {
			return err
		}
		defer svc.Close()

		res, err := importers.Import(cmd.Context(), svc.library, &mode.Fallback{}, resources, progress.NewReporter())
		if err != nil {
			return err
		}
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "Failed %s\n", e)
		}
		if res.ItemsImported > 0 {
			if err := svc.audit.Log(cmd.Context(), audit.Entry{
				ActorID: "cli",
				Action:  audit.ActionResourceCreated,
				Summary: fmt.Sprintf("imported %d resource(s) from %s", res.ItemsImported, args[0]),
				Preview: res.Preview,
			}); err != nil {
				svc.log.Warn().Err(err).Msg("recording import in audit trail")
			}
		}

		fmt.Printf("Imported %d of %d resource(s), %d already listed.\n", res.ItemsImported, res.ItemsFound, res.ItemsSkipped)
		if res.Preview {
			fmt.Println("Stored locally (preview mode): Firestore was not available.")
		}
		return nil
	},
}

func init() {
	importResourcesCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate the file without writing")
	importCmd.AddCommand(importResourcesCmd)
	rootCmd.AddCommand(importCmd)
}
