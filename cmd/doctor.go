package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voicethroughimage/vti/internal/config"
	"github.com/voicethroughimage/vti/internal/mode"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report which services are configured",
	Long:  `Prints the credential diagnostics shown in the site's welcome panel, plus the optional integrations, without starting the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		flags := mode.Resolve(cfg)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tSTATUS")
		for _, c := range flags.Credentials() {
			fmt.Fprintf(w, "%s\t%s\n", c.Env, c.Status())
		}
		fmt.Fprintf(w, "%s\t%s\n", "FIREBASE_SERVICE_ACCOUNT_KEY_PATH", config.Secret(cfg.Firebase.CredentialsFile))
		fmt.Fprintf(w, "%s\t%s\n", "GOOGLE_OAUTH_CLIENT_ID", config.Secret(cfg.Google.ClientID))
		fmt.Fprintf(w, "%s\t%s\n", "TELEGRAM_BOT_TOKEN", config.Secret(cfg.Notify.TelegramToken))
		fmt.Fprintf(w, "%s\t%d configured\n", "notify.webhooks", len(cfg.Notify.Webhooks))
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println()
		if !flags.Limited() {
			fmt.Println("All features are live.")
			return nil
		}
		for _, label := range flags.Missing() {
			fmt.Printf("Demo mode: %s\n", label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
