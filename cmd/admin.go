package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/voicethroughimage/vti/internal/audit"
	"github.com/voicethroughimage/vti/internal/identity"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage dashboard administrators",
	Long:  `Grants or revokes the admin custom claim on Firebase accounts. Requires service account credentials.`,
}

var adminGrantCmd = &cobra.Command{
	Use:   "grant <email>",
	Short: "Give an account dashboard access",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRole(cmd.Context(), args[0], true)
	},
}

var adminRevokeCmd = &cobra.Command{
	Use:   "revoke <email>",
	Short: "Remove dashboard access from an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRole(cmd.Context(), args[0], false)
	},
}

func runRole(ctx context.Context, email string, grant bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Firebase.CredentialsFile == "" {
		return errors.New("firebase.credentials_file (or FIREBASE_SERVICE_ACCOUNT_KEY_PATH) is required to manage roles")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	if err != nil {
		return fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("opening firebase auth: %w", err)
	}

	roles := identity.NewRoleManager(client, cfg.Admin.Claim)
	var uid string
	if grant {
		uid, err = roles.Grant(ctx, email)
	} else {
		uid, err = roles.Revoke(ctx, email)
	}
	if err != nil {
		return err
	}

	verb, action := "granted to", audit.ActionAdminGranted
	if !grant {
		verb, action = "revoked from", audit.ActionAdminRevoked
	}
	if database, err := openDB(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record the change in the audit trail: %v\n", err)
	} else {
		defer database.Close()
		actor := os.Getenv("USER")
		if actor == "" {
			actor = "cli"
		}
		if err := audit.NewStore(database).Log(ctx, audit.Entry{
			ActorID:  actor,
			Action:   action,
			TargetID: uid,
			Summary:  email,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not record the change in the audit trail: %v\n", err)
		}
	}
	fmt.Printf("Admin access %s %s (uid %s). It takes effect at their next sign-in.\n", verb, email, uid)
	return nil
}

func init() {
	adminCmd.AddCommand(adminGrantCmd, adminRevokeCmd)
	rootCmd.AddCommand(adminCmd)
}
