package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it. Every secret may be left blank; the site then runs
// the matching feature in demo mode.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome! Let's configure the Voice Through Image site.")
	fmt.Println("Leave any key blank to run that feature in demo mode.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. AI provider.
	providerPrompt := promptui.Select{
		Label: "Select AI provider",
		Items: []string{"google", "openai"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.AI.Provider = ProviderType(providerStr)
	cfg.AI.Model = DefaultModels[cfg.AI.Provider]

	// 2. AI key.
	cfg.AI.APIKey, err = promptSecret(fmt.Sprintf("AI API key (%s)", APIKeyEnvVar(cfg.AI.Provider)))
	if err != nil {
		return nil, fmt.Errorf("ai key: %w", err)
	}

	// 3. Firebase.
	cfg.Firebase.APIKey, err = promptSecret("Firebase web API key")
	if err != nil {
		return nil, fmt.Errorf("firebase key: %w", err)
	}
	if cfg.Firebase.APIKey != "" {
		if cfg.Firebase.ProjectID, err = promptText("Firebase project ID", ""); err != nil {
			return nil, fmt.Errorf("project id: %w", err)
		}
		defaultBucket := ""
		if cfg.Firebase.ProjectID != "" {
			defaultBucket = cfg.Firebase.ProjectID + ".appspot.com"
			cfg.Firebase.AuthDomain = cfg.Firebase.ProjectID + ".firebaseapp.com"
		}
		if cfg.Firebase.StorageBucket, err = promptText("Storage bucket", defaultBucket); err != nil {
			return nil, fmt.Errorf("storage bucket: %w", err)
		}
		if cfg.Firebase.CredentialsFile, err = promptText("Service account key file (blank for default credentials)", ""); err != nil {
			return nil, fmt.Errorf("credentials file: %w", err)
		}
	}

	// 4. Admins.
	admins, err := promptText("Admin e-mails (comma-separated)", "")
	if err != nil {
		return nil, fmt.Errorf("admin emails: %w", err)
	}
	cfg.Admin.Emails = splitAndTrim(admins)

	// 5. Port.
	portStr, err := (&promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			_, err := strconv.Atoi(s)
			return err
		},
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func promptText(label, def string) (string, error) {
	p := promptui.Prompt{Label: label, Default: def}
	v, err := p.Run()
	return strings.TrimSpace(v), err
}

func promptSecret(label string) (string, error) {
	p := promptui.Prompt{Label: label, Mask: '*'}
	v, err := p.Run()
	return strings.TrimSpace(v), err
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
