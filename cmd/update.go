package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/apploc/apploc-cli/pkg/client"
	"github.com/apploc/apploc-cli/pkg/config"
	"github.com/apploc/apploc-cli/pkg/localization"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download translations and update the localization file",
	Long: `Looks for apploc.config.json in the current directory and its parents,
downloads the project translations and writes them, grouped by locale, to the
file the config points to. The file is left untouched when nothing changed.
- APPLOC_ID and APPLOC_SECRET override the config values; they are also read
  from a .env file next to the config
- --dry-run only reports whether the file would change`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmdFlags(updateCmd)
}

func updateCmdFlags(cmd *cobra.Command) {
	cmd.Flags().String("endpoint", client.DefaultEndpoint, "AppLoc API endpoint")
	cmd.Flags().Duration("timeout", 0, "Request timeout (0 means no timeout)")
	cmd.Flags().Bool("dry-run", false, "Report changes without writing the localization file")
	dirFlags(cmd, "Directory to start looking for the config from (default: current directory)")
	ageKeyFlags(cmd, ageKeyFlag)

	_ = cmd.Flags().MarkHidden("endpoint")
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	logger := log.WithField("command", "update")

	startDir, err := workDir(cmd)
	if err != nil {
		return err
	}

	configFile, err := config.Locate(startDir)
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configFile)
	logger.Debugf("using config file %q", configFile)

	env, err := loadEnvironment(configDir)
	if err != nil {
		return err
	}

	conf, err := config.Read(configFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	if v := env.get("id"); len(v) > 0 {
		conf.ID = v
	}
	if v := env.get("secret"); len(v) > 0 {
		conf.Secret = v
	}
	if err = conf.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	secret, err := unsealSecret(cmd, conf.Secret, configDir, env)
	if err != nil {
		return err
	}

	endpoint, _ := cmd.Flags().GetString("endpoint")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	c := client.New(
		client.WithEndpoint(endpoint),
		client.WithTimeout(timeout),
		client.WithUserAgent(appName+"/"+version),
	)

	logger.Debugf("fetching project %q", conf.ID)
	data, err := c.GetProjectData(cmd.Context(), conf.ID, secret)
	if err != nil {
		return err
	}

	project, err := localization.ParseProject(data)
	if err != nil {
		return err
	}

	out := localization.Transform(project)
	for _, code := range localization.UnknownLocales(out) {
		logger.Warnf("unknown locale code %q", code)
	}

	outputFile := conf.OutputPath(configDir)
	content, err := localization.Encode(out, localization.FormatFromPath(outputFile))
	if err != nil {
		return err
	}

	locales, translations := out.Count()
	logger.Debugf("%d locales, %d translations", locales, translations)

	if getBool(cmd, "dry-run") {
		changed, err := localization.Changed(outputFile, content)
		if err != nil {
			return err
		}
		if changed {
			printNote(cmd.OutOrStdout(), "%s would be updated (%d locales, %d translations)", outputFile, locales, translations)
		} else {
			printNote(cmd.OutOrStdout(), "%s is up to date", outputFile)
		}
		return nil
	}

	changed, err := localization.WriteIfChanged(outputFile, content)
	if err != nil {
		return err
	}
	if changed {
		printSuccess(cmd.OutOrStdout(), "Updated %s (%d locales, %d translations)", outputFile, locales, translations)
	} else {
		printNote(cmd.OutOrStdout(), "%s is up to date", outputFile)
	}

	return nil
}
