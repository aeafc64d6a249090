package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/apploc/apploc-cli/pkg/config"
	"github.com/apploc/apploc-cli/pkg/interactive"
	"github.com/apploc/apploc-cli/pkg/utils"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultLocalizationPath = "localizations.json"

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an apploc.config.json file",
	Long: `Asks for the AppLoc project id, secret and localization file path and
writes them to apploc.config.json in the current directory.
- --id, --secret and --path skip the matching question
- --encrypt stores the secret encrypted with an age key; a new key is written
            to apploc.key next to the config unless --age-key or
            --age-key-file is given`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmdFlags(initCmd)
}

func initCmdFlags(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "AppLoc project id")
	cmd.Flags().String("secret", "", "AppLoc project secret")
	cmd.Flags().String("path", "", "Localization file path, relative to the config file (default: "+defaultLocalizationPath+")")
	cmd.Flags().BoolP("force", "f", false, "Force overwrite existing config")
	cmd.Flags().Bool("encrypt", false, "Store the secret encrypted with an age key")
	dirFlags(cmd, "Directory to create the config in (default: current directory)")
	ageKeyFlags(cmd, ageKeyFlag)
}

func runInit(cmd *cobra.Command, _ []string) error {
	logger := log.WithField("command", "init")

	dir, err := workDir(cmd)
	if err != nil {
		return err
	}

	configFile := filepath.Join(dir, config.FileName)
	if err = isConfigExists(cmd, configFile); err != nil {
		return err
	}

	conf, err := collectConfig(cmd, interactive.New(cmd.InOrStdin(), cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	if err = conf.Validate(); err != nil {
		return err
	}

	if getBool(cmd, "encrypt") {
		if err = sealConfigSecret(cmd, conf, dir, logger); err != nil {
			return err
		}
	}

	if err = config.Write(configFile, conf); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	logger.Debugf("config written to %q", configFile)

	printSuccess(cmd.OutOrStdout(), "Created %s", configFile)
	return nil
}

func isConfigExists(cmd *cobra.Command, configFile string) error {
	exists, err := utils.FileExists(configFile)
	if err != nil {
		return err
	}
	if exists && !getBool(cmd, "force") {
		return fmt.Errorf("config file %s already exists, use --force to overwrite it", configFile)
	}
	return nil
}

func collectConfig(cmd *cobra.Command, p *interactive.Prompter) (*config.Config, error) {
	conf := &config.Config{Path: defaultLocalizationPath}

	var actions interactive.Actions
	if cmd.Flags().Changed("id") {
		conf.ID, _ = cmd.Flags().GetString("id")
	} else {
		actions = append(actions, p.NewAction(p.String(), "Project id", &conf.ID))
	}
	if cmd.Flags().Changed("secret") {
		conf.Secret, _ = cmd.Flags().GetString("secret")
	} else {
		actions = append(actions, p.NewAction(p.Password(), "Project secret", &conf.Secret))
	}
	if cmd.Flags().Changed("path") {
		conf.Path, _ = cmd.Flags().GetString("path")
	} else {
		actions = append(actions, p.NewAction(p.String(), "Localization file path", &conf.Path))
	}

	if err := actions.Run(); err != nil {
		return nil, err
	}
	return conf, nil
}

func sealConfigSecret(cmd *cobra.Command, conf *config.Config, dir string, logger *log.Entry) error {
	cryptKey, created, err := readOrCreateNewAgeKey(cmd, ageKeyFlag, dir, environment{})
	if err != nil {
		return err
	}

	if created {
		keyFile := ageKeyFile(cmd, ageKeyFlag, dir)
		if err = cryptKey.WriteKeyFile(keyFile); err != nil {
			return fmt.Errorf("save age key: %w", err)
		}
		logger.Debugf("age key written to %q", keyFile)
		printNote(cmd.OutOrStdout(), "Age key saved to %s, keep it out of version control", keyFile)
	}

	conf.Secret, err = cryptKey.Encrypt(conf.Secret)
	return err
}
