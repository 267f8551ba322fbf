package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/sidetabs/internal/cli/styles"
	"github.com/bnema/sidetabs/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfigStatus,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the configuration again whenever the file changes",
	RunE:  runConfigWatch,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Overwrite the config file with the defaults",
	RunE:  runConfigReset,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configWatchCmd, configResetCmd)
}

func runConfigStatus(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderConfigInfo(path, app.Config))
	return nil
}

func runConfigWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.Manager == nil {
		return fmt.Errorf("config manager unavailable")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()

	config.OnConfigChange(func(cfg *config.Config) {
		fmt.Println(renderer.RenderReloaded(path))
		fmt.Println(renderer.RenderConfigInfo(path, cfg))
	})
	if err := config.Watch(); err != nil {
		return err
	}
	fmt.Println(renderer.RenderConfigInfo(path, app.Config))

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

func runConfigReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.Manager == nil {
		return fmt.Errorf("config manager unavailable")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	cfg := config.DefaultConfig()
	if err := app.Manager.Save(cfg); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderConfigInfo(app.Manager.GetConfigFile(), cfg))
	return nil
}
