package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/cardboard/internal/config"
	"github.com/aidanlsb/cardboard/internal/ui"
)

type configPathInfo struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardboard config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ResolvePath(configPath)
		created, err := config.CreateDefault(path)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"path": path, "created": created}, nil)
			return nil
		}
		if !created {
			fmt.Println(ui.Infof("Config already exists: %s", ui.FilePath(path)))
			return nil
		}
		fmt.Println(ui.Successf("Created %s", ui.FilePath(path)))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := configPathInfo{Path: config.ResolvePath(configPath)}
		if _, err := os.Stat(info.Path); err == nil {
			info.Exists = true
		}

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}
		fmt.Println(info.Path)
		if !info.Exists {
			fmt.Println(ui.Hint("(does not exist, run 'cardboard config init' to create it)"))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
