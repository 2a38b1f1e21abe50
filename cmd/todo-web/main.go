// Package main provides the todo-web server and its maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todo-web/configs"
	"todo-web/pkg/log"
	"todo-web/pkg/msg"
	"todo-web/pkg/resource"
)

var (
	// configFile is set by the --config flag.
	configFile string
	// messagesFile is set by the --messages flag.
	messagesFile string
)

func main() {
	defer log.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo-web",
	Short: "todo-web serves the todo list application",
	Long: `todo-web is a browser based todo list manager. Lists and their todos live either in
a relational database or in the browser session, depending on app.storage.mode.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfiguration,
	RunE:              runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", configs.Env.PropertiesPath, "properties file ($PROPERTIES_FILE_PATH)")
	rootCmd.PersistentFlags().StringVar(&messagesFile, "messages", configs.Env.MessagesPath, "messages file merged over the embedded catalogue ($MESSAGES_FILE_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfiguration reads the properties and messages files and applies the log level
func loadConfiguration(cmd *cobra.Command, args []string) error {
	if err := resource.Init(configFile); err != nil {
		return err
	}

	if messagesFile != "" {
		if err := msg.Init(messagesFile); err != nil {
			return fmt.Errorf("read messages %s: %w", messagesFile, err)
		}
	}

	log.SetLevel(resource.GetStringOrDefault("app.log.level", "info"))
	return nil
}
