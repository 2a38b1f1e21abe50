package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	PropertiesPath  string
	MessagesPath    string
}

var Env *EnvConfig

func init() {
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "todo-web"),
		PropertiesPath:  getStringOrDefault("PROPERTIES_FILE_PATH", "configs/application.yml"),
		MessagesPath:    viper.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
