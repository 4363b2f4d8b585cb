package config

import (
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	// Data — откуда читать пять справочников каталога: либо локальный
	// каталог, либо базовый URL. Каталог имеет приоритет.
	Data struct {
		Dir     string
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"data"`

	// Intake — адрес точки приёма заказов, куда отправляет витрина.
	Intake struct {
		URL string
	} `mapstructure:"intake"`
}

func Load(path string) (Config, error) {
	// .env рядом с бинарём перекрывает значения из файла через APP_*
	_ = gotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
