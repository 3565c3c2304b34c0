package config

import (
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/viper"
)

// DemoProperties 演示程序配置
type DemoProperties struct {
	Debug bool     `mapstructure:"debug"` // 是否是debug
	First string   `mapstructure:"first"` // 单独插入的元素
	Batch []string `mapstructure:"batch"` // 批量插入的元素
}

var Properties *DemoProperties

func init() {
	// 默认配置
	Properties = defaultProperties()
}

func defaultProperties() *DemoProperties {
	return &DemoProperties{
		Debug: os.Getenv("ENV") == "DEBUG",
		First: "apple",
		Batch: []string{"banana", "orange"},
	}
}

// SetupConfig 读配置文件，文件不存在时使用默认配置
func SetupConfig(configFilename string) error {
	if !fileExists(configFilename) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrap(err, 0)
	}

	if err := v.Unmarshal(Properties); err != nil {
		return errors.Wrap(err, 0)
	}

	return nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}
