package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	// BaseDir 是 cookies、数据文件的根目录
	BaseDir string    `mapstructure:"base_dir"`
	Log     LogConfig `mapstructure:"log"`

	// OpenAI 文本服务配置
	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIAPIBase string `mapstructure:"openai_api_base"`
	OpenAIModel   string `mapstructure:"openai_model"`

	// 视频预处理配置
	VideoDirectory     string   `mapstructure:"video_directory"`
	RemovePatterns     []string `mapstructure:"remove_patterns"`
	TranslateToChinese bool     `mapstructure:"translate_to_chinese"`
	MaxFilenameLength  int      `mapstructure:"max_filename_length"`

	Automation AutomationConfig `mapstructure:"automation"`
	History    HistoryConfig    `mapstructure:"history"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json 或 text
	Output string `mapstructure:"output"` // stdout 或 file
	// 以下仅在 output=file 时生效
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`    // 兆字节
	MaxBackups int    `mapstructure:"max_backups"` // 备份数量
	MaxAge     int    `mapstructure:"max_age"`     // 天数
	Compress   bool   `mapstructure:"compress"`    // 是否压缩旧文件
}

type AutomationConfig struct {
	// Command 是浏览器自动化助手的可执行文件路径
	Command string `mapstructure:"command"`
}

type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // sqlite 数据库文件
}

func Load() *Config {
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("未找到配置文件，使用默认配置")
		} else {
			log.Fatalf("读取配置文件出错: %v", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("无法解码配置: %v", err)
	}

	if err := validateConfig(&config); err != nil {
		log.Fatalf("配置验证失败: %v", err)
	}

	return &config
}

// setDefaults 设置默认配置
func setDefaults() {
	viper.SetDefault("base_dir", ".")

	// 日志默认配置
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "data/logs/video_processor.log")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age", 28)
	viper.SetDefault("log.compress", true)

	viper.SetDefault("openai_model", "gpt-4o-mini")

	// 预处理默认配置
	viper.SetDefault("max_filename_length", 100)

	viper.SetDefault("automation.command", "sau-automation")

	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.path", "data/history.db")

	// 允许通过环境变量覆盖密钥
	_ = viper.BindEnv("openai_api_key", "OPENAI_API_KEY")
	_ = viper.BindEnv("openai_api_base", "OPENAI_API_BASE")
}

// validateConfig 验证配置的有效性
func validateConfig(config *Config) error {
	if config.BaseDir == "" {
		return fmt.Errorf("base_dir 未设置")
	}
	if config.MaxFilenameLength <= 0 {
		return fmt.Errorf("max_filename_length 必须为正数")
	}
	return nil
}
