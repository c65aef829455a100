package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Personal AI Partner specifics
	Store Store
	Chat  ChatConfig
	Line  LineConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// Store locates the flat JSON documents that hold all persistent state.
type Store struct {
	KnowledgeFile    string
	ConversationFile string
	PurchaseFile     string
}

// ChatConfig tunes context assembly.
type ChatConfig struct {
	ContextTurnCount int // recent turns included in each prompt
	MaxEntryChars    int // per-entry rune cap before truncation
}

// LineConfig enables the LINE Messaging API webhook when both values are set.
type LineConfig struct {
	ChannelSecret      string
	ChannelAccessToken string
}

// LLMConfig holds configuration for the LLM provider abstraction layer.
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single completion provider.
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Flat-file store
	cfg.Store.KnowledgeFile = viper.GetString("store.knowledge_file")
	cfg.Store.ConversationFile = viper.GetString("store.conversation_file")
	cfg.Store.PurchaseFile = viper.GetString("store.purchase_file")
	if p := viper.GetString("knowledge_file_path"); p != "" {
		cfg.Store.KnowledgeFile = p
	}
	if p := viper.GetString("conversation_file_path"); p != "" {
		cfg.Store.ConversationFile = p
	}

	// Context assembly
	cfg.Chat.ContextTurnCount = viper.GetInt("chat.context_turn_count")
	if n := viper.GetInt("context_turn_count"); n > 0 {
		cfg.Chat.ContextTurnCount = n
	}
	cfg.Chat.MaxEntryChars = viper.GetInt("chat.max_entry_chars")

	// LINE (optional)
	cfg.Line.ChannelSecret = viper.GetString("line.channel_secret")
	cfg.Line.ChannelAccessToken = viper.GetString("line.channel_access_token")
	if s := viper.GetString("line_channel_secret"); s != "" {
		cfg.Line.ChannelSecret = s
	}
	if s := viper.GetString("line_channel_access_token"); s != "" {
		cfg.Line.ChannelAccessToken = s
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// The completion service address override maps onto the first provider.
	if addr := viper.GetString("completion_service_address"); addr != "" && len(cfg.LLM.Providers) > 0 {
		cfg.LLM.Providers[0].BaseURL = addr
	}

	// Without any provider section, fall back to a local Ollama instance.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
			Name:     "ollama",
			Enabled:  true,
			Priority: 1,
			BaseURL:  viper.GetString("completion_service_address"),
			Model:    "mistral",
			Timeout:  "60s",
		})
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("store.knowledge_file", "data/knowledge.json")
	viper.SetDefault("store.conversation_file", "data/conversation.json")
	viper.SetDefault("store.purchase_file", "data/purchases.json")
	viper.SetDefault("chat.context_turn_count", 6)
	viper.SetDefault("chat.max_entry_chars", 800)
	viper.SetDefault("rate_limit.per_min", 60)

	// LLM defaults: one attempt, no fallback. A failed completion is
	// surfaced to the caller, never retried behind their back.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "90s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
