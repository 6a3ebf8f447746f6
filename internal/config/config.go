package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"edugen/internal/domain"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	OpenRouter OpenRouterConfig
	RateLimit  RateLimitConfig
	Tasks      map[domain.TaskType]TaskConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// TaskConfig holds the per-task generation tuple. APIKey is resolved during
// Load: a task-specific override wins, otherwise the shared OpenRouter key.
type TaskConfig struct {
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// defaultTasks mirrors the per-task model tables of the server variants this
// gateway replaces, collapsed into a single mapping. Short answers run at low
// temperature for determinism and carry a fast-path deadline; long-form tasks
// get the larger token budgets.
var defaultTasks = map[domain.TaskType]TaskConfig{
	domain.TaskAssignment:  {Model: "openai/gpt-4o-mini", Temperature: 0.7, MaxTokens: 2500},
	domain.TaskLongAnswer:  {Model: "deepseek/deepseek-chat-v3-0324:free", Temperature: 0.7, MaxTokens: 4000},
	domain.TaskShortAnswer: {Model: "meta-llama/llama-3.1-8b-instruct", Temperature: 0.3, MaxTokens: 300, Timeout: 5 * time.Second},
	domain.TaskQuiz:        {Model: "openai/gpt-4o-mini", Temperature: 0.8, MaxTokens: 3000},
	domain.TaskGrammar:     {Model: "meta-llama/llama-3.1-8b-instruct", Temperature: 0.2, MaxTokens: 2000},
	domain.TaskChat:        {Model: "deepseek/deepseek-chat-v3-0324:free", Temperature: 0.6, MaxTokens: 1000},
	domain.TaskGeneral:     {Model: "openai/gpt-4o-mini", Temperature: 0.7, MaxTokens: 2000},
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	viper.SetDefault("rate_limit.max", 100)
	viper.SetDefault("rate_limit.window", 15*60)

	// The config file is optional; environment variables alone are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  viper.GetString("openrouter.api_key"),
			BaseURL: viper.GetString("openrouter.base_url"),
		},
		RateLimit: RateLimitConfig{
			Max:    viper.GetInt("rate_limit.max"),
			Window: viper.GetDuration("rate_limit.window") * time.Second,
		},
	}

	// Override with environment variables if set
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		config.OpenRouter.APIKey = key
	}
	if baseURL := os.Getenv("OPENROUTER_BASE_URL"); baseURL != "" {
		config.OpenRouter.BaseURL = baseURL
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	config.Tasks = loadTasks(config.OpenRouter.APIKey)

	return config, nil
}

// loadTasks builds the task table from defaults, per-task config keys and
// per-task credential overrides (OPENROUTER_API_KEY_SHORT_ANSWER and so on).
func loadTasks(sharedKey string) map[domain.TaskType]TaskConfig {
	tasks := make(map[domain.TaskType]TaskConfig, len(defaultTasks))
	for _, taskType := range domain.AllTaskTypes() {
		tc := defaultTasks[taskType]

		prefix := "tasks." + string(taskType)
		if model := viper.GetString(prefix + ".model"); model != "" {
			tc.Model = model
		}
		if viper.IsSet(prefix + ".temperature") {
			tc.Temperature = float32(viper.GetFloat64(prefix + ".temperature"))
		}
		if viper.IsSet(prefix + ".max_tokens") {
			tc.MaxTokens = viper.GetInt(prefix + ".max_tokens")
		}
		if viper.IsSet(prefix + ".timeout") {
			tc.Timeout = viper.GetDuration(prefix+".timeout") * time.Second
		}

		tc.APIKey = sharedKey
		envKey := "OPENROUTER_API_KEY_" + strings.ToUpper(strings.ReplaceAll(string(taskType), "-", "_"))
		if key := os.Getenv(envKey); key != "" {
			tc.APIKey = key
		}

		tasks[taskType] = tc
	}
	return tasks
}

// Validate fails fast when any task category resolves to an empty credential,
// so a misconfigured process refuses to start instead of failing per request.
func (c *Config) Validate() error {
	for _, taskType := range domain.AllTaskTypes() {
		tc, ok := c.Tasks[taskType]
		if !ok {
			return fmt.Errorf("no generation profile configured for task type %q", taskType)
		}
		if tc.APIKey == "" {
			return fmt.Errorf("no API credential configured for task type %q (set OPENROUTER_API_KEY)", taskType)
		}
		if tc.Model == "" {
			return fmt.Errorf("no model configured for task type %q", taskType)
		}
	}
	return nil
}

// Profiles converts the task table into the domain representation consumed by
// the generation service.
func (c *Config) Profiles() map[domain.TaskType]domain.TaskProfile {
	profiles := make(map[domain.TaskType]domain.TaskProfile, len(c.Tasks))
	for taskType, tc := range c.Tasks {
		profiles[taskType] = domain.TaskProfile{
			Model:       tc.Model,
			APIKey:      tc.APIKey,
			Temperature: tc.Temperature,
			MaxTokens:   tc.MaxTokens,
			Timeout:     tc.Timeout,
		}
	}
	return profiles
}
