package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	DSN         string            `yaml:"dsn" env:"DSN" env-required:"true"`
	TokenTTL    time.Duration     `yaml:"token_ttl" env-default:"1h"`
	CartTTL     time.Duration     `yaml:"cart_ttl" env-default:"720h"`
	HTTP        HTTPConfig        `yaml:"http"`
	FileStorage FileStorageConfig `yaml:"file_storage"`
	Redis       RedisConf         `yaml:"redis"`
	Editor      EditorConfig      `yaml:"editor"`
	Cache       CacheConfig       `yaml:"cache"`
	Checkout    CheckoutConfig    `yaml:"checkout"`
	AMQP        AMQPConfig        `yaml:"amqp"`
}

type HTTPConfig struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-default:"change-me"`
	JWTSecret     string `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"change-me"`
}

type FileStorageConfig struct {
	BaseDir string `yaml:"base_dir" env-default:"./uploads"`
	BaseURL string `yaml:"base_url" env-default:"/uploads"`
	MaxSize int64  `yaml:"max_size" env-default:"10485760"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"`
}

type EditorConfig struct {
	AutosaveDelay time.Duration `yaml:"autosave_delay" env-default:"1500ms"`
}

type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl" env-default:"5m"`
	Cleanup time.Duration `yaml:"cleanup" env-default:"10m"`
}

type CheckoutConfig struct {
	Endpoint string        `yaml:"endpoint" env:"CHECKOUT_ENDPOINT"`
	Timeout  time.Duration `yaml:"timeout" env-default:"10s"`
}

// AMQPConfig: пустой URL отключает публикацию событий заказов
type AMQPConfig struct {
	URL      string `yaml:"url" env:"AMQP_URL"`
	Exchange string `yaml:"exchange" env-default:"orders"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
