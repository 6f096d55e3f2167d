package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "CAMMARKET_CONFIG_FILE"

type consumers struct {
	OrderStatusGroup string `mapstructure:"order_status_group"`
}

type topics struct {
	OrderEvents       string `mapstructure:"order_events"`
	ClientEvents      string `mapstructure:"client_events"`
	OrderStatusStream string `mapstructure:"order_status_stream"`
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	Consumers          consumers `mapstructure:"consumers"`
}

type httpServer struct {
	Addr              string        `mapstructure:"addr"`
	HandleTimeout     time.Duration `mapstructure:"handle_timeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
}

type Config struct {
	LogLevel   slog.Level `mapstructure:"log_level"`
	HTTPServer httpServer `mapstructure:"http_server"`
	SQLDB      string     `mapstructure:"sql_db"` // empty = in-memory order history
	Broker     broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	SQLDB=%q

	HTTPServer:
	Addr=%q
	HandleTimeout=%s
	ReadHeaderTimeout=%s
	IdleTimeout=%s

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		OrderEvents=%q
		ClientEvents=%q
		OrderStatusStream=%q
	Consumers:
		OrderStatusGroup=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.SQLDB,
		c.HTTPServer.Addr,
		c.HTTPServer.HandleTimeout,
		c.HTTPServer.ReadHeaderTimeout,
		c.HTTPServer.IdleTimeout,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.OrderEvents,
		c.Broker.Topics.ClientEvents,
		c.Broker.Topics.OrderStatusStream,
		c.Broker.Consumers.OrderStatusGroup,
	)
}
