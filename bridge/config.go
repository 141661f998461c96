package bridge

import (
	"github.com/caarlos0/env/v6"
)

// Config is read from BRIDGE_* environment variables.
type Config struct {
	Serial          string `env:"BRIDGE_SERIAL" envDefault:"/dev/ttyS0"`
	Baud            int    `env:"BRIDGE_BAUD" envDefault:"9600"`
	Broker          string `env:"BRIDGE_BROKER" envDefault:"tcp://localhost:1883"`
	ClientID        string `env:"BRIDGE_CLIENT_ID" envDefault:"speech-bridge"`
	TranscriptTopic string `env:"BRIDGE_TRANSCRIPT_TOPIC" envDefault:"wearable/transcript"`
	DirectionTopic  string `env:"BRIDGE_DIRECTION_TOPIC" envDefault:"wearable/direction"`
	Listen          string `env:"BRIDGE_LISTEN" envDefault:":8080"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}
