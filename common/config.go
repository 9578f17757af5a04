package common

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	conf *viper.Viper
	mu   sync.RWMutex
}

func NewConfig(path string) *Config {
	vp := newViper()
	vp.SetConfigFile(path)
	err := vp.ReadInConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to read config from disk, err:%s", err))
	}
	return &Config{
		conf: vp,
	}
}

// NewDefaultConfig returns a config holding only the default values.
func NewDefaultConfig() *Config {
	return &Config{
		conf: newViper(),
	}
}

func newViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix("fastpay")
	vp.AutomaticEnv()

	vp.SetDefault(LogLevel, "INFO")
	vp.SetDefault(StateBackend, MemoryBackend)
	vp.SetDefault(StateCacheSize, 256)
	vp.SetDefault(TxPoolMaxSize, 4096)
	vp.SetDefault(MaxBlockTxs, 1000)
	vp.SetDefault(EngineName, SoloEngine)
	vp.SetDefault(BlockInterval, 5*time.Second)
	vp.SetDefault(SealEmpty, false)
	vp.SetDefault(RPCAddr, "127.0.0.1:8545")
	return vp
}

func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conf.Set(key, value)
}

func (c *Config) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.Get(key)
}

func (c *Config) GetInt(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetInt(key)
}

func (c *Config) GetString(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetBool(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetDuration(key)
}

func (c *Config) GetStringMapString(key string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conf.GetStringMapString(key)
}
