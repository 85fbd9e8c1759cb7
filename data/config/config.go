// Package config holds data layer configuration.
package config

import "github.com/spf13/viper"

// Config selects and configures the document store backing the data layer.
type Config struct {
	// Driver picks the store implementation: "mongodb" or "memory".
	Driver  string   `json:"driver" yaml:"driver"`
	MongoDB *MongoDB `json:"mongodb" yaml:"mongodb"`
	Redis   *Redis   `json:"redis" yaml:"redis"`
}

// MongoDB mongodb config struct
type MongoDB struct {
	URI        string `json:"uri" yaml:"uri"`
	Database   string `json:"database" yaml:"database"`
	Collection string `json:"collection" yaml:"collection"`
}

// Redis redis config struct
type Redis struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// GetConfig reads the data layer configuration
func GetConfig(v *viper.Viper) *Config {
	driver := v.GetString("data.driver")
	if driver == "" {
		driver = "memory"
	}
	return &Config{
		Driver: driver,
		MongoDB: &MongoDB{
			URI:        v.GetString("data.mongodb.uri"),
			Database:   v.GetString("data.mongodb.database"),
			Collection: v.GetString("data.mongodb.collection"),
		},
		Redis: &Redis{
			Addr:     v.GetString("data.redis.addr"),
			Password: v.GetString("data.redis.password"),
			DB:       v.GetInt("data.redis.db"),
		},
	}
}
