package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

func New(loc string) (*Config, error) {
	var c Config

	f, err := os.Open(loc)
	if err != nil {
		log.Println("Config error", err)
		return nil, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&c); err != nil {
		log.Println("Config error", err)
		return nil, err
	}

	if c.DBPath == "" || c.DBName == "" {
		return nil, ErrInvalidConfig
	}

	return &c, nil
}

type Config struct {
	Host string `json:"host"`
	Port string `json:"port"`

	// Sandbox keeps gin in debug mode and skips listen address checks
	Sandbox bool `json:"sandbox"`

	DBPath string `json:"dbPath"`
	DBName string `json:"dbName"`

	Bucket struct {
		Influencer string   `json:"influencer"`
		Gig        string   `json:"gig"`
		Sponsor    string   `json:"sponsor"`
		Escrow     string   `json:"escrow"`
		All        []string `json:"all"`
	} `json:"bucket"`
}
