package main

import (
	"l4d2stats/internal/api"
	"l4d2stats/internal/components/telemetry"
	"l4d2stats/internal/scrapers/anne"
	"l4d2stats/internal/scrapers/daidai"
)

type ServerConfig struct {
	Addr string      `json:"addr" env:"ADDR"`
	API  api.Options `json:"api" envPrefix:"API_"`
}

type Config struct {
	Verbose   bool             `json:"verbose" env:"VERBOSE"`
	Anne      anne.Options     `json:"anne" envPrefix:"ANNE_"`
	Daidai    daidai.Options   `json:"daidai" envPrefix:"DAIDAI_"`
	Telemetry telemetry.Config `json:"telemetry" envPrefix:"TELEMETRY_"`
	Server    ServerConfig     `json:"server" envPrefix:"SERVER_"`
}
