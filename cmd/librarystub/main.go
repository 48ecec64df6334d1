package main

import (
	"flag"
	"os"

	"github.com/emzola/biblioadmin/config"
	"github.com/emzola/biblioadmin/internal/jsonlog"
	"github.com/emzola/biblioadmin/stubserver"
)

type app struct {
	config config.Config
	logger *jsonlog.Logger
	server *stubserver.Server
}

func main() {
	var cfg config.Config
	var cfgPath string

	flag.StringVar(&cfgPath, "config", "librarystub.yaml", "Path to config file")
	flag.IntVar(&cfg.Server.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Server.Env, "env", "development", "Environment (development|staging|production)")
	flag.Float64Var(&cfg.Limiter.RPS, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.Limiter.Burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.Limiter.Enabled, "limiter-enabled", true, "Enable rate limiter")
	flag.Parse()

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	if err := config.Load(cfgPath, &cfg); err != nil {
		logger.PrintFatal(err, nil)
	}

	a := &app{
		config: cfg,
		logger: logger,
		server: stubserver.New(cfg, logger),
	}

	if err := a.serve(); err != nil {
		logger.PrintFatal(err, nil)
	}
}
