package main

import (
	"github.com/jinalkathiriya/Healthcare/configuration"
	"github.com/jinalkathiriya/Healthcare/dirstub"
)

func main() {
	cfg := configuration.Load()
	logger := configuration.NewLogger()

	stub := dirstub.New(logger)
	if cfg.DBFile != "" {
		if err := stub.LoadFile(cfg.DBFile); err != nil {
			logger.WithField("error", err).Fatal("failed to load db file")
		}
	}

	logger.WithField("port", cfg.Port).Info("directory stub listening")
	if err := stub.Router().Run(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}
