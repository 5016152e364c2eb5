package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sposioggi/espositori-api/internal/api"
	"github.com/sposioggi/espositori-api/internal/config"
	"github.com/sposioggi/espositori-api/internal/db"
	"github.com/sposioggi/espositori-api/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// The catalog lives in an in-memory database rebuilt from the seed
	// lists on every start. There is no backing store.
	catalogDB, err := db.OpenInMemory()
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, catalogDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
