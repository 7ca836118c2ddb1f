package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/config"
	"github.com/thomasrocks006-cmyk/Revoclone/pkg/logger"
)

type Bootstrap struct {
	Log       *slog.Logger
	Firestore *firestore.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewSeverityHandler)
	if cfg.PrefsBackend == config.PrefsFirestore {
		bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
		if err != nil {
			return bs, err
		}
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		bs.Firestore.Close()
	}
}
