package cmd

import (
	"fmt"

	"xwing-inventory/core/config"
	"xwing-inventory/core/logger"
	"xwing-inventory/core/reconcile"
	"xwing-inventory/core/source"
	"xwing-inventory/core/storage"
	"xwing-inventory/feature/report"

	"go.uber.org/zap"
)

// runtime is what every command needs before doing work.
type runtime struct {
	cfg *config.Config
	log *zap.Logger
	// client is nil unless sources are read from a bucket or a bucket was requested.
	client storage.Client
	src    source.Reader
}

func bootstrap(needBucket bool) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, log: logg}
	if needBucket || cfg.Sources.Backend == source.BackendBucket {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		rt.client = client
	}

	rt.src, err = source.New(cfg.Sources, rt.client, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (rt *runtime) inputs() report.Inputs {
	return report.Inputs{
		Source:     rt.src,
		Expansions: rt.cfg.Sources.Expansions,
		Collection: rt.cfg.Sources.Collection,
		XWingData:  rt.cfg.Sources.XWingData,
	}
}

func (rt *runtime) options() (reconcile.Options, error) {
	policy, err := rt.cfg.Reconcile.Policy()
	if err != nil {
		return reconcile.Options{}, err
	}
	return reconcile.Options{Policy: policy, Logger: rt.log}, nil
}
