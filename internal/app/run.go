package app

import (
	"context"
	"fmt"

	"github.com/adminde/household-data/internal/assembler"
	"github.com/adminde/household-data/internal/ctxlog"
)

// Run loads the package definition, reads the column layout of every
// dataset, writes the manifest and, when configured, publishes it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "config_path", a.config.ConfigPath)

	model, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load package definition: %w", err)
	}
	if a.config.PackageVersion != nil {
		model.Version = *a.config.PackageVersion
	}
	if a.config.Changes != nil {
		model.Changes = *a.config.Changes
	}
	if err := model.Validate(); err != nil {
		return err
	}
	a.logger.Debug("Package definition loaded.", "version", model.Version, "datasets", len(model.Datasets))

	datasets, err := readDatasets(ctx, model, a.config.WorkerCount)
	if err != nil {
		return err
	}

	opts := assembler.Options{
		Version:      model.Version,
		Changes:      model.Changes,
		HeaderLevels: model.HeaderLevels,
		InfoColumns: assembler.InfoColumns{
			UTC:    model.InfoColumns.UTC,
			CET:    model.InfoColumns.CET,
			Marker: model.InfoColumns.Marker,
		},
	}
	pkg, err := a.assembler.Write(ctx, a.config.OutputPath, datasets, opts)
	if err != nil {
		return fmt.Errorf("failed to build data package: %w", err)
	}

	fields := 0
	for _, s := range pkg.Schemas {
		fields += len(s.Fields)
	}
	a.logger.Info("Data package built.", "version", pkg.Version, "resources", len(pkg.Resources), "fields", fields)

	if a.config.Publish.Enabled() {
		publisher, err := a.newPublisher(ctx, a.config.Publish)
		if err != nil {
			return fmt.Errorf("failed to set up publisher: %w", err)
		}
		if _, err := publisher.Publish(ctx, a.config.OutputPath); err != nil {
			return fmt.Errorf("failed to publish data package: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
