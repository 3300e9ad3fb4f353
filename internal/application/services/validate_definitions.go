// Package services contains application use cases.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/swecommon/internal/application/dto"
	apperrors "github.com/reglet-dev/swecommon/internal/application/errors"
	"github.com/reglet-dev/swecommon/internal/application/ports"
	"github.com/reglet-dev/swecommon/internal/domain/entities"
	"github.com/reglet-dev/swecommon/internal/domain/values"
	"golang.org/x/sync/errgroup"
)

// ValidateDefinitionsUseCase loads definitions and checks the value of every
// element against its constraint.
type ValidateDefinitionsUseCase struct {
	loader ports.DefinitionLoader
	logger *slog.Logger
}

// NewValidateDefinitionsUseCase creates a new validation use case.
func NewValidateDefinitionsUseCase(loader ports.DefinitionLoader, logger *slog.Logger) *ValidateDefinitionsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValidateDefinitionsUseCase{
		loader: loader,
		logger: logger,
	}
}

// Execute validates every requested file. Files are validated in parallel,
// each one by a single goroutine. A file that fails to load is reported as
// invalid rather than aborting the run.
func (uc *ValidateDefinitionsUseCase) Execute(ctx context.Context, req dto.ValidateRequest) (*dto.ValidationReport, error) {
	if len(req.Paths) == 0 {
		return nil, apperrors.NewValidationError("paths", "at least one definition path is required")
	}

	report := &dto.ValidationReport{
		ID:    values.NewReportID(),
		Files: make([]dto.FileReport, len(req.Paths)),
	}
	uc.logger.Debug("validating definitions", "report_id", report.ID.String(), "files", len(req.Paths))

	g, gctx := errgroup.WithContext(ctx)
	if req.MaxConcurrentFiles > 0 {
		g.SetLimit(req.MaxConcurrentFiles)
	}

	for i, path := range req.Paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Files[i] = uc.validateFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validation cancelled: %w", err)
	}

	statuses := make([]values.Status, 0, len(report.Files))
	for _, f := range report.Files {
		statuses = append(statuses, f.Status)
	}
	report.Status = values.Worst(statuses...)

	uc.logger.Info("validation complete", "report_id", report.ID.String(), "status", report.Status)
	return report, nil
}

func (uc *ValidateDefinitionsUseCase) validateFile(path string) dto.FileReport {
	def, err := uc.loader.Load(path)
	if err != nil {
		uc.logger.Warn("failed to load definition", "path", path, "error", err)
		return dto.FileReport{
			Source: path,
			Status: values.StatusInvalid,
			Error:  err.Error(),
		}
	}
	return fileReport(def)
}

func fileReport(def *entities.Definition) dto.FileReport {
	fr := dto.FileReport{
		Source:   def.Source,
		Version:  def.Version,
		Elements: make([]dto.ElementReport, 0, len(def.Elements)),
	}

	statuses := make([]values.Status, 0, len(def.Elements))
	for _, el := range def.Elements {
		value := el.ValueJSON()
		status := values.StatusOf(!isNull(value), el.ValueIsValid())
		statuses = append(statuses, status)

		fr.Elements = append(fr.Elements, dto.ElementReport{
			Identifier: el.Base().Identifier,
			Kind:       el.Kind(),
			Value:      value,
			Status:     status,
		})
	}
	fr.Status = values.Worst(statuses...)
	return fr
}
