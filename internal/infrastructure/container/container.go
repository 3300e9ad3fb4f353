// Package container provides dependency injection for the application.
package container

import (
	"fmt"
	"log/slog"

	"github.com/reglet-dev/swecommon/internal/application/services"
	"github.com/reglet-dev/swecommon/internal/domain/element"
	"github.com/reglet-dev/swecommon/internal/infrastructure/config"
	"github.com/reglet-dev/swecommon/internal/infrastructure/output"
)

// Container holds all application dependencies.
type Container struct {
	registry         *element.Registry
	loader           *config.DefinitionLoader
	formatterFactory *output.FormatterFactory
	runtime          *config.RuntimeConfig
	logger           *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger   *slog.Logger
	Runtime  *config.RuntimeConfig
	Registry *element.Registry
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = element.DefaultRegistry()
	}
	if opts.Runtime == nil {
		opts.Runtime = &config.RuntimeConfig{}
		opts.Runtime.ApplyDefaults()
	}

	loader, err := config.NewDefinitionLoader(opts.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create definition loader: %w", err)
	}

	return &Container{
		registry:         opts.Registry,
		loader:           loader,
		formatterFactory: output.NewFormatterFactory(),
		runtime:          opts.Runtime,
		logger:           opts.Logger,
	}, nil
}

// Runtime returns the runtime configuration.
func (c *Container) Runtime() *config.RuntimeConfig {
	return c.runtime
}

// Logger returns the logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// FormatterFactory returns the output formatter factory.
func (c *Container) FormatterFactory() *output.FormatterFactory {
	return c.formatterFactory
}

// ValidateDefinitionsUseCase returns the validation use case.
func (c *Container) ValidateDefinitionsUseCase() *services.ValidateDefinitionsUseCase {
	return services.NewValidateDefinitionsUseCase(c.loader, c.logger)
}

// ListFieldsUseCase returns the field listing use case.
func (c *Container) ListFieldsUseCase() *services.ListFieldsUseCase {
	return services.NewListFieldsUseCase(c.loader, c.logger)
}

// SetValueUseCase returns the value assignment use case.
func (c *Container) SetValueUseCase() *services.SetValueUseCase {
	return services.NewSetValueUseCase(c.loader, c.logger)
}

// ListKindsUseCase returns the kind listing use case.
func (c *Container) ListKindsUseCase() *services.ListKindsUseCase {
	return services.NewListKindsUseCase(c.registry)
}
