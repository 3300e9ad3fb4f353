package services

import (
	"fmt"
	"log/slog"

	"github.com/reglet-dev/swecommon/internal/application/dto"
	apperrors "github.com/reglet-dev/swecommon/internal/application/errors"
	"github.com/reglet-dev/swecommon/internal/application/ports"
	"github.com/reglet-dev/swecommon/internal/domain/element"
	"github.com/reglet-dev/swecommon/internal/domain/services"
)

// ListFieldsUseCase resolves the field tables of a definition for a profile.
type ListFieldsUseCase struct {
	loader   ports.DefinitionLoader
	resolver *services.ProfileResolver
	logger   *slog.Logger
}

// NewListFieldsUseCase creates a new field listing use case.
func NewListFieldsUseCase(loader ports.DefinitionLoader, logger *slog.Logger) *ListFieldsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListFieldsUseCase{
		loader:   loader,
		resolver: services.NewProfileResolver(),
		logger:   logger,
	}
}

// Execute loads the definition and resolves each element's fields.
func (uc *ListFieldsUseCase) Execute(req dto.ListFieldsRequest) (*dto.FieldListing, error) {
	if req.Profile.IsEmpty() {
		return nil, apperrors.NewValidationError("profile", "at least one profile is required")
	}

	def, err := uc.loader.Load(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}

	elements := def.Elements
	if req.Identifier != "" {
		el := def.Find(req.Identifier)
		if el == nil {
			return nil, apperrors.NewElementNotFoundError(req.Identifier, def.Source)
		}
		elements = []element.Element{el}
	}

	listing := &dto.FieldListing{
		Source:   def.Source,
		Profile:  req.Profile,
		Elements: make([]dto.ElementFields, 0, len(elements)),
	}
	for _, el := range elements {
		listing.Elements = append(listing.Elements, dto.ElementFields{
			Identifier: el.Base().Identifier,
			Kind:       el.Kind(),
			Fields:     uc.resolver.ResolveElement(el, req.Profile),
		})
	}

	uc.logger.Debug("resolved fields", "source", def.Source, "profile", req.Profile.String(), "elements", len(listing.Elements))
	return listing, nil
}
