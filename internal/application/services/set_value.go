package services

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/swecommon/internal/application/dto"
	apperrors "github.com/reglet-dev/swecommon/internal/application/errors"
	"github.com/reglet-dev/swecommon/internal/application/ports"
	"github.com/reglet-dev/swecommon/internal/domain/codec"
	"github.com/reglet-dev/swecommon/internal/domain/values"
)

// SetValueUseCase assigns a JSON value to one element of a definition and
// reports the outcome.
type SetValueUseCase struct {
	loader ports.DefinitionLoader
	logger *slog.Logger
}

// NewSetValueUseCase creates a new value assignment use case.
func NewSetValueUseCase(loader ports.DefinitionLoader, logger *slog.Logger) *SetValueUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &SetValueUseCase{
		loader: loader,
		logger: logger,
	}
}

// Execute applies the value. In strict mode rejected input is returned as a
// *apperrors.ValueRejectedError; otherwise it is logged and the element keeps
// its previous value.
func (uc *SetValueUseCase) Execute(req dto.SetValueRequest) (*dto.ValueChange, error) {
	if req.Identifier == "" {
		return nil, apperrors.NewValidationError("element", "an element identifier is required")
	}

	def, err := uc.loader.Load(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load definition: %w", err)
	}

	el := def.Find(req.Identifier)
	if el == nil {
		return nil, apperrors.NewElementNotFoundError(req.Identifier, def.Source)
	}

	before := el.ValueJSON()
	if req.Strict {
		if err := el.TrySetValueJSON(req.Value); err != nil {
			return nil, apperrors.NewValueRejectedError(req.Identifier, err)
		}
	} else {
		el.SetValueJSON(req.Value)
	}
	after := el.ValueJSON()

	encoded, err := json.Marshal(el)
	if err != nil {
		return nil, fmt.Errorf("failed to encode element %s: %w", req.Identifier, err)
	}

	change := &dto.ValueChange{
		Source:     def.Source,
		Identifier: req.Identifier,
		Kind:       el.Kind(),
		Before:     before,
		After:      after,
		Changed:    string(before) != string(after),
		Status:     values.StatusOf(!isNull(after), el.ValueIsValid()),
		Element:    encoded,
	}

	uc.logger.Debug("value assigned", "element", req.Identifier, "changed", change.Changed, "status", change.Status)
	return change, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == string(codec.Null)
}
