package services

import (
	"fmt"

	"github.com/reglet-dev/swecommon/internal/application/dto"
	"github.com/reglet-dev/swecommon/internal/application/ports"
)

// ListKindsUseCase describes the registered element kinds.
type ListKindsUseCase struct {
	kinds ports.ElementKinds
}

// NewListKindsUseCase creates a new kind listing use case.
func NewListKindsUseCase(kinds ports.ElementKinds) *ListKindsUseCase {
	return &ListKindsUseCase{kinds: kinds}
}

// Execute lists every kind with its full field table.
func (uc *ListKindsUseCase) Execute() (*dto.KindListing, error) {
	names := uc.kinds.Kinds()
	listing := &dto.KindListing{Kinds: make([]dto.KindInfo, 0, len(names))}
	for _, name := range names {
		el, err := uc.kinds.New(name)
		if err != nil {
			return nil, fmt.Errorf("failed to instantiate %s: %w", name, err)
		}
		listing.Kinds = append(listing.Kinds, dto.KindInfo{
			Name:   name,
			Fields: el.Fields(),
		})
	}
	return listing, nil
}
