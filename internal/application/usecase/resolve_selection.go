package usecase

import (
	"context"

	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/logging"
)

// ResolveSelectionUseCase validates UI selections against the tab view.
type ResolveSelectionUseCase struct {
	view *entity.TabView
}

// NewResolveSelectionUseCase creates a new selection resolver.
func NewResolveSelectionUseCase(view *entity.TabView) *ResolveSelectionUseCase {
	return &ResolveSelectionUseCase{view: view}
}

// Resolve returns the selected tab ids that exist in the view, in selection
// order. Unknown references are dropped.
func (uc *ResolveSelectionUseCase) Resolve(ctx context.Context, sel *entity.Selection) ([]entity.TabID, error) {
	if sel == nil {
		return nil, entity.InvalidArgumentf("selection is required")
	}
	log := logging.FromContext(ctx)

	ids := make([]entity.TabID, 0, sel.Len())
	for _, id := range sel.Refs() {
		if !uc.view.Contains(id) {
			log.Debug().Int("tab_id", int(id)).Msg("dropping unresolvable selection ref")
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ResolveFirst reports the first reference of the selection and whether it
// resolves in the view.
func (uc *ResolveSelectionUseCase) ResolveFirst(_ context.Context, sel *entity.Selection) (entity.TabID, bool, error) {
	if sel == nil {
		return 0, false, entity.InvalidArgumentf("selection is required")
	}
	first, ok := sel.First()
	if !ok || !uc.view.Contains(first) {
		return first, false, nil
	}
	return first, true, nil
}

// partitionPinned splits ids by pinned-section membership, keeping order.
func (uc *ResolveSelectionUseCase) partitionPinned(ids []entity.TabID) (pinned, unpinned []entity.TabID) {
	for _, id := range ids {
		isPinned, err := uc.view.IsPinned(id)
		if err != nil {
			continue
		}
		if isPinned {
			pinned = append(pinned, id)
		} else {
			unpinned = append(unpinned, id)
		}
	}
	return pinned, unpinned
}
