package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/logging"
)

// ManageGroupsUseCase boxes adjacent tabs into sidebar groups.
type ManageGroupsUseCase struct {
	view     *entity.TabView
	resolver *ResolveSelectionUseCase
	mover    *MoveTabsUseCase
	saver    SessionSaver
}

// NewManageGroupsUseCase creates a new group management use case.
func NewManageGroupsUseCase(
	view *entity.TabView,
	resolver *ResolveSelectionUseCase,
	mover *MoveTabsUseCase,
	saver SessionSaver,
) *ManageGroupsUseCase {
	return &ManageGroupsUseCase{
		view:     view,
		resolver: resolver,
		mover:    mover,
		saver:    saver,
	}
}

// GroupSelected gathers the selected unpinned tabs next to the first of them
// and boxes them into one group.
func (uc *ManageGroupsUseCase) GroupSelected(ctx context.Context, sel *entity.Selection, windowID entity.WindowID) (entity.ContainerID, error) {
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return "", err
	}
	_, ids = uc.resolver.partitionPinned(ids)
	if len(ids) < 2 {
		return "", entity.InvalidArgumentf("at least two unpinned tabs are required to group")
	}
	log := logging.FromContext(ctx)
	log.Debug().Int("count", len(ids)).Msg("grouping tabs")

	if err := uc.gather(ctx, ids, windowID); err != nil {
		return "", err
	}

	id, err := uc.view.GroupTabs(ids)
	if err != nil {
		return "", fmt.Errorf("failed to group tabs: %w", err)
	}
	uc.save(ctx)

	log.Info().Str("container_id", string(id)).Int("count", len(ids)).Msg("tabs grouped")
	return id, nil
}

// gather moves the selected tabs found after the first unselected tab that
// follows the leading selected one, so the selection becomes contiguous.
func (uc *ManageGroupsUseCase) gather(ctx context.Context, ids []entity.TabID, windowID entity.WindowID) error {
	selected := make(map[entity.TabID]bool, len(ids))
	positions := make(map[entity.TabID]int, len(ids))
	for _, id := range ids {
		pos, err := uc.view.Position(id)
		if err != nil {
			return err
		}
		selected[id] = true
		positions[id] = pos
	}
	sorted := append([]entity.TabID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return positions[sorted[i]] < positions[sorted[j]] })

	all := uc.view.TabIDs()
	anchorPos := -1
	for pos := positions[sorted[0]] + 1; pos < len(all); pos++ {
		if !selected[all[pos]] {
			anchorPos = pos
			break
		}
	}
	if anchorPos < 0 {
		return nil
	}

	var trailing []entity.TabID
	for _, id := range sorted {
		if positions[id] > anchorPos {
			trailing = append(trailing, id)
		}
	}
	if len(trailing) == 0 {
		return nil
	}

	remaining, err := uc.mover.MoveInOrder(ctx, MoveInOrderInput{
		AnchorID:   all[anchorPos],
		TabIDs:     trailing,
		ShiftCount: len(trailing),
		WindowID:   windowID,
	})
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		return fmt.Errorf("%d tabs could not be gathered", len(remaining))
	}
	return nil
}

// Detach takes each selected tab out of its group.
func (uc *ManageGroupsUseCase) Detach(ctx context.Context, sel *entity.Selection) error {
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := uc.view.Detach(id); err != nil {
			return err
		}
	}
	uc.save(ctx)
	logging.FromContext(ctx).Info().Int("count", len(ids)).Msg("tabs detached from group")
	return nil
}

// Ungroup splits a group into single tab containers.
func (uc *ManageGroupsUseCase) Ungroup(ctx context.Context, id entity.ContainerID) error {
	if err := uc.view.Ungroup(id); err != nil {
		return err
	}
	uc.save(ctx)
	logging.FromContext(ctx).Info().Str("container_id", string(id)).Msg("group dissolved")
	return nil
}

// SetCollapsed collapses or expands a group.
func (uc *ManageGroupsUseCase) SetCollapsed(ctx context.Context, id entity.ContainerID, collapsed bool) error {
	if err := uc.view.SetCollapsed(id, collapsed); err != nil {
		return err
	}
	uc.save(ctx)
	return nil
}

// ToggleCollapsed flips the collapsed state of a group and returns the new one.
func (uc *ManageGroupsUseCase) ToggleCollapsed(ctx context.Context, id entity.ContainerID) (bool, error) {
	c, err := uc.view.Container(id)
	if err != nil {
		return false, err
	}
	collapsed := !c.Collapsed
	return collapsed, uc.SetCollapsed(ctx, id, collapsed)
}

func (uc *ManageGroupsUseCase) save(ctx context.Context) {
	if err := uc.saver.Save(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to save session tab list")
	}
}
