package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/sidetabs/internal/application/port"
	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/logging"
)

// MoveTabsUseCase reorders tabs through the host.
type MoveTabsUseCase struct {
	host     port.TabHost
	view     *entity.TabView
	resolver *ResolveSelectionUseCase
}

// NewMoveTabsUseCase creates a new move use case.
func NewMoveTabsUseCase(host port.TabHost, view *entity.TabView, resolver *ResolveSelectionUseCase) *MoveTabsUseCase {
	return &MoveTabsUseCase{
		host:     host,
		view:     view,
		resolver: resolver,
	}
}

// MoveInOrderInput contains parameters for an ordered move before an anchor.
type MoveInOrderInput struct {
	AnchorID   entity.TabID
	TabIDs     []entity.TabID
	ShiftCount int
	WindowID   entity.WindowID
}

// MoveInOrder places tabs one at a time immediately before the anchor tab,
// keeping their relative order. At most ShiftCount tabs are placed. It
// returns the ids that were not placed.
//
// The anchor is re-read from the host before every move, so positions are
// never carried across a host round trip. A vanished anchor ends the
// sequence without error.
func (uc *MoveTabsUseCase) MoveInOrder(ctx context.Context, input MoveInOrderInput) ([]entity.TabID, error) {
	if !input.AnchorID.Valid() {
		return nil, entity.InvalidArgumentf("anchor tab id %d", input.AnchorID)
	}
	if input.ShiftCount < 0 {
		return nil, entity.InvalidArgumentf("shift count %d", input.ShiftCount)
	}
	for _, id := range input.TabIDs {
		if !id.Valid() {
			return nil, entity.InvalidArgumentf("tab id %d", id)
		}
	}

	ctx = logging.WithTabID(ctx, int(input.AnchorID))
	log := logging.FromContext(ctx)
	log.Debug().
		Int("count", len(input.TabIDs)).
		Int("shift", input.ShiftCount).
		Msg("moving tabs in order")

	windowID := input.WindowID.Resolve()
	remaining := append([]entity.TabID(nil), input.TabIDs...)
	shift := input.ShiftCount
	placed := 0

	for shift > 0 && len(remaining) > 0 {
		if err := ctx.Err(); err != nil {
			return remaining, err
		}
		id := remaining[0]

		anchor, err := uc.host.GetTab(ctx, input.AnchorID)
		if err != nil {
			return remaining, entity.NewHostError("get", input.AnchorID, err)
		}
		if anchor == nil {
			log.Debug().Int("unplaced", len(remaining)).Msg("anchor tab is gone, stopping")
			return remaining, nil
		}

		tab, err := uc.host.GetTab(ctx, id)
		if err != nil {
			return remaining, entity.NewHostError("get", id, err)
		}
		if tab == nil {
			log.Debug().Int("tab_id", int(id)).Msg("tab to move is gone, skipping")
			remaining = remaining[1:]
			shift--
			continue
		}

		// Final-index semantics: a tab leaving a slot before the anchor
		// shifts the anchor left by one.
		target := anchor.Index
		if tab.WindowID == anchor.WindowID && tab.Index < anchor.Index {
			target--
		}

		_ = uc.view.MarkEnRoute(id)
		if err := uc.host.MoveTabs(ctx, []entity.TabID{id}, port.MoveOptions{
			Index:    target,
			WindowID: windowID,
		}); err != nil {
			uc.view.ClearEnRoute(id)
			return remaining, entity.NewHostError("move", id, err)
		}

		remaining = remaining[1:]
		shift--
		placed++
	}

	log.Info().Int("placed", placed).Int("unplaced", len(remaining)).Msg("tabs moved in order")
	return remaining, nil
}

// MoveToEnd moves the selected tabs to the end of their section. Pinned and
// unpinned members are each moved in a single batched request.
func (uc *MoveTabsUseCase) MoveToEnd(ctx context.Context, sel *entity.Selection, windowID entity.WindowID) error {
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return err
	}
	log := logging.FromContext(ctx)
	log.Debug().Int("count", len(ids)).Msg("moving tabs to end")

	windowID = windowID.Resolve()
	pinned, unpinned := uc.resolver.partitionPinned(ids)
	lastPinned := uc.view.LastPinnedPosition()

	if len(pinned) > 0 {
		if err := uc.moveBatch(ctx, pinned, port.MoveOptions{Index: lastPinned, WindowID: windowID}); err != nil {
			return err
		}
	}
	if len(unpinned) > 0 {
		if err := uc.moveBatch(ctx, unpinned, port.MoveOptions{Index: entity.IndexEnd, WindowID: windowID}); err != nil {
			return err
		}
	}

	log.Info().Int("pinned", len(pinned)).Int("unpinned", len(unpinned)).Msg("tabs moved to end")
	return nil
}

// MoveToStart moves each selected tab to the start of its section, one
// request per tab in selection order.
func (uc *MoveTabsUseCase) MoveToStart(ctx context.Context, sel *entity.Selection, windowID entity.WindowID) error {
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return err
	}
	log := logging.FromContext(ctx)
	log.Debug().Int("count", len(ids)).Msg("moving tabs to start")

	windowID = windowID.Resolve()
	firstUnpinned := uc.view.FirstUnpinnedPosition()

	for _, id := range ids {
		pinned, err := uc.view.IsPinned(id)
		if err != nil {
			continue
		}
		index := firstUnpinned
		if pinned {
			index = 0
		}
		if err := uc.moveBatch(ctx, []entity.TabID{id}, port.MoveOptions{Index: index, WindowID: windowID}); err != nil {
			return err
		}
	}

	log.Info().Int("count", len(ids)).Msg("tabs moved to start")
	return nil
}

// MoveToNewWindow opens a window seeded with the first selected tab and moves
// the rest of the selection after it. It returns nil when the first reference
// does not resolve.
func (uc *MoveTabsUseCase) MoveToNewWindow(ctx context.Context, sel *entity.Selection) (*entity.Window, error) {
	first, ok, err := uc.resolver.ResolveFirst(ctx, sel)
	if err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)
	if !ok {
		log.Debug().Msg("first selected tab does not resolve, no window created")
		return nil, nil
	}
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return nil, err
	}

	win, err := uc.host.CreateWindow(ctx, port.CreateWindowOptions{TabID: first, Type: entity.WindowTypeNormal})
	if err != nil {
		return nil, entity.NewHostError("create window", first, err)
	}
	if win == nil {
		return nil, fmt.Errorf("host returned no window for tab %d", first)
	}

	rest := make([]entity.TabID, 0, len(ids))
	for _, id := range ids {
		if id != first {
			rest = append(rest, id)
		}
	}
	if len(rest) > 0 {
		if err := uc.host.MoveTabs(ctx, rest, port.MoveOptions{Index: entity.IndexEnd, WindowID: win.ID}); err != nil {
			return win, entity.NewHostError("move", rest[0], err)
		}
	}

	log.Info().Int("window_id", int(win.ID)).Int("count", len(rest)+1).Msg("tabs moved to new window")
	return win, nil
}

func (uc *MoveTabsUseCase) moveBatch(ctx context.Context, ids []entity.TabID, opts port.MoveOptions) error {
	for _, id := range ids {
		_ = uc.view.MarkEnRoute(id)
	}
	if err := uc.host.MoveTabs(ctx, ids, opts); err != nil {
		for _, id := range ids {
			uc.view.ClearEnRoute(id)
		}
		return entity.NewHostError("move", ids[0], err)
	}
	return nil
}
