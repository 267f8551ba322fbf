package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/sidetabs/internal/application/port"
	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/logging"
)

// DefaultBatchConcurrency bounds concurrent host calls of a batch operation.
const DefaultBatchConcurrency = 8

// errSkipMember drops a batch member from the result without counting it as
// a failure.
var errSkipMember = errors.New("skip member")

// FailurePolicy decides what happens to member failures of a batch.
type FailurePolicy int

const (
	// PolicyLog logs every member failure at warn level.
	PolicyLog FailurePolicy = iota
	// PolicySilent only records failures in the result.
	PolicySilent
)

// BatchResult aggregates the outcome of a fanned-out operation.
type BatchResult struct {
	Succeeded []entity.TabID
	Failed    map[entity.TabID]error
}

// Err joins all member failures, or returns nil when every member succeeded.
func (r *BatchResult) Err() error {
	if r == nil || len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for _, err := range r.Failed {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ManageTabsUseCase dispatches user actions on groups of tabs.
type ManageTabsUseCase struct {
	host        port.TabHost
	view        *entity.TabView
	resolver    *ResolveSelectionUseCase
	concurrency int
}

// NewManageTabsUseCase creates a new batch operation dispatcher.
// A concurrency below 1 falls back to DefaultBatchConcurrency.
func NewManageTabsUseCase(
	host port.TabHost,
	view *entity.TabView,
	resolver *ResolveSelectionUseCase,
	concurrency int,
) *ManageTabsUseCase {
	if concurrency < 1 {
		concurrency = DefaultBatchConcurrency
	}
	return &ManageTabsUseCase{
		host:        host,
		view:        view,
		resolver:    resolver,
		concurrency: concurrency,
	}
}

// Activate focuses a tab. Tabs missing from the view are ignored.
func (uc *ManageTabsUseCase) Activate(ctx context.Context, id entity.TabID) error {
	ctx = logging.WithTabID(ctx, int(id))
	log := logging.FromContext(ctx)
	log.Debug().Msg("activating tab")

	if !uc.view.Contains(id) {
		log.Debug().Msg("tab not in view")
		return nil
	}
	active := true
	if _, err := uc.host.UpdateTab(ctx, id, port.TabPatch{Active: &active}); err != nil {
		return entity.NewHostError("activate", id, err)
	}
	return nil
}

// BookmarkAll bookmarks every tab of the view using its cached metadata.
func (uc *ManageTabsUseCase) BookmarkAll(ctx context.Context) (*BatchResult, error) {
	return uc.bookmark(ctx, uc.view.TabIDs(), PolicySilent), nil
}

// Bookmark bookmarks the selected tabs.
func (uc *ManageTabsUseCase) Bookmark(ctx context.Context, sel *entity.Selection) (*BatchResult, error) {
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return nil, err
	}
	return uc.bookmark(ctx, ids, PolicyLog), nil
}

func (uc *ManageTabsUseCase) bookmark(ctx context.Context, ids []entity.TabID, policy FailurePolicy) *BatchResult {
	return uc.fanOut(ctx, "bookmark", ids, policy, func(ctx context.Context, id entity.TabID) error {
		tab, err := uc.view.Lookup(id)
		if err != nil {
			return errSkipMember
		}
		return uc.host.CreateBookmark(ctx, port.BookmarkRequest{Title: tab.Title, URL: tab.URL})
	})
}

// CloseOthers closes every tab of the view not listed in keep, with a single
// host request.
func (uc *ManageTabsUseCase) CloseOthers(ctx context.Context, keep []entity.TabID) error {
	if keep == nil {
		return entity.InvalidArgumentf("tab ids to keep are required")
	}
	kept := make(map[entity.TabID]struct{}, len(keep))
	for _, id := range keep {
		kept[id] = struct{}{}
	}
	var closing []entity.TabID
	for _, id := range uc.view.TabIDs() {
		if _, ok := kept[id]; !ok {
			closing = append(closing, id)
		}
	}
	return uc.remove(ctx, "close others", closing)
}

// Close closes the selected tabs with a single host request.
func (uc *ManageTabsUseCase) Close(ctx context.Context, sel *entity.Selection) error {
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return err
	}
	return uc.remove(ctx, "close", ids)
}

// CloseToEnd closes every tab positioned after id. A tab missing from the
// view is a no-op.
func (uc *ManageTabsUseCase) CloseToEnd(ctx context.Context, id entity.TabID) error {
	ids, err := uc.view.TabsAfter(id)
	if errors.Is(err, entity.ErrNotFound) {
		logging.FromContext(ctx).Debug().Int("tab_id", int(id)).Msg("tab not in view")
		return nil
	}
	if err != nil {
		return err
	}
	return uc.remove(ctx, "close to end", ids)
}

func (uc *ManageTabsUseCase) remove(ctx context.Context, op string, ids []entity.TabID) error {
	log := logging.FromContext(ctx)
	if len(ids) == 0 {
		log.Debug().Str("op", op).Msg("nothing to close")
		return nil
	}
	if err := uc.host.RemoveTabs(ctx, ids); err != nil {
		return entity.NewHostError(op, 0, err)
	}
	log.Info().Str("op", op).Int("count", len(ids)).Msg("tabs closed")
	return nil
}

// Dupe opens a copy of a tab right after it and focuses it. It returns nil
// when the source tab no longer exists.
func (uc *ManageTabsUseCase) Dupe(ctx context.Context, id entity.TabID, windowID entity.WindowID) (*entity.Tab, error) {
	if !id.Valid() {
		return nil, entity.InvalidArgumentf("tab id %d", id)
	}
	ctx = logging.WithTabID(ctx, int(id))
	log := logging.FromContext(ctx)
	log.Debug().Msg("duplicating tab")

	src, err := uc.host.GetTab(ctx, id)
	if err != nil {
		return nil, entity.NewHostError("get", id, err)
	}
	if src == nil {
		log.Debug().Msg("source tab is gone")
		return nil, nil
	}

	tab, err := uc.host.CreateTab(ctx, port.CreateTabOptions{
		URL:         src.URL,
		WindowID:    windowID.Resolve(),
		Index:       src.Index + 1,
		Active:      true,
		OpenerTabID: id,
	})
	if err != nil {
		return nil, entity.NewHostError("create", id, err)
	}
	if tab == nil {
		return nil, nil
	}
	log.Info().Int("new_tab_id", int(tab.ID)).Msg("tab duplicated")
	return tab, nil
}

// Mute sets the muted state of the selected tabs.
func (uc *ManageTabsUseCase) Mute(ctx context.Context, sel *entity.Selection, muted bool) (*BatchResult, error) {
	return uc.patch(ctx, "mute", sel, port.TabPatch{Muted: &muted})
}

// Pin sets the pinned state of the selected tabs.
func (uc *ManageTabsUseCase) Pin(ctx context.Context, sel *entity.Selection, pinned bool) (*BatchResult, error) {
	return uc.patch(ctx, "pin", sel, port.TabPatch{Pinned: &pinned})
}

func (uc *ManageTabsUseCase) patch(ctx context.Context, op string, sel *entity.Selection, patch port.TabPatch) (*BatchResult, error) {
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return nil, err
	}
	return uc.fanOut(ctx, op, ids, PolicyLog, func(ctx context.Context, id entity.TabID) error {
		_, err := uc.host.UpdateTab(ctx, id, patch)
		return err
	}), nil
}

// ReloadAll reloads every tab of the view.
func (uc *ManageTabsUseCase) ReloadAll(ctx context.Context) (*BatchResult, error) {
	return uc.fanOut(ctx, "reload", uc.view.TabIDs(), PolicySilent, uc.host.ReloadTab), nil
}

// Reload reloads the selected tabs.
func (uc *ManageTabsUseCase) Reload(ctx context.Context, sel *entity.Selection) (*BatchResult, error) {
	ids, err := uc.resolver.Resolve(ctx, sel)
	if err != nil {
		return nil, err
	}
	return uc.fanOut(ctx, "reload", ids, PolicyLog, uc.host.ReloadTab), nil
}

// fanOut runs fn for every id concurrently and waits for all of them. A
// failing member never cancels its siblings.
func (uc *ManageTabsUseCase) fanOut(
	ctx context.Context,
	op string,
	ids []entity.TabID,
	policy FailurePolicy,
	fn func(ctx context.Context, id entity.TabID) error,
) *BatchResult {
	log := logging.FromContext(ctx)
	log.Debug().Str("op", op).Int("count", len(ids)).Msg("dispatching batch")

	errs := make([]error, len(ids))
	var g errgroup.Group
	g.SetLimit(uc.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			errs[i] = fn(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	result := &BatchResult{Failed: make(map[entity.TabID]error)}
	for i, id := range ids {
		if errs[i] == nil {
			result.Succeeded = append(result.Succeeded, id)
			continue
		}
		if errors.Is(errs[i], errSkipMember) {
			log.Debug().Int("tab_id", int(id)).Str("op", op).Msg("tab left the view, skipped")
			continue
		}
		err := entity.NewHostError(op, id, errs[i])
		result.Failed[id] = err
		if policy == PolicyLog {
			log.Warn().Err(err).Int("tab_id", int(id)).Str("op", op).Msg("batch member failed")
		}
	}

	log.Info().
		Str("op", op).
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Msg("batch completed")
	return result
}
