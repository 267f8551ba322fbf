package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/sidetabs/internal/application/port"
	"github.com/bnema/sidetabs/internal/application/usecase"
	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/domain/repository"
	"github.com/bnema/sidetabs/internal/infrastructure/clock"
	"github.com/bnema/sidetabs/internal/infrastructure/memhost"
	"github.com/bnema/sidetabs/internal/infrastructure/snapshot"
	"github.com/bnema/sidetabs/internal/logging"
)

// Options tune a replay.
type Options struct {
	BatchConcurrency int
	ObserveInterval  time.Duration
	TabListKey       string
	// Clock paces completion watches. Nil polls without waiting.
	Clock port.Clock
	// RestoreGroups regroups the seeded window from a stored arrangement
	// before the first step.
	RestoreGroups bool
	// SnapshotDebounce coalesces arrangement writes. Zero writes after every
	// structural change.
	SnapshotDebounce time.Duration
}

// StepResult is the outcome of one replayed step.
type StepResult struct {
	Index  int
	Op     Op
	Detail string
	Batch  *usecase.BatchResult // Fanned-out operations only
	Err    error
}

// Report is the state left behind by a replay.
type Report struct {
	Name       string
	WindowID   entity.WindowID
	Steps      []StepResult
	Containers []entity.Container
	ActiveID   entity.TabID
	HostOrder  []entity.TabID
	Snapshot   entity.SessionTabList
	Bookmarks  int
	Restored   int // Groups rebuilt before the first step
}

// Failed reports whether any step failed.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// Runner replays a scenario against a fresh in-memory browser.
type Runner struct {
	scenario *Scenario
	opts     Options
	browser  *memhost.Browser
	window   *entity.Window
	view     *entity.TabView

	mover    *usecase.MoveTabsUseCase
	tabs     *usecase.ManageTabsUseCase
	groups   *usecase.ManageGroupsUseCase
	sessions *usecase.SessionTabListUseCase
	restorer *usecase.RestoreTabGroupsUseCase
	observer *usecase.ObserveTabUseCase
	sync     *usecase.SyncTabViewUseCase
	debounce *snapshot.Debouncer
}

// NewRunner wires every use case to a new in-memory browser seeded with the
// scenario window. Snapshots go to values.
func NewRunner(sc *Scenario, values repository.WindowValueRepository, opts Options) *Runner {
	browser := memhost.NewBrowser(sc.LoadPolls)
	window := browser.OpenWindow(sc.Private, sc.specs()...)
	view := entity.NewTabView(window.ID)

	resolver := usecase.NewResolveSelectionUseCase(view)
	sessions := usecase.NewSessionTabListUseCase(browser, view, values, opts.TabListKey)
	mover := usecase.NewMoveTabsUseCase(browser, view, resolver)
	var pace port.Clock = clock.Instant{}
	if opts.Clock != nil {
		pace = opts.Clock
	}
	var saver usecase.SessionSaver = sessions
	var debounce *snapshot.Debouncer
	if opts.SnapshotDebounce > 0 {
		debounce = snapshot.NewDebouncer(sessions, opts.SnapshotDebounce)
		saver = debounce
	}
	observer := usecase.NewObserveTabUseCase(browser, view, pace, saver, opts.ObserveInterval)

	return &Runner{
		scenario: sc,
		opts:     opts,
		browser:  browser,
		window:   window,
		view:     view,
		mover:    mover,
		tabs:     usecase.NewManageTabsUseCase(browser, view, resolver, opts.BatchConcurrency),
		groups:   usecase.NewManageGroupsUseCase(view, resolver, mover, saver),
		sessions: sessions,
		restorer: usecase.NewRestoreTabGroupsUseCase(view, sessions),
		observer: observer,
		sync:     usecase.NewSyncTabViewUseCase(browser, view, saver, observer),
		debounce: debounce,
	}
}

// Run replays every step. A failing step is recorded and the replay goes on.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	ctx = logging.WithWindowID(ctx, int(r.window.ID))
	log := logging.FromContext(ctx)

	if r.debounce != nil {
		r.debounce.Start(ctx)
	}
	if err := r.sync.Rebuild(ctx); err != nil {
		return nil, fmt.Errorf("build initial view: %w", err)
	}
	stop := r.sync.Listen(r.browser)
	defer stop()
	r.observer.Wait()

	report := &Report{Name: r.scenario.Name, WindowID: r.window.ID}
	if r.opts.RestoreGroups {
		built, err := r.restorer.Execute(ctx)
		if err != nil {
			return nil, fmt.Errorf("restore tab groups: %w", err)
		}
		report.Restored = built
	}
	for i, step := range r.scenario.Steps {
		detail, batch, err := r.apply(ctx, step)
		// Watches started by the step finish before the next one runs.
		r.observer.Wait()
		if err != nil {
			log.Warn().Err(err).Int("step", i+1).Str("op", string(step.Op)).Msg("scenario step failed")
		}
		report.Steps = append(report.Steps, StepResult{
			Index:  i + 1,
			Op:     step.Op,
			Detail: detail,
			Batch:  batch,
			Err:    err,
		})
	}

	if r.debounce != nil {
		if err := r.debounce.Stop(ctx); err != nil {
			return nil, fmt.Errorf("flush session tab list: %w", err)
		}
	}

	report.Containers = r.view.Containers()
	report.ActiveID = r.view.ActiveTabID()
	report.Snapshot = r.view.SessionTabList()
	report.Bookmarks = len(r.browser.Bookmarks())
	if win, err := r.browser.GetWindow(ctx, r.window.ID); err == nil && win != nil {
		for _, tab := range win.Tabs {
			report.HostOrder = append(report.HostOrder, tab.ID)
		}
	}

	log.Info().Int("steps", len(report.Steps)).Bool("failed", report.Failed()).Msg("scenario replayed")
	return report, nil
}

func (r *Runner) apply(ctx context.Context, step Step) (string, *usecase.BatchResult, error) {
	windowID := r.window.ID
	sel := entity.NewSelection(tabIDs(step.Tabs)...)
	tab := entity.TabID(step.Tab)

	switch step.Op {
	case OpMoveInOrder:
		shift := len(step.Tabs)
		if step.Shift != nil {
			shift = *step.Shift
		}
		remaining, err := r.mover.MoveInOrder(ctx, usecase.MoveInOrderInput{
			AnchorID:   entity.TabID(step.Anchor),
			TabIDs:     tabIDs(step.Tabs),
			ShiftCount: shift,
			WindowID:   windowID,
		})
		return fmt.Sprintf("%d unplaced", len(remaining)), nil, err
	case OpMoveToEnd:
		return "", nil, r.mover.MoveToEnd(ctx, sel, windowID)
	case OpMoveToStart:
		return "", nil, r.mover.MoveToStart(ctx, sel, windowID)
	case OpMoveToNewWindow:
		win, err := r.mover.MoveToNewWindow(ctx, sel)
		if err != nil || win == nil {
			return "no window created", nil, err
		}
		// The scenario window stays the one under inspection.
		return fmt.Sprintf("window %d", win.ID), nil, r.browser.Focus(r.window.ID)
	case OpActivate:
		return "", nil, r.tabs.Activate(ctx, tab)
	case OpBookmark:
		return batchStep(r.tabs.Bookmark(ctx, sel))
	case OpBookmarkAll:
		return batchStep(r.tabs.BookmarkAll(ctx))
	case OpClose:
		return "", nil, r.tabs.Close(ctx, sel)
	case OpCloseOthers:
		return "", nil, r.tabs.CloseOthers(ctx, tabIDs(step.Tabs))
	case OpCloseToEnd:
		return "", nil, r.tabs.CloseToEnd(ctx, tab)
	case OpDupe:
		created, err := r.tabs.Dupe(ctx, tab, windowID)
		if err != nil || created == nil {
			return "nothing duplicated", nil, err
		}
		return fmt.Sprintf("tab %d", created.ID), nil, nil
	case OpMute:
		return batchStep(r.tabs.Mute(ctx, sel, boolOr(step.Value, true)))
	case OpPin:
		return batchStep(r.tabs.Pin(ctx, sel, boolOr(step.Value, true)))
	case OpReload:
		return batchStep(r.tabs.Reload(ctx, sel))
	case OpReloadAll:
		return batchStep(r.tabs.ReloadAll(ctx))
	case OpGroup:
		id, err := r.groups.GroupSelected(ctx, sel, windowID)
		return string(id), nil, err
	case OpDetach:
		return "", nil, r.groups.Detach(ctx, sel)
	case OpUngroup, OpCollapse, OpExpand:
		c, err := r.view.ContainerOf(tab)
		if err != nil {
			return "", nil, fmt.Errorf("group of tab %d: %w", tab, err)
		}
		switch step.Op {
		case OpUngroup:
			return string(c.ID), nil, r.groups.Ungroup(ctx, c.ID)
		case OpCollapse:
			return string(c.ID), nil, r.groups.SetCollapsed(ctx, c.ID, true)
		default:
			return string(c.ID), nil, r.groups.SetCollapsed(ctx, c.ID, false)
		}
	case OpSave:
		return "", nil, r.sessions.Save(ctx)
	case OpRestore:
		built, err := r.restorer.Execute(ctx)
		return fmt.Sprintf("%d groups", built), nil, err
	case OpRebuild:
		return "", nil, r.sync.Rebuild(ctx)
	}
	return "", nil, errors.New("unknown op")
}

func batchStep(result *usecase.BatchResult, err error) (string, *usecase.BatchResult, error) {
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d ok, %d failed", len(result.Succeeded), len(result.Failed)), result, result.Err()
}

func tabIDs(ids []int) []entity.TabID {
	out := make([]entity.TabID, len(ids))
	for i, id := range ids {
		out[i] = entity.TabID(id)
	}
	return out
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
