package usecase

import (
	"context"
	"errors"

	"github.com/bnema/sidetabs/internal/application/port"
	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/logging"
)

// TabWatcher starts a background completion watch for a tab.
type TabWatcher interface {
	Start(ctx context.Context, id entity.TabID)
}

// SyncTabViewUseCase keeps the tab view in step with host notifications.
type SyncTabViewUseCase struct {
	host    port.TabHost
	view    *entity.TabView
	saver   SessionSaver
	watcher TabWatcher
}

// NewSyncTabViewUseCase creates a new view synchronizer.
func NewSyncTabViewUseCase(
	host port.TabHost,
	view *entity.TabView,
	saver SessionSaver,
	watcher TabWatcher,
) *SyncTabViewUseCase {
	return &SyncTabViewUseCase{
		host:    host,
		view:    view,
		saver:   saver,
		watcher: watcher,
	}
}

// Rebuild reloads the whole view from the host window it is bound to, or
// from the current window when it is not bound yet.
func (uc *SyncTabViewUseCase) Rebuild(ctx context.Context) error {
	log := logging.FromContext(ctx)

	var (
		win *entity.Window
		err error
	)
	if id := uc.view.WindowID(); id.IsConcrete() {
		win, err = uc.host.GetWindow(ctx, id)
	} else {
		win, err = uc.host.GetCurrentWindow(ctx)
	}
	if err != nil {
		return entity.NewHostError("get window", 0, err)
	}
	if win == nil {
		return entity.ErrNotFound
	}

	if err := uc.view.Reset(win.Tabs); err != nil {
		return err
	}
	uc.view.SetWindowID(win.ID)
	for _, tab := range win.Tabs {
		if tab.Status == entity.StatusLoading {
			uc.watcher.Start(ctx, tab.ID)
		}
	}

	log.Info().Int("window_id", int(win.ID)).Int("tabs", len(win.Tabs)).Msg("tab view rebuilt")
	return nil
}

// Listen subscribes the view to a host event source until the returned
// function is called.
func (uc *SyncTabViewUseCase) Listen(source port.TabEventSource) (stop func()) {
	return source.Subscribe(func(ctx context.Context, ev port.TabEvent) {
		if err := uc.HandleEvent(ctx, ev); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("kind", string(ev.Kind)).Msg("failed to apply tab event")
		}
	})
}

// HandleEvent applies one host notification to the view. Events for other
// windows are ignored.
func (uc *SyncTabViewUseCase) HandleEvent(ctx context.Context, ev port.TabEvent) error {
	ctx = logging.WithTabID(ctx, int(ev.TabID))
	log := logging.FromContext(ctx)

	if id := uc.view.WindowID(); id.IsConcrete() && ev.WindowID != id {
		log.Trace().Int("window_id", int(ev.WindowID)).Msg("ignoring event for other window")
		return nil
	}
	log.Debug().Str("kind", string(ev.Kind)).Int("to", ev.ToIndex).Msg("applying tab event")

	save := ev.Structural()
	switch ev.Kind {
	case port.TabCreated, port.TabAttached:
		if err := uc.view.Insert(ev.Tab, ev.ToIndex); err != nil {
			return err
		}
		if ev.Tab.Status == entity.StatusLoading {
			uc.watcher.Start(ctx, ev.TabID)
		}

	case port.TabRemoved, port.TabDetached:
		if _, err := uc.view.Remove(ev.TabID); err != nil {
			return ignoreNotFound(err)
		}

	case port.TabMoved:
		if err := uc.view.Move(ev.TabID, ev.ToIndex); err != nil {
			return ignoreNotFound(err)
		}
		if uc.view.ClearEnRoute(ev.TabID) && uc.view.EnRouteCount() > 0 {
			log.Trace().Msg("moves still in flight, deferring snapshot")
			save = false
		}

	case port.TabUpdated:
		prev, err := uc.view.Lookup(ev.TabID)
		if err != nil {
			return ignoreNotFound(err)
		}
		relocated, err := uc.view.Update(ev.Tab)
		if err != nil {
			return ignoreNotFound(err)
		}
		save = relocated
		if prev.Status == entity.StatusComplete && ev.Tab.Status == entity.StatusLoading {
			uc.watcher.Start(ctx, ev.TabID)
		}

	case port.TabActivated:
		if err := uc.view.SetActive(ev.TabID); err != nil {
			return ignoreNotFound(err)
		}
	}

	if save {
		if err := uc.saver.Save(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to save session tab list")
		}
	}
	return nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, entity.ErrNotFound) {
		return nil
	}
	return err
}
