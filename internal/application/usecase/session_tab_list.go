package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/sidetabs/internal/application/port"
	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/domain/repository"
	"github.com/bnema/sidetabs/internal/logging"
)

// SessionTabListUseCase persists the sidebar arrangement of the view's window.
type SessionTabListUseCase struct {
	host port.TabHost
	view *entity.TabView
	repo repository.WindowValueRepository
	key  string
}

// NewSessionTabListUseCase creates a new session snapshot use case.
// An empty key falls back to entity.DefaultSessionTabListKey.
func NewSessionTabListUseCase(
	host port.TabHost,
	view *entity.TabView,
	repo repository.WindowValueRepository,
	key string,
) *SessionTabListUseCase {
	if key == "" {
		key = entity.DefaultSessionTabListKey
	}
	return &SessionTabListUseCase{
		host: host,
		view: view,
		repo: repo,
		key:  key,
	}
}

// Key returns the window value key the arrangement is stored under.
func (uc *SessionTabListUseCase) Key() string {
	return uc.key
}

// Save replaces the stored arrangement of the view's window with the view.
// Private windows and empty views are skipped.
func (uc *SessionTabListUseCase) Save(ctx context.Context) error {
	log := logging.FromContext(ctx)

	win, err := uc.window(ctx)
	if err != nil {
		return err
	}
	if win == nil {
		log.Debug().Msg("no window, skipping session tab list")
		return nil
	}
	if win.Incognito {
		log.Debug().Int("window_id", int(win.ID)).Msg("private window, skipping session tab list")
		return nil
	}
	if uc.view.Len() == 0 {
		log.Debug().Int("window_id", int(win.ID)).Msg("no tabs, skipping session tab list")
		return nil
	}

	list := uc.view.SessionTabList()
	blob, err := list.Encode()
	if err != nil {
		return err
	}
	if err := uc.repo.Set(ctx, win.ID, uc.key, blob); err != nil {
		return fmt.Errorf("failed to save session tab list: %w", err)
	}

	log.Debug().
		Int("window_id", int(win.ID)).
		Int("tabs", len(list)).
		Msg("session tab list saved")
	return nil
}

// Load returns the arrangement stored under key for the view's window, or
// nil when that window is gone or nothing is stored.
func (uc *SessionTabListUseCase) Load(ctx context.Context, key string) (entity.SessionTabList, error) {
	if key == "" {
		return nil, entity.InvalidArgumentf("session key is required")
	}
	win, err := uc.window(ctx)
	if err != nil {
		return nil, err
	}
	if win == nil {
		return nil, nil
	}
	return uc.LoadWindow(ctx, win.ID, key)
}

// window returns the host window the view mirrors. An unbound view falls
// back to the current window.
func (uc *SessionTabListUseCase) window(ctx context.Context) (*entity.Window, error) {
	id := uc.view.WindowID()
	if !id.IsConcrete() {
		win, err := uc.host.GetCurrentWindow(ctx)
		if err != nil {
			return nil, entity.NewHostError("get current window", 0, err)
		}
		return win, nil
	}
	win, err := uc.host.GetWindow(ctx, id)
	if err != nil {
		return nil, entity.NewHostError("get window", 0, err)
	}
	return win, nil
}

// LoadWindow returns the arrangement stored under key for a given window.
func (uc *SessionTabListUseCase) LoadWindow(ctx context.Context, windowID entity.WindowID, key string) (entity.SessionTabList, error) {
	if key == "" {
		return nil, entity.InvalidArgumentf("session key is required")
	}
	blob, found, err := uc.repo.Get(ctx, windowID, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load session tab list: %w", err)
	}
	if !found {
		return nil, nil
	}
	return entity.DecodeSessionTabList(blob)
}
