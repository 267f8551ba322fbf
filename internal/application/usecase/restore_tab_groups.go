package usecase

import (
	"context"

	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/logging"
)

// RestoreTabGroupsUseCase rebuilds sidebar groups from a stored arrangement
// when a window is restored.
type RestoreTabGroupsUseCase struct {
	view     *entity.TabView
	sessions *SessionTabListUseCase
}

// NewRestoreTabGroupsUseCase creates a new restorer.
func NewRestoreTabGroupsUseCase(view *entity.TabView, sessions *SessionTabListUseCase) *RestoreTabGroupsUseCase {
	return &RestoreTabGroupsUseCase{view: view, sessions: sessions}
}

// Execute regroups the view and returns the number of groups rebuilt. A
// fresh snapshot is written afterwards.
func (uc *RestoreTabGroupsUseCase) Execute(ctx context.Context) (int, error) {
	log := logging.FromContext(ctx)

	list, err := uc.sessions.Load(ctx, uc.sessions.Key())
	if err != nil {
		return 0, err
	}
	if list == nil {
		log.Debug().Msg("no stored session tab list")
		return 0, nil
	}

	built := uc.view.ApplySessionTabList(list)
	if err := uc.sessions.Save(ctx); err != nil {
		return built, err
	}

	log.Info().Int("groups", built).Int("entries", len(list)).Msg("tab groups restored")
	return built, nil
}
