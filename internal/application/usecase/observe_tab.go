package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/sidetabs/internal/application/port"
	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/logging"
)

// DefaultObserveInterval is the polling period of a tab completion watch.
const DefaultObserveInterval = 3 * time.Second

// SessionSaver writes the session snapshot.
type SessionSaver interface {
	Save(ctx context.Context) error
}

// ObserveTabUseCase polls loading tabs until they complete, then refreshes
// their cached metadata and writes the session snapshot.
type ObserveTabUseCase struct {
	host     port.TabHost
	view     *entity.TabView
	clock    port.Clock
	saver    SessionSaver
	interval time.Duration

	group singleflight.Group
	wg    sync.WaitGroup
}

// NewObserveTabUseCase creates a new tab completion watcher.
func NewObserveTabUseCase(
	host port.TabHost,
	view *entity.TabView,
	clock port.Clock,
	saver SessionSaver,
	interval time.Duration,
) *ObserveTabUseCase {
	if interval <= 0 {
		interval = DefaultObserveInterval
	}
	return &ObserveTabUseCase{
		host:     host,
		view:     view,
		clock:    clock,
		saver:    saver,
		interval: interval,
	}
}

// Observe blocks until the tab completes loading, disappears, or ctx is done.
func (uc *ObserveTabUseCase) Observe(ctx context.Context, id entity.TabID) error {
	if !id.Valid() {
		return entity.InvalidArgumentf("tab id %d", id)
	}
	ctx = logging.WithTabID(ctx, int(id))
	log := logging.FromContext(ctx)

	for polls := 1; ; polls++ {
		if err := uc.clock.Sleep(ctx, uc.interval); err != nil {
			return err
		}
		tab, err := uc.host.GetTab(ctx, id)
		if err != nil {
			return entity.NewHostError("get", id, err)
		}
		if tab == nil {
			log.Debug().Int("polls", polls).Msg("observed tab is gone")
			return nil
		}
		if !tab.IsComplete() {
			log.Trace().Int("polls", polls).Str("status", string(tab.Status)).Msg("tab still loading")
			continue
		}

		if _, err := uc.view.Update(*tab); err != nil && !errors.Is(err, entity.ErrNotFound) {
			return err
		}
		log.Debug().Int("polls", polls).Msg("tab completed loading")
		return uc.saver.Save(ctx)
	}
}

// Start watches a tab in the background. A tab already being watched is not
// watched twice.
func (uc *ObserveTabUseCase) Start(ctx context.Context, id entity.TabID) {
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		_, err, _ := uc.group.Do(strconv.Itoa(int(id)), func() (any, error) {
			return nil, uc.Observe(ctx, id)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.FromContext(ctx).Warn().Err(err).Int("tab_id", int(id)).Msg("tab watch failed")
		}
	}()
}

// Wait blocks until every started watch has returned.
func (uc *ObserveTabUseCase) Wait() {
	uc.wg.Wait()
}
