// Package scenario loads and replays scripted tab arrangements against the
// in-memory host.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bnema/sidetabs/internal/infrastructure/memhost"
)

// Op names a scenario step.
type Op string

const (
	OpMoveInOrder     Op = "move_in_order"
	OpMoveToEnd       Op = "move_to_end"
	OpMoveToStart     Op = "move_to_start"
	OpMoveToNewWindow Op = "move_to_new_window"
	OpActivate        Op = "activate"
	OpBookmark        Op = "bookmark"
	OpBookmarkAll     Op = "bookmark_all"
	OpClose           Op = "close"
	OpCloseOthers     Op = "close_others"
	OpCloseToEnd      Op = "close_to_end"
	OpDupe            Op = "dupe"
	OpMute            Op = "mute"
	OpPin             Op = "pin"
	OpReload          Op = "reload"
	OpReloadAll       Op = "reload_all"
	OpGroup           Op = "group"
	OpDetach          Op = "detach"
	OpUngroup         Op = "ungroup"
	OpCollapse        Op = "collapse"
	OpExpand          Op = "expand"
	OpSave            Op = "save"
	OpRestore         Op = "restore"
	OpRebuild         Op = "rebuild"
)

// ErrInvalidScenario is returned for scenarios that cannot be replayed.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a scripted session: a seeded window and the steps run on it.
type Scenario struct {
	Name string `yaml:"name"`
	// LoadPolls is how many polls a loading tab stays loading. Zero completes
	// on the first poll.
	LoadPolls int       `yaml:"load_polls"`
	Private   bool      `yaml:"private"`
	Tabs      []TabSpec `yaml:"tabs"`
	Steps     []Step    `yaml:"steps"`
}

// TabSpec seeds one tab of the scenario window.
type TabSpec struct {
	URL     string `yaml:"url"`
	Title   string `yaml:"title"`
	Pinned  bool   `yaml:"pinned"`
	Muted   bool   `yaml:"muted"`
	Loading bool   `yaml:"loading"`
}

// Step is one operation. Which fields apply depends on Op.
type Step struct {
	Op     Op    `yaml:"op"`
	Tabs   []int `yaml:"tabs"`
	Tab    int   `yaml:"tab"`
	Anchor int   `yaml:"anchor"`
	Shift  *int  `yaml:"shift"`
	Value  *bool `yaml:"value"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Decode parses and validates a scenario document.
func Decode(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks that every step names a known op with its required fields.
func (s *Scenario) Validate() error {
	if len(s.Tabs) == 0 {
		return fmt.Errorf("%w: at least one tab is required", ErrInvalidScenario)
	}
	if s.LoadPolls < 0 {
		return fmt.Errorf("%w: load_polls must be non-negative", ErrInvalidScenario)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("%w: step %d (%s): %v", ErrInvalidScenario, i+1, step.Op, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case OpMoveInOrder:
		if st.Anchor == 0 {
			return errors.New("anchor is required")
		}
		if len(st.Tabs) == 0 {
			return errors.New("tabs are required")
		}
	case OpMoveToEnd, OpMoveToStart, OpMoveToNewWindow, OpBookmark, OpClose,
		OpReload, OpGroup, OpDetach, OpMute, OpPin:
		if len(st.Tabs) == 0 {
			return errors.New("tabs are required")
		}
	case OpCloseOthers:
		if st.Tabs == nil {
			return errors.New("tabs to keep are required")
		}
	case OpActivate, OpCloseToEnd, OpDupe, OpUngroup, OpCollapse, OpExpand:
		if st.Tab == 0 {
			return errors.New("tab is required")
		}
	case OpBookmarkAll, OpReloadAll, OpSave, OpRestore, OpRebuild:
	default:
		return errors.New("unknown op")
	}
	return nil
}

// specs converts the scenario tabs to in-memory host seeds.
func (s *Scenario) specs() []memhost.TabSpec {
	specs := make([]memhost.TabSpec, len(s.Tabs))
	for i, t := range s.Tabs {
		specs[i] = memhost.TabSpec{
			URL:     t.URL,
			Title:   t.Title,
			Pinned:  t.Pinned,
			Muted:   t.Muted,
			Loading: t.Loading,
		}
	}
	return specs
}
