package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/sidetabs/internal/application/usecase"
	"github.com/bnema/sidetabs/internal/cli/scenario"
	"github.com/bnema/sidetabs/internal/domain/entity"
)

// ArrangementRenderer renders tab views, stored snapshots and scenario
// reports.
type ArrangementRenderer struct {
	theme *Theme
}

// NewArrangementRenderer creates a new arrangement renderer with the given theme.
func NewArrangementRenderer(theme *Theme) *ArrangementRenderer {
	return &ArrangementRenderer{theme: theme}
}

// RenderContainers draws the sidebar: the pinned section, then every
// container in visual order with groups boxed.
func (r *ArrangementRenderer) RenderContainers(containers []entity.Container, activeID entity.TabID) string {
	var blocks []string
	position := 0
	for _, c := range containers {
		if len(c.Tabs) == 0 {
			continue
		}
		lines := make([]string, len(c.Tabs))
		for i := range c.Tabs {
			lines[i] = r.renderTab(position, c.Tabs[i], activeID)
			position++
		}
		body := strings.Join(lines, "\n")

		switch {
		case c.Pinned:
			header := r.theme.Subtitle.Render(IconPin + " Pinned")
			blocks = append(blocks, header+"\n"+body)
		case c.Group:
			icon := IconExpand
			if c.Collapsed {
				icon = IconCollapse
			}
			header := r.theme.Subtle.Render(fmt.Sprintf("%s %s %s", IconFolder, icon, shortID(c.ID)))
			blocks = append(blocks, r.theme.GroupBox.Render(header+"\n"+body))
		default:
			blocks = append(blocks, body)
		}
	}
	if len(blocks) == 0 {
		return r.theme.Subtle.Render("No tabs.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (r *ArrangementRenderer) renderTab(position int, tab entity.Tab, activeID entity.TabID) string {
	marker := " "
	title := r.theme.Normal.Render(tab.DisplayTitle())
	if tab.ID == activeID {
		marker = r.theme.ActiveTab.Render(IconActive)
		title = r.theme.ActiveTab.Render(tab.DisplayTitle())
	}

	var flags []string
	if tab.Muted {
		flags = append(flags, IconMute)
	}
	if tab.Status == entity.StatusLoading {
		flags = append(flags, IconLoading)
	}

	line := fmt.Sprintf("%s %s %s %s",
		marker,
		r.theme.Subtle.Render(fmt.Sprintf("%2d", position)),
		r.theme.BadgeMuted.Render(fmt.Sprintf("#%d", tab.ID)),
		title,
	)
	if len(flags) > 0 {
		line += " " + r.theme.Subtle.Render(strings.Join(flags, " "))
	}
	return line
}

// RenderSnapshot lists a stored arrangement by position.
func (r *ArrangementRenderer) RenderSnapshot(windowID entity.WindowID, key string, list entity.SessionTabList) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		r.theme.Highlight.Render(IconSession),
		r.theme.Title.Render(fmt.Sprintf("Window %d", windowID)),
		r.theme.Subtle.Render(key),
	))
	if len(list) == 0 {
		b.WriteString(r.theme.Subtle.Render("  Nothing stored."))
		return b.String()
	}

	positions := make([]int, 0, len(list))
	for pos := range list {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	for _, pos := range positions {
		entry := list[pos]
		container := r.theme.BadgeMuted.Render(fmt.Sprintf("c%d", entry.ContainerIndex))
		if entry.ContainerIndex == 0 {
			container = r.theme.Badge.Render(IconPin)
		}
		line := fmt.Sprintf("  %s %s %s",
			r.theme.Subtle.Render(fmt.Sprintf("%2d", pos)),
			container,
			r.theme.Normal.Render(entry.URL),
		)
		if entry.Collapsed {
			line += " " + r.theme.Subtle.Render(IconCollapse)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderWindows lists the windows holding stored values.
func (r *ArrangementRenderer) RenderWindows(ids []entity.WindowID) string {
	if len(ids) == 0 {
		return r.theme.Subtle.Render("No stored arrangements found.")
	}
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconSession), r.theme.Normal.Render(fmt.Sprintf("window %d", id)))
	}
	return strings.Join(lines, "\n")
}

// RenderReport renders the outcome of a scenario replay.
func (r *ArrangementRenderer) RenderReport(report *scenario.Report) string {
	var b strings.Builder
	name := report.Name
	if name == "" {
		name = "scenario"
	}
	b.WriteString(r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", IconPlay, name)))
	b.WriteString("\n")
	if report.Restored > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n",
			r.theme.SuccessStyle.Render(IconRestore),
			r.theme.Subtle.Render(fmt.Sprintf("%d stored groups restored", report.Restored)),
		))
	}

	for _, step := range report.Steps {
		icon := r.theme.SuccessStyle.Render(IconCheck)
		detail := r.theme.Subtle.Render(step.Detail)
		if step.Err != nil {
			icon = r.theme.ErrorStyle.Render(IconX)
			detail = r.theme.ErrorStyle.Render(step.Err.Error())
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			icon,
			r.theme.Subtle.Render(fmt.Sprintf("%2d", step.Index)),
			r.theme.Highlight.Render(string(step.Op)),
			detail,
		))
		if step.Batch != nil && len(step.Batch.Failed) > 0 {
			b.WriteString(r.RenderBatch(string(step.Op), step.Batch))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(r.RenderContainers(report.Containers, report.ActiveID))
	b.WriteString("\n\n")
	b.WriteString(r.RenderSnapshot(report.WindowID, "snapshot", report.Snapshot))
	return b.String()
}

// RenderBatch summarizes a batch operation result.
func (r *ArrangementRenderer) RenderBatch(op string, result *usecase.BatchResult) string {
	if result == nil {
		return ""
	}
	summary := fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(op),
		r.theme.Subtle.Render(fmt.Sprintf("%d succeeded", len(result.Succeeded))),
	)
	if len(result.Failed) == 0 {
		return summary
	}

	ids := make([]int, 0, len(result.Failed))
	for id := range result.Failed {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	lines := []string{summary}
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("  %s #%d %v",
			r.theme.ErrorStyle.Render(IconX), id, result.Failed[entity.TabID(id)]))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error message.
func (r *ArrangementRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

func shortID(id entity.ContainerID) string {
	const n = 8
	if len(id) > n {
		return string(id[:n])
	}
	return string(id)
}
