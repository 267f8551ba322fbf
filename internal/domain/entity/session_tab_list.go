package entity

import (
	"encoding/json"
	"fmt"
)

// DefaultSessionTabListKey is the window value key holding the arrangement.
const DefaultSessionTabListKey = "tabList"

// SessionTabEntry records where a tab sat in the arrangement.
type SessionTabEntry struct {
	Collapsed      bool   `json:"collapsed"`
	URL            string `json:"url"`
	ContainerIndex int    `json:"containerIndex"`
}

// SessionTabList maps visual positions to their recorded entry.
// It serializes as a JSON object keyed by the decimal position.
type SessionTabList map[int]SessionTabEntry

// Encode serializes the list into the stored blob form.
func (l SessionTabList) Encode() (string, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("encode session tab list: %w", err)
	}
	return string(data), nil
}

// DecodeSessionTabList parses a stored blob.
func DecodeSessionTabList(blob string) (SessionTabList, error) {
	list := SessionTabList{}
	if err := json.Unmarshal([]byte(blob), &list); err != nil {
		return nil, fmt.Errorf("decode session tab list: %w", err)
	}
	return list, nil
}

// SessionTabList captures the current arrangement of the view. The pinned
// section is container 0 whether or not it holds tabs.
func (v *TabView) SessionTabList() SessionTabList {
	v.mu.RLock()
	defer v.mu.RUnlock()

	list := make(SessionTabList, len(v.nodes))
	pos := 0
	for ci, c := range v.containers {
		for _, n := range c.nodes {
			list[pos] = SessionTabEntry{
				Collapsed:      c.collapsed,
				URL:            n.tab.URL,
				ContainerIndex: ci,
			}
			pos++
		}
	}
	return list
}
