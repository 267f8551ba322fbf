package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/sidetabs/internal/cli/styles"
	"github.com/bnema/sidetabs/internal/domain/entity"
	"github.com/bnema/sidetabs/internal/domain/repository"
)

var (
	sessionWindow int
	sessionKey    string
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect stored tab arrangements",
	Long: `Stored arrangements are the per-window snapshots used to rebuild
sidebar groups after a restart.`,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows with stored values",
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored arrangement of a window",
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored arrangement of a window",
	RunE:  runSessionClear,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionListCmd, sessionShowCmd, sessionClearCmd)

	for _, c := range []*cobra.Command{sessionShowCmd, sessionClearCmd} {
		c.Flags().IntVarP(&sessionWindow, "window", "w", 0, "window id")
		c.Flags().StringVarP(&sessionKey, "key", "k", "", "window value key (default from config)")
		_ = c.MarkFlagRequired("window")
	}
}

func runSessionList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	repo, err := app.WindowValues()
	if err != nil {
		return err
	}

	ids, err := repo.ListWindows(app.Ctx())
	if err != nil {
		return err
	}
	fmt.Println(styles.NewArrangementRenderer(app.Theme).RenderWindows(ids))
	return nil
}

func runSessionShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	windowID, err := parseSessionWindow(sessionWindow)
	if err != nil {
		return err
	}
	repo, err := app.WindowValues()
	if err != nil {
		return err
	}

	key := resolveSessionKey()
	list, err := loadStoredArrangement(app.Ctx(), repo, windowID, key)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewArrangementRenderer(app.Theme).RenderSnapshot(windowID, key, list))
	return nil
}

func runSessionClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	windowID, err := parseSessionWindow(sessionWindow)
	if err != nil {
		return err
	}
	repo, err := app.WindowValues()
	if err != nil {
		return err
	}

	key := resolveSessionKey()
	if err := repo.Delete(app.Ctx(), windowID, key); err != nil {
		return err
	}
	app.Logger().Info().Int("window_id", int(windowID)).Str("key", key).Msg("stored arrangement cleared")
	return nil
}

// parseSessionWindow validates the --window flag.
func parseSessionWindow(raw int) (entity.WindowID, error) {
	id := entity.WindowID(raw)
	if !id.IsConcrete() {
		return 0, errors.New("--window must be a positive window id")
	}
	return id, nil
}

// loadStoredArrangement decodes the arrangement stored under key, or returns
// nil when nothing is stored.
func loadStoredArrangement(
	ctx context.Context,
	repo repository.WindowValueRepository,
	windowID entity.WindowID,
	key string,
) (entity.SessionTabList, error) {
	blob, found, err := repo.Get(ctx, windowID, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	list, err := entity.DecodeSessionTabList(blob)
	if err != nil {
		return nil, fmt.Errorf("stored arrangement of window %d: %w", windowID, err)
	}
	return list, nil
}

func resolveSessionKey() string {
	if sessionKey != "" {
		return sessionKey
	}
	return GetApp().Config.Session.TabListKey
}
