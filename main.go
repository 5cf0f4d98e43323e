package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"iretro/api"
	"iretro/cloud"
	"iretro/liked"
	"iretro/lyrics"
	"iretro/player"
	"iretro/store"
	"iretro/tui"
)

type Params struct {
	ApiUrl          string `help:"Backend API base URL" default:"http://localhost:8080"`
	SupabaseUrl     string `optional:"true" help:"Supabase project URL (empty disables cloud sync)"`
	SupabaseAnonKey string `optional:"true" help:"Supabase anon key"`
	LogFile         string `optional:"true" help:"Log file path (default: <config dir>/iretro/iretro.log)"`
	Theme           string `optional:"true" help:"Theme override for this run (silver, blue, pink, yellow, red)"`
}

func main() {
	boa.CmdT[Params]{
		Use:     "iretro",
		Short:   "A retro handheld music player for the terminal",
		Version: appVersion(),
		ParamEnrich: boa.ParamEnricherCombine(
			boa.ParamEnricherBool,
			boa.ParamEnricherName,
			boa.ParamEnricherEnv,
		),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "iretro: %v\n", err)
				os.Exit(1)
			}
		},
	}.Run()
}

func run(params *Params) error {
	closeLog, err := setupLogging(params.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	st, err := store.DefaultStore()
	if err != nil {
		return fmt.Errorf("locating config dir: %w", err)
	}
	prefs := st.LoadOrCreate()

	theme := prefs.Theme
	if store.ValidTheme(params.Theme) {
		theme = params.Theme
	}

	cloudSvc := cloud.NewService(nil, params.SupabaseUrl, params.SupabaseAnonKey, prefs.DeviceID)

	sessions := &cloud.SessionRef{}
	likedMgr := liked.NewManager(prefs.LikedSongs, st, cloudSvc, sessions.Get)

	engine := player.New()
	if !player.AudioAvailable {
		slog.Warn("audio output unavailable on this build, playback is silent")
	}

	slog.Info("starting", "api", params.ApiUrl, "cloud", cloudSvc.Configured(), "device", prefs.DeviceID)

	return tui.Run(tui.Config{
		API:     api.NewClient(nil, params.ApiUrl),
		Lyrics:  lyrics.NewClient(nil, ""),
		Cloud:   cloudSvc,
		Store:   st,
		Liked:   likedMgr,
		Engine:  engine,
		Theme:   theme,
		Session: prefs.Session,
	}, sessions)
}

// setupLogging points slog at a file; the TUI owns the terminal.
func setupLogging(path string) (func(), error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locating config dir: %w", err)
		}
		path = filepath.Join(dir, "iretro", "iretro.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	return func() { f.Close() }, nil
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
