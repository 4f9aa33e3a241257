package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/garsondee/blade-arena/internal/game"
	"github.com/garsondee/blade-arena/internal/portrait"
	"github.com/garsondee/blade-arena/internal/roster"
)

func runGame() error {
	cfg, err := loadConfig()
	if err != nil {
		fatal("load config", err)
	}

	if err := os.MkdirAll(cfg.AssetsDir, 0o755); err != nil {
		fatal("create assets directory", err)
	}

	store, err := roster.Open(cfg.DatabasePath)
	if err != nil {
		fatal("open roster database", err)
	}
	defer store.Close()

	var music *game.Music
	bgm := filepath.Join(cfg.AssetsDir, "bgm.mp3")
	if music, err = game.NewMusic(bgm); err != nil {
		log.Debug("music unavailable", "path", bgm, "err", err)
		music = nil
	}
	music.Start(cfg.Music)

	source := portrait.NewFolderSource(cfg.PortraitInbox)
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only

	log.Info("starting", "db", cfg.DatabasePath, "assets", cfg.AssetsDir, "inbox", cfg.PortraitInbox)

	ebiten.SetWindowTitle("Blade Arena")
	ebiten.SetWindowSize(game.ScreenW, game.ScreenH)
	return ebiten.RunGame(game.NewApp(cfg, store, source, music, rng))
}
