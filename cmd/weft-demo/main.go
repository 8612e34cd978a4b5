// Command weft-demo renders a small animated dashboard that exercises
// flows, stacks, margins and themed drawing. Quit with q, Escape or
// Ctrl-C.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"weft/app"
	"weft/config"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	themeFlag  = flag.String("theme", "", "Theme override: default or light")
	logFlag    = flag.String("log", "", "Write a debug log to this file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *themeFlag != "" {
		cfg.Render.Theme = *themeFlag
	}
	if *logFlag != "" {
		cfg.Log = config.LogConfig{Level: "debug", File: *logFlag, Mode: "overwrite"}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	clockSys := &clockSystem{}
	pulseSys := &pulseSystem{}

	a, err := app.New(
		app.WithConfig(cfg),
		app.WithKeyHandler(func(ev *tcell.EventKey) bool {
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'p' {
				pulseSys.paused = !pulseSys.paused
				return true
			}
			return false
		}),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := a.Run(dashboard(a, clockSys, pulseSys)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
