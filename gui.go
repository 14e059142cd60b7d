package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/jroimartin/gocui"

	"vmsim/config"
	"vmsim/console"
	"vmsim/system"
)

// runGui replays the trace inside a gocui terminal ui: translations on the
// left, TLB content on the right, report and errors in the status view.
// The ui stays open after the run until ctrl-c or q.
func runGui(cfg config.Config, tracePath string, l *log.Logger) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("couldn't create gui: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(console.Layout)
	for _, key := range []interface{}{gocui.KeyCtrlC, 'q'} {
		if err := g.SetKeybinding("", key, gocui.ModNone, console.Quit); err != nil {
			return err
		}
	}

	translations := console.NewGui(g, console.TranslationsView)
	tlbView := console.NewGui(g, console.TLBView)
	status := console.NewGui(g, console.StatusView)

	// start simulation once the main loop is running
	g.Update(func(g *gocui.Gui) error {
		go simulate(cfg, tracePath, l, translations, tlbView, status)
		return nil
	})

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func simulate(cfg config.Config, tracePath string, l *log.Logger,
	translations, tlbView *console.Gui, status console.Console) {
	_ = status.WriteConsole(fmt.Sprintf("Replaying %s on %d frames, %d TLB entries", tracePath, cfg.Frames, cfg.TLBEntries))

	sys, err := system.InitializeSystem(cfg, translations, l)
	if err != nil {
		_ = status.WriteConsole(fmt.Sprintf("Error: %v", err))
		return
	}
	runErr := sys.RunFile(tracePath)

	var tlb bytes.Buffer
	if err := sys.Translator.DumpTLB(&tlb); err == nil {
		tlbView.Reset()
		_ = tlbView.WriteConsole(tlb.String())
	}
	if runErr != nil {
		_ = status.WriteConsole(fmt.Sprintf("Error: %v", runErr))
		return
	}
	_ = sys.Report(status)
	if err := sys.Dump(); err != nil {
		_ = status.WriteConsole(fmt.Sprintf("Error: %v", err))
	}
	_ = status.WriteConsole("Done. Press q to quit.")
}
