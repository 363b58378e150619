package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"serimux/internal/config"
	"serimux/internal/diag"
	"serimux/internal/serial"
	"serimux/internal/ui"
)

func main() {
	demo := flag.Bool("demo", false, "run against a pty-backed demo device instead of real hardware")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: serimux [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Serimux is a terminal serial port monitor with tabbed sessions\n")
		fmt.Fprintf(os.Stderr, "and split-pane layouts.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*demo || os.Getenv(serial.DemoEnv) != ""); err != nil {
		fmt.Fprintf(os.Stderr, "serimux: %v\n", err)
		os.Exit(1)
	}
}

func run(demo bool) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())

	store, err := config.NewStore()
	if err != nil {
		// No resolvable config dir leaves save/load unavailable, nothing more.
		store = nil
	}
	prefs := config.DefaultPrefs()
	if store != nil {
		prefs = store.LoadPrefs()
	}

	recorder, err := diag.NewRecorder(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "serimux: tracing disabled: %v\n", err)
	}

	var transport serial.Transport
	if demo {
		dev, err := serial.NewDemoTransport()
		if err != nil {
			return fmt.Errorf("start demo device: %w", err)
		}
		defer dev.Close()
		transport = dev
	} else {
		transport = serial.NewSystemTransport()
	}

	app := ui.NewApp(transport, store, prefs, recorder)
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if watcher, err := serial.NewWatcher(serial.DefaultDeviceDir); err == nil {
		defer watcher.Close()
		go func() {
			for range watcher.Events() {
				p.Send(ui.PortsChangedMsg{})
			}
		}()
	}

	_, runErr := p.Run()
	app.CloseAllPorts()
	if err := recorder.Shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "serimux: trace flush: %v\n", err)
	}
	if runErr != nil {
		return fmt.Errorf("run program: %w", runErr)
	}
	return nil
}
