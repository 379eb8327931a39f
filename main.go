package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sash/internal/app"
	"github.com/llehouerou/sash/internal/config"
	"github.com/llehouerou/sash/internal/errmsg"
	"github.com/llehouerou/sash/internal/logger"
	"github.com/llehouerou/sash/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("%s\n", errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	stateMgr, err := state.Open()
	if err != nil {
		// A broken state database should not keep the app from starting;
		// the layout just will not persist.
		logger.L().Warn("open state database", "error", err)
		stateMgr = nil
	}

	m, err := app.New(cfg, stateMgr)
	if err != nil {
		if stateMgr != nil {
			stateMgr.Close()
		}
		fmt.Printf("%s\n", errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()

	if fm, ok := final.(app.Model); ok {
		fm.Close()
	} else {
		m.Close()
	}
	if stateMgr != nil {
		if closeErr := stateMgr.Close(); closeErr != nil {
			logger.L().Warn("flush state database", "error", closeErr)
		}
	}

	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
