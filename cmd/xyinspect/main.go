package main

import (
	"fmt"
	"log"
	"os"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/midbel/xychart/config"
)

func main() {
	log.SetPrefix("xyinspect: ")
	log.SetFlags(0)
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: xyinspect chart.yml")
		os.Exit(1)
	}
	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	chart, err := cfg.Chart()
	if err != nil {
		log.Fatal(err)
	}
	m, err := newModel(chart)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
