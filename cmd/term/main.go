package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/artillery-chain/internal/board"
	"github.com/Garsondee/artillery-chain/internal/logging"
	"github.com/Garsondee/artillery-chain/internal/term"
)

func main() {
	level := flag.String("log-level", "info", "debug|info|warn|error")
	logFile := flag.String("log-file", "", "append logs to this file (discarded when empty; the screen owns stderr)")
	flag.Parse()

	out, closeLog, err := logging.OpenFile(*logFile)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ui := term.New(screen, board.NewSession(board.DefaultBoard()), logging.New(out, *level))
	err = ui.Run()
	screen.Fini()
	if err != nil {
		closeLog()
		log.Fatal(err)
	}
}
