package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/artillery-chain/internal/board"
	"github.com/Garsondee/artillery-chain/internal/game"
	"github.com/Garsondee/artillery-chain/internal/logging"
)

func main() {
	level := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	logger := logging.New(os.Stderr, *level)
	ebiten.SetWindowTitle("Artillery Chain Reaction")
	ebiten.SetWindowSize(board.WindowWidth, board.WindowHeight)
	if err := ebiten.RunGame(game.New(logger)); err != nil {
		log.Fatal(err)
	}
}
