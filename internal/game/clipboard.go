package game

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/artillery-chain/internal/board"
)

var errClipboardUnsupported = errors.New("clipboard not available on this system")

// copyBoard puts the text rendering of b on the system clipboard.
func copyBoard(b *board.Board) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	if err := clipboard.WriteAll(b.String()); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
