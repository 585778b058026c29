package player

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Player triggers playback of a media file. Implementations are
// fire-and-forget; the selected file is handed to whatever the platform
// associates with it.
type Player interface {
	Open(ctx context.Context, path string) error
}

// OSPlayer opens a file with the platform's default handler.
type OSPlayer struct{}

func (OSPlayer) Open(ctx context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	// Reap the launcher process without blocking the caller.
	go cmd.Wait()
	return nil
}
