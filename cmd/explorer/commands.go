package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const usage = "commands: n next, p previous, g N go to page, j K jump to block, r reload, q quit"

type navigator interface {
	LoadLatest(ctx context.Context) error
	NextPage(ctx context.Context) error
	PreviousPage(ctx context.Context) error
	GoToPage(ctx context.Context, n int) error
	JumpTo(ctx context.Context, height uint64) error
}

// dispatch runs one input line. Failures are already shown by the session;
// the returned error is for logging only.
func dispatch(ctx context.Context, nav navigator, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "q", "quit", "exit":
		return true, nil
	case "n", "next":
		return false, nav.NextPage(ctx)
	case "p", "prev", "previous":
		return false, nav.PreviousPage(ctx)
	case "r", "reload":
		return false, nav.LoadLatest(ctx)
	case "g", "page":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: g N")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("page %q: %w", args[0], err)
		}
		return false, nav.GoToPage(ctx, n)
	case "j", "jump":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: j K")
		}
		height, err := strconv.ParseUint(strings.TrimPrefix(args[0], "#"), 10, 64)
		if err != nil {
			return false, fmt.Errorf("height %q: %w", args[0], err)
		}
		return false, nav.JumpTo(ctx, height)
	default:
		return false, fmt.Errorf("unknown command %q; %s", cmd, usage)
	}
}
