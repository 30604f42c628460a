// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"

	"zombiezen.com/go/log"

	"dislua.dev/ljbc/internal/ljbccmd"
)

func main() {
	rootCommand := ljbccmd.New()
	if err := rootCommand.ExecuteContext(context.Background()); err != nil {
		log.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}
