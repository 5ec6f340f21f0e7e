// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging builds the process-wide slog logger.

	logger, err := logging.New(cfg.LogLevel, os.Stdout)
	if err != nil {
		// unknown level
	}
	slog.SetDefault(logger)

Levels are debug, info, warn and error. Output is human-readable text when
stdout is a terminal and JSON otherwise.
*/
package logging
