/*
 * logging.go, part of goDock.
 *
 * Copyright 2026 The goDock authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

//TimeFormat is the layout of the timestamps in the run log.
const TimeFormat = "2006-01-02 15:04:05"

func handlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(TimeFormat))
			}
			return a
		},
	}
}

//SetupLogger returns a logger that writes text records to console and appends
//them to the file runLog, and a function that closes the file. If runLog
//can't be opened the logger writes to console only, and says so.
func SetupLogger(runLog string, level slog.Level, console io.Writer) (*slog.Logger, func() error) {
	consoleHandler := slog.NewTextHandler(console, handlerOptions(level))
	file, err := os.OpenFile(runLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger := slog.New(consoleHandler)
		logger.Error("failed to open run log, using console only", "error", err, "file", runLog)
		return logger, func() error { return nil }
	}
	logger := NewLogger(console, file, level)
	return logger, file.Close
}

//NewLogger returns a logger that writes the same text records to console and file.
func NewLogger(console, file io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		slog.NewTextHandler(console, handlerOptions(level)),
		slog.NewTextHandler(file, handlerOptions(level)),
	))
}
