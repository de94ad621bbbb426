/*
 * golibsnmp log-wrappers
 *
 * Copyright (c) 2024 Netcon Pro
 * Author(s):
 *  - Abdul Zagirov <zagirovaa@netcon.pro>
 *
 * This library is free software; you can redistribute it and/or
 * modify it under the terms of the GNU Lesser General Public
 * License as published by the Free Software Foundation; either
 * version 2.1 of the License, or (at your option) any later version.
 *
 * This library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public
 * License along with this library; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
 * 02110-1301  USA
 */

package golibsnmp

/*
log.go wraps zerolog so the rest of the code base can do plain
Logf()/Debugf() calls without dragging the logger around.

The one concession it has is that Debug/Debugf checks the debug flag
before formatting anything. This makes calls to golibsnmp.Debugf() very
cheap when debugging is disabled, so it's unproblematic to add
debug-logging in high-traffic code.
*/

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
}).With().Timestamp().Logger()

// Init applies the configured log level. Call it after the config is
// parsed.
func Init() {
	if Config.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
}

func Log(v ...any) {
	logger.Info().Msg(fmt.Sprint(v...))
}

func Logf(format string, v ...any) {
	logger.Info().Msgf(format, v...)
}

func Logln(v ...any) {
	logger.Info().Msg(fmt.Sprintln(v...))
}

func Error(v ...any) {
	logger.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

func Fatal(v ...any) {
	logger.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	logger.Fatal().Msgf(format, v...)
}

func Debug(v ...any) {
	if Config.Debug {
		logger.Debug().Msg(fmt.Sprint(v...))
	}
}

func Debugf(format string, v ...any) {
	if Config.Debug {
		logger.Debug().Msgf(format, v...)
	}
}
