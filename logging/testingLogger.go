// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package logging

type testLoggerT interface {
	Log(args ...interface{})
}

// TestingLog is a test-only helper to create a Logger that writes through
// testing.T.Log, so output only shows up for failing or verbose tests.
func TestingLog(tb testLoggerT) Logger {
	l := NewLogger()
	l.SetLevel(Debug)
	l.SetOutput(TestLogWriter{tb})
	return l
}

// TestLogWriter is an io.Writer that wraps a testing.T (or testing.B) -- anything written to it gets logged with tb.Log(...)
// Being a io.Writer lets us pass it to Logger.SetOutput() in testing code -- this way if we want we can use Go's built-in testing log instead of making a new base.log file for each test.
// As a bonus, the detailed logs produced in a Travis test are now easily accessible and are printed if and only if that particular ttest fails.
type TestLogWriter struct {
	testLoggerT
}

func (tb TestLogWriter) Write(p []byte) (n int, err error) {
	tb.Log(string(p))
	return len(p), nil
}
