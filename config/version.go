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

package config

import (
	"fmt"
	"strconv"
)

/* Build time variables set through -ldflags */

// BuildNumber is the monotonic build number, currently based on the date and hour-of-day.
var BuildNumber string

// CommitHash is the git commit id in effect when the build was created.
var CommitHash string

// Branch is the git branch in effect when the build was created.
var Branch string

// DefaultDeadlock is "enable" on branches where deadlock detection should be on by default.
var DefaultDeadlock string

// VersionMajor is the Major semantic version number (#.y.z) - changed when first public release (0.y.z -> 1.y.z)
// and when backwards compatibility is broken.
const VersionMajor = 0

// VersionMinor is the Minor semantic version number (x.#.z) - changed when backwards-compatible features are introduced.
const VersionMinor = 3

// Version is the type holding our full version information.
type Version struct {
	Major       int
	Minor       int
	BuildNumber int
	CommitHash  string
	Branch      string
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.BuildNumber)
}

func convertToInt(val string) int {
	if val == "" {
		return 0
	}
	value, _ := strconv.ParseInt(val, 10, 0)
	return int(value)
}

// GetCurrentVersion retrieves a copy of the current global Version structure (for the application)
func GetCurrentVersion() Version {
	return Version{
		Major:       VersionMajor,
		Minor:       VersionMinor,
		BuildNumber: convertToInt(BuildNumber), // set using -ldflags
		CommitHash:  CommitHash,
		Branch:      Branch,
	}
}

// FormatVersion prints the current version and build information
func FormatVersion() string {
	version := GetCurrentVersion()
	return fmt.Sprintf("%s [%s] (commit #%s)", version.String(), version.Branch, version.CommitHash)
}
