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

package dalvik

import (
	"fmt"
	"strconv"
	"strings"
)

// Platform API levels that change which opcodes exist. Do not renumber,
// these match the values the platform reports.
const (
	APIEclair           = 5
	APIFroyo            = 8
	APIGingerbread      = 9
	APIHoneycomb        = 11
	APIIceCreamSandwich = 14
	APIJellyBean        = 16
	APIKitKat           = 19
	APIKitKatWatch      = 20
	APIL                = 21
	APILMR1             = 22
	APIM                = 23
	APIN                = 24
	APINMR1             = 25
	APIO                = 26
)

// DefaultAPILevel is the API level used when nothing else is known about the target.
const DefaultAPILevel = 15

// MaxAPILevel is the largest API level a packed version can carry.
const MaxAPILevel = 1<<OatVersionOffset - 1

// lastDalvikAPI is the last API level where the Dalvik VM (and its odex
// opcodes) was the default runtime.
const lastDalvikAPI = APIKitKatWatch

type release struct {
	api  int
	name string
}

// releases lists the short release names accepted by ParseAPILevel.
var releases = []release{
	{APIEclair, "ECLAIR"},
	{APIFroyo, "FROYO"},
	{APIGingerbread, "GINGERBREAD"},
	{APIHoneycomb, "HONEYCOMB"},
	{APIIceCreamSandwich, "ICE_CREAM_SANDWICH"},
	{APIJellyBean, "JELLY_BEAN"},
	{APIKitKat, "KITKAT"},
	{APIKitKatWatch, "KITKAT_WATCH"},
	{APIL, "L"},
	{APILMR1, "L_MR1"},
	{APIM, "M"},
	{APIN, "N"},
	{APINMR1, "N_MR1"},
	{APIO, "O"},
}

// ReleaseName returns the short release name for an API level, or "" if the
// level does not start a named release.
func ReleaseName(api int) string {
	for _, r := range releases {
		if r.api == api {
			return r.name
		}
	}
	return ""
}

// ParseAPILevel accepts either a decimal API level or a release name such as
// "M" or "l_mr1".
func ParseAPILevel(s string) (int, error) {
	s = strings.TrimSpace(s)
	if api, err := strconv.Atoi(s); err == nil {
		if api < 0 || api > MaxAPILevel {
			return 0, fmt.Errorf("api level %d out of range [0, %d]", api, MaxAPILevel)
		}
		return api, nil
	}
	for _, r := range releases {
		if strings.EqualFold(r.name, s) {
			return r.api, nil
		}
	}
	return 0, fmt.Errorf("unknown api level %q", s)
}
