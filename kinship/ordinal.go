/*
 * EliasDB
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package kinship

import "strconv"

/*
Ordinal returns the English ordinal of a number (1st, 2nd, 3rd, 4th, 11th, ...).
*/
func Ordinal(num int) string {
	return strconv.Itoa(num) + ordinalSuffix(num)
}

/*
ordinalSuffix returns the ordinal suffix of a number.
*/
func ordinalSuffix(num int) string {
	if num < 0 {
		num = -num
	}

	switch num % 100 {
	case 11, 12, 13:
		return "th"
	}

	switch num % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}

	return "th"
}
