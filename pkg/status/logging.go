// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	codeIndent   = 4  // spaces to indent store entries
	codeWidth    = 12 // width for the store code
	outcomeWidth = 16 // width for the outcome text
)

// 🎯 FormatOutcomeLine formats a store outcome as an aligned, colored table row
func FormatOutcomeLine(code string, outcome Outcome, err error) string {
	var prefix string
	switch outcome {
	case Renamed:
		prefix = color.GreenString("✓")
	case SourceMissing:
		prefix = color.YellowString("?")
	case Failed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	line := fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", codeIndent),
		prefix,
		fmt.Sprintf("%-*s", codeWidth, code),
		fmt.Sprintf("%-*s", outcomeWidth, outcome.String()),
	)
	if err != nil {
		line += color.New(color.Faint).Sprint(err.Error())
	}
	return line
}
