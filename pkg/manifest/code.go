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

package manifest

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// linePrefix marks a store line once surrounding whitespace is trimmed
	linePrefix = "Store"

	// codeWidth is the zero-padded width of the numeric part of a code
	codeWidth = 5

	PrimarySuffix   = "D100"
	SecondarySuffix = "D101"
)

// codePattern matches a well-formed store code, used when reading a ledger back
var codePattern = regexp.MustCompile(`^[0-9]{5,}D10[01]$`)

// 🏪 StoreCode is the canonical per-store identifier, e.g. 00012D100
type StoreCode string

func (c StoreCode) String() string {
	return string(c)
}

// Valid reports whether c has the shape produced by StoreEntry.Code
func (c StoreCode) Valid() bool {
	return codePattern.MatchString(string(c))
}

// 📄 StoreEntry is the recognized part of a manifest line
type StoreEntry struct {
	Number         string // store number as written, unpadded
	Classification string // primary/secondary, any case
}

// IsPrimary reports whether the classification is "primary", ignoring case
func (e StoreEntry) IsPrimary() bool {
	return strings.ToLower(e.Classification) == "primary"
}

// Code derives the store code. Anything that is not "primary" gets the
// secondary suffix, typos included.
func (e StoreEntry) Code() StoreCode {
	suffix := SecondarySuffix
	if e.IsPrimary() {
		suffix = PrimarySuffix
	}
	return StoreCode(zeroFill(e.Number, codeWidth) + suffix)
}

// ParseEntry recognizes a single manifest line
func ParseEntry(line string) (StoreEntry, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, linePrefix) {
		return StoreEntry{}, false
	}

	parts := strings.Fields(line)
	if len(parts) < 3 {
		return StoreEntry{}, false
	}

	return StoreEntry{
		Number:         parts[1],
		Classification: parts[2],
	}, true
}

// zeroFill left-pads s with zeros up to width characters, keeping a leading
// sign in front. Longer values are returned unchanged.
func zeroFill(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	return sign + strings.Repeat("0", width-n) + s
}
