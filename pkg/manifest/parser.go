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
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/reqcntl/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// 📝 Parse reads manifest lines and returns the derived store codes in order.
// Lines that are not store lines are skipped without a diagnostic. A read
// failure is reported to sink once and yields an empty result.
func Parse(ctx context.Context, r io.Reader, sink log.Sink) []StoreCode {
	codes, err := scan(r, func(line string) (StoreCode, bool) {
		entry, ok := ParseEntry(line)
		if !ok {
			return "", false
		}
		return entry.Code(), true
	})
	if err != nil {
		reportUnreadable(ctx, sink, err)
		return []StoreCode{}
	}

	zerolog.Ctx(ctx).Debug().Int("codes", len(codes)).Msg("parsed manifest")
	return codes
}

// 📂 ParseFile opens path and parses it. Open failures are handled like read failures.
func ParseFile(ctx context.Context, path string, sink log.Sink) []StoreCode {
	f, err := os.Open(path)
	if err != nil {
		reportUnreadable(ctx, sink, errors.Errorf("opening manifest: %w", err))
		return []StoreCode{}
	}
	defer f.Close()

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("reading manifest")
	return Parse(ctx, f, sink)
}

// 🔁 ReadCodes reads a failure ledger back as input, one code per line.
// Malformed lines are skipped with a diagnostic.
func ReadCodes(ctx context.Context, r io.Reader, sink log.Sink) []StoreCode {
	codes, err := scan(r, func(line string) (StoreCode, bool) {
		line = strings.TrimSpace(line)
		if line == "" {
			return "", false
		}
		code := StoreCode(line)
		if !code.Valid() {
			sink.Log("Skipping malformed store code: " + line)
			return "", false
		}
		return code, true
	})
	if err != nil {
		reportUnreadable(ctx, sink, err)
		return []StoreCode{}
	}
	return codes
}

// 📂 ReadCodesFile opens a ledger file and reads it with ReadCodes
func ReadCodesFile(ctx context.Context, path string, sink log.Sink) []StoreCode {
	f, err := os.Open(path)
	if err != nil {
		reportUnreadable(ctx, sink, errors.Errorf("opening ledger: %w", err))
		return []StoreCode{}
	}
	defer f.Close()

	return ReadCodes(ctx, f, sink)
}

func scan(r io.Reader, fn func(line string) (StoreCode, bool)) ([]StoreCode, error) {
	if r == nil {
		return nil, errors.Errorf("no input stream")
	}

	codes := []StoreCode{}
	err := eachLine(bufio.NewReader(r), func(line string) {
		if code, ok := fn(line); ok {
			codes = append(codes, code)
		}
	})
	if err != nil {
		return nil, errors.Errorf("scanning input: %w", err)
	}
	return codes, nil
}

// eachLine calls fn for every line of br. Lines end at "\n", "\r\n" or a lone
// "\r" and have no length limit.
func eachLine(br *bufio.Reader, fn func(line string)) error {
	for {
		chunk, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if chunk != "" {
			chunk = strings.TrimSuffix(chunk, "\n")
			chunk = strings.TrimSuffix(chunk, "\r")
			for _, line := range strings.Split(chunk, "\r") {
				fn(line)
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

func reportUnreadable(ctx context.Context, sink log.Sink, err error) {
	zerolog.Ctx(ctx).Debug().Err(err).Msg("manifest unreadable")
	sink.Log("Error reading input file: " + err.Error())
}
