package status

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// 📢 Reporter prints the operator-facing view of a batch
type Reporter struct {
	out io.Writer
}

// 🎯 NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Line prints one store outcome
func (r *Reporter) Line(code string, outcome Outcome, err error) {
	fmt.Fprintln(r.out, FormatOutcomeLine(code, outcome, err))
}

func (r *Reporter) printer(base pterm.PrefixPrinter, emoji string) *pterm.PrefixPrinter {
	return base.WithWriter(r.out).WithPrefix(pterm.Prefix{Text: emoji, Style: base.Prefix.Style})
}

// 📊 Summary prints the tally and where the ledger went
func (r *Reporter) Summary(renamed, missing, failed int, ledgerPath string, ledgerErr error) {
	total := renamed + missing + failed

	r.printer(pterm.Info, "📦").Println(fmt.Sprintf("%d store(s) processed", total))

	if renamed > 0 {
		r.printer(pterm.Success, "✅").Println(fmt.Sprintf("%d renamed", renamed))
	}
	if missing > 0 {
		r.printer(pterm.Warning, "⚠️").Println(fmt.Sprintf("%d missing source file", missing))
	}
	if failed > 0 {
		r.printer(pterm.Error, "❌").Println(fmt.Sprintf("%d failed", failed))
	}

	switch {
	case ledgerErr != nil:
		r.printer(pterm.Error, "📒").Println(fmt.Sprintf("could not write %s: %v", ledgerPath, ledgerErr))
	case missing+failed > 0:
		r.printer(pterm.Info, "📒").Println(fmt.Sprintf("retry list written to %s", ledgerPath))
	}
}
