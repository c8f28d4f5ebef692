package operation

import (
	"github.com/walteh/reqcntl/pkg/manifest"
	"github.com/walteh/reqcntl/pkg/status"
)

// 📄 StoreOutcome is the final state of one store code
type StoreOutcome struct {
	Code    manifest.StoreCode
	Outcome status.Outcome
	Err     error // reason, set only when Outcome is Failed
}

// 📊 Result holds the outcomes of a batch in processing order
type Result struct {
	Outcomes  []StoreOutcome
	LedgerErr error // set when the ledger could not be written
}

func (r *Result) filter(o status.Outcome) []manifest.StoreCode {
	codes := []manifest.StoreCode{}
	for _, so := range r.Outcomes {
		if so.Outcome == o {
			codes = append(codes, so.Code)
		}
	}
	return codes
}

// Renamed returns the codes whose pending file was renamed
func (r *Result) Renamed() []manifest.StoreCode {
	return r.filter(status.Renamed)
}

// Missing returns the codes without a pending file
func (r *Result) Missing() []manifest.StoreCode {
	return r.filter(status.SourceMissing)
}

// Failed returns the codes whose check or rename raised an error
func (r *Result) Failed() []manifest.StoreCode {
	return r.filter(status.Failed)
}

// Ledger returns the missing and failed codes in processing order
func (r *Result) Ledger() []manifest.StoreCode {
	codes := []manifest.StoreCode{}
	for _, so := range r.Outcomes {
		if so.Outcome.InLedger() {
			codes = append(codes, so.Code)
		}
	}
	return codes
}
