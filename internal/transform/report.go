package transform

import (
	"github.com/cartkit/bundle-expander/internal/bundle"
	"github.com/cartkit/bundle-expander/internal/cart"
)

// LineReport describes the decision taken for one cart line.
type LineReport struct {
	LineID     string
	TypeName   string
	Reason     bundle.Reason
	Components int
	Items      int

	// Error is the parse error text for malformed bundle data.
	Error string
}

// Report is the per-line account of a transform together with its result.
type Report struct {
	Lines  []LineReport
	Result cart.Result
}

// Expanded returns the number of lines that were expanded.
func (r Report) Expanded() int {
	n := 0
	for _, l := range r.Lines {
		if l.Reason == bundle.ReasonExpanded {
			n++
		}
	}
	return n
}

// Malformed returns the reports of lines whose bundle data failed to parse.
func (r Report) Malformed() []LineReport {
	var out []LineReport
	for _, l := range r.Lines {
		if l.Reason == bundle.ReasonMalformed {
			out = append(out, l)
		}
	}
	return out
}

// Explain classifies every line and returns the decisions alongside the
// result Run would produce for the same input.
func (t *Transformer) Explain(input cart.Input) Report {
	report := Report{Lines: make([]LineReport, 0, len(input.Cart.Lines))}

	var ops []cart.Operation
	for _, line := range input.Cart.Lines {
		d := t.expander.Classify(line, input.PresentmentCurrencyRate)

		lr := LineReport{
			LineID:     line.ID,
			TypeName:   line.Merchandise.TypeName,
			Reason:     d.Reason,
			Components: d.Components,
		}
		if d.Err != nil {
			lr.Error = d.Err.Error()
		}
		if d.Expanded() {
			lr.Items = len(d.Operation.ExpandedCartItems)
			ops = append(ops, cart.Operation{LineExpand: d.Operation})
		}
		report.Lines = append(report.Lines, lr)
	}

	if len(ops) == 0 {
		report.Result = cart.NoChanges()
	} else {
		report.Result = cart.Result{Operations: ops}
	}
	return report
}
