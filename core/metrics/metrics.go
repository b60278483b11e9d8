package metrics

// SettlementRecord is the per-day summary recorded after every settlement
// cycle for observability purposes.
type SettlementRecord struct {
	Day            int
	Delivered      int
	OnTime         int
	Late           int
	Generated      int
	AutoDispatched int
	Cash           float64
	Loan           float64
	Interest       float64
	ExpensesTotal  float64
	Reputation     int
}

// Sink records settlement summaries.
type Sink interface {
	RecordSettlement(rec SettlementRecord) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSettlement(SettlementRecord) error { return nil }

// MultiSink fans records out to several sinks, returning the first error.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink { return &MultiSink{sinks: sinks} }

func (m *MultiSink) RecordSettlement(rec SettlementRecord) error {
	var first error
	for _, s := range m.sinks {
		if err := s.RecordSettlement(rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}
