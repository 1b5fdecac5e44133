package compare

// Result classifies query records against truth records. The three sets are
// pairwise disjoint; TruePositives ∪ FalsePositives covers the query keys and
// TruePositives ∪ FalseNegatives covers the truth keys.
type Result struct {
	TruePositives  VariantSet // keys present in both truth and query
	FalsePositives VariantSet // keys in query, absent from truth
	FalseNegatives VariantSet // keys in truth, absent from query
}

// Match classifies the query set against the truth set using strict key-set
// arithmetic: intersection for TP, query−truth for FP, truth−query for FN.
// Set membership is the sole criterion; no row-level joining, which would
// miscount when either side repeats a key with different auxiliary columns.
func Match(truth, query VariantSet) *Result {
	r := &Result{
		TruePositives:  make(VariantSet),
		FalsePositives: make(VariantSet),
		FalseNegatives: make(VariantSet),
	}

	for k, v := range query {
		if truth.Contains(k) {
			r.TruePositives[k] = v
		} else {
			r.FalsePositives[k] = v
		}
	}

	for k, v := range truth {
		if !query.Contains(k) {
			r.FalseNegatives[k] = v
		}
	}

	return r
}

// Metrics computes precision, recall and F1 from the result's set sizes.
func (r *Result) Metrics() Metrics {
	return ComputeMetrics(r.TruePositives.Len(), r.FalsePositives.Len(), r.FalseNegatives.Len())
}
