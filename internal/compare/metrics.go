package compare

// Metrics holds the derived accuracy scores for one comparison run.
type Metrics struct {
	Precision float64
	Recall    float64
	F1        float64
}

// ComputeMetrics derives precision, recall and F1 from classification counts.
// A zero denominator yields an explicit 0.0, never NaN, so empty inputs still
// produce well-defined output.
func ComputeMetrics(tp, fp, fn int) Metrics {
	var m Metrics

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	return m
}
