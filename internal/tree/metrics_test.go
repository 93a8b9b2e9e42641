package tree

import (
	"math"
	"testing"
)

func TestEvaluate_Perfect(t *testing.T) {
	yTrue := []int{0, 1, 1, 0}
	m := Evaluate(yTrue, yTrue)

	for name, got := range map[string]float64{
		"accuracy": m.Accuracy, "precision": m.Precision, "recall": m.Recall, "f1": m.F1,
	} {
		if got != 1 {
			t.Errorf("%s = %v, want 1", name, got)
		}
	}
}

func TestEvaluate_ZeroDenominators(t *testing.T) {
	// No true positives and no predicted positives: precision, recall,
	// and F1 must be 0.0, not NaN and not an error.
	yTrue := []int{0, 0, 0}
	yPred := []int{0, 0, 0}
	m := Evaluate(yTrue, yPred)

	if m.Accuracy != 1 {
		t.Errorf("accuracy = %v, want 1", m.Accuracy)
	}
	for name, got := range map[string]float64{
		"precision": m.Precision, "recall": m.Recall, "f1": m.F1,
	} {
		if got != 0 {
			t.Errorf("%s = %v, want 0", name, got)
		}
		if math.IsNaN(got) {
			t.Errorf("%s is NaN", name)
		}
	}
}

func TestEvaluate_Mixed(t *testing.T) {
	yTrue := []int{1, 1, 1, 0, 0, 0}
	yPred := []int{1, 1, 0, 1, 0, 0}
	m := Evaluate(yTrue, yPred)

	// tp=2 fp=1 fn=1 tn=2
	if got := m.Accuracy; got != 4.0/6.0 {
		t.Errorf("accuracy = %v", got)
	}
	if got := m.Precision; got != 2.0/3.0 {
		t.Errorf("precision = %v", got)
	}
	if got := m.Recall; got != 2.0/3.0 {
		t.Errorf("recall = %v", got)
	}
	if got := m.F1; math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("f1 = %v", got)
	}
}

func TestMetricsString_TwoDecimals(t *testing.T) {
	m := Metrics{Accuracy: 0.8333, Precision: 0.5, Recall: 1, F1: 0.6667}
	want := "accuracy 0.83, precision 0.50, recall 1.00, f1 0.67"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
