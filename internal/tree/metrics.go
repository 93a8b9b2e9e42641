package tree

import "fmt"

// Metrics holds standard binary-classification scores for the held-out
// evaluation partition. Every score defines 0 (not an error or NaN)
// when its denominator is 0.
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Evaluate scores predictions against true labels, treating class 1
// (approved) as the positive class.
func Evaluate(yTrue, yPred []int) Metrics {
	var tp, tn, fp, fn float64
	for i := range yTrue {
		switch {
		case yTrue[i] == 1 && yPred[i] == 1:
			tp++
		case yTrue[i] == 0 && yPred[i] == 0:
			tn++
		case yTrue[i] == 0 && yPred[i] == 1:
			fp++
		default:
			fn++
		}
	}

	m := Metrics{
		Accuracy:  safeDiv(tp+tn, tp+tn+fp+fn),
		Precision: safeDiv(tp, tp+fp),
		Recall:    safeDiv(tp, tp+fn),
	}
	m.F1 = safeDiv(2*m.Precision*m.Recall, m.Precision+m.Recall)
	return m
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// String formats the four scores to two decimal places.
func (m Metrics) String() string {
	return fmt.Sprintf("accuracy %.2f, precision %.2f, recall %.2f, f1 %.2f",
		m.Accuracy, m.Precision, m.Recall, m.F1)
}
