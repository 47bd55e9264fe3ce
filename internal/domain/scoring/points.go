// Package scoring computes the points a prediction earns once the final
// result of an event is known.
package scoring

// Points compares a recorded result with a prediction. An exact match earns
// 3 points, predicting the right outcome (winner or draw) earns 1, anything
// else earns 0.
func Points(eventScore1, eventScore2 int64, betScore1, betScore2 int64) int64 {
	if eventScore1 == betScore1 && eventScore2 == betScore2 {
		return 3
	}

	if sign(eventScore1-eventScore2) == sign(betScore1-betScore2) {
		return 1
	}

	return 0
}

func sign(x int64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
