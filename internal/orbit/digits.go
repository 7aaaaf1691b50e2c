package orbit

// DigitalSum returns the sum of the decimal digits of x.
func DigitalSum(x int) int {
	if x < 0 {
		x = -x
	}
	sum := 0
	for x > 0 {
		sum += x % 10
		x /= 10
	}
	return sum
}

// DigitalRoot repeats DigitalSum until a single digit remains.
func DigitalRoot(x int) int {
	if x < 0 {
		x = -x
	}
	for x >= 10 {
		x = DigitalSum(x)
	}
	return x
}
