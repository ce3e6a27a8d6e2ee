package main

// @generated from machine_test.go

//go:generate go run scripts/gen_calc_expects.go -- machine_test.go calc_expects_test.go

func expectCalcStack(values ...float64) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectStack(values...)
	}
}

func expectCalcDepth(n int) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectDepth(n)
	}
}

func expectCalcOutput(lines ...string) func(calcTestCase) calcTestCase {
	return func(ct calcTestCase) calcTestCase {
		return ct.expectOutput(lines...)
	}
}
