package dto

type ReadinessOutput struct {
	Show       bool
	Reason     string
	Percentage int
	RangeLow   int
	RangeHigh  int
	Base       int
	Modifiers  int
}
