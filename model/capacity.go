package model

// CapacityLevel is a coarse workload band for a team member.
type CapacityLevel string

const (
	CapacityGreen  CapacityLevel = "green"
	CapacityOrange CapacityLevel = "orange"
	CapacityRed    CapacityLevel = "red"
)

// Band thresholds and the saturation point are independent scales: the
// orange/red cutoffs are not derived from the percentage formula, and
// neither output may be computed from the other.
const (
	capacityOrangeFloor = 4
	capacityRedFloor    = 7
	capacitySaturation  = 10 // tasks at which a member counts as fully loaded
)

// CapacityLevelFor classifies an open-assignment count into a band.
func CapacityLevelFor(taskCount int64) CapacityLevel {
	switch {
	case taskCount >= capacityRedFloor:
		return CapacityRed
	case taskCount >= capacityOrangeFloor:
		return CapacityOrange
	default:
		return CapacityGreen
	}
}

// CapacityPercentage maps an open-assignment count onto a linear 0-100
// scale, capped at 100.
func CapacityPercentage(taskCount int64) int {
	pct := int(taskCount * 100 / capacitySaturation)
	if pct > 100 {
		pct = 100
	}
	return pct
}
