package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPasses(t *testing.T) {
	report := Run()

	require.Len(t, report.Results, len(Checks()))
	for _, result := range report.Results {
		assert.True(t, result.Passed(), "%s: %v", result.Check, result.Findings)
		assert.Positive(t, result.Evaluated, result.Check)
	}
	assert.True(t, report.Passed())
}

func TestReportFailsOnAnyFinding(t *testing.T) {
	report := Report{Results: []Result{
		{Check: "ok", Evaluated: 1},
		{Check: "bad", Evaluated: 1, Findings: []Finding{{Subject: "x", Detail: "y"}}},
	}}

	assert.False(t, report.Passed())
	assert.True(t, report.Results[0].Passed())
	assert.False(t, report.Results[1].Passed())
}

func TestHoverShiftSkipsTextOnlyButtons(t *testing.T) {
	result := HoverShift()

	// 11 filled variants + 8 tints, two statuses, two modes.
	assert.Equal(t, (11+8)*2*2, result.Evaluated)
}

func TestContainerDistinctSkipsUnfilled(t *testing.T) {
	result := ContainerDistinct()
	assert.Equal(t, 10, result.Evaluated)
}

func TestResultAdd(t *testing.T) {
	var result Result
	result.add("button/primary", "alpha %.1f", 0.4)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, "alpha 0.4", result.Findings[0].Detail)
}
