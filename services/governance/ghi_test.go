// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeGHI_WeightsSumToOne(t *testing.T) {
	index := ComputeGHI(100, 100, 100, 100)

	sum := 0.0
	for _, w := range index.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Equal(t, 100.0, index.GHI)
}

func TestComputeGHI_ConvexCombination(t *testing.T) {
	tests := []struct {
		name                              string
		audit, lifecycle, sla, compliance float64
		wantGHI                           float64
		wantGrade                         Grade
	}{
		{"all perfect", 100, 100, 100, 100, 100, GradeA},
		{"all zero", 0, 0, 0, 0, 0, GradeF},
		{"audit dominates", 100, 0, 0, 0, 40, GradeD},
		{"compliance alone", 0, 0, 0, 100, 10, GradeF},
		{"scenario mix", 74, 100, 100, 100, 89.6, GradeB},
		{"unweighted midpoint", 50, 50, 50, 50, 50, GradeD},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			index := ComputeGHI(tc.audit, tc.lifecycle, tc.sla, tc.compliance)
			assert.Equal(t, tc.wantGHI, index.GHI)
			assert.Equal(t, tc.wantGrade, index.Grade)
		})
	}
}

func TestComputeGHI_DimensionBreakdown(t *testing.T) {
	index := ComputeGHI(74, 100, 60, 50)

	assert.Equal(t, 74.0, index.Dimensions[DimensionAudit])
	assert.Equal(t, 100.0, index.Dimensions[DimensionLifecycle])
	assert.Equal(t, 60.0, index.Dimensions[DimensionSLA])
	assert.Equal(t, 50.0, index.Dimensions[DimensionCompliance])

	assert.Equal(t, 0.4, index.Weights[DimensionAudit])
	assert.Equal(t, 0.3, index.Weights[DimensionLifecycle])
	assert.Equal(t, 0.2, index.Weights[DimensionSLA])
	assert.Equal(t, 0.1, index.Weights[DimensionCompliance])
}

func TestGradeFor_StepFunction(t *testing.T) {
	tests := []struct {
		ghi  float64
		want Grade
	}{
		{100, GradeA},
		{90.00, GradeA},
		{89.99, GradeB},
		{80, GradeB},
		{79.99, GradeC},
		{60, GradeC},
		{59.99, GradeD},
		{40, GradeD},
		{39.99, GradeF},
		{0, GradeF},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, GradeFor(tc.ghi), "ghi=%v", tc.ghi)
	}
}

func TestComputeGHI_Rounding(t *testing.T) {
	// 33.333... contributions must land on exactly 2 decimals.
	index := ComputeGHI(83.3333, 83.3333, 83.3333, 83.3333)
	assert.Equal(t, 83.33, index.GHI)
}
