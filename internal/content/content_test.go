package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phinze/hoverdeck/internal/overlay"
)

func TestBuild_Order(t *testing.T) {
	d := Data{
		Category: &Value{Column: Column{Name: "Category"}, Raw: "Widgets"},
		Series:   &Value{Column: Column{Name: "Region"}, Raw: "North"},
		Values: []Value{
			{Column: Column{Name: "Sales", Format: "%.2f"}, Raw: 12.5},
			{Column: Column{Name: "Units", Format: "%d"}, Raw: 3},
		},
		Highlighted: &Value{Column: Column{Name: "Sales", Format: "%.1f"}, Raw: 4.31},
	}

	got := Build(d, Labels{HighlightedValue: "Markiert"}, nil)

	assert.Equal(t, []overlay.DisplayItem{
		{Label: "Category", Value: "Widgets"},
		{Label: "Region", Value: "North"},
		{Label: "Sales", Value: "12.50"},
		{Label: "Units", Value: "3"},
		{Label: "Markiert", Value: "4.3"},
	}, got)
}

func TestBuild_DefaultsHighlightLabel(t *testing.T) {
	got := Build(Data{Highlighted: &Value{Raw: 1}}, Labels{}, Printf{})
	assert.Equal(t, []overlay.DisplayItem{{Label: DefaultHighlightedValueLabel, Value: "1"}}, got)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(Data{}, DefaultLabels(), Printf{}))
}

func TestPrintf_Format(t *testing.T) {
	var f Printf
	assert.Equal(t, "", f.Format(nil, "%d"))
	assert.Equal(t, "7", f.Format(7, ""))
	assert.Equal(t, "7", f.Format(7, "not a verb"))
	assert.Equal(t, "007", f.Format(7, "%03d"))
}
