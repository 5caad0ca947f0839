// Package content assembles the rows shown in the overlay from a data point
// of a tabular view.
package content

import (
	"fmt"
	"strings"

	"github.com/phinze/hoverdeck/internal/overlay"
)

// DefaultHighlightedValueLabel labels the highlighted-value row when no
// localized label was set.
const DefaultHighlightedValueLabel = "Highlighted"

// Labels holds the localized strings used when building rows.
type Labels struct {
	HighlightedValue string
}

// DefaultLabels returns the built-in labels.
func DefaultLabels() Labels {
	return Labels{HighlightedValue: DefaultHighlightedValueLabel}
}

// Column describes one column of the data view.
type Column struct {
	Name string
	// Format is a printf-style verb string, e.g. "%.2f". Empty means %v.
	Format string
}

// Value is a raw value tied to the column it came from.
type Value struct {
	Column Column
	Raw    any
}

// Data is one interacted data point.
type Data struct {
	Category *Value
	// Series is the dynamic series the point belongs to, if any.
	Series *Value
	Values []Value
	// Highlighted is set when part of the value is highlighted.
	Highlighted *Value
}

// Formatter turns raw values into display strings.
type Formatter interface {
	Format(raw any, format string) string
	FormatString(col Column) string
}

// Printf is a Formatter backed by fmt verbs.
type Printf struct{}

// Format applies format to raw. A nil raw yields an empty string.
func (Printf) Format(raw any, format string) string {
	if raw == nil {
		return ""
	}
	if format == "" {
		format = "%v"
	}
	if !strings.Contains(format, "%") {
		return fmt.Sprintf("%v", raw)
	}
	return fmt.Sprintf(format, raw)
}

// FormatString returns the column's format.
func (Printf) FormatString(col Column) string { return col.Format }

// Build returns rows for d in display order: category, series name, each
// value, then the highlighted value.
func Build(d Data, labels Labels, f Formatter) []overlay.DisplayItem {
	if f == nil {
		f = Printf{}
	}
	if labels.HighlightedValue == "" {
		labels.HighlightedValue = DefaultHighlightedValueLabel
	}

	format := func(v Value) string {
		return f.Format(v.Raw, f.FormatString(v.Column))
	}

	var items []overlay.DisplayItem
	if d.Category != nil {
		items = append(items, overlay.DisplayItem{Label: d.Category.Column.Name, Value: format(*d.Category)})
	}
	if d.Series != nil {
		items = append(items, overlay.DisplayItem{Label: d.Series.Column.Name, Value: format(*d.Series)})
	}
	for _, v := range d.Values {
		items = append(items, overlay.DisplayItem{Label: v.Column.Name, Value: format(v)})
	}
	if d.Highlighted != nil {
		items = append(items, overlay.DisplayItem{Label: labels.HighlightedValue, Value: format(*d.Highlighted)})
	}

	return items
}
