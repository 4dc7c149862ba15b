package main

import (
	"strings"

	"github.com/andareed/siftly-timeline/timeline"
)

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RolePrimary            // target
	RoleSecondary
)

// ColumnMeta is one column of the event list.
type ColumnMeta struct {
	Name     string
	Role     ColumnRole
	MinWidth int
	Weight   float64
	Width    int
	value    func(r *timeline.Record) string
}

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RolePrimary:
		return 30
	case RoleSecondary:
		return 19
	default:
		return 12
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RolePrimary:
		return 5.0
	case RoleSecondary:
		return 1.0
	default:
		return 2.0
	}
}

func newColumn(name string, role ColumnRole, value func(r *timeline.Record) string) ColumnMeta {
	return ColumnMeta{
		Name:     name,
		Role:     role,
		MinWidth: defaultMinWidthForRole(role),
		Weight:   defaultWeightForRole(role),
		value:    value,
	}
}

// listColumns mirrors Record.Summary: time, action, then whichever of file,
// initiating file or computer is present.
func listColumns() []ColumnMeta {
	return []ColumnMeta{
		newColumn("Event Time", RoleSecondary, func(r *timeline.Record) string {
			return strings.Trim(r.Get(timeline.FieldEventTime), `"`)
		}),
		newColumn("Action Type", RoleNormal, func(r *timeline.Record) string {
			return r.ActionType()
		}),
		newColumn("Target", RolePrimary, listTarget),
		newColumn("Account", RoleNormal, func(r *timeline.Record) string {
			if a := r.Get(timeline.FieldAccountName); a != "" {
				return a
			}
			return r.Get(timeline.FieldInitiatingProcessAccountName)
		}),
	}
}

func listTarget(r *timeline.Record) string {
	for _, f := range []timeline.Field{
		timeline.FieldFileName,
		timeline.FieldInitiatingProcessFileName,
		timeline.FieldRemoteURL,
		timeline.FieldRemoteIP,
		timeline.FieldRegistryKey,
		timeline.FieldComputerName,
	} {
		if v := strings.Trim(r.Get(f), `"`); v != "" {
			return v
		}
	}
	return ""
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		// Too tight: the primary column absorbs the shortfall first.
		remaining := totalWidth
		for i := range cols {
			if cols[i].Role == RolePrimary {
				continue
			}
			cols[i].Width = min(cols[i].MinWidth, remaining)
			remaining -= cols[i].Width
		}
		for i := range cols {
			if cols[i].Role == RolePrimary {
				cols[i].Width = max(0, remaining)
			}
		}
		return cols
	}

	remaining := totalWidth - minSum
	used := 0
	for i := range cols {
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
		used += cols[i].Width
	}
	// Rounding leftovers go to the primary column.
	for i := range cols {
		if cols[i].Role == RolePrimary {
			cols[i].Width += totalWidth - used
			break
		}
	}
	return cols
}
