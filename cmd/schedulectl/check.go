package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"care-schedule/internal/model"
	"care-schedule/internal/schedule"
	"care-schedule/pkg/clocktime"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

type conflictSide struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Time string `json:"time"`
	Date string `json:"date,omitempty"`
}

type conflictOut struct {
	Item1        conflictSide `json:"item1"`
	Item2        conflictSide `json:"item2"`
	Type         string       `json:"type"`
	OverlapStart string       `json:"overlap_start"`
	OverlapEnd   string       `json:"overlap_end"`
}

type checkOut struct {
	Conflicts []conflictOut `json:"conflicts"`
	Count     int           `json:"count"`
}

func newConflictSide(s model.Schedulable) conflictSide {
	return conflictSide{
		ID:   s.EntityID(),
		Kind: string(s.EntityKind()),
		Time: s.ClockTime(),
		Date: s.DateLabel(),
	}
}

// runCheck loads a schedule file and prints its conflicts. Finding conflicts
// is not an error.
func runCheck(path, output string, out io.Writer) error {
	if output != outputTable && output != outputJSON {
		return fmt.Errorf("unknown --output %q (want table or json)", output)
	}

	sf, err := loadSchedule(path)
	if err != nil {
		return err
	}
	conflicts := schedule.CheckConflicts(sf.Activities, sf.Appointments)

	if output == outputJSON {
		res := checkOut{Conflicts: make([]conflictOut, len(conflicts)), Count: len(conflicts)}
		for i, c := range conflicts {
			res.Conflicts[i] = conflictOut{
				Item1:        newConflictSide(c.Item1),
				Item2:        newConflictSide(c.Item2),
				Type:         string(c.Type),
				OverlapStart: clocktime.Format(c.OverlapStart),
				OverlapEnd:   clocktime.Format(c.OverlapEnd),
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if len(conflicts) == 0 {
		_, err := fmt.Fprintln(out, "no conflicts")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tITEM 1\tITEM 2\tOVERLAP")
	for _, c := range conflicts {
		fmt.Fprintf(tw, "%s\t%s %s (%s)\t%s %s (%s)\t%s - %s\n",
			c.Type,
			c.Item1.EntityKind(), c.Item1.EntityID(), c.Item1.ClockTime(),
			c.Item2.EntityKind(), c.Item2.EntityID(), c.Item2.ClockTime(),
			clocktime.Format(c.OverlapStart), clocktime.Format(c.OverlapEnd))
	}
	fmt.Fprintf(tw, "\n%d conflict(s)\n", len(conflicts))
	return tw.Flush()
}

// runIntervals prints the window the detector derives for each entity.
func runIntervals(path string, out io.Writer) error {
	sf, err := loadSchedule(path)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tID\tDATE\tSTART\tEND\tWINDOW")
	for _, iv := range schedule.BuildIntervals(sf.Activities, sf.Appointments) {
		date := iv.Date
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s - %s\n",
			iv.Kind, iv.ID, date, iv.Start, iv.End,
			clocktime.Format(iv.Start), clocktime.Format(iv.End))
	}
	return tw.Flush()
}

// runParseTime shows how a single clock-time string is read.
func runParseTime(s string, out io.Writer) error {
	minutes := clocktime.ParseMinutes(s)
	if !clocktime.HasClock(s) {
		_, err := fmt.Fprintf(out, "%d (%s) no h:mm found, read as midnight\n", minutes, clocktime.Format(minutes))
		return err
	}
	_, err := fmt.Fprintf(out, "%d (%s)\n", minutes, clocktime.Format(minutes))
	return err
}
