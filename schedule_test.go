package main

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Day view: filtering, sorting, list grammar
// ---------------------------------------------------------------------------

func TestScheduleForDayEmptyStore(t *testing.T) {
	got := scheduleForDay(nil, "2025-10-28")
	if got != "You don't have any tasks saved yet." {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestScheduleForDayNothingScheduled(t *testing.T) {
	tasks := []Task{makeTask("Call Mom", "2025-10-27", "17:00", "17:30")}
	got := scheduleForDay(tasks, "2025-10-28")
	if got != "You have nothing scheduled for 2025-10-28." {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestScheduleForDaySingleTask(t *testing.T) {
	tasks := []Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")}
	got := scheduleForDay(tasks, "2025-10-28")
	want := "For 2025-10-28, you have one task: Call Mom from 5:00 PM to 5:30 PM."
	if got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}

func TestScheduleForDayTwoTasksUseAnd(t *testing.T) {
	tasks := []Task{
		makeTask("Call Mom", "2025-10-28", "17:00", "17:30"),
		makeTask("Gym", "2025-10-28", "18:00", "19:00"),
	}
	got := scheduleForDay(tasks, "2025-10-28")
	want := "For 2025-10-28, you have 2 tasks: Call Mom from 5:00 PM to 5:30 PM and Gym from 6:00 PM to 7:00 PM."
	if got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}

func TestScheduleForDayThreeTasksOxfordComma(t *testing.T) {
	tasks := []Task{
		makeTask("a", "2025-10-28", "09:00", "09:30"),
		makeTask("b", "2025-10-28", "10:00", "10:30"),
		makeTask("c", "2025-10-28", "11:00", "11:30"),
	}
	got := scheduleForDay(tasks, "2025-10-28")
	if !strings.Contains(got, "you have 3 tasks:") {
		t.Fatalf("expected count of 3, got %q", got)
	}
	if !strings.Contains(got, ", and c") {
		t.Fatalf("expected Oxford comma before last item, got %q", got)
	}
}

func TestScheduleForDaySortsByStartTime(t *testing.T) {
	tasks := []Task{
		makeTask("evening", "2025-10-28", "18:00", "19:00"),
		makeTask("morning", "2025-10-28", "08:00", "08:30"),
		{Description: "undated time", Date: "2025-10-28"}, // no start, sorts as midnight
	}
	got := scheduleForDay(tasks, "2025-10-28")
	first := strings.Index(got, "undated time")
	second := strings.Index(got, "morning")
	third := strings.Index(got, "evening")
	if !(first < second && second < third) {
		t.Fatalf("expected midnight-first ascending order, got %q", got)
	}
}

func TestScheduleForDayInstantUsesAt(t *testing.T) {
	tasks := []Task{makeTask("Reminder", "2025-10-28", "09:00", "09:00")}
	got := scheduleForDay(tasks, "2025-10-28")
	if !strings.Contains(got, "Reminder at 9:00 AM") {
		t.Fatalf("zero-length interval should render with 'at', got %q", got)
	}
}

// ---------------------------------------------------------------------------
// Specific-time queries
// ---------------------------------------------------------------------------

func TestTaskAtOccupiedInstant(t *testing.T) {
	tasks := []Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")}
	got := taskAt(tasks, "2025-10-28", "17:05")
	want := "Yes, at that time, you have 'Call Mom' scheduled from 5:00 PM to 5:30 PM."
	if got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}

func TestTaskAtFreeInstant(t *testing.T) {
	tasks := []Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")}
	got := taskAt(tasks, "2025-10-28", "18:00")
	want := "You appear to be free at 6:00 PM on 2025-10-28."
	if got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}

func TestTaskAtEndBoundaryIsFree(t *testing.T) {
	// [17:00,17:30) does not contain 17:30.
	tasks := []Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")}
	got := taskAt(tasks, "2025-10-28", "17:30")
	if !strings.Contains(got, "free") {
		t.Fatalf("end boundary must be free, got %q", got)
	}
}

func TestTaskAtStartBoundaryIsOccupied(t *testing.T) {
	tasks := []Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")}
	got := taskAt(tasks, "2025-10-28", "17:00")
	if !strings.Contains(got, "Call Mom") {
		t.Fatalf("start boundary belongs to the task, got %q", got)
	}
}

func TestTaskAtUnparseableQueryTime(t *testing.T) {
	tasks := []Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")}
	got := taskAt(tasks, "2025-10-28", "fiveish")
	if got != "Sorry, I didn't understand the time fiveish." {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestTaskAtFirstInStoreOrderWins(t *testing.T) {
	tasks := []Task{
		makeTask("first booked", "2025-10-28", "09:00", "11:00"),
		makeTask("second booked", "2025-10-28", "10:00", "12:00"),
	}
	got := taskAt(tasks, "2025-10-28", "10:30")
	if !strings.Contains(got, "first booked") {
		t.Fatalf("expected first stored task to win, got %q", got)
	}
}

// ---------------------------------------------------------------------------
// Summarizer bullet list
// ---------------------------------------------------------------------------

func TestScheduleBullets(t *testing.T) {
	tasks := []Task{
		makeTask("Gym", "2025-10-28", "18:00", "19:00"),
		makeTask("Call Mom", "2025-10-28", "17:00", "17:30"),
		{Description: "Pay rent", Date: "2025-10-28"},
	}
	got := scheduleBullets(tasks, "2025-10-28")
	want := "- Pay rent at all day\n- Call Mom at 17:00\n- Gym at 18:00"
	if got != want {
		t.Fatalf("want %q\ngot  %q", want, got)
	}
}

func TestScheduleBulletsEmptyDay(t *testing.T) {
	if got := scheduleBullets(nil, "2025-10-28"); got != "" {
		t.Fatalf("expected empty bullets, got %q", got)
	}
}
