package testutil

import (
	"fmt"
	"time"
)

// LeakedPassword is stored in the password column of fixtures; it must never appear in output
const LeakedPassword = "hunter2-never-shown"

// AttemptRow mirrors the full login_attempts row, including the password column
type AttemptRow struct {
	Timestamp       string `db:"timestamp"`
	Username        string `db:"username"`
	Password        string `db:"password"`
	A               string `db:"a"`
	ResponseStatus  string `db:"response_status"`
	ResponseMessage string `db:"response_message"`
}

// SampleAttempt returns a row at ts with the given status
func SampleAttempt(ts, status string) AttemptRow {
	message := "Login failed"
	if status == "200" {
		message = "Login successful"
	}

	return AttemptRow{
		Timestamp:       ts,
		Username:        "student01",
		Password:        LeakedPassword,
		A:               "portal",
		ResponseStatus:  status,
		ResponseMessage: message,
	}
}

// ScenarioAttempts returns the three-row hourly aggregation scenario:
// two attempts at 10h (one success) and one successful attempt at 11h on 2024-01-01.
func ScenarioAttempts() []AttemptRow {
	return []AttemptRow{
		SampleAttempt("2024-01-01 10:00:05", "200"),
		SampleAttempt("2024-01-01 10:15:00", "403"),
		SampleAttempt("2024-01-01 11:00:00", "200"),
	}
}

// RecentAttempts returns n rows spaced one minute apart ending at now,
// alternating success and failure, formatted like the writer does.
func RecentAttempts(now time.Time, n int) []AttemptRow {
	rows := make([]AttemptRow, 0, n)
	for i := 0; i < n; i++ {
		status := "200"
		if i%2 == 1 {
			status = "401"
		}
		ts := now.Add(-time.Duration(i) * time.Minute).Format("2006-01-02 15:04:05")
		row := SampleAttempt(ts, status)
		row.Username = fmt.Sprintf("student%02d", i)
		rows = append(rows, row)
	}
	return rows
}
