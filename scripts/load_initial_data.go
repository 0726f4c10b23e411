package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"hackathon-dashboard-backend/internal/config"
	"hackathon-dashboard-backend/internal/database"
	"hackathon-dashboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Seeds the database from CSV exports of the event spreadsheets. Expects
// a data directory holding teams.csv, members.csv, events.csv,
// attendance.csv and optionally overrides.csv, each with a header row.
func main() {
	dataDir := flag.String("data", "./data", "directory holding the CSV seed files")
	actor := flag.String("actor", "seed-script", "actor recorded on created rows")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	importer := service.NewImportService(db, validator.New())

	if rows, err := readTeamRows(filepath.Join(*dataDir, "teams.csv")); err != nil {
		log.Fatalf("teams.csv: %v", err)
	} else {
		reportBatch("teams", importer.ImportTeams(rows, *actor))
	}

	if rows, err := readMemberRows(filepath.Join(*dataDir, "members.csv")); err != nil {
		log.Fatalf("members.csv: %v", err)
	} else {
		reportBatch("members", importer.ImportMembers(rows, *actor))
	}

	if rows, err := readEventRows(filepath.Join(*dataDir, "events.csv")); err != nil {
		log.Fatalf("events.csv: %v", err)
	} else {
		reportBatch("events", importer.ImportEvents(rows, *actor))
	}

	if rows, err := readAttendanceRows(filepath.Join(*dataDir, "attendance.csv")); err != nil {
		log.Fatalf("attendance.csv: %v", err)
	} else {
		reportBatch("attendance", importer.ImportAggregateAttendance(rows, *actor))
	}

	overridesPath := filepath.Join(*dataDir, "overrides.csv")
	if _, err := os.Stat(overridesPath); err == nil {
		if rows, err := readOverrideRows(overridesPath); err != nil {
			log.Fatalf("overrides.csv: %v", err)
		} else {
			reportBatch("overrides", importer.ImportOverrides(rows, *actor))
		}
	}

	log.Println("Seeding complete")
}

func reportBatch(kind string, report *service.ImportReport) {
	log.Printf("%s: %d applied, %d skipped of %d", kind, report.Applied, report.Skipped, report.Total)
	for _, rowErr := range report.RowErrors {
		log.Printf("  row %d: %s", rowErr.Row, rowErr.Detail)
	}
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("file is empty")
	}
	return records[1:], nil // drop the header row
}

func readTeamRows(path string) ([]service.TeamRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	rows := make([]service.TeamRow, 0, len(records))
	for i, rec := range records {
		if len(rec) < 5 {
			return nil, fmt.Errorf("row %d: expected 5 columns, got %d", i+1, len(rec))
		}
		rosterSize, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: roster_size: %w", i+1, err)
		}
		rows = append(rows, service.TeamRow{
			TeamName:        rec[0],
			Department:      rec[1],
			CoachName:       rec[2],
			CoachDepartment: rec[3],
			RosterSize:      rosterSize,
		})
	}
	return rows, nil
}

func readMemberRows(path string) ([]service.MemberRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	rows := make([]service.MemberRow, 0, len(records))
	for i, rec := range records {
		if len(rec) < 4 {
			return nil, fmt.Errorf("row %d: expected 4 columns, got %d", i+1, len(rec))
		}
		isLeader, err := strconv.ParseBool(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: is_leader: %w", i+1, err)
		}
		rows = append(rows, service.MemberRow{
			TeamName:         rec[0],
			MemberName:       rec[1],
			MemberDepartment: rec[2],
			IsLeader:         isLeader,
		})
	}
	return rows, nil
}

func readEventRows(path string) ([]service.EventRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	rows := make([]service.EventRow, 0, len(records))
	for i, rec := range records {
		if len(rec) < 4 {
			return nil, fmt.Errorf("row %d: expected 4 columns, got %d", i+1, len(rec))
		}
		eventDate, err := time.Parse("2006-01-02", rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: event_date: %w", i+1, err)
		}
		memberPoints, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: member_points: %w", i+1, err)
		}
		coachPoints, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: coach_points: %w", i+1, err)
		}
		rows = append(rows, service.EventRow{
			EventName:    rec[0],
			EventDate:    eventDate,
			MemberPoints: memberPoints,
			CoachPoints:  coachPoints,
		})
	}
	return rows, nil
}

func readAttendanceRows(path string) ([]service.AggregateAttendanceRow, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	rows := make([]service.AggregateAttendanceRow, 0, len(records))
	for i, rec := range records {
		if len(rec) < 4 {
			return nil, fmt.Errorf("row %d: expected 4 columns, got %d", i+1, len(rec))
		}
		membersAttended, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: members_attended_count: %w", i+1, err)
		}
		coachesAttended, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: coaches_attended_count: %w", i+1, err)
		}
		rows = append(rows, service.AggregateAttendanceRow{
			TeamName:        rec[0],
			EventName:       rec[1],
			MembersAttended: membersAttended,
			CoachesAttended: coachesAttended,
		})
	}
	return rows, nil
}

// overrides.csv carries team_name, event_name, then one column per attendee
func readOverrideRows(path string) ([]service.OverrideRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // variable attendee count per row

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("file is empty")
	}

	rows := make([]service.OverrideRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 3 {
			return nil, fmt.Errorf("row %d: expected at least 3 columns, got %d", i+1, len(rec))
		}
		names := make([]string, 0, len(rec)-2)
		for _, name := range rec[2:] {
			if name != "" {
				names = append(names, name)
			}
		}
		rows = append(rows, service.OverrideRow{
			TeamName:      rec[0],
			EventName:     rec[1],
			AttendeeNames: names,
		})
	}
	return rows, nil
}
