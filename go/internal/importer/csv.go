package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/popacta/draftboard/go/internal/apperrors"
	"github.com/popacta/draftboard/go/internal/models"
)

// Row is one validated line of a player import file.
type Row struct {
	Name            string
	Position        models.Position
	Team            string
	ProjectedPoints float64
	ByeWeek         int
}

var importHeader = []string{"name", "position", "team", "projected_points", "bye_week"}

// ParsePlayersCSV parses and validates a players CSV in the fixed column
// order name,position,team,projected_points,bye_week. The first invalid row
// aborts the parse with an ImportError carrying its 1-based line number;
// the header counts as line 1. A UTF-8 byte order mark is tolerated.
func ParsePlayersCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &apperrors.ImportError{Row: 1, Reason: "file is empty"}
		}
		return nil, &apperrors.ImportError{Row: 1, Reason: fmt.Sprintf("unreadable header: %v", err)}
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if !headerMatches(header) {
		return nil, &apperrors.ImportError{
			Row:    1,
			Reason: fmt.Sprintf("header must be %s", strings.Join(importHeader, ",")),
		}
	}

	var rows []Row
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &apperrors.ImportError{Row: line, Reason: fmt.Sprintf("unreadable row: %v", err)}
		}

		row, reason := parseRow(record)
		if reason != "" {
			return nil, &apperrors.ImportError{Row: line, Reason: reason}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(importHeader) {
		return false
	}
	for i, h := range header {
		if strings.ToLower(strings.TrimSpace(h)) != importHeader[i] {
			return false
		}
	}
	return true
}

func parseRow(record []string) (Row, string) {
	name := strings.TrimSpace(record[0])
	position := strings.TrimSpace(record[1])
	team := strings.TrimSpace(record[2])

	if name == "" {
		return Row{}, "name is required"
	}
	if !models.ValidPosition(position) {
		return Row{}, fmt.Sprintf("unknown position %q", position)
	}
	if team == "" {
		return Row{}, "team is required"
	}

	points, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return Row{}, "projected_points must be a number"
	}

	bye, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil || bye <= 0 {
		return Row{}, "bye_week must be a positive integer"
	}

	return Row{
		Name:            name,
		Position:        models.Position(position),
		Team:            team,
		ProjectedPoints: points,
		ByeWeek:         bye,
	}, ""
}
