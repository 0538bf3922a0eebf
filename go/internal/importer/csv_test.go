package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/popacta/draftboard/go/internal/apperrors"
	"github.com/popacta/draftboard/go/internal/models"
)

const validCSV = `name,position,team,projected_points,bye_week
Josh Allen,QB,BUF,285.5,12
Christian McCaffrey,RB,SF,245.8,9
`

func TestParsePlayersCSV(t *testing.T) {
	rows, err := ParsePlayersCSV(strings.NewReader(validCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := Row{Name: "Josh Allen", Position: models.PositionQB, Team: "BUF", ProjectedPoints: 285.5, ByeWeek: 12}
	if rows[0] != want {
		t.Errorf("expected %+v, got %+v", want, rows[0])
	}
	if rows[1].Name != "Christian McCaffrey" || rows[1].Position != models.PositionRB {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestParsePlayersCSVByteOrderMark(t *testing.T) {
	rows, err := ParsePlayersCSV(strings.NewReader("\ufeff" + validCSV))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestParsePlayersCSVErrors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantRow int
	}{
		{
			name:    "empty file",
			input:   "",
			wantRow: 1,
		},
		{
			name:    "wrong header",
			input:   "player,pos,team,points,bye\nJosh Allen,QB,BUF,285.5,12\n",
			wantRow: 1,
		},
		{
			name:    "missing name",
			input:   "name,position,team,projected_points,bye_week\n,QB,BUF,285.5,12\n",
			wantRow: 2,
		},
		{
			name:    "unknown position",
			input:   "name,position,team,projected_points,bye_week\nJosh Allen,XX,BUF,285.5,12\n",
			wantRow: 2,
		},
		{
			name:    "missing team",
			input:   "name,position,team,projected_points,bye_week\nJosh Allen,QB,,285.5,12\n",
			wantRow: 2,
		},
		{
			name:    "bad projected points",
			input:   "name,position,team,projected_points,bye_week\nJosh Allen,QB,BUF,lots,12\n",
			wantRow: 2,
		},
		{
			name: "bad bye week on third row",
			input: "name,position,team,projected_points,bye_week\n" +
				"Josh Allen,QB,BUF,285.5,12\n" +
				"Cooper Kupp,WR,LAR,265.2,zero\n",
			wantRow: 3,
		},
		{
			name: "negative bye week",
			input: "name,position,team,projected_points,bye_week\n" +
				"Josh Allen,QB,BUF,285.5,-2\n",
			wantRow: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePlayersCSV(strings.NewReader(tc.input))
			var iErr *apperrors.ImportError
			if !errors.As(err, &iErr) {
				t.Fatalf("expected ImportError, got %v", err)
			}
			if iErr.Row != tc.wantRow {
				t.Errorf("expected row %d, got %d (%s)", tc.wantRow, iErr.Row, iErr.Reason)
			}
		})
	}
}

func TestParsePlayersCSVHeaderOnly(t *testing.T) {
	rows, err := ParsePlayersCSV(strings.NewReader("name,position,team,projected_points,bye_week\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
