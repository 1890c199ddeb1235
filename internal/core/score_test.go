package core

import (
	"errors"
	"testing"
)

func TestScoreRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     ScoreRecord
		wantErr bool
	}{
		{"valid", ScoreRecord{Name: "Recruit", Score: 10, PlayerID: "p1"}, false},
		{"zero score", ScoreRecord{Name: "Recruit", Score: 0, PlayerID: "p1"}, true},
		{"negative score", ScoreRecord{Name: "Recruit", Score: -5, PlayerID: "p1"}, true},
		{"blank name", ScoreRecord{Name: "   ", Score: 10, PlayerID: "p1"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rec.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("error should wrap ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestTopByPlayer(t *testing.T) {
	records := []ScoreRecord{
		{Name: "A", Score: 100, PlayerID: "a"},
		{Name: "B", Score: 300, PlayerID: "b"},
		{Name: "A", Score: 500, PlayerID: "a"},
		{Name: "C", Score: 200, PlayerID: "c"},
		{Name: "B", Score: 50, PlayerID: "b"},
		{Name: "D", Score: 10, PlayerID: "d"},
	}

	top := TopByPlayer(records, 3)
	if len(top) != 3 {
		t.Fatalf("len = %d, expected 3", len(top))
	}

	want := []struct {
		id    string
		score int
	}{{"a", 500}, {"b", 300}, {"c", 200}}
	for i, w := range want {
		if top[i].PlayerID != w.id || top[i].Score != w.score {
			t.Errorf("top[%d] = %s/%d, expected %s/%d", i, top[i].PlayerID, top[i].Score, w.id, w.score)
		}
	}
}

func TestTopByPlayerNoLimit(t *testing.T) {
	records := []ScoreRecord{
		{Score: 1, PlayerID: "x"},
		{Score: 2, PlayerID: "y"},
	}
	if got := TopByPlayer(records, 0); len(got) != 2 || got[0].Score != 2 {
		t.Errorf("TopByPlayer(_, 0) = %+v", got)
	}
}
