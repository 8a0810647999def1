package flood_test

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/eak1mov/go-libtilemap/flood"
	"github.com/eak1mov/go-libtilemap/internal"
	"github.com/eak1mov/go-libtilemap/layer"
	"github.com/eak1mov/go-libtilemap/tile"
	gcmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type fillFunc func(flood.Target, tile.Position, tile.ID, *[]tile.Position)

var fillCases = []struct {
	Name string
	Fill fillFunc
}{
	{Name: "Scanline", Fill: flood.Fill},
	{Name: "Simple", Fill: flood.FillSimple},
}

var sortPositions = cmpopts.SortSlices(func(a, b tile.Position) bool {
	return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Column, b.Column)) < 0
})

func TestFillSingleCell(t *testing.T) {
	for _, fc := range fillCases {
		t.Run(fc.Name, func(t *testing.T) {
			m, err := layer.NewSize(1, 1)
			if err != nil {
				t.Fatal(err)
			}
			var affected []tile.Position
			fc.Fill(m, tile.Position{}, 5, &affected)

			if id, _ := m.TileAt(tile.Position{}); id != 5 {
				t.Errorf("TileAt(0, 0) = %v, want = 5", id)
			}
			if diff := gcmp.Diff([]tile.Position{{}}, affected); diff != "" {
				t.Errorf("affected mismatch (-want+got):\n%v", diff)
			}
		})
	}
}

func TestFillNoop(t *testing.T) {
	for _, fc := range fillCases {
		t.Run(fc.Name, func(t *testing.T) {
			m := internal.FilledMatrix(t, tile.Extent{Rows: 4, Columns: 4}, 3)
			before := m.Rows()

			for _, tc := range []struct {
				start       tile.Position
				replacement tile.ID
			}{
				{tile.Position{Row: -1, Column: 0}, 1},
				{tile.Position{Row: 0, Column: 4}, 1},
				{tile.Position{Row: 10, Column: 10}, 1},
				{tile.Position{Row: 2, Column: 2}, 3},
			} {
				var affected []tile.Position
				fc.Fill(m, tc.start, tc.replacement, &affected)
				if len(affected) != 0 {
					t.Errorf("Fill(%v, %v) affected %v cells, want 0", tc.start, tc.replacement, len(affected))
				}
			}
			if diff := gcmp.Diff(before, m.Rows()); diff != "" {
				t.Errorf("matrix changed (-want+got):\n%v", diff)
			}
		})
	}
}

func TestFillTotality(t *testing.T) {
	for _, fc := range fillCases {
		for _, extent := range []tile.Extent{
			{Rows: 1, Columns: 1},
			{Rows: 5, Columns: 5},
			{Rows: 1, Columns: 64},
			{Rows: 64, Columns: 1},
			{Rows: 17, Columns: 31},
		} {
			t.Run(fc.Name+extent.String(), func(t *testing.T) {
				for _, start := range []tile.Position{
					{},
					{Row: extent.Rows - 1, Column: extent.Columns - 1},
					{Row: extent.Rows / 2, Column: extent.Columns / 2},
				} {
					m := internal.FilledMatrix(t, extent, 7)
					var affected []tile.Position
					fc.Fill(m, start, 9, &affected)

					for id := range m.Each() {
						if id != 9 {
							t.Fatalf("Fill from %v left cell with %v", start, id)
						}
					}
					if got, want := len(affected), extent.Cells(); got != want {
						t.Errorf("len(affected) = %v, want = %v", got, want)
					}
					want := slices.Collect(tile.IterRegion(tile.Position{}, extent))
					if diff := gcmp.Diff(want, affected, sortPositions); diff != "" {
						t.Errorf("affected mismatch (-want+got):\n%v", diff)
					}
				}
			})
		}
	}
}

func TestFillQuadrants(t *testing.T) {
	for _, fc := range fillCases {
		t.Run(fc.Name, func(t *testing.T) {
			m := internal.MatrixFromRows(t, [][]tile.ID{
				{2, 2, 1, 3, 3},
				{2, 2, 1, 3, 3},
				{1, 1, 1, 1, 1},
				{4, 4, 1, 5, 5},
				{4, 4, 1, 5, 5},
			})

			fc.Fill(m, tile.Position{}, 8, nil)
			want := [][]tile.ID{
				{8, 8, 1, 3, 3},
				{8, 8, 1, 3, 3},
				{1, 1, 1, 1, 1},
				{4, 4, 1, 5, 5},
				{4, 4, 1, 5, 5},
			}
			if diff := gcmp.Diff(want, m.Rows()); diff != "" {
				t.Fatalf("Fill(0,0) mismatch (-want+got):\n%v", diff)
			}

			var affected []tile.Position
			fc.Fill(m, tile.Position{Row: 2, Column: 2}, 6, &affected)
			want = [][]tile.ID{
				{8, 8, 6, 3, 3},
				{8, 8, 6, 3, 3},
				{6, 6, 6, 6, 6},
				{4, 4, 6, 5, 5},
				{4, 4, 6, 5, 5},
			}
			if diff := gcmp.Diff(want, m.Rows()); diff != "" {
				t.Fatalf("Fill(2,2) mismatch (-want+got):\n%v", diff)
			}
			if got, want := len(affected), 9; got != want {
				t.Errorf("len(affected) = %v, want = %v", got, want)
			}
		})
	}
}

func TestFillContainment(t *testing.T) {
	for _, fc := range fillCases {
		t.Run(fc.Name, func(t *testing.T) {
			m := internal.FilledMatrix(t, tile.Extent{Rows: 8, Columns: 10}, 0)
			// Border of 1 around rows [2, 5], columns [3, 7], interior 0.
			region := tile.Extent{Rows: 6, Columns: 7}
			origin := tile.Position{Row: 1, Column: 2}
			for pos := range tile.IterRegion(origin, region) {
				rel := pos.Sub(origin)
				if rel.Row == 0 || rel.Column == 0 || rel.Row == region.Rows-1 || rel.Column == region.Columns-1 {
					m.SetTile(pos, 1)
				}
			}
			inner := tile.Extent{Rows: region.Rows - 2, Columns: region.Columns - 2}
			innerOrigin := origin.Add(tile.Position{Row: 1, Column: 1})
			before := m.Clone()

			var affected []tile.Position
			fc.Fill(m, tile.Position{Row: 3, Column: 5}, 4, &affected)

			if got, want := len(affected), inner.Cells(); got != want {
				t.Errorf("len(affected) = %v, want = %v", got, want)
			}
			for pos, id := range tile.IterTiles(m) {
				rel := pos.Sub(innerOrigin)
				if inner.Contains(rel) {
					if id != 4 {
						t.Errorf("TileAt(%v) = %v, want = 4", pos, id)
					}
				} else if old, _ := before.TileAt(pos); id != old {
					t.Errorf("TileAt(%v) = %v, changed from %v outside the region", pos, id, old)
				}
			}
		})
	}
}

func TestFillSerpentine(t *testing.T) {
	// A single winding corridor forces every overhang case of the scanline fill.
	rows := [][]tile.ID{
		{0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 0, 0, 0},
		{1, 1, 0, 1, 0, 1, 0},
		{0, 0, 0, 0, 0, 1, 0},
	}
	for _, fc := range fillCases {
		t.Run(fc.Name, func(t *testing.T) {
			m := internal.MatrixFromRows(t, rows)
			var affected []tile.Position
			fc.Fill(m, tile.Position{Row: 6, Column: 6}, 2, &affected)

			zeros := 0
			for _, row := range rows {
				for _, id := range row {
					if id == 0 {
						zeros++
					}
				}
			}
			if got := len(affected); got != zeros {
				t.Errorf("len(affected) = %v, want = %v", got, zeros)
			}
			for id := range m.Each() {
				if id == 0 {
					t.Fatalf("unfilled cell left:\n%v", m.Rows())
				}
			}
		})
	}
}

func TestFillMatchesSimple(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		extent := tile.Extent{Rows: 1 + rng.IntN(20), Columns: 1 + rng.IntN(20)}
		base, err := layer.New(extent)
		if err != nil {
			t.Fatal(err)
		}
		for pos := range tile.IterRegion(tile.Position{}, extent) {
			base.SetTile(pos, tile.ID(rng.IntN(3)))
		}
		start := tile.Position{Row: rng.IntN(extent.Rows), Column: rng.IntN(extent.Columns)}

		scan, simple := base.Clone(), base.Clone()
		var scanAffected, simpleAffected []tile.Position
		flood.Fill(scan, start, 7, &scanAffected)
		flood.FillSimple(simple, start, 7, &simpleAffected)

		if diff := gcmp.Diff(simple.Rows(), scan.Rows()); diff != "" {
			t.Fatalf("case %d: Fill differs from FillSimple (-simple+scan):\n%v", i, diff)
		}
		if diff := gcmp.Diff(simpleAffected, scanAffected, sortPositions); diff != "" {
			t.Fatalf("case %d: affected differs (-simple+scan):\n%v", i, diff)
		}
	}
}

func TestFillSparse(t *testing.T) {
	s, err := layer.NewSparse(tile.Extent{Rows: 6, Columns: 6})
	if err != nil {
		t.Fatal(err)
	}
	for row := range 6 {
		s.SetTile(tile.Position{Row: row, Column: 3}, 1)
	}
	var affected []tile.Position
	flood.Fill(s, tile.Position{Row: 0, Column: 0}, 2, &affected)

	if got, want := len(affected), 18; got != want {
		t.Errorf("len(affected) = %v, want = %v", got, want)
	}
	if got, want := s.Len(), 24; got != want {
		t.Errorf("Len() = %v, want = %v", got, want)
	}
}
