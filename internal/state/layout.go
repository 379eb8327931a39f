package state

import (
	"database/sql"
	"errors"

	"github.com/llehouerou/sash/internal/db"
)

func getLayout(sdb *sql.DB) (*LayoutState, error) {
	var ratio float64
	var orientation sql.NullString

	row := sdb.QueryRow(`SELECT ratio, orientation FROM layout_state WHERE id = 1`)
	err := row.Scan(&ratio, &orientation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	// Clamp rather than reject a hand-edited or corrupted ratio.
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	s := &LayoutState{
		Ratio:       ratio,
		Orientation: db.NullStringValue(orientation),
	}
	if s.Orientation != "horizontal" {
		s.Orientation = "vertical"
	}
	return s, nil
}

func saveLayout(sdb *sql.DB, s LayoutState) error {
	return db.WithTx(sdb, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO layout_state (id, ratio, orientation)
			VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				ratio = excluded.ratio,
				orientation = excluded.orientation
		`, s.Ratio, s.Orientation)
		return err
	})
}
