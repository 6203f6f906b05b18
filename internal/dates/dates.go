package dates

import (
	"fmt"
	"time"
)

// Day es una clave de día calendario comparable estructuralmente.
// Evita comparar fechas vía strings ad hoc: dos Day son el mismo día
// si y solo si los tres campos coinciden.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// FromTime proyecta un instante al día calendario en la zona dada.
// Si loc es nil usa UTC.
func FromTime(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

// Start devuelve la medianoche del día en la zona dada.
func (d Day) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Next devuelve el día siguiente (vía time para respetar fin de mes/año).
func (d Day) Next() Day {
	t := d.Start(time.UTC).AddDate(0, 0, 1)
	return FromTime(t, time.UTC)
}

// IsZero reporta si la clave no fue inicializada.
func (d Day) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String en formato YYYY-MM-DD (solo para logs y respuestas).
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Parse lee una clave YYYY-MM-DD (persistencia).
func Parse(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}
	return FromTime(t, time.UTC), nil
}
