package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTime_RespectsLocation(t *testing.T) {
	// 2026-03-10 02:30 UTC todavía es 2026-03-09 en Lima (UTC-5).
	lima := time.FixedZone("America/Lima", -5*60*60)
	instant := time.Date(2026, time.March, 10, 2, 30, 0, 0, time.UTC)

	assert.Equal(t, Day{2026, time.March, 10}, FromTime(instant, time.UTC))
	assert.Equal(t, Day{2026, time.March, 9}, FromTime(instant, lima))
}

func TestFromTime_NilLocationDefaultsUTC(t *testing.T) {
	instant := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, Day{2026, time.January, 1}, FromTime(instant, nil))
}

func TestDay_Comparable(t *testing.T) {
	a := Day{2026, time.May, 4}
	b := Day{2026, time.May, 4}
	c := Day{2026, time.May, 5}

	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestNext_CrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, Day{2026, time.March, 1}, Day{2026, time.February, 28}.Next())
	assert.Equal(t, Day{2027, time.January, 1}, Day{2026, time.December, 31}.Next())
	// 2028 es bisiesto
	assert.Equal(t, Day{2028, time.February, 29}, Day{2028, time.February, 28}.Next())
}

func TestStart_MidnightInLocation(t *testing.T) {
	lima := time.FixedZone("America/Lima", -5*60*60)
	d := Day{2026, time.July, 15}

	start := d.Start(lima)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, lima, start.Location())
	assert.Equal(t, d, FromTime(start, lima))
}

func TestString_Parse_Roundtrip(t *testing.T) {
	d := Day{2026, time.September, 3}
	assert.Equal(t, "2026-09-03", d.String())

	parsed, err := Parse("2026-09-03")
	require.NoError(t, err)
	assert.Equal(t, d, parsed)

	_, err = Parse("not-a-date")
	assert.Error(t, err)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Day{}.IsZero())
	assert.False(t, Day{2026, time.January, 1}.IsZero())
}
