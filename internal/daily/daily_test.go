package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2026, 3, 1, 2, 30, 0, 0, loc) // still Feb 28 in UTC
	assert.Equal(t, "2026-02-28", DateKey(late))
}

func TestSeedDeterministic(t *testing.T) {
	d := time.Date(2026, 5, 17, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, Seed(d, "salt"), Seed(d, "salt"))

	sameDayLater := time.Date(2026, 5, 17, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Seed(d, "salt"), Seed(sameDayLater, "salt"))

	nextDay := d.Add(24 * time.Hour)
	assert.NotEqual(t, Seed(d, "salt"), Seed(nextDay, "salt"))
	assert.NotEqual(t, Seed(d, "salt"), Seed(d, "other salt"))
}
