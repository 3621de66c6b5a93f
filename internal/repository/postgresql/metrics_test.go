package postgresql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeek_HonorsLocation(t *testing.T) {
	// Sunday 23:30 UTC is already Monday in UTC+11.
	instant := time.Date(2024, 3, 3, 23, 30, 0, 0, time.UTC)

	east := time.FixedZone("UTC+11", 11*3600)
	assert.Equal(t, "2024-03-04", startOfWeek(instant, east).Format("2006-01-02"))
	assert.Equal(t, "2024-02-26", startOfWeek(instant, time.UTC).Format("2006-01-02"))
}

func TestStartOfWeek_MondayStart(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2024-03-04", "2024-03-04"}, // Monday maps to itself
		{"2024-03-06", "2024-03-04"},
		{"2024-03-10", "2024-03-04"}, // Sunday still belongs to the week before
		{"2024-03-11", "2024-03-11"},
	}
	for _, c := range cases {
		d, err := time.ParseInLocation("2006-01-02", c.day, time.UTC)
		assert.NoError(t, err)
		assert.Equal(t, c.want, startOfWeek(d, time.UTC).Format("2006-01-02"), c.day)
	}
}
