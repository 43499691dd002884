package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayActivitiesUnmarshalBothShapes(t *testing.T) {
	var fromArray DayActivities
	require.NoError(t, json.Unmarshal([]byte(`["Amber Fort","City Palace"]`), &fromArray))
	assert.Equal(t, DayActivities{"Amber Fort", "City Palace"}, fromArray)

	var fromString DayActivities
	require.NoError(t, json.Unmarshal([]byte(`"Amber Fort"`), &fromString))
	assert.Equal(t, DayActivities{"Amber Fort"}, fromString)
}

func TestDayActivitiesUnmarshalRejectsObjects(t *testing.T) {
	var d DayActivities
	assert.Error(t, json.Unmarshal([]byte(`{"day":1}`), &d))
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Jaipur":        "jaipur",
		"  New Delhi  ": "new-delhi",
		"Mount   Abu":   "mount-abu",
		"JAISALMER":     "jaisalmer",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in))
	}
}

func TestRangeArithmetic(t *testing.T) {
	assert.Equal(t, Range{Min: 5, Max: 9}, Range{Min: 2, Max: 4}.Add(Range{Min: 3, Max: 5}))
	assert.Equal(t, Range{Min: 700, Max: 1200}, Range{Min: 350, Max: 600}.Scale(2))
}
