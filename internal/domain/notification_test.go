package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-09-07 is a Monday
var monday = time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

func TestCustomNotification_FiresOn_EveryDay(t *testing.T) {
	n := &CustomNotification{Time: "09:00", IsEnabled: true}

	assert.True(t, n.FiresOn(monday))
	assert.True(t, n.FiresOn(monday.AddDate(0, 0, 3)))
}

func TestCustomNotification_FiresOn_Disabled(t *testing.T) {
	n := &CustomNotification{Time: "09:00", IsEnabled: false}

	assert.False(t, n.FiresOn(monday))
}

func TestCustomNotification_FiresOn_RepeatDays(t *testing.T) {
	// 1=Monday in time.Weekday numbering
	n := &CustomNotification{Time: "09:00", IsEnabled: true, RepeatDays: []int{1, 3}}

	assert.True(t, n.FiresOn(monday))
	assert.False(t, n.FiresOn(monday.AddDate(0, 0, 1))) // Tuesday
	assert.True(t, n.FiresOn(monday.AddDate(0, 0, 2)))  // Wednesday
}

func TestCustomNotification_FiresOn_SingleDate(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	n := &CustomNotification{Time: "09:00", IsEnabled: true, Date: &date}

	assert.True(t, n.FiresOn(time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)))
	assert.False(t, n.FiresOn(monday))
}
