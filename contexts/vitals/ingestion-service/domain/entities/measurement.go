package entities

import (
	"math"
	"time"
)

// StandardHours are the protocol measurement hours; readings taken at other
// hours carry no slot label.
var StandardHours = []int{10, 13, 16, 19, 22}

type DayType string

const (
	DayTypeWorkday DayType = "workday"
	DayTypeWeekend DayType = "weekend"
)

// Measurement is one processed blood-pressure reading.
type Measurement struct {
	Timestamp time.Time `json:"timestamp"`
	SYS       float64   `json:"sys"`
	DIA       float64   `json:"dia"`
	PUL       float64   `json:"pul"`

	// Derived fields, populated by Derive.
	MAP      float64  `json:"map"`
	PP       float64  `json:"pp"`
	Hour     int      `json:"hour"`
	Day      string   `json:"day"`
	Slot     string   `json:"slot,omitempty"`
	DayType  DayType  `json:"day_type"`
	Category Category `json:"category"`
}

// Derive fills every computed field from the raw reading.
// MAP = (SYS + 2*DIA) / 3 rounded to one decimal, PP = SYS - DIA.
func (m *Measurement) Derive() {
	m.MAP = math.Round((m.SYS+2*m.DIA)/3*10) / 10
	m.PP = m.SYS - m.DIA
	m.Hour = m.Timestamp.Hour()
	m.Day = m.Timestamp.Format("2006-01-02")
	m.Slot = slotLabel(m.Hour)
	m.DayType = dayType(m.Timestamp.Weekday())
	m.Category = Classify(m.SYS, m.DIA)
}

// Plausible rejects readings a cuff cannot produce. DIA >= SYS rows are kept
// on purpose: they show up in real exports and the charts must show them.
func (m Measurement) Plausible() bool {
	return m.SYS > 0 && m.SYS <= 300 && m.DIA > 0 && m.DIA <= 200 && m.PUL > 0 && m.PUL <= 300
}

func slotLabel(hour int) string {
	for _, h := range StandardHours {
		if hour == h {
			return time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:04")
		}
	}
	return ""
}

func dayType(d time.Weekday) DayType {
	if d == time.Saturday || d == time.Sunday {
		return DayTypeWeekend
	}
	return DayTypeWorkday
}
