package model

import (
	"github.com/samber/lo"
)

type ConcertEvent struct {
	Month     string
	Artist    string
	Longitude float64
	Latitude  float64
	Info      string
}

type Concerts struct {
	events []*ConcertEvent
}

func NewConcerts(events []*ConcertEvent) *Concerts {
	return &Concerts{events: events}
}

func (c *Concerts) List() []*ConcertEvent {
	return c.events
}

// InMonth returns the events of the month in file order.
func (c *Concerts) InMonth(month string) []*ConcertEvent {
	return lo.Filter(c.events, func(e *ConcertEvent, _ int) bool { return e.Month == month })
}
