// Package domain holds DTOs for the week seconds http and service contracts
package domain

import "context"

// EncodeInput is a day and a HH:MM:SS wall time.
// day accepts a name, a three letter abbreviation or 0..6 with Sunday = 0.
type EncodeInput struct {
	Day  string `json:"day"  validate:"required,weekday" example:"Monday"`
	Time string `json:"time" example:"09:00:00"`
}

// EncodeOutput is the encoded total and its rendering
type EncodeOutput struct {
	Day      string `json:"day"       example:"Monday"`
	DayIndex int    `json:"day_index" example:"1"`
	Time     string `json:"time"      example:"09:00:00"`
	Total    int    `json:"total"     example:"118800"`
	Grouped  string `json:"grouped"   example:"118,800"`
	Display  string `json:"display"   example:"118,800 seconds"`
}

// DecodeInput is a total from 0 to 604799
type DecodeInput struct {
	Seconds int `json:"seconds" example:"118800"`
}

// DecodeOutput is the day and wall time a total points at
type DecodeOutput struct {
	Seconds  int    `json:"seconds"   example:"118800"`
	Day      string `json:"day"       example:"Monday"`
	DayIndex int    `json:"day_index" example:"1"`
	Time     string `json:"time"      example:"09:00:00"`
}

// Day is one entry of the selector list
type Day struct {
	Index int    `json:"index" example:"0"`
	Name  string `json:"name"  example:"Sunday"`
}

// DaysOutput is the seven days in Sunday-first order
type DaysOutput struct {
	Days []Day `json:"days"`
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Encode(ctx context.Context, in EncodeInput) (EncodeOutput, error)
	Decode(ctx context.Context, in DecodeInput) (DecodeOutput, error)
	Days(ctx context.Context) (DaysOutput, error)
}
