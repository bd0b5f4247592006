package restaurant

import "time"

// KitchenStatus is the signal the kitchen broadcasts to the voice
// assistant: how loaded it is, or that ordering is stopped.
type KitchenStatus string

const (
	KitchenCalm   KitchenStatus = "CALM"
	KitchenNormal KitchenStatus = "NORMAL"
	KitchenRush   KitchenStatus = "RUSH"
	KitchenStop   KitchenStatus = "STOP"
)

func (s KitchenStatus) Valid() bool {
	switch s {
	case KitchenCalm, KitchenNormal, KitchenRush, KitchenStop:
		return true
	}
	return false
}

type Restaurant struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	OwnerID       string         `json:"owner_id"`
	PhoneNumber   string         `json:"phone_number"`
	TransferPhone string         `json:"transfer_phone"`
	AssistantID   string         `json:"assistant_id"`
	SystemPrompt  string         `json:"system_prompt"`
	BusinessHours *BusinessHours `json:"business_hours,omitempty"`
	KitchenStatus KitchenStatus  `json:"kitchen_status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// VoiceConfig carries the telephony/assistant fields. They are
// stored and returned verbatim, never interpreted here.
type VoiceConfig struct {
	AssistantID   string `json:"assistant_id"`
	SystemPrompt  string `json:"system_prompt"`
	PhoneNumber   string `json:"phone_number"`
	TransferPhone string `json:"transfer_phone"`
}

// BusinessHours follows the persisted JSON shape:
// a day maps either to a single open/close pair or to
// separate lunch and dinner services.
type BusinessHours struct {
	Timezone string                 `json:"timezone"`
	Schedule map[string]DaySchedule `json:"schedule"`
}

type DaySchedule struct {
	Open   string     `json:"open,omitempty"`
	Close  string     `json:"close,omitempty"`
	Lunch  *TimeRange `json:"lunch,omitempty"`
	Dinner *TimeRange `json:"dinner,omitempty"`
}

type TimeRange struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}
