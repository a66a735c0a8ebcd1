package models

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Target audiences for coach broadcasts.
const (
	AudienceAll          = "todos"
	AudienceParticipants = "participantes"
	AudienceCompleted    = "completados"
)

// Notification is a coach-authored broadcast with a per-user read set.
type Notification struct {
	gorm.Model
	CoachID  uint   `json:"coach_id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Audience string `gorm:"size:20;default:'todos'" json:"audience"`
	ReadBy   string `json:"-"` // comma-joined user ids
}

func (n *Notification) ReadByUser(userID uint) bool {
	for _, s := range strings.Split(n.ReadBy, ",") {
		if s == strconv.FormatUint(uint64(userID), 10) {
			return true
		}
	}
	return false
}

func (n *Notification) MarkRead(userID uint) {
	if n.ReadByUser(userID) {
		return
	}
	id := strconv.FormatUint(uint64(userID), 10)
	if n.ReadBy == "" {
		n.ReadBy = id
		return
	}
	n.ReadBy += "," + id
}
