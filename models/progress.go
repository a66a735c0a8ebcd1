package models

import (
	"strings"

	"gorm.io/gorm"
)

// Progress holds each user's rolling challenge counters. One row per user,
// created lazily on first read.
type Progress struct {
	gorm.Model
	UserID       uint `gorm:"uniqueIndex;not null"`
	CurrentDay   int  // 1..21
	Streak       int
	BestStreak   int
	TotalPoints  int
	Level        int
	AdherencePct float64
	Achievements string // comma-joined achievement codes
}

func (p *Progress) AchievementList() []string {
	if p.Achievements == "" {
		return nil
	}
	return strings.Split(p.Achievements, ",")
}

func (p *Progress) AddAchievement(code string) {
	for _, a := range p.AchievementList() {
		if a == code {
			return
		}
	}
	if p.Achievements == "" {
		p.Achievements = code
		return
	}
	p.Achievements += "," + code
}
