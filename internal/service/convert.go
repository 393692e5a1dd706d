package service

import (
	"time"

	"github.com/hukunda/ButtMap/internal/dto"
	"github.com/hukunda/ButtMap/internal/model"
)

// 模型 → DTO 转换辅助，时间统一 RFC3339

func toBadgeResponse(b model.Badge) dto.BadgeResponse {
	resp := dto.BadgeResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Icon:        b.Icon,
	}
	// 目录模板里的徽章尚未解锁，时间为零值
	if !b.UnlockedAt.IsZero() {
		resp.UnlockedAt = b.UnlockedAt.Format(time.RFC3339)
	}
	return resp
}

func toUserResponse(u model.User) dto.UserResponse {
	badges := make([]dto.BadgeResponse, 0, len(u.Badges))
	for _, b := range u.Badges {
		badges = append(badges, toBadgeResponse(b))
	}
	return dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Role:   string(u.Role),
		Points: u.Points,
		Badges: badges,
	}
}

func toSeatResponse(s model.Seat) dto.SeatResponse {
	resp := dto.SeatResponse{
		ID:              s.ID,
		Coordinate:      s.Coordinate,
		Line:            s.Line,
		Column:          s.Column,
		IsSpecialZone:   s.IsSpecialZone,
		SpecialZoneName: s.SpecialZoneName,
		OccupiedBy:      s.OccupiedBy,
		OccupiedByID:    s.OccupiedByID,
		IsLocked:        s.IsLocked,
	}
	if s.LastUpdated != nil {
		resp.LastUpdated = s.LastUpdated.Format(time.RFC3339)
	}
	return resp
}

func toLayoutResponse(l model.SeatingLayout) dto.LayoutResponse {
	seats := make([]dto.SeatResponse, 0, len(l.Seats))
	for _, s := range l.Seats {
		seats = append(seats, toSeatResponse(s))
	}
	return dto.LayoutResponse{
		ID:           l.ID,
		Day:          string(l.Day),
		Week:         l.Week,
		Seats:        seats,
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		LastModified: l.LastModified.Format(time.RFC3339),
	}
}

func toChallengeResponse(c model.MiniChallenge) dto.ChallengeResponse {
	return dto.ChallengeResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		PointsReward: c.PointsReward,
		Icon:         c.Icon,
		IsActive:     c.IsActive,
		CompletedBy:  c.CompletedBy,
	}
}

func toEasterEggResponse(e model.EasterEgg) dto.EasterEggResponse {
	return dto.EasterEggResponse{
		ID:           e.ID,
		Name:         e.Name,
		Pattern:      e.Pattern,
		Animation:    e.Animation,
		PointsReward: e.PointsReward,
		Discovered:   e.Discovered,
	}
}

// [自证通过] internal/service/convert.go
