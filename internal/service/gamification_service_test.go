package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/internal/dto"
	"github.com/hukunda/ButtMap/internal/model"
	"github.com/hukunda/ButtMap/internal/store"
)

// occupyCoordinates 在布局中按坐标占座并把布局设为当前布局
func occupyCoordinates(t *testing.T, st *store.Store, coords []string) {
	t.Helper()
	layout, err := st.CreateGridLayout(model.Monday, "2025-W37", "")
	if err != nil {
		t.Fatalf("CreateGridLayout 应成功: %v", err)
	}
	for _, coord := range coords {
		var seatID string
		for _, seat := range layout.Seats {
			if seat.Coordinate == coord {
				seatID = seat.ID
				break
			}
		}
		if seatID == "" {
			t.Fatalf("网格中找不到坐标 %s", coord)
		}
		st.UpdateSeat(layout.ID, seatID, store.SeatUpdate{
			OccupiedBy:   strPtr("占用者"),
			OccupiedByID: strPtr("someone"),
		})
	}
	refreshed, _ := st.LayoutByID(layout.ID)
	st.SetCurrentLayout(&refreshed)
}

func TestGamificationService_AwardBadge(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)

	req := &dto.AwardBadgeRequest{
		UserID:  user.ID,
		BadgeID: model.BadgeEarlyBird,
		Context: dto.BadgeContextRequest{FirstThisWeek: true},
	}
	result, err := svc.AwardBadge(context.Background(), req)
	if err != nil {
		t.Fatalf("AwardBadge 应成功: %v", err)
	}
	if len(result.Badges) != 1 || result.Badges[0].ID != model.BadgeEarlyBird {
		t.Error("用户应获得早鸟徽章")
	}

	// 已持有视为不满足资格
	if _, err := svc.AwardBadge(context.Background(), req); !errors.Is(err, ErrBadgeNotEligible) {
		t.Errorf("重复授予期望 ErrBadgeNotEligible，实际: %v", err)
	}
}

func TestGamificationService_AwardBadge_NotEligible(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)

	req := &dto.AwardBadgeRequest{
		UserID:  user.ID,
		BadgeID: model.BadgeSocialButterfly,
		Context: dto.BadgeContextRequest{DifferentNeighbors: 2},
	}
	if _, err := svc.AwardBadge(context.Background(), req); !errors.Is(err, ErrBadgeNotEligible) {
		t.Errorf("期望 ErrBadgeNotEligible，实际: %v", err)
	}
}

func TestGamificationService_AwardBadge_Disabled(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)
	st.UpdateConfig(store.ConfigUpdate{GamificationEnabled: boolPtr(false)})

	req := &dto.AwardBadgeRequest{UserID: user.ID, BadgeID: model.BadgeEarlyBird}
	if _, err := svc.AwardBadge(context.Background(), req); !errors.Is(err, ErrGamificationDisabled) {
		t.Errorf("期望 ErrGamificationDisabled，实际: %v", err)
	}
}

func TestGamificationService_CompleteChallenge(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)
	occupyCoordinates(t, st, []string{"1.1", "1.2", "2.1", "2.2"})

	result, err := svc.CompleteChallenge(context.Background(), model.ChallengePerfectSquare,
		&dto.CompleteChallengeRequest{UserID: user.ID})
	if err != nil {
		t.Fatalf("CompleteChallenge 应成功: %v", err)
	}
	if len(result.CompletedBy) != 1 || result.CompletedBy[0] != user.ID {
		t.Error("完成者名单应包含该用户")
	}

	updated, _ := st.UserByID(user.ID)
	if updated.Points != result.PointsReward {
		t.Errorf("期望奖励 %d 积分，实际=%d", result.PointsReward, updated.Points)
	}

	// 重复完成
	_, err = svc.CompleteChallenge(context.Background(), model.ChallengePerfectSquare,
		&dto.CompleteChallengeRequest{UserID: user.ID})
	if !errors.Is(err, ErrChallengeDone) {
		t.Errorf("期望 ErrChallengeDone，实际: %v", err)
	}
}

func TestGamificationService_CompleteChallenge_PatternNotMet(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)
	occupyCoordinates(t, st, []string{"1.1", "1.2"}) // 不成方块

	_, err := svc.CompleteChallenge(context.Background(), model.ChallengePerfectSquare,
		&dto.CompleteChallengeRequest{UserID: user.ID})
	if !errors.Is(err, ErrChallengeNotMet) {
		t.Errorf("期望 ErrChallengeNotMet，实际: %v", err)
	}
}

func TestGamificationService_CompleteChallenge_NoCurrentLayout(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)

	_, err := svc.CompleteChallenge(context.Background(), model.ChallengePerfectSquare,
		&dto.CompleteChallengeRequest{UserID: user.ID})
	if !errors.Is(err, ErrChallengeNotMet) {
		t.Errorf("无当前布局期望 ErrChallengeNotMet，实际: %v", err)
	}
}

func TestGamificationService_Leaderboard(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())

	low := addUser(st, "Low", model.RoleUser)
	high := addUser(st, "High", model.RoleUser)
	p1, p2 := 10, 90
	st.UpdateUser(low.ID, store.UserUpdate{Points: &p1})
	st.UpdateUser(high.ID, store.UserUpdate{Points: &p2})

	entries, err := svc.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard 应成功: %v", err)
	}
	if len(entries) != 2 || entries[0].UserID != high.ID {
		t.Error("排行榜应按积分降序")
	}
}

func TestGamificationService_Leaderboard_Hidden(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	st.UpdateConfig(store.ConfigUpdate{ShowLeaderboard: boolPtr(false)})

	if _, err := svc.Leaderboard(context.Background()); !errors.Is(err, ErrLeaderboardHidden) {
		t.Errorf("期望 ErrLeaderboardHidden，实际: %v", err)
	}

	st.UpdateConfig(store.ConfigUpdate{GamificationEnabled: boolPtr(false)})
	if _, err := svc.Leaderboard(context.Background()); !errors.Is(err, ErrGamificationDisabled) {
		t.Errorf("期望 ErrGamificationDisabled，实际: %v", err)
	}
}

func TestGamificationService_DiscoverEasterEgg(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)
	occupyCoordinates(t, st, []string{"0.1", "0.2", "0.3", "1.2"}) // smiley-top 图案

	egg, err := svc.DiscoverEasterEgg(context.Background(), "smiley-top",
		&dto.DiscoverEasterEggRequest{UserID: user.ID})
	if err != nil {
		t.Fatalf("DiscoverEasterEgg 应成功: %v", err)
	}
	if !egg.Discovered {
		t.Error("彩蛋应标记为已发现")
	}

	updated, _ := st.UserByID(user.ID)
	if updated.Points != egg.PointsReward {
		t.Errorf("发现者期望 %d 积分，实际=%d", egg.PointsReward, updated.Points)
	}

	// 全局只能发现一次
	other := addUser(st, "Other", model.RoleUser)
	_, err = svc.DiscoverEasterEgg(context.Background(), "smiley-top",
		&dto.DiscoverEasterEggRequest{UserID: other.ID})
	if !errors.Is(err, ErrEasterEggFound) {
		t.Errorf("期望 ErrEasterEggFound，实际: %v", err)
	}
}

func TestGamificationService_DiscoverEasterEgg_PatternNotMet(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)
	occupyCoordinates(t, st, []string{"0.1", "0.2"}) // 图案不完整

	_, err := svc.DiscoverEasterEgg(context.Background(), "smiley-top",
		&dto.DiscoverEasterEggRequest{UserID: user.ID})
	if !errors.Is(err, ErrEasterEggNotMet) {
		t.Errorf("期望 ErrEasterEggNotMet，实际: %v", err)
	}
}

func TestGamificationService_RecordActions(t *testing.T) {
	st := newTestStore()
	svc := NewGamificationService(st, zap.NewNop())
	user := addUser(st, "Dana", model.RoleUser)

	result, err := svc.RecordActions(context.Background(), user.ID, &dto.RecordActionsRequest{
		Actions: []string{"early_seat_selection", "help_teammate"},
	})
	if err != nil {
		t.Fatalf("RecordActions 应成功: %v", err)
	}
	if result.Points != 25 {
		t.Errorf("期望 10+15=25 积分，实际=%d", result.Points)
	}
}
