package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/config"
	"github.com/hukunda/ButtMap/internal/model"
	"github.com/hukunda/ButtMap/internal/store"
)

// ── 测试辅助 ──
// Service 层测试不打桩 Store：构造隔离的真实实例 + 内存持久化

type nopPersister struct{}

func (nopPersister) Load(_ context.Context) ([]byte, error) { return nil, nil }
func (nopPersister) Save(_ context.Context, _ []byte) error { return nil }

func newTestStore() *store.Store {
	cfg := &config.Config{
		Grid: config.GridConfig{MaxLines: 6, MaxColumns: 6},
		Feature: config.FeatureConfig{
			GamificationEnabled:     true,
			AllowUserSelfAssignment: true,
			ShowLeaderboard:         true,
		},
	}
	return store.New(cfg, nopPersister{}, zap.NewNop())
}

// addUser 建名册用户并返回
func addUser(st *store.Store, name string, role model.UserRole) model.User {
	user, _ := st.AddUser(name, role)
	return user
}

// asUser 把用户设为当前会话用户
func asUser(st *store.Store, user model.User) {
	st.SetCurrentUser(user)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
