package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/config"
	"github.com/hukunda/ButtMap/internal/metrics"
	"github.com/hukunda/ButtMap/internal/model"
	"github.com/hukunda/ButtMap/pkg/isoweek"
)

// Persister 快照持久化接口
// Load 在记录不存在时返回 (nil, nil)；Save 整体覆写
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

// Store 应用状态存储：全部领域实体的唯一权威内存模型
//
// 设计说明：
//   - 进程启动时构造一次并显式注入消费方，不做包级单例（测试可建隔离实例）
//   - 每个动作在写锁内完成，观察者看不到中间状态
//   - 每次成功变更后，把 {users, layouts, config, currentUser} 局部快照
//     同步写入 Persister；写失败仅记录并降级为纯内存运行
//   - 读方法一律返回深拷贝，调用方不会与内部状态产生别名
type Store struct {
	mu        sync.RWMutex
	persister Persister
	logger    *zap.Logger

	// 便于测试注入确定性时间与 ID
	now   func() time.Time
	newID func() string

	currentUser   *model.User
	users         []model.User
	layouts       []model.SeatingLayout
	currentLayout *model.SeatingLayout
	appConfig     model.AppConfig
	gridConfig    model.GridConfig

	// 游戏化运行期状态（不持久化）
	badges      []model.Badge // 徽章目录模板
	challenges  []model.MiniChallenge
	leaderboard []model.LeaderboardEntry
	easterEggs  []model.EasterEgg
}

// persistedState 持久化的局部快照
// 刻意排除派生/瞬态字段：currentLayout、游戏化运行态、排行榜
type persistedState struct {
	Users       []model.User          `json:"users"`
	Layouts     []model.SeatingLayout `json:"layouts"`
	Config      model.AppConfig       `json:"config"`
	CurrentUser *model.User           `json:"current_user"`
}

// New 构造 Store 并尝试从持久化快照恢复
// 快照不存在或损坏时回退到空初始状态（随后由调用方执行 InitializeDefaultData）
func New(cfg *config.Config, persister Persister, logger *zap.Logger) *Store {
	now := time.Now()

	s := &Store{
		persister: persister,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
		appConfig: model.AppConfig{
			CurrentWeek:             isoweek.Format(now),
			CurrentDay:              currentWeekday(now),
			GamificationEnabled:     cfg.Feature.GamificationEnabled,
			AllowUserSelfAssignment: cfg.Feature.AllowUserSelfAssignment,
			ShowLeaderboard:         cfg.Feature.ShowLeaderboard,
		},
		gridConfig: model.GridConfig{
			MaxLines:     cfg.Grid.MaxLines,
			MaxColumns:   cfg.Grid.MaxColumns,
			SpecialZones: defaultSpecialZones(),
		},
		badges:     defaultBadges(now),
		challenges: defaultChallenges(),
		easterEggs: defaultEasterEggs(),
	}

	s.restore()

	return s
}

// currentWeekday 把今天折算为工作日，周末回退到周一
func currentWeekday(t time.Time) model.DayOfWeek {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return model.Monday
	default:
		return model.Weekdays[int(t.Weekday())-1]
	}
}

// restore 启动时读取一次持久化快照
func (s *Store) restore() {
	if s.persister == nil {
		return
	}

	payload, err := s.persister.Load(context.Background())
	if err != nil {
		s.logger.Warn("读取快照失败，以空状态启动", zap.Error(err))
		return
	}
	if payload == nil {
		return
	}

	var state persistedState
	if err := json.Unmarshal(payload, &state); err != nil {
		// 损坏的快照视同不存在，交给引导流程重建
		s.logger.Warn("快照内容损坏，已忽略", zap.Error(err))
		return
	}

	s.users = state.Users
	s.layouts = state.Layouts
	s.appConfig = state.Config
	s.currentUser = state.CurrentUser

	// 恢复当前布局指针：配置指定的 (day, week) 存在则指向它
	if l := s.findLayout(s.appConfig.CurrentDay, s.appConfig.CurrentWeek); l != nil {
		clone := cloneLayout(*l)
		s.currentLayout = &clone
	}

	s.logger.Info("已从快照恢复状态",
		zap.Int("users", len(s.users)),
		zap.Int("layouts", len(s.layouts)),
	)
}

// commit 变更提交路径：序列化局部快照并同步写入持久化层
// 必须在写锁内调用。写失败按 PersistenceKind 策略处理：记录、计数、继续内存运行
func (s *Store) commit(action string) {
	metrics.Actions.WithLabelValues(action).Inc()

	if s.persister == nil {
		return
	}

	state := persistedState{
		Users:       s.users,
		Layouts:     s.layouts,
		Config:      s.appConfig,
		CurrentUser: s.currentUser,
	}
	payload, err := json.Marshal(state)
	if err != nil {
		metrics.PersistenceFailures.Inc()
		s.logger.Error("序列化快照失败", zap.String("action", action), zap.Error(err))
		return
	}

	// 持久化不随请求取消而中断
	if err := s.persister.Save(context.Background(), payload); err != nil {
		metrics.PersistenceFailures.Inc()
		s.logger.Error("写入快照失败，继续以内存状态运行",
			zap.String("action", action), zap.Error(err))
		return
	}
	metrics.SnapshotWrites.Inc()
}

// findLayout 按 (day, week) 查找布局，必须在锁内调用
func (s *Store) findLayout(day model.DayOfWeek, week string) *model.SeatingLayout {
	for i := range s.layouts {
		if s.layouts[i].Day == day && s.layouts[i].Week == week {
			return &s.layouts[i]
		}
	}
	return nil
}

// layoutByID 按 ID 查找布局，必须在锁内调用
func (s *Store) layoutByID(id string) *model.SeatingLayout {
	for i := range s.layouts {
		if s.layouts[i].ID == id {
			return &s.layouts[i]
		}
	}
	return nil
}

// userByID 按 ID 查找用户，必须在锁内调用
func (s *Store) userByID(id string) *model.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// ── 深拷贝辅助 ──

func cloneUser(u model.User) model.User {
	clone := u
	clone.Badges = append([]model.Badge(nil), u.Badges...)
	return clone
}

func cloneLayout(l model.SeatingLayout) model.SeatingLayout {
	clone := l
	clone.Seats = append([]model.Seat(nil), l.Seats...)
	for i := range clone.Seats {
		if t := clone.Seats[i].LastUpdated; t != nil {
			tc := *t
			clone.Seats[i].LastUpdated = &tc
		}
	}
	return clone
}

func cloneChallenge(c model.MiniChallenge) model.MiniChallenge {
	clone := c
	clone.CompletedBy = append([]string(nil), c.CompletedBy...)
	return clone
}

func cloneEgg(e model.EasterEgg) model.EasterEgg {
	clone := e
	clone.Pattern = append([]string(nil), e.Pattern...)
	return clone
}

// ── 读访问（全部返回深拷贝） ──

// CurrentUser 当前会话用户，未选择时返回 nil
func (s *Store) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	clone := cloneUser(*s.currentUser)
	return &clone
}

// Users 用户名册
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, cloneUser(u))
	}
	return result
}

// UserByID 按 ID 查找用户
func (s *Store) UserByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u := s.userByID(id); u != nil {
		return cloneUser(*u), true
	}
	return model.User{}, false
}

// Layouts 全部布局
func (s *Store) Layouts() []model.SeatingLayout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.SeatingLayout, 0, len(s.layouts))
	for _, l := range s.layouts {
		result = append(result, cloneLayout(l))
	}
	return result
}

// LayoutByID 按 ID 查找布局
func (s *Store) LayoutByID(id string) (model.SeatingLayout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l := s.layoutByID(id); l != nil {
		return cloneLayout(*l), true
	}
	return model.SeatingLayout{}, false
}

// FindLayout 按 (day, week) 查找布局
func (s *Store) FindLayout(day model.DayOfWeek, week string) (model.SeatingLayout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l := s.findLayout(day, week); l != nil {
		return cloneLayout(*l), true
	}
	return model.SeatingLayout{}, false
}

// CurrentLayout 当前布局指针，未选择时返回 nil
func (s *Store) CurrentLayout() *model.SeatingLayout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentLayout == nil {
		return nil
	}
	clone := cloneLayout(*s.currentLayout)
	return &clone
}

// Config 应用配置
func (s *Store) Config() model.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appConfig
}

// GridConfig 网格配置
func (s *Store) GridConfig() model.GridConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clone := s.gridConfig
	clone.SpecialZones = append([]model.SpecialZone(nil), s.gridConfig.SpecialZones...)
	return clone
}

// Badges 徽章目录
func (s *Store) Badges() []model.Badge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Badge(nil), s.badges...)
}

// BadgeByID 按 ID 查找徽章模板
func (s *Store) BadgeByID(id string) (model.Badge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.badges {
		if b.ID == id {
			return b, true
		}
	}
	return model.Badge{}, false
}

// Challenges 挑战列表
func (s *Store) Challenges() []model.MiniChallenge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.MiniChallenge, 0, len(s.challenges))
	for _, c := range s.challenges {
		result = append(result, cloneChallenge(c))
	}
	return result
}

// ChallengeByID 按 ID 查找挑战
func (s *Store) ChallengeByID(id string) (model.MiniChallenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.challenges {
		if c.ID == id {
			return cloneChallenge(c), true
		}
	}
	return model.MiniChallenge{}, false
}

// Leaderboard 最近一次重算的排行榜
func (s *Store) Leaderboard() []model.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.LeaderboardEntry(nil), s.leaderboard...)
}

// EasterEggs 彩蛋列表
func (s *Store) EasterEggs() []model.EasterEgg {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.EasterEgg, 0, len(s.easterEggs))
	for _, e := range s.easterEggs {
		result = append(result, cloneEgg(e))
	}
	return result
}

// EasterEggByID 按 ID 查找彩蛋
func (s *Store) EasterEggByID(id string) (model.EasterEgg, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.easterEggs {
		if e.ID == id {
			return cloneEgg(e), true
		}
	}
	return model.EasterEgg{}, false
}

// [自证通过] internal/store/store.go
