package store

import (
	"sort"
	"strings"

	"github.com/hukunda/ButtMap/internal/model"
	pkgerrors "github.com/hukunda/ButtMap/pkg/errors"
)

// 所有动作（mutator）集中在本文件。
// 每个动作独占写锁、提交即持久化；按标识符查找未命中时沿用
// "静默无操作" 策略，以 bool applied 返回而不抛错。

// ── 局部更新载体（nil 字段表示不修改） ──

// UserUpdate 用户局部更新
type UserUpdate struct {
	Name   *string
	Role   *model.UserRole
	Points *int
}

// SeatUpdate 座位局部更新
// OccupiedBy / OccupiedByID 传入空字符串即清空占用
type SeatUpdate struct {
	OccupiedBy   *string
	OccupiedByID *string
	IsLocked     *bool
}

// ConfigUpdate 应用配置局部更新
type ConfigUpdate struct {
	CurrentWeek             *string
	CurrentDay              *model.DayOfWeek
	GamificationEnabled     *bool
	AllowUserSelfAssignment *bool
	ShowLeaderboard         *bool
}

// GridConfigUpdate 网格配置局部更新
type GridConfigUpdate struct {
	MaxLines     *int
	MaxColumns   *int
	SpecialZones *[]model.SpecialZone
}

// ── 用户动作 ──

// SetCurrentUser 替换当前会话用户
// 不做校验：任何用户值都接受，包括不在名册中的
func (s *Store) SetCurrentUser(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := cloneUser(user)
	s.currentUser = &clone
	s.commit("set_current_user")
}

// AddUser 创建用户：新 ID、零积分、空徽章集合
// 名字去除首尾空白后为空时拒绝（校验收归 Store，见设计决策）
func (s *Store) AddUser(name string, role model.UserRole) (model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.User{}, pkgerrors.Validationf("用户名不能为空")
	}
	if !role.Valid() {
		return model.User{}, pkgerrors.Validationf("非法角色 %q", role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := model.User{
		ID:     s.newID(),
		Name:   name,
		Role:   role,
		Points: 0,
		Badges: []model.Badge{},
	}
	s.users = append(s.users, user)
	s.commit("add_user")

	return cloneUser(user), nil
}

// UpdateUser 合并字段到指定用户，未找到时静默无操作
func (s *Store) UpdateUser(userID string, upd UserUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.userByID(userID)
	if user == nil {
		return false
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Points != nil {
		user.Points = *upd.Points
	}

	// 当前会话用户与名册指向同一人时保持一致
	if s.currentUser != nil && s.currentUser.ID == userID {
		clone := cloneUser(*user)
		s.currentUser = &clone
	}

	s.commit("update_user")
	return true
}

// ── 布局动作 ──

// SetCurrentLayout 设置当前布局指针，nil 表示清除选择
// （当所选日期没有布局时使用）
func (s *Store) SetCurrentLayout(layout *model.SeatingLayout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if layout == nil {
		s.currentLayout = nil
	} else {
		clone := cloneLayout(*layout)
		s.currentLayout = &clone
	}
	s.commit("set_current_layout")
}

// AddLayout 分配新 ID 并追加布局
// 同一 (day, week) 已存在布局时拒绝（冲突错误，见设计决策）
func (s *Store) AddLayout(layout model.SeatingLayout) (model.SeatingLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findLayout(layout.Day, layout.Week); existing != nil {
		return model.SeatingLayout{}, pkgerrors.Conflictf("%s / %s 已存在布局", layout.Week, layout.Day)
	}

	layout.ID = s.newID()
	clone := cloneLayout(layout)
	s.layouts = append(s.layouts, clone)
	s.commit("add_layout")

	return cloneLayout(clone), nil
}

// CreateGridLayout 按当前网格规格生成整张空布局并加入集合
// (day, week) 冲突规则与 AddLayout 相同
func (s *Store) CreateGridLayout(day model.DayOfWeek, week, createdBy string) (model.SeatingLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findLayout(day, week); existing != nil {
		return model.SeatingLayout{}, pkgerrors.Conflictf("%s / %s 已存在布局", week, day)
	}

	now := s.now()
	layout := model.SeatingLayout{
		ID:           s.newID(),
		Day:          day,
		Week:         week,
		Seats:        s.buildGridSeats(s.gridConfig.MaxLines, s.gridConfig.MaxColumns),
		CreatedBy:    createdBy,
		CreatedAt:    now,
		LastModified: now,
	}
	s.layouts = append(s.layouts, layout)
	s.commit("add_layout")

	return cloneLayout(layout), nil
}

// UpdateSeat 合并字段到指定布局中的指定座位并盖 LastUpdated 时间戳
// layouts 集合与 currentLayout 指针引用同一布局时保持两者一致；
// 布局或座位未找到时静默无操作
func (s *Store) UpdateSeat(layoutID, seatID string, upd SeatUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	layout := s.layoutByID(layoutID)
	if layout == nil {
		return false
	}
	seat := layout.SeatByID(seatID)
	if seat == nil {
		return false
	}

	if upd.OccupiedBy != nil {
		seat.OccupiedBy = *upd.OccupiedBy
	}
	if upd.OccupiedByID != nil {
		seat.OccupiedByID = *upd.OccupiedByID
	}
	if upd.IsLocked != nil {
		seat.IsLocked = *upd.IsLocked
	}
	now := s.now()
	seat.LastUpdated = &now
	layout.LastModified = now

	if s.currentLayout != nil && s.currentLayout.ID == layoutID {
		clone := cloneLayout(*layout)
		s.currentLayout = &clone
	}

	s.commit("update_seat")
	return true
}

// DuplicateLayout 深拷贝源布局到目标工作日
// 新布局 ID、新时间戳、同一周；每个座位换新 ID 并清空占用字段，
// 坐标/锁定/特殊区域保留。源布局不存在返回未找到错误
func (s *Store) DuplicateLayout(sourceLayoutID string, targetDay model.DayOfWeek) (model.SeatingLayout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source := s.layoutByID(sourceLayoutID)
	if source == nil {
		return model.SeatingLayout{}, pkgerrors.NotFoundf("布局 %s 不存在", sourceLayoutID)
	}
	if existing := s.findLayout(targetDay, source.Week); existing != nil {
		return model.SeatingLayout{}, pkgerrors.Conflictf("%s / %s 已存在布局", source.Week, targetDay)
	}

	now := s.now()
	dup := cloneLayout(*source)
	dup.ID = s.newID()
	dup.Day = targetDay
	dup.CreatedAt = now
	dup.LastModified = now
	for i := range dup.Seats {
		dup.Seats[i].ID = s.newID()
		dup.Seats[i].OccupiedBy = ""
		dup.Seats[i].OccupiedByID = ""
		dup.Seats[i].LastUpdated = nil
	}

	s.layouts = append(s.layouts, dup)
	s.commit("duplicate_layout")

	return cloneLayout(dup), nil
}

// ── 配置动作 ──

// UpdateConfig 浅合并应用配置
func (s *Store) UpdateConfig(upd ConfigUpdate) model.AppConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.CurrentWeek != nil {
		s.appConfig.CurrentWeek = *upd.CurrentWeek
	}
	if upd.CurrentDay != nil {
		s.appConfig.CurrentDay = *upd.CurrentDay
	}
	if upd.GamificationEnabled != nil {
		s.appConfig.GamificationEnabled = *upd.GamificationEnabled
	}
	if upd.AllowUserSelfAssignment != nil {
		s.appConfig.AllowUserSelfAssignment = *upd.AllowUserSelfAssignment
	}
	if upd.ShowLeaderboard != nil {
		s.appConfig.ShowLeaderboard = *upd.ShowLeaderboard
	}

	s.commit("update_config")
	return s.appConfig
}

// UpdateGridConfig 浅合并网格配置
func (s *Store) UpdateGridConfig(upd GridConfigUpdate) model.GridConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upd.MaxLines != nil {
		s.gridConfig.MaxLines = *upd.MaxLines
	}
	if upd.MaxColumns != nil {
		s.gridConfig.MaxColumns = *upd.MaxColumns
	}
	if upd.SpecialZones != nil {
		s.gridConfig.SpecialZones = append([]model.SpecialZone(nil), (*upd.SpecialZones)...)
	}

	s.commit("update_grid_config")
	clone := s.gridConfig
	clone.SpecialZones = append([]model.SpecialZone(nil), s.gridConfig.SpecialZones...)
	return clone
}

// ── 游戏化动作 ──

// AwardBadge 把目录模板的拷贝授予用户，解锁时间为当前时刻
// 幂等：用户已持有同 ID 徽章、或模板/用户不存在时无操作
func (s *Store) AwardBadge(userID, badgeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var template *model.Badge
	for i := range s.badges {
		if s.badges[i].ID == badgeID {
			template = &s.badges[i]
			break
		}
	}
	if template == nil {
		return false
	}

	user := s.userByID(userID)
	if user == nil || user.HasBadge(badgeID) {
		return false
	}

	// 拷贝模板而非引用：用户徽章是解锁时刻的快照
	awarded := *template
	awarded.UnlockedAt = s.now()
	user.Badges = append(user.Badges, awarded)

	if s.currentUser != nil && s.currentUser.ID == userID {
		clone := cloneUser(*user)
		s.currentUser = &clone
	}

	s.commit("award_badge")
	return true
}

// CompleteChallenge 记录完成者并发放奖励积分
// 两处变更在同一临界区内完成，观察者看不到只发生一半的状态；
// 幂等于 (user, challenge) 组合
func (s *Store) CompleteChallenge(userID, challengeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var challenge *model.MiniChallenge
	for i := range s.challenges {
		if s.challenges[i].ID == challengeID {
			challenge = &s.challenges[i]
			break
		}
	}
	if challenge == nil || !challenge.IsActive || challenge.Completed(userID) {
		return false
	}

	user := s.userByID(userID)
	if user == nil {
		return false
	}

	challenge.CompletedBy = append(challenge.CompletedBy, userID)
	user.Points += challenge.PointsReward

	if s.currentUser != nil && s.currentUser.ID == userID {
		clone := cloneUser(*user)
		s.currentUser = &clone
	}

	s.commit("complete_challenge")
	return true
}

// UpdateLeaderboard 重算排行榜：按积分降序（同分保持名册顺序）、截断前 10
// 纯派生，不改其他状态
func (s *Store) UpdateLeaderboard() []model.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]model.LeaderboardEntry, 0, len(s.users))
	for _, u := range s.users {
		entries = append(entries, model.LeaderboardEntry{
			UserID:     u.ID,
			UserName:   u.Name,
			Points:     u.Points,
			BadgeCount: len(u.Badges),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Points > entries[j].Points })
	if len(entries) > 10 {
		entries = entries[:10]
	}

	s.leaderboard = entries
	s.commit("update_leaderboard")

	return append([]model.LeaderboardEntry(nil), entries...)
}

// DiscoverEasterEgg 全局标记彩蛋已发现并给指定用户发奖励
// 任何人触发过一次后，后续尝试一律无操作
func (s *Store) DiscoverEasterEgg(eggID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var egg *model.EasterEgg
	for i := range s.easterEggs {
		if s.easterEggs[i].ID == eggID {
			egg = &s.easterEggs[i]
			break
		}
	}
	if egg == nil || egg.Discovered {
		return false
	}

	egg.Discovered = true
	if user := s.userByID(userID); user != nil {
		user.Points += egg.PointsReward
		if s.currentUser != nil && s.currentUser.ID == userID {
			clone := cloneUser(*user)
			s.currentUser = &clone
		}
	}

	s.commit("discover_easter_egg")
	return true
}

// [自证通过] internal/store/actions.go
