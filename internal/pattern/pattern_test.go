package pattern

import (
	"testing"

	"github.com/hukunda/ButtMap/internal/model"
)

// ── 测试辅助 ──

func occupiedSeat(coord string) model.Seat {
	return model.Seat{Coordinate: coord, OccupiedBy: "占用者"}
}

func emptySeat(coord string) model.Seat {
	return model.Seat{Coordinate: coord}
}

// ── 坐标编解码测试 ──

func TestFormatCoordinate(t *testing.T) {
	if got := FormatCoordinate(1, 1); got != "0.1" {
		t.Errorf("期望 0.1，实际=%s", got)
	}
	if got := FormatCoordinate(4, 6); got != "3.6" {
		t.Errorf("期望 3.6，实际=%s", got)
	}
}

func TestParseCoordinate_RoundTrip(t *testing.T) {
	for line := 1; line <= 6; line++ {
		for column := 1; column <= 6; column++ {
			coord := FormatCoordinate(line, column)
			gotLine, gotColumn, err := ParseCoordinate(coord)
			if err != nil {
				t.Fatalf("解析 %s 应成功: %v", coord, err)
			}
			if gotLine != line || gotColumn != column {
				t.Errorf("坐标 %s 期望 (%d,%d)，实际=(%d,%d)", coord, line, column, gotLine, gotColumn)
			}
		}
	}
}

func TestParseCoordinate_Invalid(t *testing.T) {
	cases := []string{"", "3", "a.b", "1.x"}
	for _, c := range cases {
		if _, _, err := ParseCoordinate(c); err == nil {
			t.Errorf("解析 %q 应失败", c)
		}
	}
}

// ── 图案筛选测试 ──

func TestSeatsInPattern(t *testing.T) {
	seats := []model.Seat{occupiedSeat("0.1"), occupiedSeat("0.2"), occupiedSeat("5.5")}
	got := SeatsInPattern(seats, []string{"0.1", "0.2", "9.9"})
	if len(got) != 2 {
		t.Errorf("期望命中 2 个座位，实际=%d", len(got))
	}
}

func TestOccupied(t *testing.T) {
	seats := []model.Seat{occupiedSeat("0.1"), emptySeat("0.2"), occupiedSeat("0.3")}
	if got := Occupied(seats); len(got) != 2 {
		t.Errorf("期望 2 个占用座位，实际=%d", len(got))
	}
}

// ── 方块图案测试 ──

func TestCheckSquarePattern_Match(t *testing.T) {
	occupied := []model.Seat{
		occupiedSeat("1.1"), occupiedSeat("1.2"),
		occupiedSeat("2.1"), occupiedSeat("2.2"),
	}
	if !CheckSquarePattern(occupied) {
		t.Error("覆盖完整 2×2 方块应判定为 true")
	}
}

func TestCheckSquarePattern_Superset(t *testing.T) {
	// 多余的占用座位不影响判定
	occupied := []model.Seat{
		occupiedSeat("0.1"), occupiedSeat("0.2"),
		occupiedSeat("1.1"), occupiedSeat("1.2"),
		occupiedSeat("5.6"),
	}
	if !CheckSquarePattern(occupied) {
		t.Error("超集覆盖方块应判定为 true")
	}
}

func TestCheckSquarePattern_NoMatch(t *testing.T) {
	if CheckSquarePattern([]model.Seat{occupiedSeat("1.1"), occupiedSeat("1.2"), occupiedSeat("2.1")}) {
		t.Error("不足 4 个占用座位应判定为 false")
	}
	occupied := []model.Seat{
		occupiedSeat("0.3"), occupiedSeat("0.4"),
		occupiedSeat("1.3"), occupiedSeat("1.4"),
	}
	if CheckSquarePattern(occupied) {
		t.Error("不在目录方块上的 2×2 不应判定为 true")
	}
}

// ── 对角线图案测试 ──

func TestCheckDiagonalPattern_Match(t *testing.T) {
	occupied := []model.Seat{occupiedSeat("2.3"), occupiedSeat("0.1"), occupiedSeat("1.2")}
	if !CheckDiagonalPattern(occupied) {
		t.Error("乱序输入的连续对角线应判定为 true")
	}
}

func TestCheckDiagonalPattern_Broken(t *testing.T) {
	occupied := []model.Seat{occupiedSeat("0.1"), occupiedSeat("1.2"), occupiedSeat("3.4")}
	if CheckDiagonalPattern(occupied) {
		t.Error("行号跳跃的对角线应判定为 false")
	}
	if CheckDiagonalPattern([]model.Seat{occupiedSeat("0.1"), occupiedSeat("1.2")}) {
		t.Error("不足 3 个占用座位应判定为 false")
	}
}

// ── 邻座测试 ──

func TestAdjacentSeats(t *testing.T) {
	all := []model.Seat{
		emptySeat("0.2"), emptySeat("2.2"),
		emptySeat("1.1"), emptySeat("1.3"),
		emptySeat("1.2"), emptySeat("5.5"),
	}
	got := AdjacentSeats(emptySeat("1.2"), all)
	if len(got) != 4 {
		t.Errorf("期望 4 个邻座，实际=%d", len(got))
	}

	// 角落座位只有网格内存在的邻座
	corner := AdjacentSeats(emptySeat("0.2"), all)
	if len(corner) != 1 {
		t.Errorf("期望 1 个邻座，实际=%d", len(corner))
	}
}

// ── 挑战完成判定测试 ──

func TestCheckChallengeCompletion(t *testing.T) {
	square := model.MiniChallenge{ID: model.ChallengePerfectSquare}
	diagonal := model.MiniChallenge{ID: model.ChallengeDiagonalLine}
	unknown := model.MiniChallenge{ID: "unknown"}

	seats := []model.Seat{
		occupiedSeat("1.1"), occupiedSeat("1.2"),
		occupiedSeat("2.1"), occupiedSeat("2.2"),
		emptySeat("0.1"),
	}

	if !CheckChallengeCompletion(square, seats) {
		t.Error("方块挑战应判定为完成")
	}
	if CheckChallengeCompletion(diagonal, seats) {
		t.Error("对角线挑战不应判定为完成")
	}
	if CheckChallengeCompletion(unknown, seats) {
		t.Error("未知挑战应判定为 false")
	}
}
