package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hukunda/ButtMap/config"
	"github.com/hukunda/ButtMap/internal/api/handler"
	"github.com/hukunda/ButtMap/internal/api/router"
	"github.com/hukunda/ButtMap/internal/model"
	"github.com/hukunda/ButtMap/internal/service"
	"github.com/hukunda/ButtMap/internal/store"
	"github.com/hukunda/ButtMap/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── 测试辅助 ──
// Handler 测试走完整路由栈（含中间件与角色闸门），后端为真实 Store + 内存持久化

type nopPersister struct{}

func (nopPersister) Load(_ context.Context) ([]byte, error) { return nil, nil }
func (nopPersister) Save(_ context.Context, _ []byte) error { return nil }

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: 8080,
			CORS: config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
		},
		Grid: config.GridConfig{MaxLines: 6, MaxColumns: 6},
		Feature: config.FeatureConfig{
			GamificationEnabled:     true,
			AllowUserSelfAssignment: true,
			ShowLeaderboard:         true,
		},
	}
	st := store.New(cfg, nopPersister{}, zap.NewNop())
	st.InitializeDefaultData()

	svc := service.NewService(st, zap.NewNop())
	h := handler.NewHandler(svc)
	return router.Setup(cfg, h, st, zap.NewNop()), st
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求体失败: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v (body=%s)", err, w.Body.String())
	}
	return resp
}

// ── 基础路由测试 ──

func TestHealthCheck(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}
}

func TestListUsers(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/users", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际=%d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Code != 0 {
		t.Errorf("期望业务码 0，实际=%d", resp.Code)
	}

	users, ok := resp.Data.([]interface{})
	if !ok || len(users) != 1 {
		t.Errorf("引导后期望 1 个用户，实际=%v", resp.Data)
	}
}

// ── 会话与角色闸门测试 ──

func TestCreateUser_AdminOnly(t *testing.T) {
	engine, st := newTestServer(t)

	// 引导后的会话用户是管理员
	w := doJSON(t, engine, http.MethodPost, "/api/v1/users",
		gin.H{"name": "Dana", "role": "user"})
	if w.Code != http.StatusCreated {
		t.Fatalf("管理员创建用户期望 201，实际=%d (body=%s)", w.Code, w.Body.String())
	}

	// 切到普通用户后同一操作被角色闸门拦下
	var dana model.User
	for _, u := range st.Users() {
		if u.Name == "Dana" {
			dana = u
			break
		}
	}
	st.SetCurrentUser(dana)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/users",
		gin.H{"name": "Eve", "role": "user"})
	if w.Code != http.StatusForbidden {
		t.Errorf("普通用户创建用户期望 403，实际=%d", w.Code)
	}
}

func TestSetSession(t *testing.T) {
	engine, st := newTestServer(t)
	admin := st.CurrentUser()

	w := doJSON(t, engine, http.MethodPut, "/api/v1/session", gin.H{"user_id": admin.ID})
	if w.Code != http.StatusOK {
		t.Errorf("期望 200，实际=%d", w.Code)
	}

	w = doJSON(t, engine, http.MethodPut, "/api/v1/session", gin.H{"user_id": "no-such-user"})
	if w.Code != http.StatusNotFound {
		t.Errorf("未知用户期望 404，实际=%d", w.Code)
	}
}

func TestSetSession_InvalidBody(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodPut, "/api/v1/session", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少 user_id 期望 400，实际=%d", w.Code)
	}
}

// ── 布局与座位测试 ──

func TestGetCurrentLayout(t *testing.T) {
	engine, _ := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/layouts/current", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际=%d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["layout"] == nil {
		t.Error("引导后当前布局不应为 null")
	}
}

func TestCreateLayout_Conflict(t *testing.T) {
	engine, st := newTestServer(t)
	week := st.Config().CurrentWeek

	// 引导已创建本周周一的布局
	w := doJSON(t, engine, http.MethodPost, "/api/v1/layouts",
		gin.H{"day": "monday", "week": week})
	if w.Code != http.StatusConflict {
		t.Errorf("同 (day, week) 期望 409，实际=%d", w.Code)
	}

	w = doJSON(t, engine, http.MethodPost, "/api/v1/layouts",
		gin.H{"day": "tuesday", "week": week})
	if w.Code != http.StatusCreated {
		t.Errorf("不同工作日期望 201，实际=%d (body=%s)", w.Code, w.Body.String())
	}
}

func TestUpdateSeat_PermissionFlow(t *testing.T) {
	engine, st := newTestServer(t)
	layout := st.CurrentLayout()
	var free string
	for _, seat := range layout.Seats {
		if seat.OccupiedBy == "" {
			free = seat.ID
			break
		}
	}

	// 管理员锁定座位
	w := doJSON(t, engine, http.MethodPut, "/api/v1/layouts/"+layout.ID+"/seats/"+free,
		gin.H{"is_locked": true})
	if w.Code != http.StatusOK {
		t.Fatalf("管理员锁定期望 200，实际=%d (body=%s)", w.Code, w.Body.String())
	}

	// 普通用户编辑已锁定座位被拒
	dana, err := st.AddUser("Dana", model.RoleUser)
	if err != nil {
		t.Fatalf("AddUser 应成功: %v", err)
	}
	st.SetCurrentUser(dana)

	w = doJSON(t, engine, http.MethodPut, "/api/v1/layouts/"+layout.ID+"/seats/"+free,
		gin.H{"occupied_by": dana.Name, "occupied_by_id": dana.ID})
	if w.Code != http.StatusForbidden {
		t.Errorf("编辑已锁定座位期望 403，实际=%d", w.Code)
	}
}

// ── 游戏化测试 ──

func TestLeaderboard_HiddenReturns403(t *testing.T) {
	engine, st := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/leaderboard", nil)
	if w.Code != http.StatusOK {
		t.Errorf("默认开启期望 200，实际=%d", w.Code)
	}

	hide := false
	st.UpdateConfig(store.ConfigUpdate{ShowLeaderboard: &hide})
	w = doJSON(t, engine, http.MethodGet, "/api/v1/leaderboard", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("隐藏后期望 403，实际=%d", w.Code)
	}
}

func TestCompleteChallenge_PatternNotMet(t *testing.T) {
	engine, st := newTestServer(t)
	admin := st.CurrentUser()

	// 样例占座不构成目录方块
	w := doJSON(t, engine, http.MethodPost, "/api/v1/challenges/diagonal-line/complete",
		gin.H{"user_id": admin.ID})
	if w.Code != http.StatusBadRequest {
		t.Errorf("图案不满足期望 400，实际=%d (body=%s)", w.Code, w.Body.String())
	}
}

// ── 导出测试 ──

func TestExportLayout_UnsupportedFormat(t *testing.T) {
	engine, st := newTestServer(t)
	layout := st.CurrentLayout()

	w := doJSON(t, engine, http.MethodGet, "/api/v1/layouts/"+layout.ID+"/export?format=pdf", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("pdf 期望 400，实际=%d", w.Code)
	}
}

func TestExportLayout_Excel(t *testing.T) {
	engine, st := newTestServer(t)
	layout := st.CurrentLayout()

	// excel 标签与缺省格式都走 Excel 导出
	for _, path := range []string{
		"/api/v1/layouts/" + layout.ID + "/export?format=excel",
		"/api/v1/layouts/" + layout.ID + "/export",
	} {
		w := doJSON(t, engine, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("期望 200，实际=%d (body=%s)", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); got == "" {
			t.Error("导出应带 Content-Disposition 附件头")
		}
		if w.Body.Len() == 0 {
			t.Error("导出内容不应为空")
		}
	}
}
