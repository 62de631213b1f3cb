package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/iWorld-y/post_studio/app/post_studio/pkg/config"
	dm "github.com/iWorld-y/post_studio/app/post_studio/pkg/model"
)

// Storage 生成历史存储
type Storage struct {
	db *sql.DB
}

// DSN 根据配置拼接连接串
func DSN(cfg config.DBConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// NewStorage 连接数据库并初始化表结构
func NewStorage(cfg config.DBConfig) (*Storage, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Storage{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			service TEXT NOT NULL,
			tone TEXT NOT NULL,
			angle TEXT,
			cta TEXT,
			caption TEXT NOT NULL,
			hashtags TEXT[] NOT NULL DEFAULT '{}',
			image_prompt TEXT,
			image_path TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS compliance_reports (
			id SERIAL PRIMARY KEY,
			post_id TEXT REFERENCES posts(id) ON DELETE CASCADE,
			flags TEXT[] NOT NULL DEFAULT '{}',
			passed BOOLEAN NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query %s: %w", query, err)
		}
	}

	return nil
}

// SavePost 在同一个事务中保存帖子和合规扫描结果
func (s *Storage) SavePost(ctx context.Context, post *dm.Post) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO posts (id, service, tone, angle, cta, caption, hashtags, image_prompt, image_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		post.ID,
		string(post.Request.Service),
		string(post.Request.Tone),
		removeNullBytes(post.Request.Angle),
		removeNullBytes(post.Request.CTA),
		removeNullBytes(post.Copy.Caption),
		pq.Array(post.Copy.Hashtags),
		post.Image.Prompt,
		post.ImagePath,
		post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO compliance_reports (post_id, flags, passed)
		VALUES ($1, $2, $3)`,
		post.ID, pq.Array(post.Compliance.Flags), post.Compliance.Passed())
	if err != nil {
		return fmt.Errorf("failed to insert compliance report: %w", err)
	}

	return tx.Commit()
}

// ListPosts 按时间倒序分页查询历史，返回当前页和总数
func (s *Storage) ListPosts(ctx context.Context, page, pageSize int) ([]dm.PostSummary, int, error) {
	limit, offset := pagination(page, pageSize)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.service, p.tone, p.caption, p.hashtags, COALESCE(c.flags, '{}'), COALESCE(p.image_path, ''), p.created_at
		FROM posts p
		LEFT JOIN compliance_reports c ON c.post_id = p.id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []dm.PostSummary
	for rows.Next() {
		var p dm.PostSummary
		var createdAt time.Time
		if err := rows.Scan(&p.ID, &p.Service, &p.Tone, &p.Caption,
			pq.Array(&p.Hashtags), pq.Array(&p.Flags), &p.ImagePath, &createdAt); err != nil {
			return nil, 0, err
		}
		p.CreatedAt = createdAt.Format(time.DateTime)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// pagination 页码从 1 开始，每页默认 20 条，最多 100 条
func pagination(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}

func removeNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
