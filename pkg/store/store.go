// Package store 把解码后的SMBIOS结构表快照保存到SQLite
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Snapshot 是一次结构表读取的记录
type Snapshot struct {
	ID             int64
	Anchor         string
	Version        string
	TableLength    int
	StructureCount int
	CollectedAt    time.Time
	Structures     []Structure
}

// Structure 是快照中的一个结构，Fields是解码字段的JSON
type Structure struct {
	Handle uint16
	Type   uint8
	Name   string
	Raw    []byte
	Fields string
}

// Store 提供快照的读写
type Store struct {
	db *sql.DB
}

// New 打开path上的SQLite数据库并建表
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, errors.Wrap(err, "打开数据库")
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "建表")
	}

	return &Store{db: db}, nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot 在一个事务中写入快照和它的所有结构，返回快照ID
func (s *Store) SaveSnapshot(ctx context.Context, snap *Snapshot) (int64, error) {
	if snap.CollectedAt.IsZero() {
		snap.CollectedAt = time.Now()
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "开始事务")
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (anchor, version, table_length, structure_count, collected_at)
		 VALUES (?, ?, ?, ?, ?)`,
		snap.Anchor,
		snap.Version,
		snap.TableLength,
		len(snap.Structures),
		snap.CollectedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, errors.Wrap(err, "插入快照")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "获取快照ID")
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO structures (snapshot_id, seq, handle, type, name, raw, fields_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, errors.Wrap(err, "准备插入结构")
	}
	defer stmt.Close()

	for i, st := range snap.Structures {
		if _, err := stmt.ExecContext(ctx, id, i, st.Handle, st.Type, st.Name, st.Raw, st.Fields); err != nil {
			return 0, errors.Wrapf(err, "插入结构 0x%04X", st.Handle)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "提交事务")
	}

	snap.ID = id
	snap.StructureCount = len(snap.Structures)
	return id, nil
}

// Snapshot 按ID读取快照，不包括结构
func (s *Store) Snapshot(ctx context.Context, id int64) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, anchor, version, table_length, structure_count, collected_at
		 FROM snapshots WHERE id = ?`, id)

	var snap Snapshot
	var collectedAt string
	if err := row.Scan(&snap.ID, &snap.Anchor, &snap.Version, &snap.TableLength, &snap.StructureCount, &collectedAt); err != nil {
		return nil, err
	}
	snap.CollectedAt, _ = time.Parse(time.RFC3339, collectedAt)
	return &snap, nil
}

// Structures 按表中顺序返回快照的结构，typ非nil时只返回该类型
func (s *Store) Structures(ctx context.Context, id int64, typ *uint8) ([]Structure, error) {
	query := `SELECT handle, type, name, raw, fields_json FROM structures WHERE snapshot_id = ?`
	args := []any{id}
	if typ != nil {
		query += ` AND type = ?`
		args = append(args, *typ)
	}
	query += ` ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "查询结构")
	}
	defer rows.Close()

	var structures []Structure
	for rows.Next() {
		var st Structure
		if err := rows.Scan(&st.Handle, &st.Type, &st.Name, &st.Raw, &st.Fields); err != nil {
			return nil, err
		}
		structures = append(structures, st)
	}
	return structures, rows.Err()
}

// Delete 删除快照及其结构
func (s *Store) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "删除快照")
	}
	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "获取影响行数")
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
