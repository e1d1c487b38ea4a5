// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package devserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vagas/cli/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS usuarios (
	id    SERIAL PRIMARY KEY,
	nome  TEXT NOT NULL,
	email TEXT NOT NULL,
	senha TEXT NOT NULL
)`

// Postgres is a Repository backed by the usuarios table.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn, verifies the connection and creates the
// usuarios table when missing.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close releases the pool.
func (p *Postgres) Close() { p.pool.Close() }

func (p *Postgres) List(ctx context.Context) ([]model.User, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, nome, email, senha FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, err
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

func (p *Postgres) Create(ctx context.Context, u model.User) (model.User, error) {
	err := p.pool.QueryRow(ctx, `
		INSERT INTO usuarios (nome, email, senha)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.Name, u.Email, u.Password).Scan(&u.ID)
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (p *Postgres) Update(ctx context.Context, u model.User) (model.User, error) {
	row := p.pool.QueryRow(ctx, `
		UPDATE usuarios SET nome = $2, email = $3, senha = $4
		WHERE id = $1
		RETURNING id, nome, email, senha
	`, u.ID, u.Name, u.Email, u.Password)

	out, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return out, err
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	return u, err
}
