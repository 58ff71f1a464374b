package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/NomanKhan13/focusTube/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUnitOfWork creates a unit of work backed by the given connection pool
func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) querier() SQLQuerier {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *sqlUnitOfWork) VideoRepo() port.VideoRepository {
	return NewSQLVideoRepository(u.querier())
}

func (u *sqlUnitOfWork) CommentRepo() port.CommentRepository {
	return NewSQLCommentRepository(u.querier())
}

func (u *sqlUnitOfWork) LikeRepo() port.LikeRepository {
	return NewSQLLikeRepository(u.querier())
}

func (u *sqlUnitOfWork) UserRepo() port.UserRepository {
	return NewSQLUserRepository(u.querier())
}

// Execute runs fn inside a database transaction. The transaction is rolled
// back when fn returns an error or panics, committed otherwise.
func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
