// Package txmanager выполняет функции внутри транзакции, передавая её через контекст
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourseBoxService/pkg/dbmetrics"
)

var (
	// ErrUnsupportedDB возвращается, когда переданное соединение не умеет открывать транзакции
	ErrUnsupportedDB = errors.New("txmanager: db type not supported")

	// ErrBegin возвращается, когда не удалось начать транзакцию
	ErrBegin = errors.New("txmanager: failed to begin transaction")

	// ErrCommit возвращается, когда не удалось зафиксировать транзакцию
	ErrCommit = errors.New("txmanager: failed to commit transaction")
)

type beginFunc func(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)

// TransactionManager менеджер транзакций
type TransactionManager struct {
	begin beginFunc
}

// NewTransactionManager создает менеджер поверх *sql.DB или *dbmetrics.DB
func NewTransactionManager(db dbmetrics.DBExecutor) *TransactionManager {
	switch conn := db.(type) {
	case *dbmetrics.DB:
		return &TransactionManager{begin: conn.BeginTx}
	case *sql.DB:
		return &TransactionManager{begin: func(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
			tx, err := conn.BeginTx(ctx, opts)
			if err != nil {
				return nil, err
			}
			return &dbmetrics.SqlTxWrapper{Tx: tx}, nil
		}}
	default:
		return &TransactionManager{begin: func(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
			return nil, ErrUnsupportedDB
		}}
	}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.begin(ctx, opts)
	if err != nil {
		if errors.Is(err, ErrUnsupportedDB) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrBegin, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}
	return nil
}
