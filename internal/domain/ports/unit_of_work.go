package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// O contexto retornado por Begin carrega o handle transacional; todos os
// repositórios executados com esse contexto participam da mesma transação.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
