package postgres

import (
	"context"
	"testing"

	"github.com/rafabene/carmarket-backend/internal/domain/entities"
	"github.com/rafabene/carmarket-backend/internal/domain/repositories"
	"github.com/rafabene/carmarket-backend/internal/domain/valueobjects"
	"github.com/rafabene/carmarket-backend/internal/testutil"
)

// newTestUser cria e persiste um usuário BUYER válido
func newTestUser(t *testing.T, repo repositories.UserRepository, address string) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(address)
	if err != nil {
		t.Fatalf("email de teste inválido: %v", err)
	}

	user := &entities.User{
		Email:        email,
		Name:         "Usuário Teste",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         entities.RoleBuyer,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("falha ao criar usuário de teste: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) repositories.UserRepository {
		t.Helper()
		td := testutil.SetupTestDatabase(t)
		t.Cleanup(func() { td.Teardown(t) })
		testutil.CleanDatabase(t, td.DB)
		return NewUserRepository(td.DB)
	}

	t.Run("Create preenche ID e timestamps", func(t *testing.T) {
		repo := setup(t)

		user := newTestUser(t, repo, "novo@example.com")
		if user.ID == "" {
			t.Error("esperava ID preenchido")
		}
		if user.CreatedAt.IsZero() {
			t.Error("esperava CreatedAt preenchido")
		}
	})

	t.Run("FindByEmail retorna nil sem erro quando não existe", func(t *testing.T) {
		repo := setup(t)

		user, err := repo.FindByEmail(ctx, "ninguem@example.com")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if user != nil {
			t.Errorf("esperava nil, obteve %+v", user)
		}
	})

	t.Run("FindByID recupera o usuário criado", func(t *testing.T) {
		repo := setup(t)

		created := newTestUser(t, repo, "ana@example.com")

		found, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if found == nil {
			t.Fatal("esperava usuário, obteve nil")
		}
		if found.Email.String() != "ana@example.com" {
			t.Errorf("esperava email 'ana@example.com', obteve '%s'", found.Email.String())
		}
	})

	t.Run("Update persiste a mudança de papel", func(t *testing.T) {
		repo := setup(t)

		user := newTestUser(t, repo, "bruno@example.com")
		if !user.PromoteToSeller() {
			t.Fatal("esperava promoção de BUYER para SELLER")
		}
		if err := repo.Update(ctx, user); err != nil {
			t.Fatalf("falha ao atualizar usuário: %v", err)
		}

		reloaded, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if reloaded.Role != entities.RoleSeller {
			t.Errorf("esperava role SELLER, obteve '%s'", reloaded.Role)
		}
	})

	t.Run("List filtra por papel", func(t *testing.T) {
		repo := setup(t)

		newTestUser(t, repo, "buyer1@example.com")
		newTestUser(t, repo, "buyer2@example.com")

		seller := newTestUser(t, repo, "seller@example.com")
		seller.PromoteToSeller()
		if err := repo.Update(ctx, seller); err != nil {
			t.Fatalf("falha ao atualizar usuário: %v", err)
		}

		role := entities.RoleSeller
		users, err := repo.List(ctx, repositories.UserFilters{Role: &role})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(users) != 1 {
			t.Fatalf("esperava 1 usuário, obteve %d", len(users))
		}
		if users[0].Email.String() != "seller@example.com" {
			t.Errorf("esperava o vendedor, obteve '%s'", users[0].Email.String())
		}
	})
}
