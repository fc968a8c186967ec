package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skirent-api/internal/application/auth"
	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/domain"
	"github.com/jhoicas/skirent-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/skirent-api/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "skirent-api-test",
	})
}

func TestRegister_CreaEmployeeYDevuelveToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "p4ssw0rd!23"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token, "el registro devuelve sesión iniciada")
	assert.Equal(t, "maria", out.User.Username)
	assert.Equal(t, string(entity.RoleEmployee), out.User.Role,
		"todo registro público queda como employee")

	// El token debe ser parseable y llevar el rol del usuario.
	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "employee", role)

	stored := repo.users[out.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "p4ssw0rd!23", stored.PasswordHash, "la contraseña nunca se guarda en plano")
}

func TestRegister_UsernameTomado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "p4ssw0rd!23"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "maria", Password: "otra-clave-99"})
	assert.Equal(t, domain.ErrUsernameExists, err)
	assert.Len(t, repo.users, 1)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "p4ssw0rd!23"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "p4ssw0rd!23"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "maria", out.User.Username)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "p4ssw0rd!23"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})
	assert.Equal(t, domain.ErrUnauthorized, err)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "loquesea12"})
	assert.Equal(t, domain.ErrUserNotFound, err)
}

func TestMe(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	reg, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "p4ssw0rd!23"})
	require.NoError(t, err)

	me, err := uc.Me(reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria", me.Username)

	_, err = uc.Me("no-existe")
	assert.Equal(t, domain.ErrUserNotFound, err)
}
