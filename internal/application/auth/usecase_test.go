package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Flota-api/internal/application/auth"
	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porEmail: map[string]*entity.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.porEmail[u.Email] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.porEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newTestAuth(repo *fakeUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "flota-api-test",
	})
}

func TestRegisterUser_CreaConRolPorDefecto(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newTestAuth(repo)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@flota.test",
		Password: "super-secreta",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RolConductor, user.Rol, "sin rol explícito se asigna conductor")
	assert.Equal(t, "active", user.Estado)

	guardado := repo.porEmail["ana@flota.test"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "super-secreta", guardado.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newTestAuth(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@flota.test", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@flota.test", Password: "otra-secreta"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_ValidaEntrada(t *testing.T) {
	uc := newTestAuth(newFakeUsuarioRepo())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email vacío rechaza")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@flota.test", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password de menos de 8 caracteres rechaza")

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@flota.test", Password: "super-secreta", Rol: "visitante"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol desconocido rechaza")
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newTestAuth(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@flota.test", Password: "super-secreta", Rol: entity.RolMecanico,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@flota.test", Password: "super-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RolMecanico, out.User.Rol)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newTestAuth(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@flota.test", Password: "super-secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@flota.test", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioNoExiste(t *testing.T) {
	uc := newTestAuth(newFakeUsuarioRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@flota.test", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newTestAuth(repo)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@flota.test", Password: "super-secreta"})
	require.NoError(t, err)
	repo.porEmail["ana@flota.test"].Estado = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "ana@flota.test", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
