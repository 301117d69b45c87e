package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/auth"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/dto"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/entity"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain/repository"
	pkgjwt "github.com/MrRohit-01/barcode-stock-system/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	byEmail map[string]*entity.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *stubUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "barcode-stock-test",
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "caja1",
		Email:    "caja1@tienda.local",
		Password: "contrasena-segura",
		Role:     entity.RoleCashier,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CreaConHashYRol(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.RoleCashier, out.Role)
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["caja1@tienda.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contrasena-segura", stored.PasswordHash,
		"la contraseña nunca se guarda en claro")
}

func TestRegisterUser_RolPorDefectoEsCashier(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	in := registerRequest()
	in.Role = ""
	out, err := uc.RegisterUser(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, out.Role)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	in := registerRequest()
	in.Role = "superuser"
	_, err := uc.RegisterUser(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	_, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	_, err = uc.RegisterUser(registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TokenConUserIDYRole(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	created, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "caja1@tienda.local", Password: "contrasena-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, created.ID, out.User.ID)

	// El token debe llevar el ID y el rol para el middleware RBAC
	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, entity.RoleCashier, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)
	_, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "caja1@tienda.local", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@tienda.local", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	_, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	repo.byEmail["caja1@tienda.local"].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "caja1@tienda.local", Password: "contrasena-segura"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
