package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/railswift/railswift/internal/model"
	"github.com/railswift/railswift/internal/store"

	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) (*sql.DB, *store.Store) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection would get its own in-memory database
	db.SetMaxOpenConns(1)
	st, err := store.New(db)
	require.NoError(t, err)
	return db, st
}

type AccountRepoTestSuite struct {
	suite.Suite
	db       *sql.DB
	store    *store.Store
	accounts *AccountRepo
	ctx      context.Context
}

func (s *AccountRepoTestSuite) SetupTest() {
	s.db, s.store = newTestStore(s.T())
	s.accounts = NewAccountRepo(s.store)
	s.ctx = context.Background()
}

func (s *AccountRepoTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *AccountRepoTestSuite) TestRegisterRejectsDuplicateEmail() {
	require.NoError(s.T(), s.accounts.Register(s.ctx, "A", "a@x.com", "pw1"))
	err := s.accounts.Register(s.ctx, "B", "a@x.com", "pw2")
	assert.ErrorIs(s.T(), err, ErrEmailExists)

	// A different email still registers fine.
	assert.NoError(s.T(), s.accounts.Register(s.ctx, "B", "b@x.com", "pw2"))
}

func (s *AccountRepoTestSuite) TestLoginExactMatchOnly() {
	require.NoError(s.T(), s.accounts.Register(s.ctx, "A", "a@x.com", "Secret"))

	_, err := s.accounts.Login(s.ctx, "a@x.com", "secret")
	assert.ErrorIs(s.T(), err, ErrInvalidCredentials, "password is case-sensitive")

	_, err = s.accounts.Login(s.ctx, "A@X.COM", "Secret")
	assert.ErrorIs(s.T(), err, ErrInvalidCredentials, "email is case-sensitive")

	u, err := s.accounts.Login(s.ctx, "a@x.com", "Secret")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "A", u.Name)
	assert.Empty(s.T(), u.Password, "session copy must not carry the password")
}

func (s *AccountRepoTestSuite) TestLoginEstablishesSession() {
	require.NoError(s.T(), s.accounts.Register(s.ctx, "A", "a@x.com", "pw"))
	_, err := s.accounts.Login(s.ctx, "a@x.com", "pw")
	require.NoError(s.T(), err)

	cur, err := s.accounts.Current(s.ctx)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), cur)
	assert.Equal(s.T(), "a@x.com", cur.Email)
	assert.Empty(s.T(), cur.Password)

	ok, err := s.accounts.Authenticated(s.ctx)
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
}

func (s *AccountRepoTestSuite) TestLogoutClearsSessionOnly() {
	require.NoError(s.T(), s.accounts.Register(s.ctx, "A", "a@x.com", "pw"))
	_, err := s.accounts.Login(s.ctx, "a@x.com", "pw")
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.accounts.Logout(s.ctx))

	cur, err := s.accounts.Current(s.ctx)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), cur)

	ok, err := s.accounts.Authenticated(s.ctx)
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)

	// The account itself survives logout.
	_, err = s.accounts.Login(s.ctx, "a@x.com", "pw")
	assert.NoError(s.T(), err)
}

func (s *AccountRepoTestSuite) TestUpdateCurrentMergesBothCopies() {
	require.NoError(s.T(), s.accounts.Register(s.ctx, "A", "a@x.com", "pw"))
	_, err := s.accounts.Login(s.ctx, "a@x.com", "pw")
	require.NoError(s.T(), err)

	name := "Asha"
	avatar := "https://example.com/a.png"
	u, err := s.accounts.UpdateCurrent(s.ctx, model.UserUpdate{Name: &name, Avatar: &avatar})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Asha", u.Name)
	require.NotNil(s.T(), u.Avatar)
	assert.Equal(s.T(), avatar, *u.Avatar)

	// Master list entry updated too, password intact: a fresh login under
	// the old password succeeds and sees the new name.
	require.NoError(s.T(), s.accounts.Logout(s.ctx))
	again, err := s.accounts.Login(s.ctx, "a@x.com", "pw")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Asha", again.Name)
}

func (s *AccountRepoTestSuite) TestUpdateCurrentPartialFields() {
	require.NoError(s.T(), s.accounts.Register(s.ctx, "A", "a@x.com", "pw"))
	_, err := s.accounts.Login(s.ctx, "a@x.com", "pw")
	require.NoError(s.T(), err)

	avatar := "pic"
	u, err := s.accounts.UpdateCurrent(s.ctx, model.UserUpdate{Avatar: &avatar})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "A", u.Name, "nil fields leave the stored value untouched")
}

func (s *AccountRepoTestSuite) TestUpdateCurrentWithoutSession() {
	name := "X"
	_, err := s.accounts.UpdateCurrent(s.ctx, model.UserUpdate{Name: &name})
	assert.ErrorIs(s.T(), err, ErrNoActiveSession)
}

func (s *AccountRepoTestSuite) TestCorruptUserListReadsAsEmpty() {
	_, err := s.db.Exec("REPLACE INTO kv_store (k, v) VALUES (?, ?)", store.KeyUsers, "][")
	require.NoError(s.T(), err)

	// A corrupt list means no users, so registration starts fresh.
	assert.NoError(s.T(), s.accounts.Register(s.ctx, "A", "a@x.com", "pw"))
	_, err = s.accounts.Login(s.ctx, "a@x.com", "pw")
	assert.NoError(s.T(), err)
}

func TestAccountRepoTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepoTestSuite))
}
