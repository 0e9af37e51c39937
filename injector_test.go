package autoinject_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunoMoraes-Z/autoinject"
)

type Config struct {
	Port int
	Host string
}

type Database struct {
	Config *Config `autoinject:""`
	Name   string
}

type Server struct {
	DB     *Database `autoinject:""`
	Config *Config   `autoinject:""`
	Mailer Mailer    `autoinject:"optional"`
}

type Mailer interface {
	Send(to, body string) error
}

type smtpMailer struct {
	host string
}

func (m *smtpMailer) Send(to, body string) error { return nil }

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) Send(to, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	inj := autoinject.New()
	require.NotNil(t, inj)
	assert.NotEmpty(t, inj.ID())
	assert.Zero(t, inj.Size())
}

func TestNewWithLogger(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	inj := autoinject.New(autoinject.WithLogger(logger))
	require.NotNil(t, inj)
}

func TestNewAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	a := autoinject.New()
	b := autoinject.New()
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSize(t *testing.T) {
	t.Parallel()

	inj := autoinject.New()
	assert.Equal(t, 0, inj.Size())

	autoinject.RegisterInstance(inj, &Config{Port: 8080})
	autoinject.RegisterFactory(
		inj, func() (*Database, error) {
			return &Database{Name: "db"}, nil
		},
	)
	assert.Equal(t, 2, inj.Size())

	// A second kind for an already-registered type adds no new token.
	autoinject.RegisterLazySingleton(
		inj, func() (*Database, error) {
			return &Database{Name: "lazy"}, nil
		},
	)
	assert.Equal(t, 2, inj.Size())
}

func TestMergeCopiesEveryKind(t *testing.T) {
	t.Parallel()

	src := autoinject.New()
	autoinject.RegisterInstance(src, &Config{Port: 8080})
	autoinject.RegisterFactory(
		src, func() (*Database, error) {
			return &Database{Name: "fresh"}, nil
		},
	)
	require.NoError(
		t, autoinject.RegisterSingleton(
			src, func() (*smtpMailer, error) {
				return &smtpMailer{host: "mail.local"}, nil
			},
		),
	)
	autoinject.RegisterLazySingleton(
		src, func() (*Server, error) {
			return &Server{}, nil
		},
	)

	dst := autoinject.New()
	dst.Merge(src)

	assert.True(t, autoinject.Contains[*Config](dst))
	assert.True(t, autoinject.Contains[*Database](dst))
	assert.True(t, autoinject.Contains[*smtpMailer](dst))
	assert.True(t, autoinject.Contains[*Server](dst))
	assert.Equal(t, 4, dst.Size())
}

func TestMergeOtherWins(t *testing.T) {
	t.Parallel()

	dst := autoinject.New()
	autoinject.RegisterInstance(dst, &Config{Port: 1111})

	src := autoinject.New()
	autoinject.RegisterInstance(src, &Config{Port: 2222})

	dst.Merge(src)

	cfg := autoinject.MustResolve[*Config](dst)
	assert.Equal(t, 2222, cfg.Port)
}

func TestMergeLeavesSourceIntact(t *testing.T) {
	t.Parallel()

	src := autoinject.New()
	autoinject.RegisterInstance(src, &Config{Port: 8080})

	dst := autoinject.New()
	dst.Merge(src)
	autoinject.Remove[*Config](dst)

	assert.True(t, autoinject.Contains[*Config](src))
	assert.False(t, autoinject.Contains[*Config](dst))
}

func TestMergeSelfIsNoOp(t *testing.T) {
	t.Parallel()

	inj := autoinject.New()
	autoinject.RegisterInstance(inj, &Config{Port: 8080})

	inj.Merge(inj)
	inj.Merge(nil)

	assert.Equal(t, 1, inj.Size())
}

func TestReset(t *testing.T) {
	t.Parallel()

	inj := autoinject.New()
	autoinject.RegisterInstance(inj, &Config{Port: 8080})
	autoinject.RegisterLazySingleton(
		inj, func() (*Database, error) {
			return &Database{Name: "db"}, nil
		},
	)
	require.Equal(t, 2, inj.Size())

	inj.Reset()

	assert.Zero(t, inj.Size())
	assert.False(t, autoinject.Contains[*Config](inj))
	assert.False(t, autoinject.Contains[*Database](inj))
}
