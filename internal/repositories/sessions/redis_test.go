package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dustward/combat-engine/internal/domain/combat"
	cbterr "github.com/dustward/combat-engine/internal/errors"
	mocksessions "github.com/dustward/combat-engine/internal/repositories/sessions/mock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocksessions.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocksessions.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testSession() *combat.Session {
	def := &combat.EnemyDefinition{
		ID:         "rust_hound",
		Name:       "Rust Hound",
		Type:       combat.EnemyTypeBeast,
		HP:         20,
		ArmorClass: 12,
		XP:         45,
	}
	session := combat.NewSession("sess-1", def, combat.BiomeForest)
	session.CreatedAt = s.now
	return session
}

func (s *RedisRepoTestSuite) payloadFor(session *combat.Session) string {
	snapshot, err := combat.Snapshot(session)
	s.Require().NoError(err)

	data, err := json.Marshal(Data{
		ID:      session.ID,
		SavedAt: s.now,
		Session: snapshot,
	})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	session := s.testSession()
	payload := s.payloadFor(session)

	s.timeProvider.EXPECT().Now().Return(s.now)

	s.mock.ExpectExists("combat:session:sess-1").SetVal(0)
	s.mock.ExpectSet("combat:session:sess-1", payload, 0).SetVal("OK")
	s.mock.ExpectSAdd("combat:sessions", "sess-1").SetVal(1)
	s.mock.ExpectSet("combat:active", "sess-1", 0).SetVal("OK")

	s.NoError(s.repo.Create(ctx, session))
}

func (s *RedisRepoTestSuite) TestCreateDuplicate() {
	s.mock.ExpectExists("combat:session:sess-1").SetVal(1)

	err := s.repo.Create(context.Background(), s.testSession())
	s.Error(err)
	s.Equal(cbterr.CodeAlreadyExists, cbterr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestCreateNil() {
	err := s.repo.Create(context.Background(), nil)
	s.True(cbterr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	session := s.testSession()
	session.DamageEnemy(7)
	payload := s.payloadFor(session)

	s.timeProvider.EXPECT().Now().Return(s.now).AnyTimes()
	s.mock.ExpectGet("combat:session:sess-1").SetVal(payload)

	got, err := s.repo.Get(context.Background(), "sess-1")
	s.Require().NoError(err)
	s.Equal("sess-1", got.ID)
	s.Equal(13, got.EnemyHP.Current)
	s.Equal(combat.BiomeForest, got.Biome)
}

func (s *RedisRepoTestSuite) TestGetNotFound() {
	s.mock.ExpectGet("combat:session:missing").RedisNil()

	_, err := s.repo.Get(context.Background(), "missing")
	s.True(cbterr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetDependencyError() {
	s.mock.ExpectGet("combat:session:sess-1").SetErr(errors.New("redis down"))

	_, err := s.repo.Get(context.Background(), "sess-1")
	s.Error(err)
	s.Equal(cbterr.CodeUnavailable, cbterr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	session := s.testSession()
	session.TurnCount = 2
	payload := s.payloadFor(session)

	s.timeProvider.EXPECT().Now().Return(s.now)
	s.mock.ExpectExists("combat:session:sess-1").SetVal(1)
	s.mock.ExpectSet("combat:session:sess-1", payload, 0).SetVal("OK")

	s.NoError(s.repo.Update(context.Background(), session))
}

func (s *RedisRepoTestSuite) TestUpdateMissing() {
	s.mock.ExpectExists("combat:session:sess-1").SetVal(0)

	err := s.repo.Update(context.Background(), s.testSession())
	s.True(cbterr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDeleteActiveSession() {
	s.mock.ExpectGet("combat:active").SetVal("sess-1")
	s.mock.ExpectDel("combat:session:sess-1").SetVal(1)
	s.mock.ExpectSRem("combat:sessions", "sess-1").SetVal(1)
	s.mock.ExpectDel("combat:active").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "sess-1"))
}

func (s *RedisRepoTestSuite) TestDeleteInactiveSession() {
	s.mock.ExpectGet("combat:active").SetVal("sess-2")
	s.mock.ExpectDel("combat:session:sess-1").SetVal(1)
	s.mock.ExpectSRem("combat:sessions", "sess-1").SetVal(1)

	s.NoError(s.repo.Delete(context.Background(), "sess-1"))
}

func (s *RedisRepoTestSuite) TestGetActive() {
	session := s.testSession()
	payload := s.payloadFor(session)

	s.timeProvider.EXPECT().Now().Return(s.now).AnyTimes()
	s.mock.ExpectGet("combat:active").SetVal("sess-1")
	s.mock.ExpectGet("combat:session:sess-1").SetVal(payload)

	got, err := s.repo.GetActive(context.Background())
	s.Require().NoError(err)
	s.Equal("sess-1", got.ID)
}

func (s *RedisRepoTestSuite) TestGetActiveNone() {
	s.mock.ExpectGet("combat:active").RedisNil()

	_, err := s.repo.GetActive(context.Background())
	s.True(cbterr.IsNotFound(err))
}
