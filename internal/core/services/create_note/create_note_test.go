package createnote

import (
	"context"
	"errors"
	"quicknotes/internal/core/domain/logging"
	"quicknotes/internal/core/domain/note"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now time.Time = time.Date(2023, 6, 15, 12, 30, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	NoteRepository *note.TestNoteRepository
	EventPublisher *note.TestEventPublisher
	Service        *service
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.NoteRepository = note.NewTestNoteRepository()
	suite.EventPublisher = note.NewTestEventPublisher()
	suite.Service = New(
		suite.Logger,
		suite.NoteRepository,
		suite.EventPublisher,
		func() time.Time { return Now },
	).(*service)
}

func TestCreateNoteService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		Title:   "Shopping list",
		Content: "Milk, eggs, bread",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Shopping list", result.Note.Title)
	assert.Equal("Milk, eggs, bread", result.Note.Content)
	assert.Equal(Now, result.Note.CreatedAt)
	assert.Len(suite.NoteRepository.Created, 1)
	assert.Equal(Now, suite.NoteRepository.Created[0].CreatedAt)
}

func (suite *testSuite) TestPublishesCreatedEvent() {
	_, err := suite.Service.Run(context.Background(), Input{Title: "t", Content: "c"})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(suite.EventPublisher.Published, 1)
	assert.Equal(note.EventNoteCreated, suite.EventPublisher.Published[0].Type)
	assert.Equal("t", suite.EventPublisher.Published[0].Note.Title)
}

func (suite *testSuite) TestPublishErrorIsNotFatal() {
	suite.EventPublisher.Error = errors.New("publish failed")

	result, err := suite.Service.Run(context.Background(), Input{Title: "t"})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("t", result.Note.Title)
}

func (suite *testSuite) TestEmptyTitle() {
	_, err := suite.Service.Run(context.Background(), Input{Title: "", Content: "c"})

	assert := suite.Require()
	assert.ErrorIs(err, note.ErrNoteTitleIsEmpty)
	assert.Empty(suite.NoteRepository.Created)
}

func (suite *testSuite) TestTitleTooLong() {
	_, err := suite.Service.Run(context.Background(), Input{
		Title: strings.Repeat("a", note.MAX_TITLE_LENGTH+1),
	})

	suite.Require().ErrorIs(err, note.ErrNoteTitleTooLong)
}

func (suite *testSuite) TestContentTooLong() {
	_, err := suite.Service.Run(context.Background(), Input{
		Title:   "t",
		Content: strings.Repeat("a", note.MAX_CONTENT_LENGTH+1),
	})

	suite.Require().ErrorIs(err, note.ErrNoteContentTooLong)
}

func (suite *testSuite) TestRepositoryError() {
	suite.NoteRepository.CreateError = errors.New("connection lost")

	_, err := suite.Service.Run(context.Background(), Input{Title: "t"})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Empty(suite.EventPublisher.Published)
}
