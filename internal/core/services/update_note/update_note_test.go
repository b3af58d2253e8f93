package updatenote

import (
	"context"
	"errors"
	c "quicknotes/internal/core/domain/common"
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

func TestUpdateNoteService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestUpdateTitleOnly() {
	result, err := suite.Service.Run(context.Background(), Input{
		NoteID: note.ID(1),
		Title:  c.NewOptional("New title", true),
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("New title", result.Note.Title)
	assert.Equal(Now, result.Note.UpdatedAt)
	assert.Len(suite.NoteRepository.UpdatedWith, 1)
	updated := suite.NoteRepository.UpdatedWith[0]
	assert.True(updated.DoTitleUpdate)
	assert.False(updated.DoContentUpdate)
	assert.Equal(Now, updated.UpdatedAt)
}

func (suite *testSuite) TestUpdateTitleAndContent() {
	_, err := suite.Service.Run(context.Background(), Input{
		NoteID:  note.ID(1),
		Title:   c.NewOptional("t", true),
		Content: c.NewOptional("c", true),
	})

	assert := suite.Require()
	assert.Nil(err)
	updated := suite.NoteRepository.UpdatedWith[0]
	assert.True(updated.DoTitleUpdate)
	assert.True(updated.DoContentUpdate)
}

func (suite *testSuite) TestPublishesUpdatedEvent() {
	_, err := suite.Service.Run(context.Background(), Input{
		NoteID: note.ID(1),
		Title:  c.NewOptional("t", true),
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(suite.EventPublisher.Published, 1)
	assert.Equal(note.EventNoteUpdated, suite.EventPublisher.Published[0].Type)
}

func (suite *testSuite) TestNothingToUpdate() {
	_, err := suite.Service.Run(context.Background(), Input{NoteID: note.ID(1)})

	assert := suite.Require()
	assert.ErrorIs(err, note.ErrNothingToUpdate)
	assert.Empty(suite.NoteRepository.UpdatedWith)
}

func (suite *testSuite) TestEmptyTitle() {
	_, err := suite.Service.Run(context.Background(), Input{
		NoteID: note.ID(1),
		Title:  c.NewOptional("", true),
	})

	suite.Require().ErrorIs(err, note.ErrNoteTitleIsEmpty)
}

func (suite *testSuite) TestContentTooLong() {
	_, err := suite.Service.Run(context.Background(), Input{
		NoteID:  note.ID(1),
		Content: c.NewOptional(strings.Repeat("a", note.MAX_CONTENT_LENGTH+1), true),
	})

	suite.Require().ErrorIs(err, note.ErrNoteContentTooLong)
}

func (suite *testSuite) TestNoteDoesNotExist() {
	suite.NoteRepository.UpdateError = note.ErrNoteDoesNotExist

	_, err := suite.Service.Run(context.Background(), Input{
		NoteID: note.ID(404),
		Title:  c.NewOptional("t", true),
	})

	assert := suite.Require()
	assert.ErrorIs(err, note.ErrNoteDoesNotExist)
	assert.Empty(suite.EventPublisher.Published)
}

func (suite *testSuite) TestRepositoryError() {
	suite.NoteRepository.UpdateError = errors.New("connection lost")

	_, err := suite.Service.Run(context.Background(), Input{
		NoteID: note.ID(1),
		Title:  c.NewOptional("t", true),
	})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Empty(suite.EventPublisher.Published)
}
