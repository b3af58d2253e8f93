package listnotes

import (
	"context"
	"errors"
	c "quicknotes/internal/core/domain/common"
	"quicknotes/internal/core/domain/logging"
	"quicknotes/internal/core/domain/note"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	NoteRepository *note.TestNoteRepository
	Service        *service
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.NoteRepository = note.NewTestNoteRepository()
	suite.Service = New(suite.Logger, suite.NoteRepository).(*service)
}

func TestListNotesService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	suite.NoteRepository.ReadNotes = []note.Note{
		{ID: note.ID(1), Title: "A"},
		{ID: note.ID(2), Title: "B"},
	}
	suite.NoteRepository.CountResult = 10

	result, err := suite.Service.Run(context.Background(), Input{
		OrderBy: note.OrderByUpdatedAtDesc,
		Limit:   c.NewOptional[uint](2, true),
		Offset:  4,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(result.Notes, 2)
	assert.Equal(uint(10), result.TotalCount)
	assert.Len(suite.NoteRepository.ReadWith, 1)
	assert.Equal(note.OrderByUpdatedAtDesc, suite.NoteRepository.ReadWith[0].OrderBy)
	assert.Equal(c.NewOptional[uint](2, true), suite.NoteRepository.ReadWith[0].Limit)
	assert.Equal(uint(4), suite.NoteRepository.ReadWith[0].Offset)
}

func (suite *testSuite) TestEmptyList() {
	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Empty(result.Notes)
	assert.Equal(uint(0), result.TotalCount)
}

func (suite *testSuite) TestReadError() {
	suite.NoteRepository.ReadError = errors.New("connection lost")

	_, err := suite.Service.Run(context.Background(), Input{})

	suite.Require().NotNil(err)
}

func (suite *testSuite) TestCountError() {
	suite.NoteRepository.CountError = errors.New("connection lost")

	_, err := suite.Service.Run(context.Background(), Input{})

	suite.Require().NotNil(err)
}
