package listnotes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	c "quicknotes/internal/core/domain/common"
	"quicknotes/internal/core/domain/note"
	service "quicknotes/internal/core/services/list_notes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var Notes []note.Note = []note.Note{
	{
		ID:        note.ID(1),
		Title:     "Groceries",
		Content:   "Milk, eggs",
		CreatedAt: time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2023, 6, 2, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:        note.ID(2),
		Title:     "Ideas",
		CreatedAt: time.Date(2023, 6, 3, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2023, 6, 3, 10, 0, 0, 0, time.UTC),
	},
}

type stubService struct {
	notes      []note.Note
	totalCount uint
	err        error
	input      *service.Input
}

func newStubService() *stubService {
	return &stubService{notes: Notes, totalCount: uint(len(Notes))}
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Notes = s.notes
	result.TotalCount = s.totalCount
	return result, nil
}

func TestListNotesHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			url:            "/notes",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{},
		},
		{
			url:            "/notes?order_by=id_asc",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OrderBy: note.OrderByIDAsc},
		},
		{
			url:            "/notes?order_by=id_desc",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OrderBy: note.OrderByIDDesc},
		},
		{
			url:            "/notes?order_by=updated_at_asc",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OrderBy: note.OrderByUpdatedAtAsc},
		},
		{
			url:            "/notes?order_by=updated_at_desc",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{OrderBy: note.OrderByUpdatedAtDesc},
		},
		{
			url:            "/notes?order_by=asd",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/notes?limit=5",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Limit: c.NewOptional[uint](5, true)},
		},
		{
			url:            "/notes?limit=-1",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/notes?offset=10",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Offset: 10},
		},
		{
			url:            "/notes?offset=aaa",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			stub := newStubService()
			handler := New(stub)

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, testcase.url, nil))

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
			assert.Equal(t, testcase.expectedInput, stub.input)
		})
	}
}

func TestListNotesHandlerRendersNotes(t *testing.T) {
	stub := newStubService()
	handler := New(stub)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/notes", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	result := Result{}
	err := json.Unmarshal(recorder.Body.Bytes(), &result)
	assert.Nil(t, err)
	assert.Len(t, result.Notes, 2)
	assert.Equal(t, uint(2), result.TotalCount)
	assert.Equal(t, int64(1), result.Notes[0].ID)
	assert.Equal(t, "Groceries", result.Notes[0].Title)
}

func TestListNotesHandlerServiceError(t *testing.T) {
	stub := newStubService()
	stub.err = assert.AnError
	handler := New(stub)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/notes", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
