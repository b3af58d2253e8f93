package services

import (
	"quicknotes/internal/app/deps"
	"quicknotes/internal/core/services"
	createnote "quicknotes/internal/core/services/create_note"
	deletenote "quicknotes/internal/core/services/delete_note"
	getnote "quicknotes/internal/core/services/get_note"
	listnotes "quicknotes/internal/core/services/list_notes"
	updatenote "quicknotes/internal/core/services/update_note"
)

type Services struct {
	CreateNote services.Service[createnote.Input, createnote.Result]
	GetNote    services.Service[getnote.Input, getnote.Result]
	ListNotes  services.Service[listnotes.Input, listnotes.Result]
	UpdateNote services.Service[updatenote.Input, updatenote.Result]
	DeleteNote services.Service[deletenote.Input, deletenote.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		CreateNote: createnote.New(
			deps.Logger,
			deps.NoteRepository,
			deps.NoteEventPublisher,
			deps.Now,
		),
		GetNote: getnote.New(
			deps.Logger,
			deps.NoteRepository,
		),
		ListNotes: listnotes.New(
			deps.Logger,
			deps.NoteRepository,
		),
		UpdateNote: updatenote.New(
			deps.Logger,
			deps.NoteRepository,
			deps.NoteEventPublisher,
			deps.Now,
		),
		DeleteNote: deletenote.New(
			deps.Logger,
			deps.NoteRepository,
			deps.NoteEventPublisher,
		),
	}
}
