package services

import (
	"context"
	"log"
	"strings"

	"ohio-order/models"
)

type MejaAPI interface {
	FindByNomor(ctx context.Context, nomorMeja string) (*models.Meja, error)
	CreateSession(ctx context.Context, mejaID string) (*models.SessionResponse, error)
}

type SessionService struct {
	meja   MejaAPI
	drafts DraftStore
}

func NewSessionService(meja MejaAPI, drafts DraftStore) *SessionService {
	return &SessionService{meja: meja, drafts: drafts}
}

// Login resolves the table by its number and opens a session for it.
func (s *SessionService) Login(ctx context.Context, nomorMeja string) (models.Session, error) {
	nomorMeja = strings.TrimSpace(nomorMeja)
	if nomorMeja == "" {
		return models.Session{}, ErrNomorRequired
	}

	meja, err := s.meja.FindByNomor(ctx, nomorMeja)
	if err != nil {
		log.Printf("Table lookup for nomor %s failed: %v", nomorMeja, err)
		return models.Session{}, &UserError{Message: models.MessageOr(err, "Failed to fetch table data"), Err: err}
	}
	if meja == nil || meja.ID == "" {
		return models.Session{}, &UserError{Message: "Failed to fetch table data"}
	}

	created, err := s.meja.CreateSession(ctx, meja.ID)
	if err != nil {
		log.Printf("Session creation for meja %s failed: %v", meja.ID, err)
		return models.Session{}, &UserError{Message: models.MessageOr(err, "Failed to create session"), Err: err}
	}
	if created.SessionID == "" {
		return models.Session{}, &UserError{Message: "Failed to create session"}
	}

	return models.Session{
		ID:        created.SessionID,
		TableID:   meja.ID,
		NomorMeja: nomorMeja,
	}, nil
}

// Logout forgets the session's local draft.
func (s *SessionService) Logout(ctx context.Context, sess models.Session) error {
	if !sess.Valid() {
		return nil
	}
	return s.drafts.Delete(ctx, sess.ID)
}
