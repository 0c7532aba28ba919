package repositories

import (
	"context"
	"net/http"
	"net/url"

	"ohio-order/models"
)

type MejaRepository struct {
	client *APIClient
}

func NewMejaRepository(client *APIClient) *MejaRepository {
	return &MejaRepository{client: client}
}

func (r *MejaRepository) FindByNomor(ctx context.Context, nomorMeja string) (*models.Meja, error) {
	var meja models.Meja
	_, err := r.client.do(ctx, http.MethodGet, "/api/v1/meja/nomor/"+url.PathEscape(nomorMeja), "", nil, &meja)
	if err != nil {
		return nil, err
	}
	return &meja, nil
}

func (r *MejaRepository) CreateSession(ctx context.Context, mejaID string) (*models.SessionResponse, error) {
	var session models.SessionResponse
	_, err := r.client.do(ctx, http.MethodPost, "/api/v1/meja/"+url.PathEscape(mejaID)+"/session", "", nil, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
